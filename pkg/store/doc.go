// Package store provides entity store backends for the composition
// pipeline: rendition and template records plus identity lookups, behind
// the compose.EntityStore interface.
//
// Memory keeps everything in process and is the natural choice for tests
// and small deployments. Postgres persists records in three tables managed
// by embedded goose migrations:
//
//	pool, err := pgxpool.New(ctx, dsn)
//	...
//	if err := store.Migrate(ctx, pool, slog.Default()); err != nil { ... }
//	entities := store.NewPostgres(pool)
//
// Both backends return renditions and templates newest first, matching the
// composer's "newest ready record wins" selection rule.
package store
