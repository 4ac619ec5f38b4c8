package store

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the embedded schema migrations, recording progress in the
// courier_migrations table. Safe to run on every startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	// Bridge the pgx pool to the database/sql interface goose expects. The
	// returned DB shares the pool's connections, so it must not be closed
	// here.
	db := stdlib.OpenDBFromPool(pool)

	goose.SetBaseFS(migrations)
	goose.SetLogger(&gooseLoggerAdapter{log})
	goose.SetTableName("courier_migrations")

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrSetDialect, err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return errors.Join(ErrApplyMigrations, err)
	}

	return nil
}

type gooseLoggerAdapter struct {
	log *slog.Logger
}

func (g *gooseLoggerAdapter) Printf(format string, args ...any) {
	g.log.Info(fmt.Sprintf(format, args...))
}

func (g *gooseLoggerAdapter) Fatalf(format string, args ...any) {
	// Error level only; goose returns the failure to the caller, so avoid
	// os.Exit and let shutdown proceed normally.
	g.log.Error(fmt.Sprintf(format, args...))
}
