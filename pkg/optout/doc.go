// Package optout tracks email addresses that must never receive mail.
//
// A Store answers whether a normalized address has unsubscribed and lets
// addresses be added or removed. Two backends are provided: Memory for
// tests and single-process setups, and Redis for shared deployments.
//
// The package also builds signed unsubscribe links for inclusion in
// outgoing mail and serves the matching HTTP endpoint:
//
//	store := optout.NewMemory()
//	link := optout.Link("https://example.com/unsubscribe", "user@example.com", secret)
//
//	r := chi.NewRouter()
//	r.Mount("/unsubscribe", optout.Handler(store, secret, slog.Default()))
//
// Lookup failures must be treated as "unsubscribed" by callers: it is
// better to suppress a message than to mail someone who opted out.
package optout
