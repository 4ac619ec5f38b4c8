package optout

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler serves the unsubscribe endpoint linked from outgoing mail.
//
// GET /?email=...&verify=... verifies the token against the secret and
// records the opt-out. A bad token is rejected with 403 so the endpoint
// cannot be used to unsubscribe arbitrary addresses.
func Handler(store Store, secret string, log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		email := Normalize(req.URL.Query().Get("email"))
		verify := req.URL.Query().Get("verify")

		if subtle.ConstantTimeCompare([]byte(verify), []byte(Token(email, secret))) != 1 {
			log.WarnContext(ctx, "unsubscribe token mismatch", slog.String("email", email))
			http.Error(w, "invalid verification token", http.StatusForbidden)
			return
		}

		already, err := store.IsUnsubscribed(ctx, email)
		if err == nil && already {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("You have already been unsubscribed from our mailing list."))
			return
		}

		if err := store.Add(ctx, email); err != nil {
			log.ErrorContext(ctx, "failed to record opt-out", slog.String("email", email), slog.Any("error", err))
			http.Error(w, "unable to process unsubscribe request", http.StatusInternalServerError)
			return
		}

		log.InfoContext(ctx, "address unsubscribed", slog.String("email", email))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("You have been unsubscribed and will no longer receive mail from us."))
	})

	return r
}
