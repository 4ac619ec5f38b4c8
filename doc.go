// Package courier is a templated message composition and delivery toolkit.
//
// Applications register message definitions (a welcome mail, a digest, a
// password reset) once at startup, then send by definition id. The composer
// resolves each send through stored renditions and templates, substitutes
// macros in a fixed pass order, filters opted-out recipients, and hands the
// finished message to a send gate that validates it and drives the
// configured transport.
//
// The root package is a thin facade over the subpackages:
//
//   - pkg/compose: definitions, renditions, templates, macro substitution
//   - pkg/dispatch: validation, testing-mode redirection, transports
//   - pkg/store: in-memory and PostgreSQL entity stores
//   - pkg/optout: unsubscribe records, tokens, and the opt-out HTTP handler
//   - pkg/datefmt: date styles, duration ranges, fuzzy relative times
//
// Minimal wiring:
//
//	client := courier.New(resend.New(resendCfg), cfg)
//	client.MustRegister("welcome", definitions.Welcome{})
//
//	msg, err := client.Send(ctx, courier.Params{
//	    Definition: "welcome",
//	    Recipient:  courier.Address("jamie@example.com"),
//	    Macros:     map[string]string{"plan": "Pro"},
//	})
//
// Use the subpackages directly when the facade is too coarse, for example
// to compose without sending or to mount the opt-out HTTP handler.
package courier
