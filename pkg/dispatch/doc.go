// Package dispatch validates composed messages and hands them to an
// outbound transport, with optional testing-mode redirection.
//
// The Sender interface is the minimal contract transports implement; the
// resend and mailgun subpackages provide adapters for those providers.
//
//	sender := resend.New(resend.Config{APIKey: key})
//	d := dispatch.New(sender, dispatch.Config{}, slog.Default())
//	if err := d.Send(ctx, msg); err != nil { ... }
//
// Send validates the sender and recipient address shapes, the subject
// length, and the body before any transport call, returning sentinel errors
// for each failure. Messages whose recipients were all suppressed by
// opt-out filtering succeed without touching the transport.
//
// # Testing mode
//
// With TestingMode set, delivery is redirected to TestingAddress: the
// original to/cc/bcc values are preserved in X-Testing-Original-* headers,
// the live CC/BCC headers are blanked, and the subject gains a marker
// prefix. When TestingMode is set but no TestingAddress is configured, Send
// reports success without invoking the transport at all.
package dispatch
