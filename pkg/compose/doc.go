// Package compose turns registered message definitions into fully resolved,
// ready-to-send messages.
//
// A Definition describes a message type: its default subject and HTML body,
// the macros it declares, and whether it expects an explicit recipient or
// opt-out filtering. Definitions are registered once at startup:
//
//	registry := compose.NewRegistry()
//	registry.MustRegister("user.verify", verifyMail{})
//
// A Rendition is a live override of a definition's recipient, subject, and
// content; a Template is a shared visual wrapper. Both are read from an
// EntityStore (see pkg/store for implementations) and picked newest-first.
// When no stored template is ready, a built-in default wrapper is used.
//
// Composing resolves content, recipient, and macros in one pass:
//
//	composer := compose.NewComposer(registry, store, cfg,
//	    compose.WithOptOutStore(optouts),
//	)
//	msg, err := composer.Compose(ctx, compose.Params{
//	    Definition: "user.verify",
//	    Recipient:  compose.Address("jane@example.com"),
//	    Macros:     map[string]string{"verify_link": link},
//	})
//
// # Macros
//
// Text fields may contain #name# placeholder macros, substituted through a
// fixed sequence of passes: template pre-rules, the resolved #subject#
// (content field only), link macros (#site_link#, #unsubscribe_link#),
// recipient fields (#to_username#, #to_name#, #to_first_name#,
// #to_last_name#, #to_email#), acting-user fields (#username#, #name#,
// #first_name#, #last_name#, #email#), date/time macros (#datetime_sort#
// through #time_long#, see pkg/datefmt), #site_name#, caller-supplied
// macros, definition macros, and template post-rules. Caller macros always
// win over definition macros of the same name. Tokens that no pass resolves
// stay in the output as literal text.
//
// Recipient, actor, date, and site macros are HTML-escaped; caller-supplied
// macro values are substituted verbatim.
//
// # Opt-out filtering
//
// Definitions with the OptOut flag have their recipients checked against an
// opt-out store. Unsubscribed addresses are dropped from the destination;
// when every address is dropped the message is marked AllSuppressed and the
// send gate skips the transport while still reporting success.
package compose
