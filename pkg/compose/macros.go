package compose

import (
	"context"
	"html"
	"strings"

	"github.com/dmitrymomot/courier/pkg/datefmt"
	"github.com/dmitrymomot/courier/pkg/optout"
)

// dateMacros maps date/time macro tokens to their formatting style.
var dateMacros = map[string]datefmt.Style{
	"#datetime_sort#":  datefmt.FullSort,
	"#datetime_short#": datefmt.FullShort,
	"#datetime_med#":   datefmt.FullMed,
	"#datetime_long#":  datefmt.FullLong,
	"#date_sort#":      datefmt.DateSort,
	"#date_short#":     datefmt.DateShort,
	"#date_med#":       datefmt.DateMed,
	"#date_long#":      datefmt.DateLong,
	"#time_sort#":      datefmt.TimeSort,
	"#time_short#":     datefmt.TimeShort,
	"#time_med#":       datefmt.TimeMed,
	"#time_long#":      datefmt.TimeLong,
}

// macroEnv carries everything one field substitution needs.
type macroEnv struct {
	def       Definition
	meta      Meta
	template  *Template
	recipient *Recipient
	macros    map[string]string
	subject   string
	isContent bool
	optOut    bool
}

// expandMacros runs the substitution passes over a single field in their
// fixed order. Each pass is a full scan-and-replace before the next begins;
// unresolved tokens are left as literal text.
func (c *Composer) expandMacros(ctx context.Context, field string, env macroEnv) string {
	// Template rules that apply before macros.
	for _, rule := range env.template.Replacements {
		if !rule.Macros {
			continue
		}
		field = strings.ReplaceAll(field, rule.Search, rule.Replace)
	}

	// The resolved subject, available to the content field only.
	if env.isContent {
		field = strings.ReplaceAll(field, "#subject#", html.EscapeString(env.subject))
	}

	// Links.
	field = strings.ReplaceAll(field, "#site_link#", html.EscapeString(c.config.SiteLink))
	if env.optOut && env.recipient != nil && c.config.UnsubscribeURL != "" {
		link := optout.Link(c.config.UnsubscribeURL, env.recipient.Email, c.config.UnsubscribeSecret)
		field = strings.ReplaceAll(field, "#unsubscribe_link#", html.EscapeString(link))
	}

	// Recipient fields, empty when the recipient lacks them.
	field = replaceEscaped(field, "#to_username#", recipientUsername(env.recipient))
	field = replaceEscaped(field, "#to_name#", recipientField(env.recipient, func(r *Recipient) string { return r.Name }))
	field = replaceEscaped(field, "#to_first_name#", recipientField(env.recipient, func(r *Recipient) string { return r.FirstName }))
	field = replaceEscaped(field, "#to_last_name#", recipientField(env.recipient, func(r *Recipient) string { return r.LastName }))
	field = replaceEscaped(field, "#to_email#", recipientField(env.recipient, func(r *Recipient) string { return r.Email }))

	// The acting user, when a session context exists.
	if c.identity != nil {
		if cur := c.identity.Current(ctx); cur != nil {
			field = replaceEscaped(field, "#username#", cur.Username)
			field = replaceEscaped(field, "#name#", cur.Name)
			field = replaceEscaped(field, "#first_name#", cur.FirstName)
			field = replaceEscaped(field, "#last_name#", cur.LastName)
			field = replaceEscaped(field, "#email#", cur.Email)
		}
	}

	// Date and time at composition, in the configured zone.
	now := c.now().In(c.loc)
	for token, style := range dateMacros {
		if strings.Contains(field, token) {
			field = strings.ReplaceAll(field, token, html.EscapeString(datefmt.Format(now, style)))
		}
	}

	field = strings.ReplaceAll(field, "#site_name#", html.EscapeString(c.config.SiteName))

	// Caller-supplied macros substitute unescaped: the caller owns their
	// safety, and they take precedence over definition macros by consuming
	// the token first.
	for name, value := range env.macros {
		field = strings.ReplaceAll(field, "#"+name+"#", value)
	}

	// Definition macros are resolved lazily: the lookup only runs when the
	// token is present.
	for name := range env.meta.Macros {
		token := "#" + name + "#"
		if strings.Contains(field, token) {
			field = strings.ReplaceAll(field, token, env.def.Macro(name))
		}
	}

	// Template rules that apply after macros.
	for _, rule := range env.template.Replacements {
		if rule.Macros {
			continue
		}
		field = strings.ReplaceAll(field, rule.Search, rule.Replace)
	}

	return field
}

func replaceEscaped(field, token, value string) string {
	if !strings.Contains(field, token) {
		return field
	}
	return strings.ReplaceAll(field, token, html.EscapeString(value))
}

func recipientField(r *Recipient, get func(*Recipient) string) string {
	if r == nil {
		return ""
	}
	return get(r)
}

// recipientUsername falls back to the group name for group distribution
// addresses.
func recipientUsername(r *Recipient) string {
	if r == nil {
		return ""
	}
	if r.Username != "" {
		return r.Username
	}
	return r.GroupName
}
