package compose

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/dmitrymomot/courier/pkg/optout"
)

// EntityStore queries rendition and template records and looks up identities
// by address. Find* listings return newest first; the identity lookups
// return (nil, nil) when nothing matches.
type EntityStore interface {
	FindRenditions(ctx context.Context, definitionID string, enabledOnly bool) ([]*Rendition, error)
	FindTemplates(ctx context.Context, enabledOnly bool) ([]*Template, error)
	FindUserByEmail(ctx context.Context, email string) (*Recipient, error)
	FindGroupByEmail(ctx context.Context, email string) (*Recipient, error)
}

// OptOutStore answers whether an address has opted out of mail. An error
// is treated as unsubscribed: suppressing a message beats mailing someone
// who asked not to be.
type OptOutStore interface {
	IsUnsubscribed(ctx context.Context, email string) (bool, error)
}

// IdentityProvider reports the acting user for the current-user macro set,
// or nil when no session context exists.
type IdentityProvider interface {
	Current(ctx context.Context) *Recipient
}

// Composer resolves content, recipients, and macros into ready-to-send
// messages. Each Compose call works on its own Message and may run
// concurrently with others.
type Composer struct {
	registry   *Registry
	store      EntityStore
	optout     OptOutStore
	identity   IdentityProvider
	now        func() time.Time
	loc        *time.Location
	markdown   goldmark.Markdown
	textPolicy *bluemonday.Policy
	config     Config
}

// Option configures a Composer.
type Option func(*Composer)

// WithOptOutStore enables opt-out filtering for definitions that request it.
func WithOptOutStore(store OptOutStore) Option {
	return func(c *Composer) {
		c.optout = store
	}
}

// WithIdentityProvider enables the current-user macro set.
func WithIdentityProvider(provider IdentityProvider) Option {
	return func(c *Composer) {
		c.identity = provider
	}
}

// WithClock overrides the time source for date/time macros.
func WithClock(now func() time.Time) Option {
	return func(c *Composer) {
		c.now = now
	}
}

// WithLocation sets the zone for date/time macros. Default: time.Local.
func WithLocation(loc *time.Location) Option {
	return func(c *Composer) {
		c.loc = loc
	}
}

// NewComposer creates a composer over the given definition registry and
// entity store.
func NewComposer(registry *Registry, store EntityStore, cfg Config, opts ...Option) *Composer {
	c := &Composer{
		registry:   registry,
		store:      store,
		config:     cfg,
		now:        time.Now,
		loc:        time.Local,
		markdown:   goldmark.New(),
		textPolicy: bluemonday.StrictPolicy(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Params are the inputs to one composition.
type Params struct {
	// Definition is the registered definition id. Required.
	Definition string

	// Recipient is the explicit target. When nil, the rendition's To field
	// or the configured master address is used, subject to the
	// definition's ExpectsRecipient flag.
	Recipient *Recipient

	// Macros are caller-supplied name/value overrides, substituted
	// unescaped and ahead of definition macros.
	Macros map[string]string

	// Sender overrides the rendition and configured from addresses.
	Sender string

	// Rendition forces a specific rendition; NoRendition forces none.
	// When both are unset the newest ready rendition is used.
	Rendition   *Rendition
	NoRendition bool

	// Template forces a specific template; DefaultTemplate forces the
	// built-in wrapper. When both are unset the newest ready template is
	// used.
	Template        *Template
	DefaultTemplate bool
}

// Compose resolves a definition, its rendition and template, the recipient,
// and all macros into a Message ready for the send gate. Configuration
// problems (unknown definition, missing recipient or master address, empty
// content) are returned as errors; validation of the finished message is
// the send gate's job.
func (c *Composer) Compose(ctx context.Context, p Params) (*Message, error) {
	def, err := c.registry.Lookup(p.Definition)
	if err != nil {
		return nil, err
	}
	meta := def.Meta()

	rendition, err := c.resolveRendition(ctx, p)
	if err != nil {
		return nil, err
	}

	sender := p.Sender
	if sender == "" && rendition != nil && rendition.From != "" {
		sender = rendition.From
	}
	if sender == "" {
		sender = c.config.FromAddress
	}

	recipient, err := c.resolveRecipient(ctx, p.Recipient, meta, rendition)
	if err != nil {
		return nil, err
	}

	subject, content, err := c.resolveContent(def, rendition)
	if err != nil {
		return nil, err
	}

	template, err := c.resolveTemplate(ctx, p)
	if err != nil {
		return nil, err
	}

	content = mergeContent(template, content)

	optOutActive := meta.OptOut && c.optout != nil

	env := macroEnv{
		def:       def,
		meta:      meta,
		template:  template,
		recipient: recipient,
		macros:    p.Macros,
		optOut:    optOutActive,
	}
	subject = c.expandMacros(ctx, subject, env)
	env.subject = subject
	env.isContent = true
	content = c.expandMacros(ctx, content, env)

	msg := NewMessage()
	msg.Sender = sender
	msg.Subject = subject
	msg.Body = content
	msg.Text = strings.TrimSpace(c.textPolicy.Sanitize(content))

	if rendition != nil {
		if rendition.CC != "" {
			msg.CC = rendition.CC
			msg.AddHeader("CC", rendition.CC)
		}
		if rendition.BCC != "" {
			msg.BCC = rendition.BCC
			msg.AddHeader("BCC", rendition.BCC)
		}
	}

	destination := recipient.Destination()
	if optOutActive && destination != "" {
		destination, msg.AllSuppressed = c.filterOptOuts(ctx, destination)
	}
	msg.Recipient = destination

	return msg, nil
}

// resolveRendition applies the tri-state rendition choice: explicit, none,
// or the newest ready one bound to the definition.
func (c *Composer) resolveRendition(ctx context.Context, p Params) (*Rendition, error) {
	if p.NoRendition {
		return nil, nil
	}
	if p.Rendition != nil {
		return p.Rendition, nil
	}
	renditions, err := c.store.FindRenditions(ctx, p.Definition, true)
	if err != nil {
		return nil, errors.Join(ErrStoreLookup, err)
	}
	for _, r := range renditions {
		if r.Ready() {
			return r, nil
		}
	}
	return nil, nil
}

// resolveTemplate applies the tri-state template choice: explicit, built-in
// default, or the newest ready stored one (falling back to the built-in).
func (c *Composer) resolveTemplate(ctx context.Context, p Params) (*Template, error) {
	if p.DefaultTemplate {
		return DefaultTemplate(), nil
	}
	if p.Template != nil {
		return p.Template, nil
	}
	templates, err := c.store.FindTemplates(ctx, true)
	if err != nil {
		return nil, errors.Join(ErrStoreLookup, err)
	}
	for _, t := range templates {
		if t.Ready() {
			return t, nil
		}
	}
	return DefaultTemplate(), nil
}

// resolveRecipient picks the effective recipient: the explicit one, the
// rendition's To enriched through an identity lookup, or the configured
// master address.
func (c *Composer) resolveRecipient(ctx context.Context, explicit *Recipient, meta Meta, rendition *Rendition) (*Recipient, error) {
	if explicit != nil {
		return explicit, nil
	}
	if meta.ExpectsRecipient {
		return nil, ErrMissingRecipient
	}
	if rendition != nil {
		if rendition.To == "" {
			return &Recipient{}, nil
		}
		return c.renditionRecipient(ctx, rendition.To), nil
	}
	if c.config.MasterAddress == "" {
		return nil, ErrNoMasterAddress
	}
	return Address(c.config.MasterAddress), nil
}

// renditionRecipient tries to enrich a rendition address into a full
// identity record. Lookups are skipped for comma-joined lists and fail open
// to a minimal address-only record: the enrichment is cosmetic.
func (c *Composer) renditionRecipient(ctx context.Context, to string) *Recipient {
	if strings.Contains(to, ",") {
		return Address(to)
	}
	check := optout.Normalize(to)
	if user, err := c.store.FindUserByEmail(ctx, check); err == nil && user != nil {
		return user
	}
	if group, err := c.store.FindGroupByEmail(ctx, check); err == nil && group != nil {
		return group
	}
	return Address(to)
}

// resolveContent picks the rendition override or the definition defaults,
// converting markdown rendition content to HTML.
func (c *Composer) resolveContent(def Definition, rendition *Rendition) (subject, content string, err error) {
	if rendition != nil {
		subject, content = rendition.Subject, rendition.Content
		if rendition.Markdown && content != "" {
			if content, err = c.renderMarkdown(content); err != nil {
				return "", "", err
			}
		}
	} else {
		subject, content = def.Subject(), def.HTML()
	}
	if content == "" {
		return "", "", ErrEmptyContent
	}
	return subject, content, nil
}

// filterOptOuts drops unsubscribed addresses from a comma-joined
// destination and reports whether every address was suppressed. Opt-out
// lookup failures suppress the address.
func (c *Composer) filterOptOuts(ctx context.Context, destination string) (string, bool) {
	parts := strings.Split(destination, ",")
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		unsubscribed, err := c.optout.IsUnsubscribed(ctx, optout.Normalize(part))
		if err != nil || unsubscribed {
			continue
		}
		kept = append(kept, part)
	}
	if len(kept) == 0 {
		return "", true
	}
	return strings.Join(kept, ", "), false
}
