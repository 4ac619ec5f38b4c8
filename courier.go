package courier

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/courier/pkg/compose"
	"github.com/dmitrymomot/courier/pkg/dispatch"
	"github.com/dmitrymomot/courier/pkg/store"
)

// Type aliases - public API
type (
	// Definition is a registered message type.
	Definition = compose.Definition

	// Meta describes a definition.
	Meta = compose.Meta

	// Message is a composed, ready-to-send message.
	Message = compose.Message

	// Params are the inputs to one composition.
	Params = compose.Params

	// Recipient is the target of a composed message.
	Recipient = compose.Recipient

	// Rendition is a live override of a definition's content.
	Rendition = compose.Rendition

	// Template is a shared visual wrapper.
	Template = compose.Template

	// EntityStore queries renditions, templates, and identities.
	EntityStore = compose.EntityStore

	// OptOutStore answers unsubscribe lookups.
	OptOutStore = compose.OptOutStore

	// IdentityProvider reports the acting user for current-user macros.
	IdentityProvider = compose.IdentityProvider

	// Sender is the delivery transport.
	Sender = dispatch.Sender

	// SenderFunc adapts a function to the Sender interface.
	SenderFunc = dispatch.SenderFunc
)

// Config holds the full courier configuration: composition settings plus
// send gate settings. Load it from YAML or embed it in your app config.
type Config struct {
	Compose  compose.Config  `yaml:"compose"`
	Dispatch dispatch.Config `yaml:"dispatch"`
}

// Client ties the definition registry, the composer, and the send gate
// together behind a single Send call. Safe for concurrent use.
type Client struct {
	registry   *compose.Registry
	composer   *compose.Composer
	dispatcher *dispatch.Dispatcher
	log        *slog.Logger
}

// Option configures the client.
type Option func(*clientOptions)

type clientOptions struct {
	store    compose.EntityStore
	optout   compose.OptOutStore
	identity compose.IdentityProvider
	log      *slog.Logger
	now      func() time.Time
	loc      *time.Location
}

// WithStore sets the rendition/template/identity backend.
// Defaults to an empty in-memory store.
func WithStore(s compose.EntityStore) Option {
	return func(o *clientOptions) {
		o.store = s
	}
}

// WithOptOuts enables opt-out filtering for definitions that request it.
func WithOptOuts(s compose.OptOutStore) Option {
	return func(o *clientOptions) {
		o.optout = s
	}
}

// WithIdentityProvider enables the current-user macro set.
func WithIdentityProvider(p compose.IdentityProvider) Option {
	return func(o *clientOptions) {
		o.identity = p
	}
}

// WithLogger sets the client logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *clientOptions) {
		o.log = l
	}
}

// WithClock overrides the time source for date and time macros.
func WithClock(now func() time.Time) Option {
	return func(o *clientOptions) {
		o.now = now
	}
}

// WithLocation sets the zone for date and time macros.
func WithLocation(loc *time.Location) Option {
	return func(o *clientOptions) {
		o.loc = loc
	}
}

// New creates a client over the given transport.
//
// Example:
//
//	client := courier.New(resend.New(resendCfg), cfg,
//	    courier.WithStore(store.NewPostgres(pool)),
//	    courier.WithOptOuts(optout.NewRedis(rdb)),
//	)
//	client.MustRegister("welcome", definitions.Welcome{})
//
//	msg, err := client.Send(ctx, courier.Params{
//	    Definition: "welcome",
//	    Recipient:  courier.Address("jamie@example.com"),
//	})
func New(sender dispatch.Sender, cfg Config, opts ...Option) *Client {
	o := &clientOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.store == nil {
		o.store = store.NewMemory()
	}
	if o.log == nil {
		o.log = slog.Default()
	}

	var composeOpts []compose.Option
	if o.optout != nil {
		composeOpts = append(composeOpts, compose.WithOptOutStore(o.optout))
	}
	if o.identity != nil {
		composeOpts = append(composeOpts, compose.WithIdentityProvider(o.identity))
	}
	if o.now != nil {
		composeOpts = append(composeOpts, compose.WithClock(o.now))
	}
	if o.loc != nil {
		composeOpts = append(composeOpts, compose.WithLocation(o.loc))
	}

	registry := compose.NewRegistry()
	return &Client{
		registry:   registry,
		composer:   compose.NewComposer(registry, o.store, cfg.Compose, composeOpts...),
		dispatcher: dispatch.New(sender, cfg.Dispatch, o.log),
		log:        o.log,
	}
}

// Register adds a definition under the given id.
func (c *Client) Register(id string, def Definition) error {
	return c.registry.Register(id, def)
}

// MustRegister adds a definition or panics on a duplicate id.
func (c *Client) MustRegister(id string, def Definition) {
	c.registry.MustRegister(id, def)
}

// Definitions returns the registered definition ids.
func (c *Client) Definitions() []string {
	return c.registry.IDs()
}

// Compose resolves a definition into a message without sending it.
func (c *Client) Compose(ctx context.Context, p Params) (*Message, error) {
	return c.composer.Compose(ctx, p)
}

// Dispatch validates a previously composed message and delivers it.
func (c *Client) Dispatch(ctx context.Context, msg *Message) error {
	return c.dispatcher.Send(ctx, msg)
}

// Send composes and delivers in one step, returning the composed message
// alongside the delivery result. The message is returned even when delivery
// fails, for logging and retry.
func (c *Client) Send(ctx context.Context, p Params) (*Message, error) {
	msg, err := c.composer.Compose(ctx, p)
	if err != nil {
		return nil, err
	}
	return msg, c.dispatcher.Send(ctx, msg)
}

// Address promotes a bare email string to a minimal recipient record.
func Address(email string) *Recipient {
	return compose.Address(email)
}
