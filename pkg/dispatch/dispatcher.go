package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/courier/pkg/compose"
)

// addressRx is the deliberately loose shape check applied to sender and
// recipient values: anything-at-anything. Destination strings may carry
// display names and comma-joined lists, so a strict mailbox grammar would
// reject valid values.
var addressRx = regexp.MustCompile(`^.+@.+$`)

// defaultSubjectPrefix marks redirected subjects in testing mode.
const defaultSubjectPrefix = "*Test* "

// Config holds send gate settings.
type Config struct {
	// TestingMode redirects or suppresses all delivery.
	TestingMode bool `yaml:"testing_mode"`

	// TestingAddress receives redirected mail in testing mode. When empty,
	// testing mode suppresses delivery entirely.
	TestingAddress string `yaml:"testing_address"`

	// SubjectPrefix is prepended to redirected subjects.
	// Default: "*Test* ".
	SubjectPrefix string `yaml:"subject_prefix"`
}

// Dispatcher is the send gate: it validates composed messages, applies
// testing-mode redirection, and invokes the transport. Transport failures
// are reported once; retry policy belongs to the caller.
type Dispatcher struct {
	sender Sender
	log    *slog.Logger
	config Config
}

// New creates a dispatcher over the given transport.
func New(sender Sender, cfg Config, log *slog.Logger) *Dispatcher {
	if cfg.SubjectPrefix == "" {
		cfg.SubjectPrefix = defaultSubjectPrefix
	}
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{sender: sender, config: cfg, log: log}
}

// Validate checks the message against the send gate rules. Recipient
// validation is skipped when every recipient was suppressed by opt-out
// filtering.
func (d *Dispatcher) Validate(msg *compose.Message) error {
	if !addressRx.MatchString(msg.Sender) {
		return ErrInvalidSender
	}
	if !msg.AllSuppressed && !addressRx.MatchString(msg.Recipient) {
		return ErrInvalidRecipient
	}
	if msg.Subject == "" {
		return ErrEmptySubject
	}
	if len(msg.Subject) > 255 {
		return ErrSubjectTooLong
	}
	if msg.Body == "" {
		return ErrEmptyBody
	}
	return nil
}

// Send validates the message and delivers it through the transport. A nil
// return means success, including the trivial successes: all recipients
// suppressed, or testing mode with no testing address configured.
func (d *Dispatcher) Send(ctx context.Context, msg *compose.Message) error {
	if err := d.Validate(msg); err != nil {
		return err
	}

	if msg.AllSuppressed {
		d.log.InfoContext(ctx, "all recipients suppressed by opt-out, skipping send",
			slog.String("subject", msg.Subject))
		return nil
	}

	final := msg
	if d.config.TestingMode {
		if d.config.TestingAddress == "" {
			d.log.InfoContext(ctx, "testing mode with no testing address, skipping send",
				slog.String("to", msg.Recipient),
				slog.String("subject", msg.Subject))
			return nil
		}
		final = redirectForTesting(msg, d.config)
	}

	final.AddHeader("From", final.Sender)
	final.AddHeader("Return-Path", final.Sender)
	final.AddHeader("Reply-To", final.Sender)
	final.AddHeader("X-Sender", final.Sender)

	if err := d.sender.Send(ctx, final); err != nil {
		d.log.ErrorContext(ctx, "transport rejected message",
			slog.String("to", final.Recipient),
			slog.String("subject", final.Subject),
			slog.Any("error", err))
		return errors.Join(ErrSendFailed, err)
	}

	d.log.InfoContext(ctx, "message sent",
		slog.String("to", final.Recipient),
		slog.String("subject", final.Subject))
	return nil
}

// SendBatch delivers independent messages concurrently, at most limit at a
// time (or unbounded when limit <= 0), returning the first error
// encountered. Each message still passes through the full send gate.
func (d *Dispatcher) SendBatch(ctx context.Context, msgs []*compose.Message, limit int) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, msg := range msgs {
		g.Go(func() error {
			return d.Send(ctx, msg)
		})
	}
	return g.Wait()
}

// redirectForTesting clones the message with delivery pointed at the
// testing address. The original to/cc/bcc are preserved in diagnostic
// headers and the live CC/BCC headers blanked so no real recipient is
// copied.
func redirectForTesting(msg *compose.Message, cfg Config) *compose.Message {
	clone := *msg
	clone.Headers = make(map[string]string, len(msg.Headers)+3)
	for name, value := range msg.Headers {
		clone.Headers[name] = value
	}

	clone.Headers["X-Testing-Original-To"] = msg.Recipient
	for name, value := range msg.Headers {
		switch strings.ToLower(name) {
		case "cc":
			clone.Headers["X-Testing-Original-Cc"] = value
			clone.Headers[name] = ""
		case "bcc":
			clone.Headers["X-Testing-Original-Bcc"] = value
			clone.Headers[name] = ""
		}
	}

	clone.Recipient = cfg.TestingAddress
	clone.CC = ""
	clone.BCC = ""
	clone.Subject = cfg.SubjectPrefix + msg.Subject
	return &clone
}
