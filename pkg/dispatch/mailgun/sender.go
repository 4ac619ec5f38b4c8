// Package mailgun delivers composed messages through the Mailgun API.
package mailgun

import (
	"context"
	"fmt"
	"strings"

	mg "github.com/mailgun/mailgun-go/v4"

	"github.com/dmitrymomot/courier/pkg/compose"
)

// Config holds Mailgun transport configuration.
// Embed this in your app config for env parsing.
type Config struct {
	Domain      string `env:"MAILGUN_DOMAIN"`
	APIKey      string `env:"MAILGUN_API_KEY"`
	SenderEmail string `env:"MAILGUN_FROM_EMAIL"`
}

// Sender implements dispatch.Sender using the Mailgun API.
type Sender struct {
	client *mg.MailgunImpl
	config Config
}

// New creates a new Mailgun sender.
func New(cfg Config) *Sender {
	return &Sender{
		client: mg.NewMailgun(cfg.Domain, cfg.APIKey),
		config: cfg,
	}
}

// Send implements dispatch.Sender.
func (s *Sender) Send(ctx context.Context, msg *compose.Message) error {
	from := msg.Sender
	if from == "" {
		from = s.config.SenderEmail
	}

	m := s.client.NewMessage(from, msg.Subject, msg.Text, splitAddresses(msg.Recipient)...)
	if msg.Body != "" {
		m.SetHtml(msg.Body)
	}
	for _, cc := range splitAddresses(msg.CC) {
		m.AddCC(cc)
	}
	for _, bcc := range splitAddresses(msg.BCC) {
		m.AddBCC(bcc)
	}
	for name, value := range msg.Headers {
		switch strings.ToLower(name) {
		case "mime-version", "content-type", "cc", "bcc", "from", "return-path":
			continue
		}
		if value == "" {
			continue
		}
		m.AddHeader(name, value)
	}
	for _, a := range msg.Attachments {
		m.AddBufferAttachment(a.Filename, a.Content)
	}

	if _, _, err := s.client.Send(ctx, m); err != nil {
		return fmt.Errorf("mailgun: failed to send email: %w", err)
	}

	return nil
}

func splitAddresses(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	addrs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			addrs = append(addrs, p)
		}
	}
	return addrs
}
