// Package resend delivers composed messages through the Resend API.
package resend

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/courier/pkg/compose"
)

// Sender implements dispatch.Sender using the Resend API.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a new Resend sender.
func New(cfg Config) *Sender {
	return &Sender{
		client: resend.NewClient(cfg.APIKey),
		config: cfg,
	}
}

// Send implements dispatch.Sender.
func (s *Sender) Send(ctx context.Context, msg *compose.Message) error {
	from := msg.Sender
	if from == "" {
		if s.config.SenderName != "" {
			from = fmt.Sprintf("%s <%s>", s.config.SenderName, s.config.SenderEmail)
		} else {
			from = s.config.SenderEmail
		}
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      splitAddresses(msg.Recipient),
		Subject: msg.Subject,
		Html:    msg.Body,
		Text:    msg.Text,
		Cc:      splitAddresses(msg.CC),
		Bcc:     splitAddresses(msg.BCC),
		Headers: transportHeaders(msg.Headers),
	}

	if len(msg.Attachments) > 0 {
		req.Attachments = convertAttachments(msg.Attachments)
	}

	_, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}

	return nil
}

func convertAttachments(attachments []compose.Attachment) []*resend.Attachment {
	result := make([]*resend.Attachment, len(attachments))
	for i, a := range attachments {
		result[i] = &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
		}
	}
	return result
}

// splitAddresses turns a comma-joined destination into the list form the
// API expects.
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

// transportHeaders strips the MIME envelope headers the provider manages
// itself, passing only the custom ones through.
func transportHeaders(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers))
	for name, value := range headers {
		switch strings.ToLower(name) {
		case "mime-version", "content-type", "from", "cc", "bcc", "return-path":
			continue
		}
		if value == "" {
			continue
		}
		out[name] = value
	}
	return out
}
