package dispatch

import (
	"context"

	"github.com/dmitrymomot/courier/pkg/compose"
)

// Sender is the minimal interface outbound transports implement. It
// receives a validated message whose Recipient, Subject, and Headers have
// already had any testing-mode redirection applied.
type Sender interface {
	Send(ctx context.Context, msg *compose.Message) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, msg *compose.Message) error

// Send implements Sender.
func (f SenderFunc) Send(ctx context.Context, msg *compose.Message) error {
	return f(ctx, msg)
}
