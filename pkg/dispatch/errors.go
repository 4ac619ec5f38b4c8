package dispatch

import "errors"

var (
	// ErrInvalidSender indicates the sender is not a plausible address.
	ErrInvalidSender = errors.New("dispatch: invalid sender address")

	// ErrInvalidRecipient indicates the recipient is not a plausible address.
	ErrInvalidRecipient = errors.New("dispatch: invalid recipient address")

	// ErrEmptySubject indicates the message has no subject.
	ErrEmptySubject = errors.New("dispatch: empty subject")

	// ErrSubjectTooLong indicates the subject exceeds 255 characters.
	ErrSubjectTooLong = errors.New("dispatch: subject exceeds 255 characters")

	// ErrEmptyBody indicates the message has no content.
	ErrEmptyBody = errors.New("dispatch: empty message body")

	// ErrSendFailed indicates the transport rejected the message.
	ErrSendFailed = errors.New("dispatch: failed to send message")
)
