package optout

import "errors"

var (
	// ErrInvalidEmail indicates the address does not look like an email.
	ErrInvalidEmail = errors.New("optout: invalid email address")

	// ErrStoreUnavailable indicates the backing store could not be reached.
	ErrStoreUnavailable = errors.New("optout: store unavailable")
)
