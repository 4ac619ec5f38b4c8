package optout

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"regexp"
	"strings"
)

// Store manages the set of unsubscribed addresses.
type Store interface {
	// IsUnsubscribed reports whether the normalized address has opted out.
	// Callers must treat an error as unsubscribed.
	IsUnsubscribed(ctx context.Context, email string) (bool, error)

	// Add records an opt-out for the address.
	Add(ctx context.Context, email string) error

	// Remove deletes an opt-out for the address.
	Remove(ctx context.Context, email string) error
}

var (
	emailRx   = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	angleRx   = regexp.MustCompile(`^.*<(.+@.+)>.*$`)
	hasAngles = regexp.MustCompile(`<.+@.+>`)
)

// Normalize extracts the bare address from a possibly display-named
// recipient ("Jane Doe <jane@example.com>"), trims whitespace, and
// lowercases it.
func Normalize(addr string) string {
	if hasAngles.MatchString(addr) {
		addr = angleRx.ReplaceAllString(addr, "$1")
	}
	return strings.ToLower(strings.TrimSpace(addr))
}

// ValidEmail reports whether the normalized address has a plausible
// mailbox@domain.tld shape.
func ValidEmail(addr string) bool {
	return emailRx.MatchString(Normalize(addr))
}

// Token derives the verification token for an unsubscribe link: a hex
// digest binding the address to the site secret so the endpoint cannot be
// used to unsubscribe arbitrary third parties.
func Token(email, secret string) string {
	sum := sha256.Sum256([]byte(Normalize(email) + secret))
	return hex.EncodeToString(sum[:])
}

// Link builds a full unsubscribe URL for the address, appending email and
// verify parameters to the base URL with "?" or "&" as appropriate.
func Link(baseURL, email, secret string) string {
	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}
	email = Normalize(email)
	return baseURL + sep + "email=" + url.QueryEscape(email) + "&verify=" + url.QueryEscape(Token(email, secret))
}
