package compose

import "strings"

// Recipient is the target of a composed message: an address plus optional
// identity fields used by the #to_*# macro set. It may describe an
// individual or a group distribution address.
type Recipient struct {
	Email     string
	Name      string
	Username  string
	FirstName string
	LastName  string
	GroupName string
}

// Address promotes a bare email string to a minimal recipient record.
func Address(email string) *Recipient {
	return &Recipient{Email: email}
}

// Destination formats the recipient as a mail destination string:
// `"Name" <email>` when a display name is known, the bare address
// otherwise.
func (r *Recipient) Destination() string {
	if r == nil {
		return ""
	}
	if r.Name != "" {
		return `"` + strings.ReplaceAll(r.Name, `"`, "") + `" <` + r.Email + `>`
	}
	return r.Email
}
