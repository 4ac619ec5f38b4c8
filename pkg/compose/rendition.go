package compose

import (
	"time"

	"github.com/google/uuid"
)

// Rendition is an optional live override of a definition's recipient,
// subject, and content, managed outside the composition pipeline and
// read-only here. A rendition whose definition has several is picked
// newest-first; the first ready one wins.
type Rendition struct {
	CreatedAt    time.Time
	DefinitionID string
	Name         string
	From         string
	To           string
	CC           string
	BCC          string
	Subject      string
	Content      string
	ID           uuid.UUID
	Enabled      bool
	Markdown     bool
}

// Ready reports whether the rendition may be used for sending.
func (r *Rendition) Ready() bool {
	return r.Enabled
}
