package character

import "fmt"

// ModifierSource records whether a modifier was derived automatically or entered by the player.
type ModifierSource string

const (
	// SourceSystem marks a modifier derived from equipped items.
	SourceSystem ModifierSource = "system"
	// SourceUser marks a modifier entered manually by the player.
	SourceUser ModifierSource = "user"
)

// Modifier is a signed adjustment to a single stat.
//
// ID must be unique per character and stat: aggregation de-duplicates by ID.
type Modifier struct {
	ID     string         `yaml:"id"`
	Name   string         `yaml:"name"`
	Value  int            `yaml:"value"`
	Source ModifierSource `yaml:"source"`
	Target string         `yaml:"target,omitempty"`
	// Provenance is set on system modifiers only. It is never persisted.
	Provenance *Provenance `yaml:"-"`
}

// ProvenanceKind distinguishes structured item modifiers from ones scraped out of item text.
type ProvenanceKind string

const (
	ProvenanceStructured ProvenanceKind = "structured"
	ProvenanceText       ProvenanceKind = "text"
)

// Provenance identifies exactly where a system modifier came from.
type Provenance struct {
	ItemID     string
	Kind       ProvenanceKind
	MatchIndex int
}

// Key returns an identifier that is unique per item, kind, and match.
//
// The public Modifier.ID for text matches is not unique; Key is.
func (p Provenance) Key() string {
	return fmt.Sprintf("%s/%s/%d", p.ItemID, p.Kind, p.MatchIndex)
}
