// Package modifier collects the stat modifiers that apply to a character from equipped items
// and from the player's manual ledger.
package modifier

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/cory-johannsen/heartsheet/internal/game/character"
)

// IDGenerator produces the ID suffix for a structured modifier that has none.
type IDGenerator func() string

// Resolver derives system modifiers from equipped items.
type Resolver struct {
	newID IDGenerator
}

// NewResolver returns a Resolver that uses newID for structured modifiers that have no ID.
// A nil newID falls back to random UUIDs.
func NewResolver(newID IDGenerator) *Resolver {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Resolver{newID: newID}
}

var defaultResolver = NewResolver(nil)

// ResolveSystem returns the system modifiers affecting stat using random fallback IDs.
func ResolveSystem(c character.Character, stat string) []character.Modifier {
	return defaultResolver.ResolveSystem(c, stat)
}

// ResolveSystem returns one system modifier per equipped-item contribution to stat.
//
// Items with a structured modifier list contribute only through that list. Items without one
// are scanned for "<n> to <stat>" phrases in their feature text. Every text match from one item
// shares the ID "<itemID>-regex"; downstream de-duplication keeps only the first of them.
//
// Postcondition: every returned modifier has Source == SourceSystem and a non-nil Provenance.
func (r *Resolver) ResolveSystem(c character.Character, stat string) []character.Modifier {
	var out []character.Modifier
	var pattern *regexp.Regexp
	for _, it := range c.Equipped() {
		def := it.Item
		if def == nil {
			continue
		}
		if def.HasStructuredModifiers() {
			for i, m := range def.Modifiers {
				if m.Target != stat {
					continue
				}
				out = append(out, character.Modifier{
					ID:     r.structuredID(it.ID, m.ID),
					Name:   it.Name,
					Value:  m.Value,
					Source: character.SourceSystem,
					Target: stat,
					Provenance: &character.Provenance{
						ItemID:     it.ID,
						Kind:       character.ProvenanceStructured,
						MatchIndex: i,
					},
				})
			}
			continue
		}

		if pattern == nil {
			pattern = statPattern(stat)
		}
		for i, match := range pattern.FindAllStringSubmatch(def.FeatureText(), -1) {
			value, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			out = append(out, character.Modifier{
				ID:     it.ID + "-regex",
				Name:   it.Name,
				Value:  value,
				Source: character.SourceSystem,
				Target: stat,
				Provenance: &character.Provenance{
					ItemID:     it.ID,
					Kind:       character.ProvenanceText,
					MatchIndex: i,
				},
			})
		}
	}
	return out
}

func (r *Resolver) structuredID(itemID, modID string) string {
	if modID == "" {
		modID = r.newID()
	}
	return fmt.Sprintf("%s-%s", itemID, modID)
}

// statPattern matches "+2 to armor score" and "+2 bonus to armor score" for stat "armor_score".
func statPattern(stat string) *regexp.Regexp {
	name := strings.ReplaceAll(regexp.QuoteMeta(stat), "_", `\s+`)
	return regexp.MustCompile(`(?i)([+-]?\d+)\s+(?:bonus\s+to|to)\s+` + name)
}

// Manual returns the player's ledger entries for stat. The entries are returned unaltered.
func Manual(c character.Character, stat string) []character.Modifier {
	return c.ManualModifiers(stat)
}
