// Package card reads domain card fields from raw JSON records. Records come from more than one
// source: some store a property at the top level, others nest it under "data". A nested value
// takes precedence, and a null counts as absent.
package card

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Defaults applied when a field is absent from both locations.
const (
	DefaultLevel      = 1
	DefaultName       = "Unknown Card"
	DefaultRecallCost = 0
)

// Card is a read-only view over one raw card record.
type Card struct {
	raw gjson.Result
}

// Parse wraps a single JSON object.
//
// Postcondition: Returns an error if raw is not valid JSON or is not an object.
func Parse(raw []byte) (Card, error) {
	if !gjson.ValidBytes(raw) {
		return Card{}, fmt.Errorf("card: invalid JSON")
	}
	r := gjson.ParseBytes(raw)
	if !r.IsObject() {
		return Card{}, fmt.Errorf("card: expected object, got %s", r.Type)
	}
	return Card{raw: r}, nil
}

// ParseList accepts a JSON array of card objects or a single object. Non-object array entries
// are skipped.
func ParseList(raw []byte) ([]Card, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("card: invalid JSON")
	}
	r := gjson.ParseBytes(raw)
	if r.IsObject() {
		return []Card{{raw: r}}, nil
	}
	if !r.IsArray() {
		return nil, fmt.Errorf("card: expected object or array, got %s", r.Type)
	}
	var out []Card
	r.ForEach(func(_, v gjson.Result) bool {
		if v.IsObject() {
			out = append(out, Card{raw: v})
		}
		return true
	})
	return out, nil
}

// field returns data.<name> if present, else <name>.
func (c Card) field(name string) (gjson.Result, bool) {
	for _, path := range []string{"data." + name, name} {
		v := c.raw.Get(path)
		if v.Exists() && v.Type != gjson.Null {
			return v, true
		}
	}
	return gjson.Result{}, false
}

func (c Card) str(name, fallback string) string {
	if v, ok := c.field(name); ok {
		return v.String()
	}
	return fallback
}

func (c Card) num(name string, fallback int) int {
	if v, ok := c.field(name); ok {
		return int(v.Int())
	}
	return fallback
}

// ID returns the card's id, or "" when absent.
func (c Card) ID() string { return c.str("id", "") }

// Level returns the card level, default 1.
func (c Card) Level() int { return c.num("level", DefaultLevel) }

// Name returns the card name, default "Unknown Card".
func (c Card) Name() string { return c.str("name", DefaultName) }

// Description returns the card text, default "".
func (c Card) Description() string { return c.str("description", "") }

// Type returns the card type, default "".
func (c Card) Type() string { return c.str("type", "") }

// Domain returns the card's domain, default "".
func (c Card) Domain() string { return c.str("domain", "") }

// RecallCost returns the stress cost to recall the card from the vault, default 0.
func (c Card) RecallCost() int { return c.num("recall_cost", DefaultRecallCost) }

// DomainMatches reports whether the card belongs to domain, ignoring case and surrounding
// whitespace.
func (c Card) DomainMatches(domain string) bool {
	return normalize(c.Domain()) == normalize(domain)
}

// AvailableAtLevel reports whether a character of characterLevel may take the card.
func (c Card) AvailableAtLevel(characterLevel int) bool {
	return c.Level() <= characterLevel
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Summary is the normalized form of a card.
type Summary struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Level       int    `json:"level" yaml:"level"`
	Domain      string `json:"domain" yaml:"domain"`
	Type        string `json:"type" yaml:"type"`
	RecallCost  int    `json:"recall_cost" yaml:"recall_cost"`
	Description string `json:"description" yaml:"description"`
}

// Summarize reads every field of c with defaults applied.
func (c Card) Summarize() Summary {
	return Summary{
		ID:          c.ID(),
		Name:        c.Name(),
		Level:       c.Level(),
		Domain:      c.Domain(),
		Type:        c.Type(),
		RecallCost:  c.RecallCost(),
		Description: c.Description(),
	}
}
