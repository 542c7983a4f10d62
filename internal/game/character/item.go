package character

import (
	"strconv"
	"strings"
)

// Location is the slot tag on an inventory entry.
type Location string

const (
	LocationPrimary   Location = "equipped_primary"
	LocationSecondary Location = "equipped_secondary"
	LocationArmor     Location = "equipped_armor"
	// LocationBackpack is one unequipped location; any tag not listed above is unequipped.
	LocationBackpack Location = "backpack"
)

// IsEquipped reports whether l is one of the three equipped slots.
func (l Location) IsEquipped() bool {
	switch l {
	case LocationPrimary, LocationSecondary, LocationArmor:
		return true
	}
	return false
}

// InventoryItem is one entry in a character's inventory.
type InventoryItem struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Location Location `yaml:"location"`
	// ItemID references a catalog definition when Item is not embedded.
	ItemID string `yaml:"item_id,omitempty"`
	// Item is the library definition; nil when the catalog lookup failed.
	Item *ItemDef `yaml:"item"`
}

// ItemModifier is a structured stat adjustment declared on an item definition.
type ItemModifier struct {
	ID     string `yaml:"id"`
	Target string `yaml:"target"`
	Value  int    `yaml:"value"`
}

// ItemDef is the catalog definition of an item.
type ItemDef struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	// BaseScore is the armor score as stored by the catalog, usually a decimal string.
	BaseScore string `yaml:"base_score"`
	// BaseThresholds is "<major>/<severe>" for armor.
	BaseThresholds string `yaml:"base_thresholds"`
	// Modifiers is nil when the item predates structured modifiers.
	Modifiers   []ItemModifier `yaml:"modifiers"`
	Feature     string         `yaml:"feature"`
	Feat        string         `yaml:"feat"`
	Description string         `yaml:"description"`
}

// Score returns BaseScore as an integer, or 0 when it is missing or not an integer.
func (d *ItemDef) Score() int {
	if d == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(d.BaseScore))
	if err != nil {
		return 0
	}
	return n
}

// Thresholds parses BaseThresholds.
//
// Postcondition: ok is true iff the string has exactly the form "<int>/<int>",
// allowing whitespace around each number.
func (d *ItemDef) Thresholds() (major, severe int, ok bool) {
	if d == nil {
		return 0, 0, false
	}
	parts := strings.Split(d.BaseThresholds, "/")
	if len(parts) != 2 {
		return 0, 0, false
	}
	major, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	severe, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return major, severe, true
}

// HasStructuredModifiers reports whether the definition carries a structured modifier list.
// An empty but non-nil list still counts and suppresses text scanning.
func (d *ItemDef) HasStructuredModifiers() bool {
	return d != nil && d.Modifiers != nil
}

// FeatureText returns the free-text fields scanned for legacy modifiers, joined by newlines.
func (d *ItemDef) FeatureText() string {
	if d == nil {
		return ""
	}
	var parts []string
	for _, s := range []string{d.Feature, d.Feat} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}
