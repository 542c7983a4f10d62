// Package character defines the character sheet domain model consumed by the rules engine.
//
// Values in this package are owned by the persistence layer. Engine code receives them by
// value and returns new values; nothing here is mutated in place.
package character

// Stat keys used for the manual modifier ledger and for modifier targets.
const (
	StatArmorScore       = "armor_score"
	StatHitPoints        = "hit_points"
	StatStress           = "stress"
	StatDamageThresholds = "damage_thresholds"
	StatEvasion          = "evasion"
	StatHope             = "hope"
)

// DefaultStartingHP is used when a class does not declare a starting hit point value.
const DefaultStartingHP = 6

// Character represents a player character snapshot.
type Character struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	// Level is the character level, 1 through 10.
	Level       int                   `yaml:"level"`
	Class       ClassData             `yaml:"class_data"`
	Vitals      Vitals                `yaml:"vitals"`
	Thresholds  DamageThresholds      `yaml:"damage_thresholds"`
	Inventory   []InventoryItem       `yaml:"character_inventory"`
	Modifiers   map[string][]Modifier `yaml:"modifiers"`
	Experiences []Experience          `yaml:"experiences"`
	DomainCards []DomainCardRef       `yaml:"domain_cards"`
	// MarkedTraits lists trait IDs already marked by a trait-increase advancement in the current tier.
	MarkedTraits []string `yaml:"marked_traits"`
	Multiclassed bool     `yaml:"multiclassed"`
	// SubclassMastery is true once the subclass has been upgraded to its final card.
	SubclassMastery bool `yaml:"subclass_mastery"`
}

// ClassData carries the class values the engine reads.
type ClassData struct {
	Name string `yaml:"name"`
	// StartingHP is nil when the class record does not set it.
	StartingHP      *int `yaml:"starting_hp"`
	StartingEvasion int  `yaml:"starting_evasion"`
}

// BaseHP returns the class starting hit points, or DefaultStartingHP when unset.
func (c ClassData) BaseHP() int {
	if c.StartingHP == nil {
		return DefaultStartingHP
	}
	return *c.StartingHP
}

// Vitals holds current and maximum values for every capacity-style vital.
//
// Invariant: 0 <= current <= max for each pair; ArmorSlots <= ArmorScore.
type Vitals struct {
	HitPointsCurrent int `yaml:"hit_points_current"`
	HitPointsMax     int `yaml:"hit_points_max"`
	ArmorSlots       int `yaml:"armor_slots"`
	ArmorScore       int `yaml:"armor_score"`
	StressCurrent    int `yaml:"stress_current"`
	StressMax        int `yaml:"stress_max"`
	HopeCurrent      int `yaml:"hope_current"`
	HopeMax          int `yaml:"hope_max"`
}

// DamageThresholds are the damage totals at which a hit escalates in severity.
//
// Invariant: Minor >= 1, Major >= Minor, Severe > Major.
type DamageThresholds struct {
	Minor  int `yaml:"minor"`
	Major  int `yaml:"major"`
	Severe int `yaml:"severe"`
}

// UnarmoredThresholds returns the baseline thresholds for a character wearing no armor.
//
// Postcondition: Minor == 1, Major == level, Severe == 2*level.
func UnarmoredThresholds(level int) DamageThresholds {
	return DamageThresholds{Minor: 1, Major: level, Severe: level * 2}
}

// Experience is a named bonus the character can add to relevant rolls.
type Experience struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
}

// DomainCardRef is a domain card held by the character.
type DomainCardRef struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Domain string `yaml:"domain"`
	Level  int    `yaml:"level"`
}

// CardByID returns the held domain card with the given ID.
func (c Character) CardByID(id string) (DomainCardRef, bool) {
	for _, card := range c.DomainCards {
		if card.ID == id {
			return card, true
		}
	}
	return DomainCardRef{}, false
}

// ManualModifiers returns the user-entered modifiers for stat, or an empty slice.
//
// Postcondition: the returned slice is a copy; callers may modify it freely.
func (c Character) ManualModifiers(stat string) []Modifier {
	mods := c.Modifiers[stat]
	out := make([]Modifier, len(mods))
	copy(out, mods)
	return out
}

// Equipped returns the inventory entries occupying an equipped slot, in inventory order.
func (c Character) Equipped() []InventoryItem {
	var out []InventoryItem
	for _, it := range c.Inventory {
		if it.Location.IsEquipped() {
			out = append(out, it)
		}
	}
	return out
}

// EquippedArmor returns the inventory entries in the armor slot, in inventory order.
func (c Character) EquippedArmor() []InventoryItem {
	var out []InventoryItem
	for _, it := range c.Inventory {
		if it.Location == LocationArmor {
			out = append(out, it)
		}
	}
	return out
}
