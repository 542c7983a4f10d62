package ruleset

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownAdvancement is returned when an advancement ID is missing from the catalog.
var ErrUnknownAdvancement = errors.New("unknown advancement")

// Advancement IDs referenced directly by engine code.
const (
	AdvIncreaseTraits      = "increase_traits"
	AdvAddHP               = "add_hp"
	AdvAddStress           = "add_stress"
	AdvIncreaseExperience  = "increase_experience"
	AdvDomainCard          = "domain_card"
	AdvIncreaseEvasion     = "increase_evasion"
	AdvSubclassUpgrade     = "subclass_upgrade"
	AdvIncreaseProficiency = "increase_proficiency"
	AdvMulticlass          = "multiclass"
)

// defaultSlotCost applies to advancement IDs the catalog does not list.
const defaultSlotCost = 1

// Advancement returns the catalog entry for id.
//
// Postcondition: Returns ErrUnknownAdvancement (wrapped) when id is not in the catalog.
func (r *Rules) Advancement(id string) (Advancement, error) {
	a, ok := r.advancementByID[id]
	if !ok {
		return Advancement{}, fmt.Errorf("advancement %q: %w", id, ErrUnknownAdvancement)
	}
	return a, nil
}

// AdvancementsForTier returns the catalog entries available to a character of tier, in
// catalog order.
func (r *Rules) AdvancementsForTier(tier int) []Advancement {
	var out []Advancement
	for _, a := range r.Advancements {
		if IsAdvancementAvailable(a.MinTier, tier) {
			out = append(out, a)
		}
	}
	return out
}

// AdvancementSlotCost returns how many level-up slots id consumes.
// IDs missing from the catalog cost one slot.
func (r *Rules) AdvancementSlotCost(id string) int {
	if a, ok := r.advancementByID[id]; ok {
		return a.SlotCost
	}
	return defaultSlotCost
}

// IsAdvancementAvailable reports whether an advancement unlocked at advancementTier can be
// taken by a character of characterTier.
func IsAdvancementAvailable(advancementTier, characterTier int) bool {
	return advancementTier <= characterTier
}

// SlotUsage is the result of ValidateAdvancementSlotUsage.
type SlotUsage struct {
	Valid bool
	Total int
}

// ValidateAdvancementSlotUsage sums the slot cost of selected.
//
// Postcondition: Valid is true iff Total equals the slot budget exactly.
func (r *Rules) ValidateAdvancementSlotUsage(selected []string) SlotUsage {
	total := 0
	for _, id := range selected {
		total += r.AdvancementSlotCost(id)
	}
	return SlotUsage{Valid: total == r.SlotBudget, Total: total}
}

// ProficiencyIncrease returns the proficiency gained at level: the tier achievement bonus
// plus one if increase_proficiency was selected. The two stack.
func (r *Rules) ProficiencyIncrease(level int, selected []string) int {
	n := 0
	if r.IsTierAchievementLevel(level) {
		n += r.Achievements.ProficiencyIncrease
	}
	if slices.Contains(selected, AdvIncreaseProficiency) {
		n++
	}
	return n
}
