package ruleset

import "github.com/cory-johannsen/heartsheet/internal/game/character"

// The functions below evaluate against Default(). Code that supports homebrew rules should
// hold a *Rules and call its methods instead.

// TierOf returns the tier of level under the default rules.
func TierOf(level int) (int, error) { return Default().TierOf(level) }

// TierAchievementsFor returns the tier achievements for level under the default rules.
func TierAchievementsFor(level int) TierAchievements { return Default().TierAchievements(level) }

// AdvancementsForTier returns the default catalog entries available at tier.
func AdvancementsForTier(tier int) []Advancement { return Default().AdvancementsForTier(tier) }

// AdvancementSlotCost returns the default slot cost of id.
func AdvancementSlotCost(id string) int { return Default().AdvancementSlotCost(id) }

// ValidateAdvancementSlotUsage checks selected against the default slot budget.
func ValidateAdvancementSlotUsage(selected []string) SlotUsage {
	return Default().ValidateAdvancementSlotUsage(selected)
}

// ProficiencyIncrease returns the proficiency gained at level under the default rules.
func ProficiencyIncrease(level int, selected []string) int {
	return Default().ProficiencyIncrease(level, selected)
}

// GetLevelUpConfig returns the default level-up configuration for level.
func GetLevelUpConfig(level int) (LevelUpConfig, error) { return Default().LevelUpConfig(level) }

// DomainsForClass returns the default domains of className.
func DomainsForClass(className string) []string { return Default().ClassDomains(className) }

// AllClassNames returns the default class names in stable order.
func AllClassNames() []string { return Default().AllClassNames() }

// StartingThresholds returns the default unarmored thresholds for a new character of level.
func StartingThresholds(level int) character.DamageThresholds {
	return ThresholdsForLevel(level, nil)
}
