package ruleset

import (
	"fmt"

	"github.com/cory-johannsen/heartsheet/internal/game/character"
)

// LevelUpConfig is the read-only view of the rules for a target level.
type LevelUpConfig struct {
	Level                 int
	Tier                  int
	TierAchievements      TierAchievements
	AdvancementsAvailable []Advancement
	MaxDomainCardLevel    int
}

// LevelUpConfig aggregates the rules that apply when reaching level.
//
// Postcondition: Returns ErrLevelOutOfRange (wrapped) for levels outside the tiers.
func (r *Rules) LevelUpConfig(level int) (LevelUpConfig, error) {
	tier, err := r.TierOf(level)
	if err != nil {
		return LevelUpConfig{}, err
	}
	return LevelUpConfig{
		Level:                 level,
		Tier:                  tier,
		TierAchievements:      r.TierAchievements(level),
		AdvancementsAvailable: r.AdvancementsForTier(tier),
		MaxDomainCardLevel:    MaxDomainCardLevel(level),
	}, nil
}

// MaxDomainCardLevel returns the highest domain card level a character of characterLevel may take.
func MaxDomainCardLevel(characterLevel int) int {
	return characterLevel
}

// NewExperience returns the experience granted by a tier achievement at level.
func NewExperience(level, value int) character.Experience {
	return character.Experience{Name: fmt.Sprintf("Experience (Level %d)", level), Value: value}
}

// AddExperienceAtLevelUp returns a new list with the level's experience appended.
// The existing entries keep their order and the input slice is not modified.
func AddExperienceAtLevelUp(existing []character.Experience, level, value int) []character.Experience {
	out := make([]character.Experience, 0, len(existing)+1)
	out = append(out, existing...)
	return append(out, NewExperience(level, value))
}

// ThresholdsAfterLevelUp raises every threshold by exactly one.
func ThresholdsAfterLevelUp(current character.DamageThresholds) character.DamageThresholds {
	return character.DamageThresholds{
		Minor:  current.Minor + 1,
		Major:  current.Major + 1,
		Severe: current.Severe + 1,
	}
}

// ThresholdsForLevel previews thresholds at level for an optional armor definition, using the
// same override rule as stats.DamageThresholds without modifiers.
func ThresholdsForLevel(level int, armor *character.ItemDef) character.DamageThresholds {
	t := character.UnarmoredThresholds(level)
	if major, severe, ok := armor.Thresholds(); ok {
		t.Major = major + level
		t.Severe = severe + level
	}
	return t
}

// ValidateThresholdTriple reports whether t satisfies minor >= 1, major >= minor, severe > major.
func ValidateThresholdTriple(t character.DamageThresholds) bool {
	return t.Minor >= 1 && t.Major >= t.Minor && t.Severe > t.Major
}
