package ruleset

import (
	"errors"
	"fmt"
	"slices"
)

// ErrLevelOutOfRange is returned when a level falls outside the rule set's tiers.
var ErrLevelOutOfRange = errors.New("level out of range")

// TierOf returns the tier containing level.
//
// Postcondition: Returns ErrLevelOutOfRange (wrapped) for levels outside 1..MaxLevel.
// Levels are never clamped.
func (r *Rules) TierOf(level int) (int, error) {
	for _, t := range r.Tiers {
		if level >= t.MinLevel && level <= t.MaxLevel {
			return t.Tier, nil
		}
	}
	return 0, fmt.Errorf("tier for level %d: %w (valid 1-%d)", level, ErrLevelOutOfRange, r.MaxLevel)
}

// TierAchievements describes the automatic benefits granted on reaching a level.
type TierAchievements struct {
	// NewExperienceValue is nil when the level grants no new experience.
	NewExperienceValue      *int
	ProficiencyIncrease     int
	ShouldClearMarkedTraits bool
}

// IsTierAchievementLevel reports whether reaching level triggers tier achievements.
func (r *Rules) IsTierAchievementLevel(level int) bool {
	return slices.Contains(r.Achievements.TriggerLevels, level)
}

// TierAchievements returns the benefits for reaching level. Non-trigger levels yield the zero
// value: no experience, no proficiency, marked traits kept.
func (r *Rules) TierAchievements(level int) TierAchievements {
	if !r.IsTierAchievementLevel(level) {
		return TierAchievements{}
	}
	value := r.Achievements.ExperienceValue
	return TierAchievements{
		NewExperienceValue:      &value,
		ProficiencyIncrease:     r.Achievements.ProficiencyIncrease,
		ShouldClearMarkedTraits: !slices.Contains(r.Achievements.KeepMarkedTraitsAt, level),
	}
}
