// Package stats derives a character's combat statistics from base values, equipment, and
// modifiers. Every function is pure; inputs are never modified.
package stats

import (
	"github.com/cory-johannsen/heartsheet/internal/game/character"
	"github.com/cory-johannsen/heartsheet/internal/game/modifier"
	"github.com/cory-johannsen/heartsheet/internal/game/vital"
)

const (
	// ArmorScoreCap is the hard ceiling on a derived armor score.
	ArmorScoreCap = 12
	// BaseStress is the stress capacity every character starts from.
	BaseStress = 6
)

// ArmorScore sums the base score of each armor item, the system-sourced entries of systemMods,
// and every entry of userMods.
//
// Postcondition: result <= ArmorScoreCap. Negative totals are returned as is.
func ArmorScore(armor []character.InventoryItem, systemMods, userMods []character.Modifier) int {
	total := 0
	for _, it := range armor {
		total += it.Item.Score()
	}
	total += modifier.SumSource(systemMods, character.SourceSystem)
	total += modifier.Sum(userMods)
	return min(total, ArmorScoreCap)
}

// DamageThresholds computes thresholds for level. The first armor item with a well-formed
// "<major>/<severe>" string replaces the unarmored major and severe values with base+level.
// The sum of thresholdMods is then added to major and severe; minor never changes.
func DamageThresholds(level int, armor []character.InventoryItem, thresholdMods []character.Modifier) character.DamageThresholds {
	t := character.UnarmoredThresholds(level)
	for _, it := range armor {
		if major, severe, ok := it.Item.Thresholds(); ok {
			t.Major = major + level
			t.Severe = severe + level
			break
		}
	}
	bonus := modifier.Sum(thresholdMods)
	t.Major += bonus
	t.Severe += bonus
	return t
}

// MaxHP returns the class base plus system-sourced and user modifiers.
//
// Postcondition: result >= 1.
func MaxHP(classBaseHP int, systemMods, userMods []character.Modifier) int {
	total := classBaseHP + modifier.SumSource(systemMods, character.SourceSystem) + modifier.Sum(userMods)
	return max(total, 1)
}

// MaxStress returns BaseStress plus system-sourced and user modifiers.
//
// Postcondition: result >= 1.
func MaxStress(systemMods, userMods []character.Modifier) int {
	total := BaseStress + modifier.SumSource(systemMods, character.SourceSystem) + modifier.Sum(userMods)
	return max(total, 1)
}

// Result is the output of Derive.
type Result struct {
	Vitals     character.Vitals
	Thresholds character.DamageThresholds
}

// Derive recomputes capacities for c. armorMods, hpMods, and stressMods are the system
// modifiers for each stat; the matching user modifiers come from c's manual ledger.
// thresholdMods is combined with the manual damage_thresholds ledger.
//
// Current values are lowered to fit a reduced capacity but are never raised when a capacity
// grows. Hope is carried over unchanged.
func Derive(c character.Character, armorMods, hpMods, stressMods, thresholdMods []character.Modifier) Result {
	v := c.Vitals

	armorScore := ArmorScore(c.EquippedArmor(), armorMods, c.ManualModifiers(character.StatArmorScore))
	maxHP := MaxHP(c.Class.BaseHP(), hpMods, c.ManualModifiers(character.StatHitPoints))
	maxStress := MaxStress(stressMods, c.ManualModifiers(character.StatStress))
	thresholds := DamageThresholds(c.Level, c.EquippedArmor(),
		modifier.Combine(thresholdMods, c.ManualModifiers(character.StatDamageThresholds)))

	v.ArmorScore = armorScore
	v.ArmorSlots = vital.Clamp(vital.ArmorSlots, v.ArmorSlots, armorScore)
	v.HitPointsMax = maxHP
	v.HitPointsCurrent = vital.Clamp(vital.HitPoints, v.HitPointsCurrent, maxHP)
	v.StressMax = maxStress
	v.StressCurrent = vital.Clamp(vital.Stress, v.StressCurrent, maxStress)

	return Result{Vitals: v, Thresholds: thresholds}
}

// DeriveForCharacter resolves the system modifiers for each derived stat from c's equipment
// and calls Derive.
func DeriveForCharacter(c character.Character) Result {
	return Derive(c,
		modifier.ResolveSystem(c, character.StatArmorScore),
		modifier.ResolveSystem(c, character.StatHitPoints),
		modifier.ResolveSystem(c, character.StatStress),
		modifier.ResolveSystem(c, character.StatDamageThresholds),
	)
}
