package modifier

import "github.com/cory-johannsen/heartsheet/internal/game/character"

// Combine concatenates system and manual modifiers and drops every modifier whose ID was
// already seen. The first occurrence wins.
//
// Postcondition: IDs in the result are unique; relative order is preserved.
func Combine(system, manual []character.Modifier) []character.Modifier {
	seen := make(map[string]struct{}, len(system)+len(manual))
	out := make([]character.Modifier, 0, len(system)+len(manual))
	for _, list := range [][]character.Modifier{system, manual} {
		for _, m := range list {
			if _, dup := seen[m.ID]; dup {
				continue
			}
			seen[m.ID] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}

// Sum returns the total value of mods.
func Sum(mods []character.Modifier) int {
	total := 0
	for _, m := range mods {
		total += m.Value
	}
	return total
}

// SumSource returns the total value of the modifiers in mods tagged with source.
func SumSource(mods []character.Modifier, source character.ModifierSource) int {
	total := 0
	for _, m := range mods {
		if m.Source == source {
			total += m.Value
		}
	}
	return total
}

// Total returns the de-duplicated sum of system and manual modifiers for stat.
func Total(c character.Character, stat string) int {
	return Sum(Combine(ResolveSystem(c, stat), Manual(c, stat)))
}
