package levelup

import (
	"slices"
	"sync"

	"github.com/cory-johannsen/heartsheet/internal/game/character"
	"github.com/cory-johannsen/heartsheet/internal/game/ruleset"
)

// Validator checks submissions against one rule set.
type Validator struct {
	rules *ruleset.Rules
}

// NewValidator returns a Validator bound to rules.
//
// Precondition: rules must be non-nil and loaded through ruleset.Load or ruleset.Default.
func NewValidator(rules *ruleset.Rules) *Validator {
	return &Validator{rules: rules}
}

// ValidateLevel checks that newLevel advances past currentLevel and stays within the rules'
// level range.
func (v *Validator) ValidateLevel(currentLevel, newLevel int) Errors {
	var errs Errors
	if newLevel <= currentLevel {
		errs.addf(FieldLevel, "new level %d must be greater than current level %d", newLevel, currentLevel)
	}
	if newLevel < 1 || newLevel > v.rules.MaxLevel {
		errs.addf(FieldLevel, "new level %d must be between 1 and %d", newLevel, v.rules.MaxLevel)
	}
	return errs
}

// ValidateAdvancements checks the selected advancement IDs. The total slot cost must equal the
// slot budget exactly. Subclass upgrade and multiclass exclude each other: a multiclassed
// character cannot upgrade its subclass, and one that has upgraded to mastery cannot
// multiclass. Neither option can be taken twice.
func (v *Validator) ValidateAdvancements(selected []string, hasMulticlass, hasMastery bool) Errors {
	var errs Errors
	if len(selected) == 0 {
		errs.add(FieldAdvancements, "at least one advancement must be selected")
	}
	if usage := v.rules.ValidateAdvancementSlotUsage(selected); !usage.Valid {
		errs.addf(FieldAdvancements, "advancements must use exactly %d slots, selected %d", v.rules.SlotBudget, usage.Total)
	}
	if slices.Contains(selected, ruleset.AdvSubclassUpgrade) {
		if hasMulticlass {
			errs.add(FieldAdvancements, "subclass upgrade is unavailable: character has multiclassed")
		}
		if hasMastery {
			errs.add(FieldAdvancements, "subclass upgrade is unavailable: subclass already mastered")
		}
	}
	if slices.Contains(selected, ruleset.AdvMulticlass) {
		if hasMastery {
			errs.add(FieldAdvancements, "multiclass is unavailable: subclass already upgraded")
		}
		if hasMulticlass {
			errs.add(FieldAdvancements, "multiclass is unavailable: character has already multiclassed")
		}
	}
	return errs
}

// ValidateAdvancementTiers checks that every selected advancement is unlocked at the tier of
// newLevel. IDs missing from the catalog are not gated. An out-of-range newLevel yields no
// errors here; ValidateLevel reports it.
func (v *Validator) ValidateAdvancementTiers(selected []string, newLevel int) Errors {
	tier, err := v.rules.TierOf(newLevel)
	if err != nil {
		return nil
	}
	var errs Errors
	for _, id := range selected {
		a, err := v.rules.Advancement(id)
		if err != nil {
			continue
		}
		if !ruleset.IsAdvancementAvailable(a.MinTier, tier) {
			errs.addf(FieldAdvancements, "advancement %q requires tier %d, level %d is tier %d", id, a.MinTier, newLevel, tier)
		}
	}
	return errs
}

// ValidateDomainCard checks that the chosen card's level lies in 1..newLevel.
func (v *Validator) ValidateDomainCard(cardLevel, newLevel int) Errors {
	var errs Errors
	if cardLevel < 1 {
		errs.addf(FieldDomainCard, "domain card level must be at least 1, got %d", cardLevel)
	}
	if limit := ruleset.MaxDomainCardLevel(newLevel); cardLevel > limit {
		errs.addf(FieldDomainCard, "domain card level %d exceeds maximum %d", cardLevel, limit)
	}
	return errs
}

// ValidateTraitSelection checks the two-trait pick: exactly two distinct traits, neither
// currently marked nor raised earlier in the tier.
func ValidateTraitSelection(sel TraitSelection, marked []string) Errors {
	var errs Errors
	if len(sel.Traits) != 2 {
		errs.addf(FieldTraits, "exactly 2 traits must be selected, got %d", len(sel.Traits))
	} else if sel.Traits[0] == sel.Traits[1] {
		errs.add(FieldTraits, "selected traits must be distinct")
	}
	for _, trait := range sel.Traits {
		switch {
		case slices.Contains(marked, trait):
			errs.addf(FieldTraits, "trait %q is already marked", trait)
		case slices.Contains(sel.UpgradedThisTier, trait):
			errs.addf(FieldTraits, "trait %q was already upgraded this tier", trait)
		}
	}
	return errs
}

// ValidateExperienceSelection checks the two-experience pick against a list of
// experienceCount entries.
func ValidateExperienceSelection(sel ExperienceSelection, experienceCount int) Errors {
	var errs Errors
	if len(sel.Indices) != 2 {
		errs.addf(FieldExperiences, "exactly 2 experiences must be selected, got %d", len(sel.Indices))
	} else if sel.Indices[0] == sel.Indices[1] {
		errs.add(FieldExperiences, "selected experiences must be distinct")
	}
	for _, idx := range sel.Indices {
		if idx < 0 || idx >= experienceCount {
			errs.addf(FieldExperiences, "experience index %d is out of range", idx)
		}
	}
	return errs
}

// ValidateCardExchange checks an optional card exchange. A nil exchange or one with
// Exchanging unset is valid. The target's prior level comes from TargetCardLevel when set,
// otherwise from the held card with that ID.
func ValidateCardExchange(ex *CardExchange, held []character.DomainCardRef) Errors {
	if ex == nil || !ex.Exchanging {
		return nil
	}
	var errs Errors
	if ex.TargetCardID == "" {
		errs.add(FieldExchange, "a card to exchange must be selected")
		return errs
	}
	priorLevel, known := 0, false
	if ex.TargetCardLevel != nil {
		priorLevel, known = *ex.TargetCardLevel, true
	} else {
		c := character.Character{DomainCards: held}
		if card, ok := c.CardByID(ex.TargetCardID); ok {
			priorLevel, known = card.Level, true
		}
	}
	if !known {
		errs.addf(FieldExchange, "level of card %q is unknown", ex.TargetCardID)
		return errs
	}
	if ex.ReplacementLevel > priorLevel {
		errs.addf(FieldExchange, "replacement level %d exceeds exchanged card level %d", ex.ReplacementLevel, priorLevel)
	}
	return errs
}

// ValidateVitalSlots checks that a vital-slot advancement adds a positive number of slots.
func ValidateVitalSlots(added int) Errors {
	var errs Errors
	if added < 1 {
		errs.addf(FieldVitalSlots, "slots added must be a positive integer, got %d", added)
	}
	return errs
}

// ValidateComplete runs the level, advancement (budget, exclusions, tier gates) and domain card validators and concatenates
// their results in that order. The selection validators are not run; see ValidateSelected.
func (v *Validator) ValidateComplete(s Submission) Errors {
	var errs Errors
	errs = append(errs, v.ValidateLevel(s.CurrentLevel, s.NewLevel)...)
	errs = append(errs, v.ValidateAdvancements(s.AdvancementIDs, s.HasMulticlass, s.HasMastery)...)
	errs = append(errs, v.ValidateAdvancementTiers(s.AdvancementIDs, s.NewLevel)...)
	errs = append(errs, v.ValidateDomainCard(s.DomainCardLevel, s.NewLevel)...)
	return errs
}

// ValidateSelected runs the selection validators for the advancements picked in s, plus the
// card exchange when one is present. A picked advancement whose selection is missing is
// validated as an empty selection.
func (v *Validator) ValidateSelected(s Submission, c character.Character) Errors {
	var errs Errors
	if slices.Contains(s.AdvancementIDs, ruleset.AdvIncreaseTraits) {
		var sel TraitSelection
		if s.Traits != nil {
			sel = *s.Traits
		}
		errs = append(errs, ValidateTraitSelection(sel, c.MarkedTraits)...)
	}
	if slices.Contains(s.AdvancementIDs, ruleset.AdvIncreaseExperience) {
		var sel ExperienceSelection
		if s.Experiences != nil {
			sel = *s.Experiences
		}
		errs = append(errs, ValidateExperienceSelection(sel, len(c.Experiences))...)
	}
	if slices.Contains(s.AdvancementIDs, ruleset.AdvAddHP) {
		errs = append(errs, ValidateVitalSlots(s.AddedHPSlots)...)
	}
	if slices.Contains(s.AdvancementIDs, ruleset.AdvAddStress) {
		errs = append(errs, ValidateVitalSlots(s.AddedStress)...)
	}
	errs = append(errs, ValidateCardExchange(s.Exchange, c.DomainCards)...)
	return errs
}

var defaultValidator = sync.OnceValue(func() *Validator {
	return NewValidator(ruleset.Default())
})

// ValidateLevel checks a level change under the default rules.
func ValidateLevel(currentLevel, newLevel int) Errors {
	return defaultValidator().ValidateLevel(currentLevel, newLevel)
}

// ValidateAdvancements checks an advancement selection under the default rules.
func ValidateAdvancements(selected []string, hasMulticlass, hasMastery bool) Errors {
	return defaultValidator().ValidateAdvancements(selected, hasMulticlass, hasMastery)
}

// ValidateAdvancementTiers checks advancement tier gates under the default rules.
func ValidateAdvancementTiers(selected []string, newLevel int) Errors {
	return defaultValidator().ValidateAdvancementTiers(selected, newLevel)
}

// ValidateDomainCard checks a domain card level under the default rules.
func ValidateDomainCard(cardLevel, newLevel int) Errors {
	return defaultValidator().ValidateDomainCard(cardLevel, newLevel)
}

// ValidateComplete validates s under the default rules.
func ValidateComplete(s Submission) Errors {
	return defaultValidator().ValidateComplete(s)
}

// ValidateSelected runs the selection validators for s under the default rules.
func ValidateSelected(s Submission, c character.Character) Errors {
	return defaultValidator().ValidateSelected(s, c)
}
