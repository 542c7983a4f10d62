// Package levelup validates a level-up submission against a rule set before it is committed.
//
// Validators never return Go errors for rule violations. Each returns a list of field-tagged
// messages and the caller decides whether to block the submission.
package levelup

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/heartsheet/internal/game/character"
)

// TraitSelection is the pick for the two-trait advancement.
type TraitSelection struct {
	Traits []string `yaml:"traits"`
	// UpgradedThisTier lists traits raised at an earlier level of the current tier.
	UpgradedThisTier []string `yaml:"upgraded_this_tier"`
}

// ExperienceSelection is the pick for the two-experience advancement: indices into the
// character's experience list.
type ExperienceSelection struct {
	Indices []int `yaml:"indices"`
}

// CardExchange replaces a held domain card with a new one of equal or lower level.
type CardExchange struct {
	Exchanging   bool   `yaml:"exchanging"`
	TargetCardID string `yaml:"target_card_id"`
	// TargetCardLevel overrides the level looked up from the character's held cards.
	TargetCardLevel  *int `yaml:"target_card_level"`
	ReplacementLevel int  `yaml:"replacement_level"`
}

// Submission is the full set of choices made in the level-up wizard.
type Submission struct {
	CurrentLevel    int                  `yaml:"current_level"`
	NewLevel        int                  `yaml:"new_level"`
	AdvancementIDs  []string             `yaml:"advancements"`
	DomainCardLevel int                  `yaml:"domain_card_level"`
	Traits          *TraitSelection      `yaml:"traits"`
	Experiences     *ExperienceSelection `yaml:"experiences"`
	Exchange        *CardExchange        `yaml:"exchange"`
	AddedHPSlots    int                  `yaml:"added_hp_slots"`
	AddedStress     int                  `yaml:"added_stress_slots"`
	HasMulticlass   bool                 `yaml:"has_multiclass"`
	HasMastery      bool                 `yaml:"has_mastery"`
}

// WithCharacter returns a copy of s with the fields that describe the character's current
// state taken from c.
func (s Submission) WithCharacter(c character.Character) Submission {
	s.CurrentLevel = c.Level
	s.HasMulticlass = c.Multiclassed
	s.HasMastery = c.SubclassMastery
	return s
}

// DecodeSubmission parses a submission from YAML or JSON. Unknown keys are rejected.
func DecodeSubmission(data []byte) (Submission, error) {
	var s Submission
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Submission{}, fmt.Errorf("decoding submission: %w", err)
	}
	return s, nil
}

// LoadSubmission reads a submission file.
func LoadSubmission(path string) (Submission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Submission{}, fmt.Errorf("reading submission %s: %w", path, err)
	}
	return DecodeSubmission(data)
}
