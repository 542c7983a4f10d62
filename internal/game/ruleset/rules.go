// Package ruleset holds the static level-up rule tables: tier boundaries, tier achievements,
// the advancement catalog, and the class to domain mapping.
//
// Tables are loaded once from YAML and never mutated. The embedded default reproduces the
// core rules; a homebrew file may be loaded instead and passed to consumers explicitly.
package ruleset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed default_rules.yaml
var defaultRulesYAML []byte

// Tier maps a contiguous level range to a tier number.
type Tier struct {
	Tier     int `yaml:"tier"`
	MinLevel int `yaml:"min_level"`
	MaxLevel int `yaml:"max_level"`
}

// AchievementRule configures the automatic benefits of reaching a new tier.
type AchievementRule struct {
	TriggerLevels       []int `yaml:"trigger_levels"`
	ExperienceValue     int   `yaml:"experience_value"`
	ProficiencyIncrease int   `yaml:"proficiency_increase"`
	// KeepMarkedTraitsAt lists trigger levels that do not clear marked traits.
	KeepMarkedTraitsAt []int `yaml:"keep_marked_traits_at"`
}

// Advancement is one entry in the advancement catalog.
type Advancement struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	MinTier     int    `yaml:"min_tier"`
	SlotCost    int    `yaml:"slot_cost"`
}

// ClassDomains pairs a class name with its two domains.
type ClassDomains struct {
	Name    string   `yaml:"name"`
	Domains []string `yaml:"domains"`
}

// Rules is a complete, immutable rule set.
//
// Invariant: after Load succeeds, every lookup index is populated and Validate returned nil.
type Rules struct {
	MaxLevel     int             `yaml:"max_level"`
	SlotBudget   int             `yaml:"slot_budget"`
	Tiers        []Tier          `yaml:"tiers"`
	Achievements AchievementRule `yaml:"tier_achievements"`
	Advancements []Advancement   `yaml:"advancements"`
	Classes      []ClassDomains  `yaml:"classes"`

	advancementByID map[string]Advancement
	domainsByClass  map[string][]string
}

// Load parses and validates a rule set from YAML. Unknown keys are rejected.
//
// Postcondition: Returns a ready-to-use *Rules or a non-nil error.
func Load(data []byte) (*Rules, error) {
	var r Rules
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	r.index()
	return &r, nil
}

// LoadFile reads a rule set from path.
//
// Precondition: path must be a readable YAML file.
// Postcondition: Returns a ready-to-use *Rules or a non-nil error.
func LoadFile(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	r, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

var (
	defaultOnce  sync.Once
	defaultRules *Rules
)

// Default returns the embedded core rule set. It panics if the embedded file is invalid,
// which can only happen through a build with a broken default_rules.yaml.
func Default() *Rules {
	defaultOnce.Do(func() {
		r, err := Load(defaultRulesYAML)
		if err != nil {
			panic(fmt.Sprintf("ruleset: embedded default rules are invalid: %v", err))
		}
		defaultRules = r
	})
	return defaultRules
}

// Validate checks every structural invariant of the rule set and reports all violations.
//
// Postcondition: Returns nil iff tiers cover 1..MaxLevel contiguously, advancement IDs are
// unique with positive slot costs, and every class has exactly two distinct domains.
func (r *Rules) Validate() error {
	var errs []error
	if r.MaxLevel < 1 {
		errs = append(errs, fmt.Errorf("max_level must be >= 1, got %d", r.MaxLevel))
	}
	if r.SlotBudget < 1 {
		errs = append(errs, fmt.Errorf("slot_budget must be >= 1, got %d", r.SlotBudget))
	}

	next := 1
	for i, t := range r.Tiers {
		if t.MinLevel != next {
			errs = append(errs, fmt.Errorf("tiers[%d] must start at level %d, got %d", i, next, t.MinLevel))
		}
		if t.MaxLevel < t.MinLevel {
			errs = append(errs, fmt.Errorf("tiers[%d] max_level %d is below min_level %d", i, t.MaxLevel, t.MinLevel))
		}
		next = t.MaxLevel + 1
	}
	if next-1 != r.MaxLevel {
		errs = append(errs, fmt.Errorf("tiers must end at max_level %d, end at %d", r.MaxLevel, next-1))
	}

	seen := make(map[string]bool, len(r.Advancements))
	for i, a := range r.Advancements {
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("advancements[%d] id must not be empty", i))
		}
		if seen[a.ID] {
			errs = append(errs, fmt.Errorf("advancements[%d] duplicate id %q", i, a.ID))
		}
		seen[a.ID] = true
		if a.SlotCost < 1 {
			errs = append(errs, fmt.Errorf("advancement %q slot_cost must be >= 1", a.ID))
		}
	}

	classes := make(map[string]bool, len(r.Classes))
	for i, c := range r.Classes {
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("classes[%d] name must not be empty", i))
		}
		if classes[c.Name] {
			errs = append(errs, fmt.Errorf("classes[%d] duplicate class %q", i, c.Name))
		}
		classes[c.Name] = true
		if len(c.Domains) != 2 || c.Domains[0] == c.Domains[1] {
			errs = append(errs, fmt.Errorf("class %q must have exactly two distinct domains", c.Name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("rules validation failed: %w", errors.Join(errs...))
	}
	return nil
}

func (r *Rules) index() {
	r.advancementByID = make(map[string]Advancement, len(r.Advancements))
	for _, a := range r.Advancements {
		r.advancementByID[a.ID] = a
	}
	r.domainsByClass = make(map[string][]string, len(r.Classes))
	for _, c := range r.Classes {
		r.domainsByClass[c.Name] = c.Domains
	}
}
