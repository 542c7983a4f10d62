package character

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Starting values for a fresh character sheet.
const (
	StartingStressMax = 6
	StartingHopeMax   = 6
	StartingHope      = 2
	MinLevel          = 1
	MaxLevel          = 10
)

// Build constructs a new Character at the given level with full hit points and no stress.
// Thresholds start at the unarmored baseline for the level.
//
// Precondition: name must be non-empty; level must be in [MinLevel, MaxLevel].
// Postcondition: Returns a Character satisfying every Vitals invariant, or a non-nil error.
func Build(name string, class ClassData, level int) (Character, error) {
	if name == "" {
		return Character{}, errors.New("character name must not be empty")
	}
	if level < MinLevel || level > MaxLevel {
		return Character{}, fmt.Errorf("level must be %d-%d, got %d", MinLevel, MaxLevel, level)
	}

	maxHP := class.BaseHP()
	if maxHP < 1 {
		maxHP = 1
	}

	return Character{
		Name:  name,
		Level: level,
		Class: class,
		Vitals: Vitals{
			HitPointsCurrent: maxHP,
			HitPointsMax:     maxHP,
			StressMax:        StartingStressMax,
			HopeCurrent:      StartingHope,
			HopeMax:          StartingHopeMax,
		},
		Thresholds: UnarmoredThresholds(level),
		Modifiers:  map[string][]Modifier{},
	}, nil
}

// Decode parses a character snapshot from YAML. JSON input is accepted as well since
// every JSON document is valid YAML.
//
// Postcondition: Returns the decoded Character or a non-nil error.
func Decode(data []byte) (Character, error) {
	var c Character
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Character{}, fmt.Errorf("parsing character: %w", err)
	}
	return c, nil
}

// LoadFile reads and decodes a character snapshot file.
//
// Precondition: path must be a readable YAML or JSON file.
// Postcondition: Returns the decoded Character or a non-nil error.
func LoadFile(path string) (Character, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Character{}, fmt.Errorf("reading %s: %w", path, err)
	}
	c, err := Decode(data)
	if err != nil {
		return Character{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// SaveFile writes c to path as YAML, replacing the file atomically.
//
// Postcondition: on error the previous file content is left in place.
func SaveFile(path string, c Character) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding character: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".character-*.yaml")
	if err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("saving %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
