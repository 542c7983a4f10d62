package character_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/heartsheet/internal/game/character"
)

func intPtr(n int) *int { return &n }

func TestBuild_UsesClassStartingHP(t *testing.T) {
	c, err := character.Build("Marlowe", character.ClassData{Name: "Guardian", StartingHP: intPtr(7)}, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Vitals.HitPointsMax)
	assert.Equal(t, 7, c.Vitals.HitPointsCurrent)
	assert.Equal(t, character.StartingStressMax, c.Vitals.StressMax)
	assert.Equal(t, 0, c.Vitals.StressCurrent)
	assert.Equal(t, character.StartingHope, c.Vitals.HopeCurrent)
}

func TestBuild_DefaultsStartingHP(t *testing.T) {
	c, err := character.Build("Marlowe", character.ClassData{Name: "Bard"}, 1)
	require.NoError(t, err)
	assert.Equal(t, character.DefaultStartingHP, c.Vitals.HitPointsMax)
}

func TestBuild_EmptyNameError(t *testing.T) {
	_, err := character.Build("", character.ClassData{}, 1)
	require.Error(t, err)
}

func TestBuild_LevelOutOfRange(t *testing.T) {
	for _, level := range []int{0, 11, -1} {
		_, err := character.Build("Marlowe", character.ClassData{}, level)
		assert.Error(t, err, "level %d", level)
	}
}

// Property: a freshly built character satisfies the vitals invariants at every level.
func TestBuild_VitalsInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.IntRange(character.MinLevel, character.MaxLevel).Draw(rt, "level")
		hp := rapid.IntRange(-3, 12).Draw(rt, "hp")
		c, err := character.Build("Hero", character.ClassData{StartingHP: &hp}, level)
		if err != nil {
			rt.Fatal(err)
		}
		v := c.Vitals
		if v.HitPointsCurrent < 0 || v.HitPointsCurrent > v.HitPointsMax {
			rt.Fatalf("hp %d outside [0,%d]", v.HitPointsCurrent, v.HitPointsMax)
		}
		if c.Thresholds != character.UnarmoredThresholds(level) {
			rt.Fatalf("thresholds %+v not baseline for level %d", c.Thresholds, level)
		}
	})
}

func TestLoadFile_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hero.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
id: c1
name: Marlowe
level: 3
class_data:
  name: Guardian
  starting_hp: 7
vitals:
  hit_points_current: 5
  hit_points_max: 7
character_inventory:
  - id: inv1
    name: Chainmail
    location: equipped_armor
    item:
      base_score: "4"
      base_thresholds: "7/15"
modifiers:
  hit_points:
    - id: m1
      name: Blessing
      value: 2
      source: user
`), 0644))

	c, err := character.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Marlowe", c.Name)
	assert.Equal(t, 3, c.Level)
	assert.Equal(t, 7, c.Class.BaseHP())
	require.Len(t, c.EquippedArmor(), 1)
	assert.Equal(t, 4, c.EquippedArmor()[0].Item.Score())
	require.Len(t, c.Modifiers[character.StatHitPoints], 1)
	assert.Equal(t, character.SourceUser, c.Modifiers[character.StatHitPoints][0].Source)
}

func TestDecode_AcceptsJSON(t *testing.T) {
	c, err := character.Decode([]byte(`{"name":"Vex","level":2,"class_data":{"name":"Rogue"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Vex", c.Name)
	assert.Equal(t, "Rogue", c.Class.Name)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := character.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestSaveFile_RoundTripsThroughLoadFile(t *testing.T) {
	c, err := character.Build("Marlowe", character.ClassData{Name: "Guardian", StartingHP: intPtr(7)}, 3)
	require.NoError(t, err)
	c.Vitals.HitPointsCurrent = 4
	c.Modifiers[character.StatArmorScore] = []character.Modifier{{ID: "m1", Name: "Blessing", Value: 1, Source: character.SourceUser}}

	path := filepath.Join(t.TempDir(), "marlowe.yaml")
	require.NoError(t, character.SaveFile(path, c))

	got, err := character.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, c.Name, got.Name)
	assert.Equal(t, c.Level, got.Level)
	assert.Equal(t, c.Class, got.Class)
	assert.Equal(t, c.Vitals, got.Vitals)
	assert.Equal(t, c.Thresholds, got.Thresholds)
	assert.Equal(t, c.Modifiers, got.Modifiers)
}

func TestSaveFile_MissingDirectory(t *testing.T) {
	err := character.SaveFile(filepath.Join(t.TempDir(), "nope", "c.yaml"), character.Character{Name: "x"})
	assert.Error(t, err)
}
