package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cory-johannsen/heartsheet/internal/game/character"
)

func TestItemDef_Thresholds(t *testing.T) {
	cases := []struct {
		raw        string
		major, sev int
		ok         bool
	}{
		{"3/5", 3, 5, true},
		{" 6 / 13 ", 6, 13, true},
		{"invalid", 0, 0, false},
		{"abc/def", 0, 0, false},
		{"1/2/3", 0, 0, false},
		{"", 0, 0, false},
		{"4.5/9", 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			d := &character.ItemDef{BaseThresholds: tc.raw}
			major, severe, ok := d.Thresholds()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.major, major)
			assert.Equal(t, tc.sev, severe)
		})
	}
}

func TestItemDef_NilSafe(t *testing.T) {
	var d *character.ItemDef
	assert.Equal(t, 0, d.Score())
	_, _, ok := d.Thresholds()
	assert.False(t, ok)
	assert.False(t, d.HasStructuredModifiers())
	assert.Empty(t, d.FeatureText())
}

func TestItemDef_Score(t *testing.T) {
	assert.Equal(t, 3, (&character.ItemDef{BaseScore: "3"}).Score())
	assert.Equal(t, 0, (&character.ItemDef{BaseScore: "three"}).Score())
	assert.Equal(t, 0, (&character.ItemDef{}).Score())
}

func TestLocation_IsEquipped(t *testing.T) {
	assert.True(t, character.LocationPrimary.IsEquipped())
	assert.True(t, character.LocationSecondary.IsEquipped())
	assert.True(t, character.LocationArmor.IsEquipped())
	assert.False(t, character.LocationBackpack.IsEquipped())
	assert.False(t, character.Location("").IsEquipped())
}

func TestCharacter_ManualModifiersReturnsCopy(t *testing.T) {
	c := character.Character{Modifiers: map[string][]character.Modifier{
		character.StatStress: {{ID: "a", Value: 1, Source: character.SourceUser}},
	}}
	mods := c.ManualModifiers(character.StatStress)
	mods[0].Value = 99
	assert.Equal(t, 1, c.Modifiers[character.StatStress][0].Value)
	assert.Empty(t, c.ManualModifiers(character.StatHope))
}

func TestProvenance_KeyDistinguishesMatches(t *testing.T) {
	a := character.Provenance{ItemID: "i1", Kind: character.ProvenanceText, MatchIndex: 0}
	b := character.Provenance{ItemID: "i1", Kind: character.ProvenanceText, MatchIndex: 1}
	assert.NotEqual(t, a.Key(), b.Key())
}
