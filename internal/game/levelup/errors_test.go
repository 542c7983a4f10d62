package levelup_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/heartsheet/internal/game/levelup"
)

func TestErrors_Err(t *testing.T) {
	var none levelup.Errors
	assert.NoError(t, none.Err())
	assert.True(t, none.Valid())

	errs := levelup.ValidateComplete(levelup.Submission{CurrentLevel: 2, NewLevel: 2, DomainCardLevel: 1})
	err := errs.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, levelup.ErrInvalidSubmission)
	assert.Contains(t, err.Error(), "level: new level 2 must be greater than current level 2")
	assert.Len(t, errs.Fields()[levelup.FieldAdvancements], 2)
}

func TestDecodeSubmission(t *testing.T) {
	s, err := levelup.DecodeSubmission([]byte(`
new_level: 5
advancements: [increase_traits, add_hp]
domain_card_level: 4
traits:
  traits: [agility, strength]
added_hp_slots: 1
`))
	require.NoError(t, err)
	assert.Equal(t, 5, s.NewLevel)
	assert.Equal(t, []string{"increase_traits", "add_hp"}, s.AdvancementIDs)
	require.NotNil(t, s.Traits)
	assert.Equal(t, []string{"agility", "strength"}, s.Traits.Traits)
	assert.Nil(t, s.Exchange)

	_, err = levelup.DecodeSubmission([]byte(`{"new_level": 2, "bogus": 1}`))
	assert.Error(t, err)
}

func TestLoadSubmission(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submission.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"new_level": 3, "advancements": ["multiclass"], "domain_card_level": 3}`), 0644))
	s, err := levelup.LoadSubmission(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"multiclass"}, s.AdvancementIDs)

	_, err = levelup.LoadSubmission(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
