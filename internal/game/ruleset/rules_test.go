package ruleset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/heartsheet/internal/game/ruleset"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

const homebrew = `
max_level: 3
slot_budget: 3
tiers:
  - {tier: 1, min_level: 1, max_level: 1}
  - {tier: 2, min_level: 2, max_level: 3}
tier_achievements:
  trigger_levels: [2]
  experience_value: 3
  proficiency_increase: 1
  keep_marked_traits_at: []
advancements:
  - {id: add_hp, name: Add HP, min_tier: 1, slot_cost: 1}
  - {id: gain_familiar, name: Familiar, min_tier: 2, slot_cost: 3}
classes:
  - {name: Witch, domains: [Hex, Grace]}
`

func TestDefault_IsValid(t *testing.T) {
	r := ruleset.Default()
	require.NoError(t, r.Validate())
	assert.Equal(t, 10, r.MaxLevel)
	assert.Equal(t, 2, r.SlotBudget)
	assert.Len(t, r.Classes, 9)
}

func TestLoad_Homebrew(t *testing.T) {
	r, err := ruleset.Load([]byte(homebrew))
	require.NoError(t, err)

	tier, err := r.TierOf(3)
	require.NoError(t, err)
	assert.Equal(t, 2, tier)

	usage := r.ValidateAdvancementSlotUsage([]string{"gain_familiar"})
	assert.True(t, usage.Valid)
	assert.Equal(t, 3, usage.Total)

	ach := r.TierAchievements(2)
	require.NotNil(t, ach.NewExperienceValue)
	assert.Equal(t, 3, *ach.NewExperienceValue)
	assert.True(t, ach.ShouldClearMarkedTraits)

	assert.Equal(t, []string{"Hex", "Grace"}, r.ClassDomains("Witch"))
	assert.Empty(t, r.ClassDomains("Bard"))
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	_, err := ruleset.Load([]byte(homebrew + "\nsurprise: true\n"))
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := ruleset.Load([]byte(`{{{ not yaml`))
	require.Error(t, err)
}

func TestValidate_ReportsAllViolations(t *testing.T) {
	bad := strings.NewReplacer(
		"max_level: 3", "max_level: 4",
		"slot_cost: 3", "slot_cost: 0",
		"[Hex, Grace]", "[Hex, Hex]",
	).Replace(homebrew)
	_, err := ruleset.Load([]byte(bad))
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "tiers must end at max_level 4")
	assert.Contains(t, msg, `"gain_familiar" slot_cost must be >= 1`)
	assert.Contains(t, msg, `"Witch" must have exactly two distinct domains`)
}

func TestValidate_TierGap(t *testing.T) {
	bad := strings.Replace(homebrew, "{tier: 2, min_level: 2", "{tier: 2, min_level: 3", 1)
	_, err := ruleset.Load([]byte(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tiers[1] must start at level 2")
}

func TestValidate_DuplicateAdvancement(t *testing.T) {
	bad := strings.Replace(homebrew, "id: gain_familiar", "id: add_hp", 1)
	_, err := ruleset.Load([]byte(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate id "add_hp"`)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "homebrew.yaml")
	writeFile(t, path, homebrew)
	r, err := ruleset.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, r.MaxLevel)

	_, err = ruleset.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadLogged_EmptyPathUsesDefault(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r, err := ruleset.LoadLogged("", zap.New(core))
	require.NoError(t, err)
	assert.Same(t, ruleset.Default(), r)
	assert.Equal(t, 1, logs.FilterMessage("using embedded rules").Len())
}

func TestLoadLogged_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "homebrew.yaml")
	writeFile(t, path, homebrew)
	core, logs := observer.New(zapcore.InfoLevel)
	r, err := ruleset.LoadLogged(path, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, 3, r.MaxLevel)
	entries := logs.FilterMessage("loaded rules").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["advancements"])
}

func TestLoadLogged_ErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	_, err := ruleset.LoadLogged(filepath.Join(t.TempDir(), "missing.yaml"), zap.New(core))
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("loading rules").Len())
}
