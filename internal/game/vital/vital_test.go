package vital_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/heartsheet/internal/game/vital"
)

var allKinds = []vital.Kind{vital.HitPoints, vital.ArmorSlots, vital.Stress, vital.Hope}

func TestClamp_Edges(t *testing.T) {
	for _, k := range allKinds {
		t.Run(k.String(), func(t *testing.T) {
			assert.Equal(t, 6, vital.Clamp(k, 7, 6), "max+1 clamps to max")
			assert.Equal(t, 0, vital.Clamp(k, -1, 6), "-1 clamps to 0")
			assert.Equal(t, 3, vital.Clamp(k, 3, 6))
			assert.Equal(t, 0, vital.Clamp(k, 0, 6))
			assert.Equal(t, 6, vital.Clamp(k, 6, 6))
		})
	}
}

func TestClamp_NegativeMax(t *testing.T) {
	assert.Equal(t, 0, vital.Clamp(vital.ArmorSlots, 3, -2))
}

// Property: Clamp always lands in [0, max] for any value.
func TestClamp_AlwaysInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k := rapid.SampledFrom(allKinds).Draw(rt, "kind")
		max := rapid.IntRange(0, 100).Draw(rt, "max")
		value := rapid.IntRange(-1000, 1000).Draw(rt, "value")
		got := vital.Clamp(k, value, max)
		if got < 0 || got > max {
			rt.Fatalf("Clamp(%v, %d, %d) = %d outside [0,%d]", k, value, max, got, max)
		}
	})
}

func TestDirection(t *testing.T) {
	assert.Equal(t, vital.MarkBad, vital.HitPoints.Direction())
	assert.Equal(t, vital.MarkBad, vital.ArmorSlots.Direction())
	assert.Equal(t, vital.FillUpBad, vital.Stress.Direction())
}

func TestMark_HitPointsDecrease(t *testing.T) {
	assert.Equal(t, 4, vital.Mark(vital.HitPoints, 6, 6, 2))
	assert.Equal(t, 0, vital.Mark(vital.HitPoints, 1, 6, 3))
}

func TestMark_StressIncreases(t *testing.T) {
	assert.Equal(t, 3, vital.Mark(vital.Stress, 1, 6, 2))
	assert.Equal(t, 6, vital.Mark(vital.Stress, 5, 6, 4))
}

func TestClear_InvertsMark(t *testing.T) {
	assert.Equal(t, 6, vital.Clear(vital.HitPoints, 4, 6, 2))
	assert.Equal(t, 0, vital.Clear(vital.Stress, 1, 6, 2))
}

func TestFromFloat(t *testing.T) {
	n, err := vital.FromFloat(3.9)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := vital.FromFloat(f)
		assert.ErrorIs(t, err, vital.ErrNonFinite)
	}
}
