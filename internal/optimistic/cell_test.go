package optimistic_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/heartsheet/internal/game/character"
	"github.com/cory-johannsen/heartsheet/internal/game/vital"
	"github.com/cory-johannsen/heartsheet/internal/optimistic"
)

var errOffline = errors.New("offline")

func ok[T any](context.Context, T) error { return nil }

func fail[T any](context.Context, T) error { return errOffline }

func TestApply_Success(t *testing.T) {
	c := optimistic.NewCell(3, nil)
	require.NoError(t, c.Apply(context.Background(), 4, ok[int]))
	assert.Equal(t, 4, c.Get())
	assert.Equal(t, uint64(1), c.Version())
}

func TestApply_FailureRestoresPrior(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c := optimistic.NewCell(3, zap.New(core))

	err := c.Apply(context.Background(), 4, fail[int])
	require.Error(t, err)
	assert.ErrorIs(t, err, optimistic.ErrCommitFailed)
	assert.ErrorIs(t, err, errOffline)
	assert.Equal(t, 3, c.Get())

	entries := logs.FilterMessage("optimistic update rolled back").All()
	require.Len(t, entries, 1)
	assert.Equal(t, true, entries[0].ContextMap()["restored"])
}

func TestApply_CommitSeesNextValue(t *testing.T) {
	c := optimistic.NewCell("a", nil)
	var seen string
	require.NoError(t, c.Apply(context.Background(), "b", func(_ context.Context, next string) error {
		seen = next
		return nil
	}))
	assert.Equal(t, "b", seen)
}

func TestApply_FailureKeepsNewerValue(t *testing.T) {
	c := optimistic.NewCell(0, nil)
	release := make(chan struct{})
	started := make(chan struct{})

	var wg sync.WaitGroup
	var slowErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		slowErr = c.Apply(context.Background(), 1, func(context.Context, int) error {
			close(started)
			<-release
			return errOffline
		})
	}()

	<-started
	require.NoError(t, c.Apply(context.Background(), 2, ok[int]))
	close(release)
	wg.Wait()

	assert.ErrorIs(t, slowErr, errOffline)
	assert.Equal(t, 2, c.Get())
}

func TestUpdate_MarksHitPoint(t *testing.T) {
	v := character.Vitals{HitPointsCurrent: 6, HitPointsMax: 6}
	c := optimistic.NewCell(v, nil)

	mark := func(cur character.Vitals) character.Vitals {
		cur.HitPointsCurrent = vital.Mark(vital.HitPoints, cur.HitPointsCurrent, cur.HitPointsMax, 1)
		return cur
	}
	require.NoError(t, c.Update(context.Background(), mark, ok[character.Vitals]))
	assert.Equal(t, 5, c.Get().HitPointsCurrent)

	require.Error(t, c.Update(context.Background(), mark, fail[character.Vitals]))
	assert.Equal(t, 5, c.Get().HitPointsCurrent)
}

// Property: after any sequence of sequential applies, the value equals the last successful one.
func TestApply_SequentialProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		initial := rapid.Int().Draw(rt, "initial")
		c := optimistic.NewCell(initial, nil)
		want := initial
		steps := rapid.SliceOf(rapid.Bool()).Draw(rt, "steps")
		for i, succeed := range steps {
			commit := fail[int]
			if succeed {
				commit = ok[int]
				want = i
			}
			_ = c.Apply(context.Background(), i, commit)
		}
		if got := c.Get(); got != want {
			rt.Fatalf("got %d want %d", got, want)
		}
	})
}
