// Package optimistic holds a value that is updated immediately and rolled back if the
// asynchronous commit of that update fails.
package optimistic

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// ErrCommitFailed wraps the error returned by a commit function.
var ErrCommitFailed = errors.New("commit failed")

// CommitFunc persists a newly applied value.
type CommitFunc[T any] func(ctx context.Context, next T) error

// Cell is a mutex-guarded value with optimistic update and rollback.
//
// Each Apply swaps in the new value before committing it. When the commit fails, the value
// that was current before that Apply is restored, unless another Apply has replaced the value
// in the meantime; the newer value is then kept.
type Cell[T any] struct {
	mu      sync.Mutex
	value   T
	version uint64
	logger  *zap.Logger
}

// NewCell returns a Cell holding initial.
//
// Postcondition: a nil logger is replaced with a no-op logger.
func NewCell[T any](initial T, logger *zap.Logger) *Cell[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cell[T]{value: initial, logger: logger}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Version returns the number of values applied so far.
func (c *Cell[T]) Version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// Apply makes next the current value and then calls commit without holding the lock.
//
// Postcondition: on commit success the value is next or a newer one. On failure the prior
// value is restored if no later Apply happened, and the returned error wraps both
// ErrCommitFailed and the commit error.
func (c *Cell[T]) Apply(ctx context.Context, next T, commit CommitFunc[T]) error {
	c.mu.Lock()
	prior := c.value
	c.value = next
	c.version++
	mine := c.version
	c.mu.Unlock()

	err := commit(ctx, next)
	if err == nil {
		return nil
	}

	c.mu.Lock()
	restored := c.version == mine
	if restored {
		c.value = prior
		c.version++
	}
	c.mu.Unlock()

	c.logger.Warn("optimistic update rolled back",
		zap.Uint64("version", mine),
		zap.Bool("restored", restored),
		zap.Error(err),
	)
	return fmt.Errorf("%w: %w", ErrCommitFailed, err)
}

// Update derives the next value from the current one with fn and applies it.
//
// Precondition: fn must not modify its argument in place when T holds references.
func (c *Cell[T]) Update(ctx context.Context, fn func(current T) T, commit CommitFunc[T]) error {
	return c.Apply(ctx, fn(c.Get()), commit)
}
