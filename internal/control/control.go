package control

// Package control implements the cooperative pause/cancel object shared
// between the goroutine driving a download and the goroutine controlling it
// (UI or CLI). Cancellation is honored only at explicit checkpoints inside
// the strategies, never preemptively.

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrCancelled is returned from checkpoints after Cancel has been called.
// Strategies must propagate it unwrapped so the orchestrator can tell a user
// cancellation apart from a strategy failure.
var ErrCancelled = errors.New("download cancelled")

// Control carries two independent flags: paused and cancelled. The cancelled
// flag is monotonic; once set it never resets. One controller goroutine
// mutates the flags, one worker goroutine polls them. A Control must not be
// shared across two concurrent downloads. Use New; the zero value lacks the
// condition variable.
type Control struct {
	cancelled atomic.Bool

	mu     sync.Mutex
	cond   *sync.Cond
	paused bool
}

// New returns a Control in the running state.
func New() *Control {
	c := &Control{}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// Pause requests that the worker block at its next checkpoint. Idempotent.
func (c *Control) Pause() {
	c.mu.Lock()
	c.paused = true
	c.mu.Unlock()
}

// Resume releases a paused worker. Idempotent.
func (c *Control) Resume() {
	c.mu.Lock()
	c.paused = false
	c.mu.Unlock()
	c.cond.Broadcast()
}

// Cancel marks the download as cancelled and clears the pause flag so a
// blocked waiter wakes up to observe cancellation instead of deadlocking
// while paused. Idempotent and irreversible.
func (c *Control) Cancel() {
	c.cancelled.Store(true)
	c.mu.Lock()
	c.paused = false
	c.mu.Unlock()
	c.cond.Broadcast()
}

// IsPaused returns a snapshot of the pause flag.
func (c *Control) IsPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Cancelled returns a snapshot of the cancellation flag.
func (c *Control) Cancelled() bool {
	return c.cancelled.Load()
}

// ErrIfCancelled returns ErrCancelled once Cancel has been called, nil
// otherwise. Strategies call this immediately before every state-changing or
// blocking step.
func (c *Control) ErrIfCancelled() error {
	if c.cancelled.Load() {
		return ErrCancelled
	}
	return nil
}

// WaitIfPaused blocks the calling goroutine while the pause flag is set.
// It re-checks cancellation on every wakeup, so a Cancel during a pause
// returns ErrCancelled immediately rather than waiting for Resume.
func (c *Control) WaitIfPaused() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.paused {
		if c.cancelled.Load() {
			return ErrCancelled
		}
		c.cond.Wait()
	}
	return c.ErrIfCancelled()
}

// Checkpoint combines the cancellation check and the pause gate in the order
// the strategies need them: fail fast on cancel, then block while paused.
func (c *Control) Checkpoint() error {
	if err := c.ErrIfCancelled(); err != nil {
		return err
	}
	return c.WaitIfPaused()
}
