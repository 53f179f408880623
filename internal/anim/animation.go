// Package anim implements timed visual transitions and the scheduler that
// drives them from a dedicated goroutine.
//
// An animation goes through three states: unstarted, running (its start
// instant is recorded on the first update) and complete. Completion fires the
// registered callbacks in order, then the final callback, then retires the
// animation from its scheduler. A completed animation is never restarted.
package anim

import (
	"sync"
	"time"
)

// Animation is a timed task advanced by a Scheduler once per tick.
type Animation interface {
	// Update advances the animation to now. Implementations retire
	// themselves from s once complete.
	Update(now time.Time, s Scheduler)
}

// Scheduler admits and retires animations. Both operations only stage the
// change; it takes effect at the start of the scheduler's next tick.
type Scheduler interface {
	Submit(a Animation)
	Retire(a Animation)
}

// Callback observes an animation's lifecycle.
type Callback interface {
	OnStart()
	OnComplete()
}

// Hooks adapts plain functions to Callback. Nil fields are skipped.
type Hooks struct {
	Start    func()
	Complete func()
}

// OnStart calls h.Start if set.
func (h Hooks) OnStart() {
	if h.Start != nil {
		h.Start()
	}
}

// OnComplete calls h.Complete if set.
func (h Hooks) OnComplete() {
	if h.Complete != nil {
		h.Complete()
	}
}

// OnComplete returns a Callback that runs fn when the animation completes.
func OnComplete(fn func()) Callback {
	return Hooks{Complete: fn}
}

// Base carries the lifecycle shared by all animations. Concrete animations
// embed it and call Begin on every update and Complete once finished.
type Base struct {
	mu        sync.Mutex
	callbacks []Callback
	final     Callback
	start     time.Time
	started   bool
	done      bool
}

// AddCallback registers c to be notified on start and completion.
func (b *Base) AddCallback(c Callback) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.callbacks = append(b.callbacks, c)
}

// SetFinalCallback sets the callback that completes after all others.
// Only its OnComplete is invoked.
func (b *Base) SetFinalCallback(c Callback) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.final = c
}

// StartTime returns the recorded start instant and whether the animation
// has started.
func (b *Base) StartTime() (time.Time, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.start, b.started
}

// Started reports whether the first update has happened.
func (b *Base) Started() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.started
}

// Done reports whether the animation has completed.
func (b *Base) Done() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.done
}

// Begin records now as the start instant on the first call and fires OnStart
// for every callback. It returns the recorded start instant.
func (b *Base) Begin(now time.Time) time.Time {
	b.mu.Lock()
	if b.started {
		start := b.start
		b.mu.Unlock()
		return start
	}
	b.started = true
	b.start = now
	callbacks := append([]Callback(nil), b.callbacks...)
	b.mu.Unlock()

	for _, c := range callbacks {
		c.OnStart()
	}
	return now
}

// Complete fires OnComplete for every callback, then the final callback, then
// retires self from s. Calls after the first are ignored.
// No lock is held while callbacks run, so they may freely call back into the
// scheduler or add work for other animations.
func (b *Base) Complete(self Animation, s Scheduler) {
	b.mu.Lock()
	if b.done {
		b.mu.Unlock()
		return
	}
	b.done = true
	callbacks := append([]Callback(nil), b.callbacks...)
	final := b.final
	b.mu.Unlock()

	for _, c := range callbacks {
		c.OnComplete()
	}
	if final != nil {
		final.OnComplete()
	}
	if s != nil {
		s.Retire(self)
	}
}
