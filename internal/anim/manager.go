package anim

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultInterval is the scheduler tick interval when none is configured.
const DefaultInterval = time.Second / 120

// Manager advances every active animation once per tick.
//
// Submissions and retirements are staged in pending sets and applied at the
// start of the next tick, before any animation is updated. An animation that
// retires itself from its own completion callback therefore never mutates the
// active set while it is being iterated.
type Manager struct {
	clock    Clock
	interval time.Duration
	logger   *log.Logger

	mu        sync.Mutex
	active    []Animation
	activeSet map[Animation]struct{}
	admit     []Animation
	admitSet  map[Animation]struct{}
	retire    map[Animation]struct{}

	ticks atomic.Uint64
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the time source. Defaults to SystemClock.
func WithClock(c Clock) Option {
	return func(m *Manager) {
		m.clock = c
	}
}

// WithInterval sets the tick interval used by Run.
func WithInterval(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager creates an idle scheduler. Call Run to start ticking.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		clock:     SystemClock{},
		interval:  DefaultInterval,
		logger:    log.New(io.Discard),
		activeSet: make(map[Animation]struct{}),
		admitSet:  make(map[Animation]struct{}),
		retire:    make(map[Animation]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Submit stages a for admission on the next tick.
// Submitting an instance that is already pending or active is a no-op.
func (m *Manager) Submit(a Animation) {
	if a == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.admitSet[a]; ok {
		return
	}
	if _, ok := m.activeSet[a]; ok {
		return
	}
	m.admitSet[a] = struct{}{}
	m.admit = append(m.admit, a)
}

// Retire stages a for removal on the next tick.
// Retiring an animation that is not active is a no-op.
func (m *Manager) Retire(a Animation) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.activeSet[a]; !ok {
		return
	}
	m.retire[a] = struct{}{}
}

// Tick runs one scheduler pass: admit pending, retire pending, then update
// every active animation with the current clock reading.
func (m *Manager) Tick() {
	m.mu.Lock()
	for _, a := range m.admit {
		m.active = append(m.active, a)
		m.activeSet[a] = struct{}{}
	}
	if len(m.retire) > 0 {
		kept := make([]Animation, 0, len(m.active))
		for _, a := range m.active {
			if _, ok := m.retire[a]; ok {
				delete(m.activeSet, a)
				continue
			}
			kept = append(kept, a)
		}
		m.active = kept
	}
	m.admit = m.admit[:0]
	clear(m.admitSet)
	clear(m.retire)

	batch := make([]Animation, len(m.active))
	copy(batch, m.active)
	m.mu.Unlock()

	now := m.clock.Now()
	for _, a := range batch {
		a.Update(now, m)
	}
	m.ticks.Add(1)
}

// Run ticks every interval until ctx is cancelled.
func (m *Manager) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Debug("animation scheduler started", "interval", m.interval)
	for {
		select {
		case <-ctx.Done():
			m.logger.Debug("animation scheduler stopped", "ticks", m.ticks.Load())
			return nil
		case <-ticker.C:
			m.Tick()
		}
	}
}

// Active returns the number of animations currently being updated.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.active)
}

// Pending returns the number of animations waiting for admission.
func (m *Manager) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.admit)
}

// Idle reports whether nothing is active or waiting for admission.
// Retirements staged for the next tick are ignored.
func (m *Manager) Idle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.admit) == 0 && len(m.active) == len(m.retire)
}

// Ticks returns how many passes have run.
func (m *Manager) Ticks() uint64 {
	return m.ticks.Load()
}
