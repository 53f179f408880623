package anim

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-othello/internal/core"
)

// Move slides a disc in a straight line between two board-space points.
//
// Progress is measured from the animation's own start instant:
//
//	progress = clamp((elapsed - delay) / duration, 0, 1)
//
// so the scheduler's tick rate only affects smoothness. Once progress reaches
// 1 the location is snapped to the end point and the animation completes.
type Move struct {
	Base

	duration time.Duration
	delay    time.Duration
	from     core.Vector
	to       core.Vector
	color    core.Color

	posMu    sync.RWMutex
	location core.Vector
	progress float64
}

// NewMove creates a move animation. color is the display color of the disc
// while it travels.
func NewMove(duration, delay time.Duration, from, to core.Vector, color core.Color, callbacks ...Callback) *Move {
	m := &Move{
		duration: duration,
		delay:    delay,
		from:     from,
		to:       to,
		color:    color,
		location: from,
	}
	for _, c := range callbacks {
		m.AddCallback(c)
	}
	return m
}

// Update implements Animation.
func (m *Move) Update(now time.Time, s Scheduler) {
	if m.Done() {
		return
	}

	start := m.Begin(now)
	p := m.ProgressAt(now.Sub(start))

	m.posMu.Lock()
	m.progress = p
	if p >= 1 {
		m.location = m.to
	} else {
		m.location = m.from.Lerp(m.to, p)
	}
	m.posMu.Unlock()

	if p >= 1 {
		m.Complete(m, s)
	}
}

// ProgressAt returns the progress after elapsed time since the start instant.
// It is non-decreasing in elapsed and exactly 1 at and after delay+duration.
func (m *Move) ProgressAt(elapsed time.Duration) float64 {
	active := elapsed - m.delay
	if active <= 0 {
		if m.duration <= 0 && active == 0 {
			return 1
		}
		return 0
	}
	if m.duration <= 0 || active >= m.duration {
		return 1
	}
	return core.ClampF(float64(active)/float64(m.duration), 0, 1)
}

// Location returns the most recently computed position.
func (m *Move) Location() core.Vector {
	m.posMu.RLock()
	defer m.posMu.RUnlock()
	return m.location
}

// Progress returns the most recently computed progress in [0, 1].
func (m *Move) Progress() float64 {
	m.posMu.RLock()
	defer m.posMu.RUnlock()
	return m.progress
}

// Color returns the display color of the travelling disc.
func (m *Move) Color() core.Color {
	return m.color
}

// From returns the start point.
func (m *Move) From() core.Vector {
	return m.from
}

// To returns the end point.
func (m *Move) To() core.Vector {
	return m.to
}

// Duration returns the travel time, excluding the delay.
func (m *Move) Duration() time.Duration {
	return m.duration
}

// Delay returns the wait before the disc starts moving.
func (m *Move) Delay() time.Duration {
	return m.delay
}
