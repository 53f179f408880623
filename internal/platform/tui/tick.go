// Package tui provides the Bubble Tea frontend for othello.
// It handles the terminal UI loop, input mapping, and drawing the board.
package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger a redraw while discs are moving.
type FrameMsg time.Time

// RefreshMsg is sent when the game reports a change.
type RefreshMsg struct{}

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Refresher forwards game refresh requests to the Bubble Tea loop.
// Refresh never blocks: requests arriving while one is pending coalesce.
type Refresher struct {
	ch   chan struct{}
	done chan struct{}
	once sync.Once
}

// NewRefresher creates a refresher.
func NewRefresher() *Refresher {
	return &Refresher{
		ch:   make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Close releases any pending Wait.
func (r *Refresher) Close() {
	r.once.Do(func() { close(r.done) })
}

// Refresh implements othello.Refresher.
func (r *Refresher) Refresh() {
	select {
	case r.ch <- struct{}{}:
	default:
	}
}

// Wait returns a command that delivers the next RefreshMsg.
func (r *Refresher) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-r.ch:
			return RefreshMsg{}
		case <-r.done:
			return nil
		}
	}
}
