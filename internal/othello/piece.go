package othello

import (
	"sync"

	"github.com/vovakirdan/tui-othello/internal/anim"
	"github.com/vovakirdan/tui-othello/internal/core"
)

// Piece is a disc placed on the board. A capture flips its team in place, so
// the piece and its animation queue keep their identity.
//
// Animations queued on a piece run strictly one after another: the next one is
// only started once the current one has completed.
type Piece struct {
	mu      sync.Mutex
	team    Team
	queue   []*anim.Move
	current *anim.Move
}

// NewPiece creates a piece owned by team.
func NewPiece(team Team) *Piece {
	return &Piece{team: team}
}

// Team returns the current owner.
func (p *Piece) Team() Team {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.team
}

func (p *Piece) setTeam(t Team) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.team = t
}

func (p *Piece) enqueue(moves ...*anim.Move) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queue = append(p.queue, moves...)
}

// advance promotes the head of the queue to current if nothing is running.
// Returns nil when an animation is already running or the queue is empty.
func (p *Piece) advance() *anim.Move {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current != nil || len(p.queue) == 0 {
		return nil
	}
	p.current = p.queue[0]
	p.queue[0] = nil
	p.queue = p.queue[1:]
	return p.current
}

// finish clears current if it is m.
func (p *Piece) finish(m *anim.Move) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == m {
		p.current = nil
	}
}

// Animating reports whether an animation is running or queued.
func (p *Piece) Animating() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current != nil || len(p.queue) > 0
}

// PieceView is what the presentation layer needs to draw one disc.
type PieceView struct {
	Team      Team        // Logical owner
	Animating bool        // Whether an animation is running or queued
	Location  core.Vector // Interpolated board-space position while animating
	Color     core.Color  // Display color while animating
	Queued    int         // Animations waiting to run
}

// View returns the piece's render state. While an animation is pending but
// not yet running, the head of the queue supplies its start point and color.
func (p *Piece) View() PieceView {
	p.mu.Lock()
	defer p.mu.Unlock()

	v := PieceView{Team: p.team, Color: p.team.Color(), Queued: len(p.queue)}
	switch {
	case p.current != nil:
		v.Animating = true
		v.Location = p.current.Location()
		v.Color = p.current.Color()
	case len(p.queue) > 0:
		v.Animating = true
		v.Location = p.queue[0].Location()
		v.Color = p.queue[0].Color()
	}
	return v
}
