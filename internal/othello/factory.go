package othello

import "github.com/vovakirdan/tui-othello/internal/anim"

// NewStandardBoard creates a Size×Size board in the opening position: four
// discs in the centre, each diagonal pair owned by one team.
func NewStandardBoard(sched anim.Scheduler, s Settings, opts ...Option) *Board {
	b := NewBoard(sched, Size, Size, s, opts...)
	cx, cy := Size/2, Size/2

	b.mu.Lock()
	b.placeLocked(At(cx, cy), NewPiece(Black))
	b.placeLocked(At(cx+1, cy), NewPiece(White))
	b.placeLocked(At(cx, cy+1), NewPiece(White))
	b.placeLocked(At(cx+1, cy+1), NewPiece(Black))
	b.rules.rebuildValidMovesLocked()
	b.mu.Unlock()
	return b
}

// NewTestBoard creates a width×height board with every edge cell White,
// every interior cell Black and the cell (width/2, height/2) left empty.
// Playing White at the hole captures along every direction.
func NewTestBoard(sched anim.Scheduler, width, height int, s Settings, opts ...Option) *Board {
	b := NewBoard(sched, width, height, s, opts...)
	hole := At(width/2, height/2)

	b.mu.Lock()
	for _, c := range b.Coords() {
		switch {
		case c == hole:
			continue
		case c.X == 1 || c.Y == 1 || c.X == width || c.Y == height:
			b.placeLocked(c, NewPiece(White))
		default:
			b.placeLocked(c, NewPiece(Black))
		}
	}
	b.rules.rebuildValidMovesLocked()
	b.mu.Unlock()
	return b
}
