package othello

import "github.com/vovakirdan/tui-othello/internal/core"

// Layout maps board coordinates to board-space positions used as animation
// endpoints. One unit is one cell; cell (1, 1) has its top-left corner at the
// origin. The presentation layer scales these to its own units.
type Layout struct {
	Width  int
	Height int
}

// Cell returns the top-left corner of c.
func (l Layout) Cell(c Coord) core.Vector {
	return core.Vec(float64(c.X-1), float64(c.Y-1))
}

// Spawn returns the off-board point in the info panel where a team's discs
// enter and leave: White near the top, Black near the bottom.
func (l Layout) Spawn(t Team) core.Vector {
	x := float64(l.Width) + 0.5
	if t == White {
		return core.Vec(x, 0.5)
	}
	return core.Vec(x, float64(l.Height)-1.5)
}
