package othello

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-othello/internal/anim"
	"github.com/vovakirdan/tui-othello/internal/core"
)

// CellView is one occupied cell in a Snapshot.
type CellView struct {
	Coord Coord
	PieceView
}

// Snapshot is a consistent, read-only view of a game for rendering.
type Snapshot struct {
	Width          int
	Height         int
	Cells          []CellView // Occupied cells in row-major order
	Turn           Team
	AITeam         Team
	White          int
	Black          int
	Winner         Team
	Over           bool
	MoveInProgress bool
	ValidMoves     []Coord
	Layout         Layout
}

// Draw reports whether the game ended with equal counts.
func (s Snapshot) Draw() bool {
	return s.Over && s.Winner == NoTeam
}

// At returns the view of the disc at c.
func (s Snapshot) At(c Coord) (CellView, bool) {
	if c.X < 1 || c.X > s.Width || c.Y < 1 || c.Y > s.Height {
		return CellView{}, false
	}
	// Cells is row-major and sparse; a linear scan is fine at board sizes.
	for _, cv := range s.Cells {
		if cv.Coord == c {
			return cv, true
		}
	}
	return CellView{}, false
}

// IsValid reports whether c is in the valid-move set.
func (s Snapshot) IsValid(c Coord) bool {
	for _, v := range s.ValidMoves {
		if v == c {
			return true
		}
	}
	return false
}

// Game owns the current board and rebuilds it on restart. It is the surface
// the presentation layer talks to.
type Game struct {
	id        string
	sched     anim.Scheduler
	settings  Settings
	logger    *log.Logger
	refresher Refresher

	mu    sync.RWMutex
	board *Board
}

// NewGame starts a standard game on sched. If the computer plays the opening
// team it moves immediately.
func NewGame(sched anim.Scheduler, s Settings, opts ...Option) *Game {
	o := buildOptions(opts)
	id := uuid.NewString()
	g := &Game{
		id:        id,
		sched:     sched,
		settings:  s,
		logger:    o.logger.With("game", id),
		refresher: o.refresher,
	}
	g.board = g.newBoard()
	g.logger.Info("game started", "opening", g.board.Turn(), "computer", s.AITeam)
	g.board.start()
	return g
}

func (g *Game) newBoard() *Board {
	return NewStandardBoard(g.sched, g.settings, WithLogger(g.logger), WithRefresher(g.refresher))
}

// ID returns the game's unique identifier.
func (g *Game) ID() string {
	return g.id
}

// Settings returns the parameters the game was created with.
func (g *Game) Settings() Settings {
	return g.settings
}

// Board returns the current board.
func (g *Game) Board() *Board {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board
}

// ValidMoves returns the legal coordinates for the team on turn.
func (g *Game) ValidMoves() []Coord {
	return g.Board().rules.ValidMoves()
}

// Move requests that team plays at c. See Board.RequestMove.
func (g *Game) Move(team Team, c Coord) bool {
	return g.Board().RequestMove(team, c)
}

// Restart discards the current board and sets up the opening position.
// Animations of the old board finish on their own but no longer affect play.
func (g *Game) Restart() {
	g.mu.Lock()
	old := g.board
	g.board = g.newBoard()
	b := g.board
	g.mu.Unlock()

	old.stop()
	g.logger.Info("game restarted")
	g.refresher.Refresh()
	b.start()
}

// Snapshot captures the current board for rendering.
func (g *Game) Snapshot() Snapshot {
	b := g.Board()

	b.mu.RLock()
	defer b.mu.RUnlock()

	s := Snapshot{
		Width:          b.width,
		Height:         b.height,
		Cells:          make([]CellView, 0, len(b.cells)),
		Turn:           b.turn,
		AITeam:         b.settings.AITeam,
		White:          b.white,
		Black:          b.black,
		Winner:         b.winner,
		Over:           b.over,
		MoveInProgress: b.moveInProgress,
		ValidMoves:     append([]Coord(nil), b.rules.valid...),
		Layout:         b.rules.layout,
	}
	for _, c := range b.Coords() {
		if p, ok := b.cells[c]; ok {
			s.Cells = append(s.Cells, CellView{Coord: c, PieceView: p.View()})
		}
	}
	return s
}

// Location returns where the disc in cv should be drawn in board space: its
// animated position while animating, its own cell otherwise.
func (s Snapshot) Location(cv CellView) core.Vector {
	if cv.Animating {
		return cv.PieceView.Location
	}
	return s.Layout.Cell(cv.Coord)
}
