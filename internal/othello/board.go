package othello

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-othello/internal/anim"
)

// Size is the width and height of the standard board.
const Size = 8

// ErrOutOfRange is returned when a coordinate lies outside the board.
var ErrOutOfRange = errors.New("othello: coordinate out of range")

// Refresher is notified whenever the board changes in a way the
// presentation layer should redraw. Refresh must not block.
type Refresher interface {
	Refresh()
}

// RefreshFunc adapts a function to Refresher.
type RefreshFunc func()

// Refresh calls f.
func (f RefreshFunc) Refresh() {
	f()
}

// Settings holds the game parameters a board is built with.
type Settings struct {
	StartingTurn   Team          // Team that moves first
	AITeam         Team          // Team played by the computer; NoTeam for two humans
	MoveDuration   time.Duration // Travel time of each disc animation
	CaptureStagger time.Duration // Extra delay per captured disc so captures animate in sequence
}

// DefaultSettings returns the standard game: White opens, computer plays Black.
func DefaultSettings() Settings {
	return Settings{
		StartingTurn:   White,
		AITeam:         Black,
		MoveDuration:   275 * time.Millisecond,
		CaptureStagger: 45 * time.Millisecond,
	}
}

// Option configures a Board or Game.
type Option func(*options)

type options struct {
	logger    *log.Logger
	refresher Refresher
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRefresher sets the presentation refresh hook.
func WithRefresher(r Refresher) Option {
	return func(o *options) {
		o.refresher = r
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:    log.New(io.Discard),
		refresher: RefreshFunc(func() {}),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.refresher == nil {
		o.refresher = RefreshFunc(func() {})
	}
	return o
}

// Board is the authoritative game state.
//
// A move is accepted by RequestMove, resolved logically at once, and then
// held "in progress" until every animation it spawned has completed. Only
// then does the turn pass, and if the new turn belongs to the computer its
// reply is computed and submitted immediately.
type Board struct {
	width     int
	height    int
	settings  Settings
	rules     *Rules
	logger    *log.Logger
	refresher Refresher

	mu             sync.RWMutex
	cells          map[Coord]*Piece
	turn           Team
	winner         Team
	over           bool
	moveInProgress bool
	stopped        bool
	white          int
	black          int
}

// NewBoard creates an empty width×height board whose animations run on sched.
func NewBoard(sched anim.Scheduler, width, height int, s Settings, opts ...Option) *Board {
	o := buildOptions(opts)
	if s.StartingTurn == NoTeam {
		s.StartingTurn = White
	}

	b := &Board{
		width:     width,
		height:    height,
		settings:  s,
		logger:    o.logger,
		refresher: o.refresher,
		cells:     make(map[Coord]*Piece),
		turn:      s.StartingTurn,
	}
	b.rules = newRules(b, sched, Layout{Width: width, Height: height}, s.MoveDuration, s.CaptureStagger)
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Rules returns the board's rules engine.
func (b *Board) Rules() *Rules {
	return b.rules
}

// AITeam returns the computer-controlled team, or NoTeam.
func (b *Board) AITeam() Team {
	return b.settings.AITeam
}

// Contains reports whether c lies on the board.
func (b *Board) Contains(c Coord) bool {
	return c.X >= 1 && c.X <= b.width && c.Y >= 1 && c.Y <= b.height
}

// Coords returns every coordinate in row-major order.
func (b *Board) Coords() []Coord {
	coords := make([]Coord, 0, b.width*b.height)
	for y := 1; y <= b.height; y++ {
		for x := 1; x <= b.width; x++ {
			coords = append(coords, Coord{X: x, Y: y})
		}
	}
	return coords
}

// Turn returns the team to move.
func (b *Board) Turn() Team {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.turn
}

// Winner returns the decided winner, or NoTeam while the game continues or
// after a draw.
func (b *Board) Winner() Team {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.winner
}

// Over reports whether the game has ended (win or draw).
func (b *Board) Over() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.over
}

// MoveInProgress reports whether an accepted move is still animating.
func (b *Board) MoveInProgress() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.moveInProgress
}

// Counts returns the number of white and black discs.
func (b *Board) Counts() (white, black int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.white, b.black
}

// Piece returns the piece at c. Empty and out-of-range cells report false.
func (b *Board) Piece(c Coord) (*Piece, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.cells[c]
	return p, ok
}

// TeamAt returns the owner of the disc at c, or NoTeam.
func (b *Board) TeamAt(c Coord) Team {
	if p, ok := b.Piece(c); ok {
		return p.Team()
	}
	return NoTeam
}

// PlacePiece puts piece at c, replacing whatever was there, and recounts.
// It does not evaluate the winner; setup code calls it piece by piece.
func (b *Board) PlacePiece(c Coord, piece *Piece) error {
	b.mu.Lock()
	if !b.Contains(c) {
		b.mu.Unlock()
		return ErrOutOfRange
	}
	b.placeLocked(c, piece)
	b.mu.Unlock()

	b.refresher.Refresh()
	return nil
}

func (b *Board) placeLocked(c Coord, piece *Piece) {
	b.cells[c] = piece
	b.recountLocked()
}

// RequestMove plays team at c. The request is ignored, and false returned,
// while another move is in progress or when the move is illegal for team.
// Accepting a move does not pass the turn; settlement does.
func (b *Board) RequestMove(team Team, c Coord) bool {
	b.mu.Lock()
	if b.stopped || b.moveInProgress || !b.rules.isLegal(team, c) {
		b.mu.Unlock()
		return false
	}
	b.moveInProgress = true
	flipped := b.rules.apply(team, c)
	white, black, winner, over := b.white, b.black, b.winner, b.over
	b.mu.Unlock()

	b.logger.Debug("move accepted", "team", team, "at", c, "flipped", flipped, "white", white, "black", black)
	if over {
		b.logger.Info("game over", "winner", winner, "white", white, "black", black)
	}
	b.refresher.Refresh()
	return true
}

// RecomputeCounts rescans every cell, stores the outcome and returns it.
// See evaluate for the rules.
func (b *Board) RecomputeCounts() (winner Team, over bool) {
	b.mu.Lock()
	b.evaluateLocked()
	winner, over = b.winner, b.over
	b.mu.Unlock()

	b.refresher.Refresh()
	return winner, over
}

// recountLocked rescans the cells and updates the counts.
func (b *Board) recountLocked() (winner Team, over bool) {
	white, black := 0, 0
	for _, p := range b.cells {
		switch p.Team() {
		case White:
			white++
		case Black:
			black++
		}
	}
	b.white, b.black = white, black
	return b.evaluate(white, black)
}

// evaluate decides the game from the counts. A team with no discs loses even
// before the board is full. On a full board the team with strictly more
// discs wins and equal counts are a draw: over, with no winner.
func (b *Board) evaluate(white, black int) (Team, bool) {
	switch {
	case white == 0 && black == 0:
		return NoTeam, false
	case white == 0:
		return Black, true
	case black == 0:
		return White, true
	case white+black == b.width*b.height:
		switch {
		case white > black:
			return White, true
		case black > white:
			return Black, true
		default:
			return NoTeam, true
		}
	}
	return NoTeam, false
}

func (b *Board) evaluateLocked() {
	b.winner, b.over = b.recountLocked()
}

// animationDone runs when any disc animation completes.
func (b *Board) animationDone() {
	b.mu.Lock()
	b.evaluateLocked()
	b.mu.Unlock()

	b.refresher.Refresh()
}

// settle runs when piece has worked through its animation queue. The turn
// passes only once no disc of the moving team has anything queued or running.
func (b *Board) settle(piece *Piece) {
	b.mu.Lock()
	if b.stopped || !b.moveInProgress {
		b.mu.Unlock()
		return
	}
	mover := b.turn
	for _, p := range b.cells {
		if p.Team() == mover && p.Animating() {
			b.mu.Unlock()
			return
		}
	}

	b.turn = mover.Opponent()
	b.rules.rebuildValidMovesLocked()
	b.moveInProgress = false
	next, over := b.turn, b.over
	valid := len(b.rules.valid)
	b.mu.Unlock()

	b.logger.Debug("turn settled", "mover", mover, "last", piece.Team(), "next", next, "valid", valid)
	b.refresher.Refresh()

	if !over && next != NoTeam && next == b.settings.AITeam {
		b.rules.PlayAI()
	}
}

// start kicks off play: if the computer moves first it moves now.
func (b *Board) start() {
	b.mu.Lock()
	b.rules.rebuildValidMovesLocked()
	turn := b.turn
	b.mu.Unlock()

	if turn != NoTeam && turn == b.settings.AITeam {
		b.rules.PlayAI()
	}
}

// stop detaches the board from play. Animations already submitted still run
// to completion, but no further move is accepted and the turn never passes.
func (b *Board) stop() {
	b.mu.Lock()
	b.stopped = true
	b.mu.Unlock()
}
