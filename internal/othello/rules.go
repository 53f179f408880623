package othello

import (
	"time"

	"github.com/vovakirdan/tui-othello/internal/anim"
	"github.com/vovakirdan/tui-othello/internal/core"
)

// Rules checks legality, resolves captures, keeps the valid-move cache and
// picks the computer's moves. Its state is guarded by the board's mutex;
// unexported methods ending in Locked, as well as isLegal, lines and apply,
// expect the caller to hold it.
type Rules struct {
	board    *Board
	sched    anim.Scheduler
	layout   Layout
	duration time.Duration
	stagger  time.Duration

	valid []Coord
}

func newRules(b *Board, sched anim.Scheduler, layout Layout, duration, stagger time.Duration) *Rules {
	return &Rules{
		board:    b,
		sched:    sched,
		layout:   layout,
		duration: duration,
		stagger:  stagger,
	}
}

// Layout returns the board-space layout used for animation endpoints.
func (r *Rules) Layout() Layout {
	return r.layout
}

// IsLegal reports whether team may play at c now: it is team's turn, c is on
// the board and empty, and at least one capture line runs from c.
func (r *Rules) IsLegal(team Team, c Coord) bool {
	r.board.mu.RLock()
	defer r.board.mu.RUnlock()
	return r.isLegal(team, c)
}

func (r *Rules) isLegal(team Team, c Coord) bool {
	b := r.board
	if team == NoTeam || team != b.turn || !b.Contains(c) {
		return false
	}
	if _, occupied := b.cells[c]; occupied {
		return false
	}
	for _, d := range Directions {
		if r.lineLength(team, c, d) > 0 {
			return true
		}
	}
	return false
}

// Lines returns the capture lines a disc of team placed at c would close,
// in Directions order. Turn ownership is not checked.
func (r *Rules) Lines(team Team, c Coord) []Line {
	r.board.mu.RLock()
	defer r.board.mu.RUnlock()
	return r.lines(team, c)
}

func (r *Rules) lines(team Team, c Coord) []Line {
	var lines []Line
	for _, d := range Directions {
		if n := r.lineLength(team, c, d); n > 0 {
			lines = append(lines, Line{Dir: d, Length: n})
		}
	}
	return lines
}

// lineLength walks from c in direction d. It returns the number of opposing
// discs passed before reaching one of team's discs, or 0 when the run is
// empty or ends at an empty cell or the board edge.
func (r *Rules) lineLength(team Team, c Coord, d Direction) int {
	n := 0
	cur := c
	for {
		cur = cur.Step(d)
		p, ok := r.board.cells[cur]
		if !ok {
			return 0
		}
		if p.Team() == team {
			return n
		}
		n++
	}
}

// CaptureTotal returns the number of discs team would flip by playing at c.
func (r *Rules) CaptureTotal(team Team, c Coord) int {
	r.board.mu.RLock()
	defer r.board.mu.RUnlock()
	return r.captureTotal(team, c)
}

func (r *Rules) captureTotal(team Team, c Coord) int {
	if _, occupied := r.board.cells[c]; occupied || !r.board.Contains(c) {
		return 0
	}
	total := 0
	for _, ln := range r.lines(team, c) {
		total += ln.Length
	}
	return total
}

// MoveScore returns the computer's rating of c for team: the sum over
// qualifying lines of the steps from c to the anchor disc.
func (r *Rules) MoveScore(team Team, c Coord) int {
	r.board.mu.RLock()
	defer r.board.mu.RUnlock()
	return r.moveScore(team, c)
}

func (r *Rules) moveScore(team Team, c Coord) int {
	if _, occupied := r.board.cells[c]; occupied || !r.board.Contains(c) {
		return 0
	}
	score := 0
	for _, ln := range r.lines(team, c) {
		score += ln.Steps()
	}
	return score
}

// ValidMoves returns the cached legal coordinates for the team on turn, in
// row-major order.
func (r *Rules) ValidMoves() []Coord {
	r.board.mu.RLock()
	defer r.board.mu.RUnlock()
	return append([]Coord(nil), r.valid...)
}

// rebuildValidMovesLocked recomputes the cache for the current turn.
func (r *Rules) rebuildValidMovesLocked() {
	r.valid = r.valid[:0]
	for _, c := range r.board.Coords() {
		if r.isLegal(r.board.turn, c) {
			r.valid = append(r.valid, c)
		}
	}
}

// BestMove picks team's greedy move: the empty coordinate with the largest
// move score, the first one in row-major order on ties. It reports false
// when team has no legal move.
func (r *Rules) BestMove(team Team) (Coord, bool) {
	r.board.mu.RLock()
	defer r.board.mu.RUnlock()

	var best Coord
	bestScore := 0
	for _, c := range r.board.Coords() {
		if score := r.moveScore(team, c); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best, bestScore > 0
}

// PlayAI submits the computer's move. With no legal move the computer
// passes implicitly: nothing is submitted and false is returned.
func (r *Rules) PlayAI() bool {
	team := r.board.AITeam()
	c, ok := r.BestMove(team)
	if !ok {
		r.board.logger.Debug("computer has no legal move", "team", team)
		return false
	}
	r.board.logger.Debug("computer move", "team", team, "at", c)
	return r.board.RequestMove(team, c)
}

// apply places team's disc at c and flips every captured disc. All logical
// changes, including the new counts and outcome, are made before any
// animation starts. Returns the number of flipped discs.
func (r *Rules) apply(team Team, c Coord) int {
	b := r.board
	lines := r.lines(team, c)

	placed := NewPiece(team)
	arrive := r.newMove(0, r.layout.Spawn(team), r.layout.Cell(c), team)
	arrive.SetFinalCallback(anim.OnComplete(func() { b.settle(placed) }))
	placed.enqueue(arrive)
	b.cells[c] = placed

	flipped := make([]*Piece, 0, 8)
	for _, ln := range lines {
		cur := c
		for i := 0; i < ln.Length; i++ {
			cur = cur.Step(ln.Dir)
			p := b.cells[cur]
			old := p.Team()
			if old == team {
				continue
			}

			leave := r.newMove(time.Duration(len(flipped))*r.stagger, r.layout.Cell(cur), r.layout.Spawn(old), old)
			back := r.newMove(0, r.layout.Spawn(team), r.layout.Cell(cur), team)
			back.SetFinalCallback(anim.OnComplete(func() { b.settle(p) }))

			p.setTeam(team)
			p.enqueue(leave, back)
			flipped = append(flipped, p)
		}
	}

	b.evaluateLocked()

	r.startNext(placed)
	for _, p := range flipped {
		r.startNext(p)
	}
	return len(flipped)
}

// newMove builds a disc animation that re-evaluates the board on completion.
func (r *Rules) newMove(delay time.Duration, from, to core.Vector, team Team) *anim.Move {
	return anim.NewMove(r.duration, delay, from, to, team.Color(), anim.OnComplete(r.board.animationDone))
}

// startNext submits p's next queued animation unless one is already running.
// When it completes, the following one is started.
func (r *Rules) startNext(p *Piece) {
	m := p.advance()
	if m == nil {
		return
	}
	m.AddCallback(anim.OnComplete(func() {
		p.finish(m)
		r.startNext(p)
	}))
	r.sched.Submit(m)
}
