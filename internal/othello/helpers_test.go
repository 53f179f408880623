package othello

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-othello/internal/anim"
)

func newTestManager() (*anim.Manager, *anim.ManualClock) {
	clock := anim.NewManualClock(time.Unix(0, 0))
	return anim.NewManager(anim.WithClock(clock)), clock
}

// hotSeat returns settings for two human players, White opening.
func hotSeat() Settings {
	s := DefaultSettings()
	s.AITeam = NoTeam
	return s
}

// boardFrom builds a board from rows of 'W', 'B' and '.'.
func boardFrom(t *testing.T, sched anim.Scheduler, s Settings, rows ...string) *Board {
	t.Helper()

	b := NewBoard(sched, len(rows[0]), len(rows), s)
	for y, row := range rows {
		for x, r := range row {
			var team Team
			switch r {
			case 'W':
				team = White
			case 'B':
				team = Black
			case '.':
				continue
			default:
				t.Fatalf("unexpected cell %q at (%d,%d)", r, x+1, y+1)
			}
			if err := b.PlacePiece(At(x+1, y+1), NewPiece(team)); err != nil {
				t.Fatalf("PlacePiece failed: %v", err)
			}
		}
	}

	b.mu.Lock()
	b.rules.rebuildValidMovesLocked()
	b.mu.Unlock()
	return b
}

// moves returns p's running animation followed by its queue.
func moves(p *Piece) []*anim.Move {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []*anim.Move
	if p.current != nil {
		out = append(out, p.current)
	}
	return append(out, p.queue...)
}

// drain advances the clock and ticks until the scheduler is idle and no
// move is in progress on b.
func drain(t *testing.T, mgr *anim.Manager, clock *anim.ManualClock, b *Board) {
	t.Helper()

	for i := 0; i < 10000; i++ {
		if mgr.Idle() && !b.MoveInProgress() {
			return
		}
		clock.Advance(10 * time.Millisecond)
		mgr.Tick()
	}
	t.Fatal("animations did not settle")
}

// referenceFlips counts the discs team would flip at c by walking the grid
// directly, independent of Rules.
func referenceFlips(b *Board, team Team, c Coord) int {
	flips, _ := referenceScan(b, team, c)
	return flips
}

// referenceSteps sums the steps to the anchor over every capturing direction.
func referenceSteps(b *Board, team Team, c Coord) int {
	flips, lines := referenceScan(b, team, c)
	return flips + lines
}

func referenceScan(b *Board, team Team, c Coord) (flips, lines int) {
	deltas := [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	for _, d := range deltas {
		run := 0
		x, y := c.X+d[0], c.Y+d[1]
		for {
			owner := b.TeamAt(At(x, y))
			if owner == NoTeam {
				run = 0
				break
			}
			if owner == team {
				break
			}
			run++
			x, y = x+d[0], y+d[1]
		}
		if run > 0 {
			flips += run
			lines++
		}
	}
	return flips, lines
}
