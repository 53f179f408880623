package othello

import (
	"reflect"
	"testing"
)

func TestLines(t *testing.T) {
	mgr, _ := newTestManager()
	b := NewStandardBoard(mgr, hotSeat())

	got := b.Rules().Lines(White, At(4, 3))
	want := []Line{{Dir: Direction{0, 1}, Length: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lines(white, d3) = %+v, expected %+v", got, want)
	}

	if got := b.Rules().Lines(White, At(1, 1)); len(got) != 0 {
		t.Errorf("Lines(white, a1) = %+v, expected none", got)
	}
}

func TestOpeningValidMoves(t *testing.T) {
	mgr, _ := newTestManager()
	b := NewStandardBoard(mgr, hotSeat())

	// Row-major order.
	want := []Coord{At(4, 3), At(3, 4), At(6, 5), At(5, 6)}
	if got := b.Rules().ValidMoves(); !reflect.DeepEqual(got, want) {
		t.Errorf("ValidMoves() = %v, expected %v", got, want)
	}
	for _, c := range want {
		if !b.Rules().IsLegal(White, c) {
			t.Errorf("IsLegal(white, %v) = false", c)
		}
		if b.Rules().IsLegal(Black, c) {
			t.Errorf("IsLegal(black, %v) = true off turn", c)
		}
	}
}

func TestBestMove(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want Coord
	}{
		{
			name: "largest capture",
			rows: []string{".WB.WWB"},
			want: At(4, 1),
		},
		{
			name: "tie goes to first in row",
			rows: []string{".WB..WB"},
			want: At(1, 1),
		},
		{
			name: "tie goes to earlier row",
			rows: []string{
				"....WB",
				".WB...",
			},
			want: At(4, 1),
		},
		{
			name: "lines add up",
			rows: []string{
				".B....",
				".W....",
				"..WWB.",
				"......",
			},
			want: At(2, 3),
		},
		{
			name: "two short lines beat one long line",
			rows: []string{
				".WWB....",
				"........",
				"........",
				"........",
				".WB.....",
				"W.......",
				"B.......",
			},
			want: At(1, 5),
		},
		{
			name: "long line beats two short lines",
			rows: []string{
				".WWWWB..",
				"........",
				"........",
				"........",
				".WB.....",
				"W.......",
				"B.......",
			},
			want: At(1, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr, _ := newTestManager()
			b := boardFrom(t, mgr, hotSeat(), tt.rows...)

			got, ok := b.Rules().BestMove(Black)
			if !ok {
				t.Fatal("BestMove() found no move")
			}
			if got != tt.want {
				t.Errorf("BestMove() = %v, expected %v", got, tt.want)
			}

			// The choice maximises the steps to the anchors.
			best := referenceSteps(b, Black, got)
			if score := b.Rules().MoveScore(Black, got); score != best {
				t.Errorf("MoveScore(%v) = %d, expected %d", got, score, best)
			}
			for _, c := range b.Coords() {
				if _, occupied := b.Piece(c); occupied {
					continue
				}
				if n := referenceSteps(b, Black, c); n > best {
					t.Errorf("%v scores %d, more than chosen %v (%d)", c, n, got, best)
				}
			}
		})
	}
}

func TestPlayAIPassesWithoutMoves(t *testing.T) {
	mgr, _ := newTestManager()
	s := hotSeat()
	s.StartingTurn = Black
	s.AITeam = Black
	b := boardFrom(t, mgr, s, "BB..", "....")

	if _, ok := b.Rules().BestMove(Black); ok {
		t.Fatal("BestMove() found a move on a board without opponents")
	}
	if b.Rules().PlayAI() {
		t.Error("PlayAI() submitted a move")
	}
	if b.MoveInProgress() || mgr.Pending() != 0 {
		t.Error("implicit pass changed the board")
	}
}

func TestPlayAISubmitsBestMove(t *testing.T) {
	mgr, clock := newTestManager()
	s := hotSeat()
	s.StartingTurn = Black
	s.AITeam = Black
	b := boardFrom(t, mgr, s, ".WB.WWB")

	if !b.Rules().PlayAI() {
		t.Fatal("PlayAI() did not move")
	}
	if got := b.TeamAt(At(4, 1)); got != Black {
		t.Errorf("TeamAt(d1) = %v, expected black", got)
	}
	if w, bl := b.Counts(); w != 1 || bl != 5 {
		t.Errorf("counts = %d/%d, expected 1/5", w, bl)
	}

	drain(t, mgr, clock, b)
	if got := b.Turn(); got != White {
		t.Errorf("Turn() = %v, expected white", got)
	}
}
