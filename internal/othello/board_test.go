package othello

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"
)

func TestOpeningCapture(t *testing.T) {
	mgr, clock := newTestManager()
	b := NewStandardBoard(mgr, hotSeat())

	if w, bl := b.Counts(); w != 2 || bl != 2 {
		t.Fatalf("opening counts = %d/%d, expected 2/2", w, bl)
	}

	if !b.RequestMove(White, At(4, 3)) {
		t.Fatal("expected d3 to be accepted for White")
	}

	// Capture resolution is immediate.
	if w, bl := b.Counts(); w != 4 || bl != 1 {
		t.Errorf("counts after d3 = %d/%d, expected 4/1", w, bl)
	}
	if got := b.TeamAt(At(4, 4)); got != White {
		t.Errorf("TeamAt(d4) = %v, expected white", got)
	}
	if !b.MoveInProgress() {
		t.Error("expected move in progress right after acceptance")
	}
	if got := b.Turn(); got != White {
		t.Errorf("turn passed before animations finished: %v", got)
	}

	drain(t, mgr, clock, b)

	if got := b.Turn(); got != Black {
		t.Errorf("Turn() after settling = %v, expected black", got)
	}
	if b.MoveInProgress() {
		t.Error("move still in progress after settling")
	}
	if len(b.Rules().ValidMoves()) == 0 {
		t.Error("expected valid moves for black")
	}
}

func TestIllegalMoveIgnored(t *testing.T) {
	tests := []struct {
		name  string
		team  Team
		coord Coord
	}{
		{"wrong team", Black, At(3, 4)},
		{"no team", NoTeam, At(4, 3)},
		{"occupied", White, At(4, 4)},
		{"no capture", White, At(1, 1)},
		{"adjacent without anchor", White, At(6, 6)},
		{"off board low", White, At(0, 0)},
		{"off board high", White, At(9, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr, _ := newTestManager()
			b := NewStandardBoard(mgr, hotSeat())

			if b.RequestMove(tt.team, tt.coord) {
				t.Fatalf("RequestMove(%v, %v) accepted", tt.team, tt.coord)
			}
			if w, bl := b.Counts(); w != 2 || bl != 2 {
				t.Errorf("counts changed to %d/%d", w, bl)
			}
			if b.MoveInProgress() {
				t.Error("illegal move set move in progress")
			}
			if got := mgr.Pending(); got != 0 {
				t.Errorf("Pending() = %d, expected no animations", got)
			}
			if b.Turn() != White {
				t.Errorf("turn changed to %v", b.Turn())
			}
		})
	}
}

func TestSecondMoveRejectedWhileInProgress(t *testing.T) {
	mgr, clock := newTestManager()
	g := NewGame(mgr, hotSeat())

	if !g.Move(White, At(4, 3)) {
		t.Fatal("first move rejected")
	}
	before := g.Snapshot()

	// Both a move for the same team and for the opponent are ignored.
	if g.Move(White, At(3, 4)) {
		t.Error("second white move accepted during animation")
	}
	if g.Move(Black, At(3, 3)) {
		t.Error("black move accepted during animation")
	}

	after := g.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("snapshot changed by rejected moves:\nbefore %+v\nafter  %+v", before, after)
	}

	drain(t, mgr, clock, g.Board())
	if !g.Move(Black, At(3, 3)) {
		t.Error("black move rejected after settling")
	}
}

func TestTurnWaitsForMoverAnimations(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		mgr, clock := newTestManager()
		b := NewStandardBoard(mgr, hotSeat())
		rng := rand.New(rand.NewSource(seed))

		for move := 0; move < 12; move++ {
			valid := b.Rules().ValidMoves()
			if len(valid) == 0 {
				break
			}
			mover := b.Turn()
			if !b.RequestMove(mover, valid[rng.Intn(len(valid))]) {
				t.Fatalf("seed %d: valid move rejected", seed)
			}

			for i := 0; b.MoveInProgress(); i++ {
				if i > 10000 {
					t.Fatalf("seed %d: move never settled", seed)
				}
				clock.Advance(time.Duration(rng.Intn(60)) * time.Millisecond)
				mgr.Tick()

				animating := false
				for _, c := range b.Coords() {
					if p, ok := b.Piece(c); ok && p.Team() == mover && p.Animating() {
						animating = true
						break
					}
				}
				if animating && (b.Turn() != mover || !b.MoveInProgress()) {
					t.Fatalf("seed %d: turn passed to %v while %v still animating", seed, b.Turn(), mover)
				}
			}

			if got := b.Turn(); got != mover.Opponent() {
				t.Fatalf("seed %d: Turn() = %v after settling, expected %v", seed, got, mover.Opponent())
			}
		}
	}
}

func TestFlipCountMatchesReference(t *testing.T) {
	mgr, clock := newTestManager()
	b := NewStandardBoard(mgr, hotSeat())

	for move := 0; move < 60; move++ {
		valid := b.Rules().ValidMoves()
		if len(valid) == 0 {
			break
		}
		mover := b.Turn()
		c := valid[len(valid)/2]
		want := referenceFlips(b, mover, c)
		if got := b.Rules().CaptureTotal(mover, c); got != want {
			t.Fatalf("move %d: CaptureTotal(%v, %v) = %d, expected %d", move, mover, c, got, want)
		}

		w0, b0 := b.Counts()
		if !b.RequestMove(mover, c) {
			t.Fatalf("move %d: %v at %v rejected", move, mover, c)
		}
		w1, b1 := b.Counts()

		own0, own1, opp0, opp1 := w0, w1, b0, b1
		if mover == Black {
			own0, own1, opp0, opp1 = b0, b1, w0, w1
		}
		if own1 != own0+1+want {
			t.Errorf("move %d: mover count %d -> %d, expected +%d", move, own0, own1, 1+want)
		}
		if opp1 != opp0-want {
			t.Errorf("move %d: opponent count %d -> %d, expected -%d", move, opp0, opp1, want)
		}

		drain(t, mgr, clock, b)
		if b.Over() {
			break
		}
	}
}

func TestPlacePieceOutOfRange(t *testing.T) {
	mgr, _ := newTestManager()
	b := NewBoard(mgr, 4, 4, hotSeat())

	for _, c := range []Coord{At(0, 1), At(1, 0), At(5, 1), At(1, 5)} {
		if err := b.PlacePiece(c, NewPiece(White)); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("PlacePiece(%v) error = %v, expected ErrOutOfRange", c, err)
		}
	}
	if p, ok := b.Piece(At(9, 9)); ok || p != nil {
		t.Error("Piece off the board should be absent")
	}
	if got := b.TeamAt(At(-1, 2)); got != NoTeam {
		t.Errorf("TeamAt off the board = %v, expected none", got)
	}
}

func TestRecomputeCounts(t *testing.T) {
	tests := []struct {
		name       string
		rows       []string
		wantWinner Team
		wantOver   bool
	}{
		{"in play", []string{"WB", ".."}, NoTeam, false},
		{"black wiped out", []string{"WW", "W."}, White, true},
		{"white wiped out", []string{"B.", ".."}, Black, true},
		{"full white majority", []string{"WW", "WB"}, White, true},
		{"full black majority", []string{"BB", "WB"}, Black, true},
		{"full draw", []string{"WB", "BW"}, NoTeam, true},
		{"empty", []string{"..", ".."}, NoTeam, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr, _ := newTestManager()
			b := boardFrom(t, mgr, hotSeat(), tt.rows...)

			// Placement alone never decides the game.
			if b.Over() || b.Winner() != NoTeam {
				t.Fatal("PlacePiece evaluated the outcome")
			}

			winner, over := b.RecomputeCounts()
			if winner != tt.wantWinner || over != tt.wantOver {
				t.Errorf("RecomputeCounts() = %v/%v, expected %v/%v", winner, over, tt.wantWinner, tt.wantOver)
			}
			if b.Winner() != winner || b.Over() != over {
				t.Error("outcome not stored on the board")
			}
		})
	}
}

func TestCaptureEveryDirection(t *testing.T) {
	mgr, clock := newTestManager()
	b := NewTestBoard(mgr, Size, Size, hotSeat())
	hole := At(Size/2, Size/2)

	if w, bl := b.Counts(); w != 28 || bl != 35 {
		t.Fatalf("test board counts = %d/%d, expected 28/35", w, bl)
	}
	if got := len(b.Rules().Lines(White, hole)); got != len(Directions) {
		t.Fatalf("Lines() = %d, expected one per direction", got)
	}
	if got := b.Rules().CaptureTotal(White, hole); got != 19 {
		t.Fatalf("CaptureTotal() = %d, expected 19", got)
	}
	if got := b.Rules().MoveScore(White, hole); got != 19+len(Directions) {
		t.Fatalf("MoveScore() = %d, expected %d", got, 19+len(Directions))
	}

	if !b.RequestMove(White, hole) {
		t.Fatal("move into the hole rejected")
	}

	// Each captured disc leaves one stagger after the previous one.
	stagger := hotSeat().CaptureStagger
	delays := make(map[time.Duration]bool)
	for _, c := range b.Coords() {
		p, ok := b.Piece(c)
		if !ok {
			continue
		}
		if seq := moves(p); len(seq) == 2 {
			delays[seq[0].Delay()] = true
		}
	}
	for i := 0; i < 19; i++ {
		if !delays[time.Duration(i)*stagger] {
			t.Errorf("no captured disc leaves after %v", time.Duration(i)*stagger)
		}
	}
	if w, bl := b.Counts(); w != 48 || bl != 16 {
		t.Errorf("counts = %d/%d, expected 48/16", w, bl)
	}
	if !b.Over() || b.Winner() != White {
		t.Errorf("outcome = %v/%v, expected white win", b.Winner(), b.Over())
	}

	drain(t, mgr, clock, b)
	if b.MoveInProgress() {
		t.Error("move still in progress after drain")
	}
}

func TestCapturedDiscAnimatesOutAndBack(t *testing.T) {
	mgr, clock := newTestManager()
	b := NewStandardBoard(mgr, hotSeat())
	layout := b.Rules().Layout()

	b.RequestMove(White, At(4, 3))
	p, _ := b.Piece(At(4, 4))

	v := p.View()
	if !v.Animating || v.Location != layout.Cell(At(4, 4)) || v.Color != Black.Color() {
		t.Fatalf("captured disc view = %+v, expected leaving d4 in black", v)
	}
	if v.Queued != 1 {
		t.Fatalf("Queued = %d, expected the return animation", v.Queued)
	}

	seq := moves(p)
	if len(seq) != 2 {
		t.Fatalf("captured disc has %d animations, expected 2", len(seq))
	}
	leave, back := seq[0], seq[1]
	if leave.From() != layout.Cell(At(4, 4)) || leave.To() != layout.Spawn(Black) || leave.Delay() != 0 {
		t.Errorf("leave = %v -> %v after %v, expected d4 -> black spawn at once", leave.From(), leave.To(), leave.Delay())
	}
	if back.From() != layout.Spawn(White) || back.To() != layout.Cell(At(4, 4)) || back.Delay() != 0 {
		t.Errorf("return = %v -> %v after %v, expected white spawn -> d4 at once", back.From(), back.To(), back.Delay())
	}

	// Run the leave animation to its end.
	mgr.Tick()
	clock.Advance(time.Second)
	mgr.Tick()
	v = p.View()
	if !v.Animating || v.Color != White.Color() || v.Location != layout.Spawn(White) {
		t.Errorf("view after leaving = %+v, expected returning from white spawn", v)
	}

	drain(t, mgr, clock, b)
	if v := p.View(); v.Animating || v.Team != White {
		t.Errorf("final view = %+v", v)
	}
}
