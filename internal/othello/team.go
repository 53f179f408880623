// Package othello implements the disc-capture game: board state, turn order,
// move legality, capture resolution and the greedy computer opponent.
//
// Capture resolution is logical and immediate; the animations it spawns lag
// behind. A move stays "in progress" until every animation it spawned has
// completed, and only then does the turn pass to the opponent.
package othello

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-othello/internal/core"
)

// Team identifies one of the two players. The zero value NoTeam means
// "absent": an empty cell, no winner, or no computer opponent.
type Team int8

const (
	NoTeam Team = iota
	Black
	White
)

// Opponent returns the other team. NoTeam has no opponent.
func (t Team) Opponent() Team {
	switch t {
	case Black:
		return White
	case White:
		return Black
	default:
		return NoTeam
	}
}

// Color returns the display color of the team's discs.
func (t Team) Color() core.Color {
	switch t {
	case Black:
		return core.ColorBlack
	case White:
		return core.ColorWhite
	default:
		return core.ColorDefault
	}
}

// String returns a human-readable name for the team.
func (t Team) String() string {
	switch t {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

// ParseTeam parses "black", "white" or "none" (case-insensitive).
func ParseTeam(s string) (Team, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	case "none", "":
		return NoTeam, nil
	default:
		return NoTeam, fmt.Errorf("othello: unknown team %q", s)
	}
}
