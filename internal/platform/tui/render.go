package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-othello/internal/core"
	"github.com/vovakirdan/tui-othello/internal/othello"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorBlack:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Board geometry in screen cells. One board cell is cellW columns by cellH
// rows; the grid starts at (boardX, boardY) leaving room for labels.
const (
	cellW  = 4
	cellH  = 2
	boardX = 3
	boardY = 1
	panelW = 20

	discRune  = '█'
	emptyRune = '·'
	hintRune  = '+'
)

// toScreen maps a board-space point to the screen column and row of the
// cell-sized box whose top-left corner it is.
func toScreen(v core.Vector) (int, int) {
	return boardX + core.Round(v.X*cellW), boardY + core.Round(v.Y*cellH)
}

// CellAt returns the board coordinate under screen position (x, y).
func CellAt(snap othello.Snapshot, x, y int) (othello.Coord, bool) {
	if x < boardX || y < boardY {
		return othello.Coord{}, false
	}
	c := othello.At((x-boardX)/cellW+1, (y-boardY)/cellH+1)
	if c.X > snap.Width || c.Y > snap.Height {
		return othello.Coord{}, false
	}
	return c, true
}

// panelX returns the first column of the info panel.
func panelX(snap othello.Snapshot) int {
	return boardX + snap.Width*cellW + 1
}

func drawDisc(s *core.Screen, v core.Vector, c core.Color) {
	x, y := toScreen(v)
	s.Set(x+1, y, discRune, c)
	s.Set(x+2, y, discRune, c)
}

// DrawBoard paints the board, the info panel and any moving discs.
// The cursor is highlighted and, when hints is set, the legal moves of the
// team on turn are marked.
func DrawBoard(s *core.Screen, snap othello.Snapshot, cursor othello.Coord, hints bool) {
	s.Clear()

	// Labels
	for x := 1; x <= snap.Width; x++ {
		sx, _ := toScreen(snap.Layout.Cell(othello.At(x, 1)))
		s.Set(sx+1, boardY-1, rune('a'+x-1), core.ColorGray)
	}
	for y := 1; y <= snap.Height; y++ {
		_, sy := toScreen(snap.Layout.Cell(othello.At(1, y)))
		s.DrawText(0, sy, fmt.Sprintf("%2d", y), core.ColorGray)
	}

	// Empty cells and hints
	for y := 1; y <= snap.Height; y++ {
		for x := 1; x <= snap.Width; x++ {
			c := othello.At(x, y)
			sx, sy := toScreen(snap.Layout.Cell(c))
			if hints && snap.IsValid(c) {
				s.Set(sx+1, sy, hintRune, core.ColorGreen)
				s.Set(sx+2, sy, hintRune, core.ColorGreen)
				continue
			}
			s.Set(sx+1, sy, emptyRune, core.ColorGray)
		}
	}

	// Resting discs
	for _, cv := range snap.Cells {
		if !cv.Animating {
			drawDisc(s, snap.Layout.Cell(cv.Coord), cv.Team.Color())
		}
	}

	drawPanel(s, snap)

	// Moving discs go on top of everything else.
	for _, cv := range snap.Cells {
		if cv.Animating {
			drawDisc(s, snap.Location(cv), cv.Color)
		}
	}

	if c := cursor; c.X >= 1 && c.X <= snap.Width && c.Y >= 1 && c.Y <= snap.Height {
		sx, sy := toScreen(snap.Layout.Cell(c))
		s.Set(sx, sy, '[', core.ColorYellow)
		s.Set(sx+3, sy, ']', core.ColorYellow)
	}
}

// drawPanel draws the scores beside each team's spawn point and the status.
func drawPanel(s *core.Screen, snap othello.Snapshot) {
	px := panelX(snap)

	for _, t := range []othello.Team{othello.White, othello.Black} {
		sx, sy := toScreen(snap.Layout.Spawn(t))
		count := snap.White
		if t == othello.Black {
			count = snap.Black
		}
		label := fmt.Sprintf("%-5s %2d", title(t), count)
		if t == snap.AITeam {
			label += " cpu"
		}
		s.DrawText(sx+4, sy, label, t.Color())
	}

	s.DrawVLine(px-1, boardY, snap.Height*cellH, '│', core.ColorGray)

	_, top := toScreen(snap.Layout.Spawn(othello.White))
	s.DrawTextCentered(px, panelW, top-1, "OTHELLO", core.ColorBrightGreen)

	status, color := statusLine(snap)
	_, mid := toScreen(snap.Layout.Cell(othello.At(1, snap.Height/2)))
	s.DrawHLine(px, mid-1, panelW-1, '─', core.ColorGray)
	s.DrawText(px, mid, status, color)
	if snap.Over {
		s.DrawText(px, mid+1, "enter: play again", core.ColorGray)
	}
}

// statusLine describes whose turn it is or how the game ended.
func statusLine(snap othello.Snapshot) (string, core.Color) {
	switch {
	case snap.Draw():
		return "Draw!", core.ColorYellow
	case snap.Over:
		return fmt.Sprintf("%s wins!", title(snap.Winner)), core.ColorYellow
	case snap.MoveInProgress:
		return "...", core.ColorGray
	case len(snap.ValidMoves) == 0:
		return fmt.Sprintf("%s has no move", title(snap.Turn)), core.ColorRed
	case snap.Turn == snap.AITeam:
		return "Computer thinking", core.ColorGray
	default:
		return fmt.Sprintf("%s to move", title(snap.Turn)), core.ColorGreen
	}
}

func title(t othello.Team) string {
	name := t.String()
	return strings.ToUpper(name[:1]) + name[1:]
}
