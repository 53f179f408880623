package othello

import "fmt"

// Coord is a 1-indexed board coordinate. X is the column, Y the row.
type Coord struct {
	X, Y int
}

// At is shorthand for constructing a Coord.
func At(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Step returns the neighbouring coordinate in direction d.
func (c Coord) Step(d Direction) Coord {
	return Coord{X: c.X + d.DX, Y: c.Y + d.DY}
}

// String renders the coordinate in board notation, e.g. "d3" for (4, 3).
func (c Coord) String() string {
	if c.X >= 1 && c.X <= 26 {
		return fmt.Sprintf("%c%d", 'a'+rune(c.X-1), c.Y)
	}
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

// Directions lists the eight compass directions scanned for capture lines,
// starting east and turning clockwise (y grows downwards).
var Directions = [8]Direction{
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
	{-1, -1},
	{0, -1},
	{1, -1},
}

// Line is a qualifying capture line: Length opposing discs in direction Dir,
// anchored by one of the mover's discs at distance Length+1.
type Line struct {
	Dir    Direction
	Length int
}

// Steps returns the distance from the played coordinate to the anchor.
func (l Line) Steps() int { return l.Length + 1 }
