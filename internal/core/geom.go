// Package core provides fundamental types and utilities shared by the game
// engine and the terminal front end. It has no external dependencies (in
// particular no Bubble Tea) so game logic stays pure and testable.
package core

// Vector is a 2D floating point position in board space. One unit is one
// board cell; the top-left corner of the grid is the origin.
type Vector struct {
	X, Y float64
}

// Vec is shorthand for constructing a Vector.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v minus o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by f.
func (v Vector) Scale(f float64) Vector {
	return Vector{X: v.X * f, Y: v.Y * f}
}

// Lerp interpolates linearly from v to end.
// t is not clamped; t == 0 returns v and t == 1 returns end exactly.
func (v Vector) Lerp(end Vector, t float64) Vector {
	switch t {
	case 0:
		return v
	case 1:
		return end
	}
	return v.Add(end.Sub(v).Scale(t))
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Round rounds half away from zero and returns an int.
func Round(f float64) int {
	if f < 0 {
		return -int(-f + 0.5)
	}
	return int(f + 0.5)
}
