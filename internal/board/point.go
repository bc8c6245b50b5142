// Package board provides the Battleship grid, ship geometry and attack resolution.
package board

import "fmt"

// Point is a grid coordinate. X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point offset by dx, dy.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Orthogonal returns the four edge neighbours in the order up, down, left, right.
// Points may lie outside any board.
func (p Point) Orthogonal() [4]Point {
	return [4]Point{
		p.Add(0, -1),
		p.Add(0, 1),
		p.Add(-1, 0),
		p.Add(1, 0),
	}
}
