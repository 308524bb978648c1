package types

import (
	"errors"
	"fmt"
)

// ErrGridTooSmall is returned when a grid cannot hold the starting snake and a food cell.
var ErrGridTooSmall = errors.New("grid too small")

// Starting snake geometry
const (
	InitialLength = 3
	MinGridWidth  = InitialLength + 1
	MinGridHeight = 1
)

// Point is a single grid cell, X is the column and Y the row.
type Point struct {
	X, Y int
}

// Add returns the cell one step away in the given direction.
func (p Point) Add(d Direction) Point {
	v := d.ToPoint()
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Manhattan returns the Manhattan distance between two cells.
func (p Point) Manhattan(o Point) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Adjacent reports whether two cells share an edge.
func Adjacent(a, b Point) bool {
	return a.Manhattan(b) == 1
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// InBounds reports whether p lies inside the grid.
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the cell the starting snake's head is placed on.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Validate checks that the starting snake fits with room left for food.
func (g Grid) Validate() error {
	if g.Width < MinGridWidth || g.Height < MinGridHeight {
		return fmt.Errorf("%dx%d, need at least %dx%d: %w",
			g.Width, g.Height, MinGridWidth, MinGridHeight, ErrGridTooSmall)
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
