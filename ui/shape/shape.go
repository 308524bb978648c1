// Package shape computes pixel geometry for the snake, food and grid.
// It has no drawing dependency so the layout can be checked in tests.
package shape

import "grid-snake/game/types"

type Rect struct {
	X, Y, W, H int32
}

type Circle struct {
	CenterX, CenterY int32
	Radius           float32
}

type Vec struct {
	X, Y float32
}

// Triangle vertices are ordered counter-clockwise on screen, as raylib's
// DrawTriangle requires.
type Triangle [3]Vec

type Line struct {
	X1, Y1, X2, Y2 int32
}

// Layout maps grid cells onto pixels.
type Layout struct {
	CellSize   int32
	BodyMargin int32
	FoodMargin int32
	OffsetX    int32
	OffsetY    int32
}

// Origin returns the top-left pixel of a cell.
func (l Layout) Origin(p types.Point) (int32, int32) {
	return l.OffsetX + int32(p.X)*l.CellSize, l.OffsetY + int32(p.Y)*l.CellSize
}

// Body is a body segment, inset from the cell edges by the body margin.
func (l Layout) Body(p types.Point) Rect {
	return l.inset(p, l.BodyMargin)
}

func (l Layout) Food(p types.Point) Rect {
	return l.inset(p, l.FoodMargin)
}

func (l Layout) inset(p types.Point, margin int32) Rect {
	x, y := l.Origin(p)
	return Rect{
		X: x + margin,
		Y: y + margin,
		W: l.CellSize - 2*margin,
		H: l.CellSize - 2*margin,
	}
}

// Head is a circle filling the cell, one pixel short of its edges.
func (l Layout) Head(p types.Point) Circle {
	x, y := l.Origin(p)
	return Circle{
		CenterX: x + l.CellSize/2,
		CenterY: y + l.CellSize/2,
		Radius:  float32(l.CellSize/2 - 1),
	}
}

// Tail is a triangle whose base sits on the edge shared with the previous
// segment and whose tip points in the given direction.
func (l Layout) Tail(p types.Point, dir types.Direction) Triangle {
	x, y := l.Origin(p)
	px, py := float32(x), float32(y)
	c := float32(l.CellSize)
	cx, cy := px+float32(l.CellSize/2), py+float32(l.CellSize/2)

	switch dir {
	case types.Right:
		return Triangle{{px, py}, {px, py + c}, {px + c, cy}}
	case types.Left:
		return Triangle{{px + c, py}, {px, cy}, {px + c, py + c}}
	case types.Down:
		return Triangle{{px, py}, {cx, py + c}, {px + c, py}}
	default:
		return Triangle{{px, py + c}, {px + c, py + c}, {cx, py}}
	}
}

// GridLines returns one vertical line per column and one horizontal line per row.
func (l Layout) GridLines(g types.Grid) []Line {
	width, height := int32(g.Width)*l.CellSize, int32(g.Height)*l.CellSize
	lines := make([]Line, 0, g.Width+g.Height)
	for col := 0; col < g.Width; col++ {
		x := l.OffsetX + int32(col)*l.CellSize
		lines = append(lines, Line{X1: x, Y1: l.OffsetY, X2: x, Y2: l.OffsetY + height})
	}
	for row := 0; row < g.Height; row++ {
		y := l.OffsetY + int32(row)*l.CellSize
		lines = append(lines, Line{X1: l.OffsetX, Y1: y, X2: l.OffsetX + width, Y2: y})
	}
	return lines
}

// Centered returns the top-left corner that centres a box of the given size
// inside a container.
func Centered(containerW, containerH, w, h int32) (int32, int32) {
	return (containerW - w) / 2, (containerH - h) / 2
}
