package entity

import (
	"errors"
	"fmt"

	"grid-snake/game/types"
)

// ErrInvalidBody is returned by NewSnakeAt for bodies that break the snake invariants.
var ErrInvalidBody = errors.New("invalid snake body")

// MoveResult is the outcome of a single Advance.
type MoveResult int

const (
	Moved MoveResult = iota
	Died
)

func (r MoveResult) String() string {
	if r == Moved {
		return "moved"
	}
	return "died"
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Snake owns the ordered body cells, head first, plus the movement state.
// The pending direction buffers input so at most one turn applies per Advance.
type Snake struct {
	grid          types.Grid
	body          []types.Point
	current       types.Direction
	pending       types.Direction
	alive         bool
	growthPending bool
	cause         CollisionType
}

// NewSnake creates the starting snake: three cells on the centre row,
// head on the right, moving right.
func NewSnake(grid types.Grid) *Snake {
	head := grid.Center()
	body := make([]types.Point, 0, types.InitialLength)
	for i := 0; i < types.InitialLength; i++ {
		body = append(body, types.Point{X: head.X - i, Y: head.Y})
	}
	return &Snake{
		grid:    grid,
		body:    body,
		current: types.Right,
		pending: types.Right,
		alive:   true,
	}
}

// NewSnakeAt builds a live snake from an explicit body, head first.
func NewSnakeAt(grid types.Grid, body []types.Point, dir types.Direction) (*Snake, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("empty body: %w", ErrInvalidBody)
	}
	if !dir.Valid() {
		return nil, fmt.Errorf("direction %s: %w", dir, ErrInvalidBody)
	}
	seen := make(map[types.Point]struct{}, len(body))
	for i, p := range body {
		if !grid.InBounds(p) {
			return nil, fmt.Errorf("segment %d at %s out of bounds: %w", i, p, ErrInvalidBody)
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("segment %d at %s repeats a cell: %w", i, p, ErrInvalidBody)
		}
		seen[p] = struct{}{}
		if i > 0 && !types.Adjacent(body[i-1], p) {
			return nil, fmt.Errorf("segment %d at %s not adjacent to %s: %w", i, p, body[i-1], ErrInvalidBody)
		}
	}
	cp := make([]types.Point, len(body))
	copy(cp, body)
	return &Snake{
		grid:    grid,
		body:    cp,
		current: dir,
		pending: dir,
		alive:   true,
	}, nil
}

// SetDirection buffers the next direction. Reversing onto the current
// direction is ignored, and only the last call before Advance takes effect.
func (s *Snake) SetDirection(dir types.Direction) {
	if !dir.Valid() || dir == s.current.Opposite() {
		return
	}
	s.pending = dir
}

// RequestGrowth makes the next successful Advance keep the tail.
func (s *Snake) RequestGrowth() {
	s.growthPending = true
}

// Advance moves the snake one cell. A dead snake stays put and reports Died.
func (s *Snake) Advance() MoveResult {
	if !s.alive {
		return Died
	}

	s.current = s.pending
	newHead := s.Head().Add(s.current)

	if !s.grid.InBounds(newHead) {
		s.die(WallCollision)
		return Died
	}

	// The tail only vacates its cell when no growth is pending.
	obstacles := s.body
	if !s.growthPending {
		obstacles = s.body[:len(s.body)-1]
	}
	for _, part := range obstacles {
		if part == newHead {
			s.die(SelfCollision)
			return Died
		}
	}

	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead
	if s.growthPending {
		s.growthPending = false
	} else {
		s.body = s.body[:len(s.body)-1]
	}

	s.alive = true
	return Moved
}

func (s *Snake) die(cause CollisionType) {
	s.alive = false
	s.cause = cause
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []types.Point {
	out := make([]types.Point, len(s.body))
	copy(out, s.body)
	return out
}

func (s *Snake) Head() types.Point {
	return s.body[0]
}

func (s *Snake) Tail() types.Point {
	return s.body[len(s.body)-1]
}

// Len is the number of cells currently occupied.
func (s *Snake) Len() int {
	return len(s.body)
}

// Length counts pending growth too, so it changes on the tick food is eaten.
func (s *Snake) Length() int {
	if s.growthPending {
		return len(s.body) + 1
	}
	return len(s.body)
}

// Contains reports whether p is one of the body cells.
func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.body {
		if part == p {
			return true
		}
	}
	return false
}

func (s *Snake) Alive() bool                       { return s.alive }
func (s *Snake) GrowthPending() bool               { return s.growthPending }
func (s *Snake) Direction() types.Direction        { return s.current }
func (s *Snake) PendingDirection() types.Direction { return s.pending }

// Cause reports what killed the snake, NoCollision while alive.
func (s *Snake) Cause() CollisionType { return s.cause }

// TailOrientation is the direction from the second-to-last cell to the tail.
// A single-cell snake points opposite to its movement.
func (s *Snake) TailOrientation() types.Direction {
	if len(s.body) < 2 {
		return s.current.Opposite()
	}
	return types.Orientation(s.body[len(s.body)-2], s.body[len(s.body)-1])
}
