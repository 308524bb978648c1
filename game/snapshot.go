package game

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"
)

// Snapshot is the read-only view a renderer draws each frame.
type Snapshot struct {
	RoundID         string
	Grid            types.Grid
	Segments        []types.Point
	Food            types.Point
	HasFood         bool
	Score           int
	Length          int
	Alive           bool
	Outcome         Outcome
	Cause           entity.CollisionType
	Direction       types.Direction
	TailOrientation types.Direction
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		RoundID:         s.ID,
		Grid:            s.grid,
		Segments:        s.snake.Segments(),
		Food:            s.food,
		HasFood:         s.hasFood,
		Score:           s.score,
		Length:          s.snake.Length(),
		Alive:           s.snake.Alive(),
		Outcome:         s.outcome,
		Cause:           s.snake.Cause(),
		Direction:       s.snake.Direction(),
		TailOrientation: s.snake.TailOrientation(),
	}
}

// Over mirrors Session.IsOver for the frame being drawn.
func (snap Snapshot) Over() bool {
	return snap.Outcome != OutcomeRunning
}

// Head returns the head cell.
func (snap Snapshot) Head() types.Point {
	return snap.Segments[0]
}
