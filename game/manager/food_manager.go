package manager

import (
	"errors"

	"grid-snake/game/types"

	"golang.org/x/exp/rand"
)

// ErrExhaustedGrid is returned when every cell is occupied and no food can be placed.
var ErrExhaustedGrid = errors.New("no free cell left for food")

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// Spawn picks a uniformly random free cell by rejection sampling.
// A full grid is detected up front so the sampling loop always terminates.
func (fm *FoodManager) Spawn(occupied []types.Point) (types.Point, error) {
	if fm.collisionMgr.FreeCells(occupied) == 0 {
		return types.Point{}, ErrExhaustedGrid
	}
	for {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, occupied) {
			return food, nil
		}
	}
}
