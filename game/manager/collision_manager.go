package manager

import (
	"grid-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// isWallCollision checks if a position lies outside the grid
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.InBounds(pos)
}

// isOccupied checks if a position is one of the occupied cells
func (cm *CollisionManager) isOccupied(pos types.Point, occupied []types.Point) bool {
	for _, p := range occupied {
		if p == pos {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a position is valid for placing food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, occupied []types.Point) bool {
	return !cm.isWallCollision(pos) && !cm.isOccupied(pos, occupied)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// FreeCells counts the in-bounds cells not covered by occupied.
// Duplicates and out-of-bounds entries are ignored.
func (cm *CollisionManager) FreeCells(occupied []types.Point) int {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		if cm.isWallCollision(p) {
			continue
		}
		taken[p] = struct{}{}
	}
	return cm.grid.Cells() - len(taken)
}
