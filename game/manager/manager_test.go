package manager

import (
	"testing"
	"time"

	"grid-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allCells(g types.Grid) []types.Point {
	out := make([]types.Point, 0, g.Cells())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			out = append(out, types.Point{X: x, Y: y})
		}
	}
	return out
}

func TestValidateSpawnPosition(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 4, Height: 4})
	occupied := []types.Point{{X: 1, Y: 1}, {X: 2, Y: 1}}

	assert.True(t, cm.ValidateSpawnPosition(types.Point{X: 0, Y: 0}, occupied))
	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 1, Y: 1}, occupied))
	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 4, Y: 0}, occupied))
	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 0, Y: -1}, nil))
}

func TestFreeCells(t *testing.T) {
	g := types.Grid{Width: 4, Height: 3}
	cm := NewCollisionManager(g)

	assert.Equal(t, 12, cm.FreeCells(nil))
	assert.Equal(t, 10, cm.FreeCells([]types.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 9, Y: 9}}))
	assert.Equal(t, 0, cm.FreeCells(allCells(g)))
}

func TestSpawnAvoidsOccupiedCells(t *testing.T) {
	g := types.Grid{Width: 8, Height: 6}
	fm := NewFoodManager(g, NewCollisionManager(g), 42)

	occupied := allCells(g)[:40]
	for i := 0; i < 500; i++ {
		food, err := fm.Spawn(occupied)
		require.NoError(t, err)
		assert.True(t, g.InBounds(food))
		assert.NotContains(t, occupied, food)
	}
}

func TestSpawnFindsLastFreeCell(t *testing.T) {
	g := types.Grid{Width: 5, Height: 4}
	fm := NewFoodManager(g, NewCollisionManager(g), 7)

	cells := allCells(g)
	last := cells[13]
	occupied := append(append([]types.Point{}, cells[:13]...), cells[14:]...)

	food, err := fm.Spawn(occupied)
	require.NoError(t, err)
	assert.Equal(t, last, food)
}

func TestSpawnOnFullGrid(t *testing.T) {
	g := types.Grid{Width: 4, Height: 2}
	fm := NewFoodManager(g, NewCollisionManager(g), 1)

	_, err := fm.Spawn(allCells(g))
	assert.ErrorIs(t, err, ErrExhaustedGrid)
}

func TestSpawnIsDeterministicPerSeed(t *testing.T) {
	g := types.Grid{Width: 32, Height: 24}
	a := NewFoodManager(g, NewCollisionManager(g), 99)
	b := NewFoodManager(g, NewCollisionManager(g), 99)

	for i := 0; i < 20; i++ {
		fa, err := a.Spawn(nil)
		require.NoError(t, err)
		fb, err := b.Spawn(nil)
		require.NoError(t, err)
		assert.Equal(t, fa, fb)
	}
}

func TestSpawnCoversWholeGrid(t *testing.T) {
	g := types.Grid{Width: 4, Height: 4}
	fm := NewFoodManager(g, NewCollisionManager(g), 3)

	seen := map[types.Point]bool{}
	for i := 0; i < 2000; i++ {
		food, err := fm.Spawn(nil)
		require.NoError(t, err)
		seen[food] = true
	}
	assert.Len(t, seen, g.Cells())
}

func TestStatsManager(t *testing.T) {
	sm := NewStatsManager(0)
	assert.Equal(t, 0, sm.GamesPlayed())
	assert.Zero(t, sm.AverageScore())
	assert.Zero(t, sm.AverageDuration())

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sm.AddRound(RoundRecord{ID: "a", StartTime: start, EndTime: start.Add(10 * time.Second), Score: 4, Length: 7, Cause: "wall"})
	sm.AddRound(RoundRecord{ID: "b", StartTime: start, EndTime: start.Add(30 * time.Second), Score: 2, Length: 5, Cause: "self"})

	assert.Equal(t, 2, sm.GamesPlayed())
	assert.Equal(t, 4, sm.BestScore())
	assert.InDelta(t, 3.0, sm.AverageScore(), 1e-9)
	assert.Equal(t, 20*time.Second, sm.AverageDuration())

	recs := sm.Records()
	require.Len(t, recs, 2)
	recs[0].Score = 100
	assert.Equal(t, 4, sm.BestScore())
}

func TestStatsManagerKeepsNewest(t *testing.T) {
	sm := NewStatsManager(2)
	for i, id := range []string{"a", "b", "c"} {
		sm.AddRound(RoundRecord{ID: id, Score: i})
	}
	recs := sm.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, "b", recs[0].ID)
	assert.Equal(t, "c", recs[1].ID)
}
