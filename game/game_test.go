package game

import (
	"testing"
	"time"

	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const moveInterval = 100 * time.Millisecond

var defaultGrid = types.Grid{Width: 32, Height: 24}

// fakeClock hands out a fixed time that tests move forward by hand.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) step(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func newTestSession(t *testing.T, grid types.Grid, opts ...Option) (*Session, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	opts = append([]Option{WithClock(clock.Now), WithSeed(1)}, opts...)
	s, err := NewSession(grid, opts...)
	require.NoError(t, err)
	return s, clock
}

func assertFoodOffSnake(t *testing.T, s *Session) {
	t.Helper()
	snap := s.Snapshot()
	if !snap.HasFood {
		return
	}
	assert.NotContains(t, snap.Segments, snap.Food)
	assert.True(t, snap.Grid.InBounds(snap.Food))
}

func TestNewSessionRejectsSmallGrid(t *testing.T) {
	_, err := NewSession(types.Grid{Width: 3, Height: 3})
	assert.ErrorIs(t, err, types.ErrGridTooSmall)
}

func TestNewSessionInitialState(t *testing.T) {
	s, _ := newTestSession(t, defaultGrid)
	snap := s.Snapshot()

	assert.NotEmpty(t, snap.RoundID)
	assert.Equal(t, []types.Point{{X: 16, Y: 12}, {X: 15, Y: 12}, {X: 14, Y: 12}}, snap.Segments)
	assert.Equal(t, 0, snap.Score)
	assert.True(t, snap.Alive)
	assert.False(t, snap.Over())
	assert.True(t, snap.HasFood)
	assertFoodOffSnake(t, s)
}

func TestTickWaitsForInterval(t *testing.T) {
	s, clock := newTestSession(t, defaultGrid)
	s.food = types.Point{X: 0, Y: 0}

	assert.Equal(t, TickIdle, s.Tick(clock.step(50*time.Millisecond), moveInterval))
	assert.Equal(t, types.Point{X: 16, Y: 12}, s.Snapshot().Head())

	assert.Equal(t, TickMoved, s.Tick(clock.step(50*time.Millisecond), moveInterval))
	assert.Equal(t, types.Point{X: 17, Y: 12}, s.Snapshot().Head())

	// The interval is measured from the last move, not the last call.
	assert.Equal(t, TickIdle, s.Tick(clock.step(99*time.Millisecond), moveInterval))
	assert.Equal(t, TickMoved, s.Tick(clock.step(time.Millisecond), moveInterval))
}

func TestManyFramesBetweenTicksShareState(t *testing.T) {
	s, clock := newTestSession(t, defaultGrid)
	s.food = types.Point{X: 0, Y: 0}

	moves := 0
	for frame := 0; frame < 60; frame++ {
		if s.Tick(clock.step(time.Second/60), moveInterval) == TickMoved {
			moves++
		}
	}
	// A frame is just under 1/60s, so six frames fall short of the interval
	// and the snake moves on every seventh frame.
	assert.Equal(t, 8, moves)
}

func TestEatingScoresAndGrows(t *testing.T) {
	s, clock := newTestSession(t, defaultGrid)
	s.food = types.Point{X: 17, Y: 12}

	require.Equal(t, TickAte, s.Tick(clock.step(moveInterval), moveInterval))
	snap := s.Snapshot()
	assert.Equal(t, 1, snap.Score)
	assert.Equal(t, 4, snap.Length)
	assert.NotEqual(t, types.Point{X: 17, Y: 12}, snap.Food)
	assertFoodOffSnake(t, s)

	s.food = types.Point{X: 0, Y: 0}
	require.Equal(t, TickMoved, s.Tick(clock.step(moveInterval), moveInterval))
	snap = s.Snapshot()
	assert.Equal(t, 4, snap.Length)
	assert.Len(t, snap.Segments, 4)
	assert.Equal(t, 1, snap.Score)
}

func TestEndToEndFirstFood(t *testing.T) {
	s, clock := newTestSession(t, defaultGrid)
	s.food = types.Point{X: 17, Y: 12}

	var result TickResult
	for i := 0; i < 10 && s.Snapshot().Head() != s.food; i++ {
		result = s.Tick(clock.step(moveInterval), moveInterval)
		if result == TickAte {
			break
		}
	}
	require.Equal(t, TickAte, result)
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 4, s.Snapshot().Length)
}

func TestDirectionChangeThroughSession(t *testing.T) {
	s, clock := newTestSession(t, defaultGrid)
	s.food = types.Point{X: 0, Y: 0}

	s.SetDirection(types.Left)
	s.Tick(clock.step(moveInterval), moveInterval)
	assert.Equal(t, types.Point{X: 17, Y: 12}, s.Snapshot().Head())

	s.SetDirection(types.Up)
	s.Tick(clock.step(moveInterval), moveInterval)
	assert.Equal(t, types.Point{X: 17, Y: 11}, s.Snapshot().Head())
	assert.Equal(t, types.Up, s.Snapshot().Direction)
}

func TestWallDeathEndsRound(t *testing.T) {
	stats := manager.NewStatsManager(0)
	s, clock := newTestSession(t, defaultGrid, WithStats(stats))
	s.food = types.Point{X: 0, Y: 0}

	var result TickResult
	ticks := 0
	for !s.IsOver() && ticks < 100 {
		result = s.Tick(clock.step(moveInterval), moveInterval)
		ticks++
	}
	require.Equal(t, TickDied, result)
	assert.Equal(t, 16, ticks)

	snap := s.Snapshot()
	assert.False(t, snap.Alive)
	assert.Equal(t, OutcomeDied, snap.Outcome)
	assert.Equal(t, entity.WallCollision, snap.Cause)
	assert.Equal(t, types.Point{X: 31, Y: 12}, snap.Head())

	require.Equal(t, 1, stats.GamesPlayed())
	rec := stats.Records()[0]
	assert.Equal(t, s.ID, rec.ID)
	assert.Equal(t, "wall", rec.Cause)
	assert.Equal(t, 16*moveInterval, rec.Duration())
}

func TestOverSessionIgnoresInput(t *testing.T) {
	s, clock := newTestSession(t, defaultGrid)
	s.food = types.Point{X: 0, Y: 0}
	for !s.IsOver() {
		s.Tick(clock.step(moveInterval), moveInterval)
	}
	before := s.Snapshot()

	s.SetDirection(types.Up)
	assert.Equal(t, TickIdle, s.Tick(clock.step(moveInterval), moveInterval))
	assert.Equal(t, before.Segments, s.Snapshot().Segments)
}

func TestRestartOnlyWhenOver(t *testing.T) {
	s, clock := newTestSession(t, defaultGrid)
	s.food = types.Point{X: 17, Y: 12}
	firstRound := s.ID

	require.Equal(t, TickAte, s.Tick(clock.step(moveInterval), moveInterval))
	assert.False(t, s.Restart())
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, firstRound, s.ID)

	for !s.IsOver() {
		s.Tick(clock.step(moveInterval), moveInterval)
	}
	require.True(t, s.Restart())

	snap := s.Snapshot()
	assert.NotEqual(t, firstRound, snap.RoundID)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 3, snap.Length)
	assert.True(t, snap.Alive)
	assert.Equal(t, OutcomeRunning, snap.Outcome)
	assertFoodOffSnake(t, s)

	// The first move after a restart waits a full interval from the reset.
	s.food = types.Point{X: 0, Y: 0}
	assert.Equal(t, TickIdle, s.Tick(clock.step(moveInterval/2), moveInterval))
	assert.Equal(t, TickMoved, s.Tick(clock.step(moveInterval/2), moveInterval))
}

func TestGridFullEndsRoundWithoutDeath(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 1}
	stats := manager.NewStatsManager(0)
	s, clock := newTestSession(t, grid, WithStats(stats))

	snake, err := entity.NewSnakeAt(grid, []types.Point{{X: 1, Y: 0}, {X: 0, Y: 0}}, types.Right)
	require.NoError(t, err)
	snake.RequestGrowth()
	s.snake = snake
	s.food = types.Point{X: 2, Y: 0}

	require.Equal(t, TickAte, s.Tick(clock.step(moveInterval), moveInterval))
	food, ok := s.Food()
	require.True(t, ok)
	assert.Equal(t, types.Point{X: 3, Y: 0}, food)

	require.Equal(t, TickGridFull, s.Tick(clock.step(moveInterval), moveInterval))
	snap := s.Snapshot()
	assert.True(t, snap.Alive)
	assert.True(t, snap.Over())
	assert.Equal(t, OutcomeGridFull, snap.Outcome)
	assert.False(t, snap.HasFood)
	assert.Equal(t, 2, snap.Score)

	require.Equal(t, 1, stats.GamesPlayed())
	assert.Equal(t, "grid full", stats.Records()[0].Cause)
}

func TestFoodNeverOnSnake(t *testing.T) {
	s, clock := newTestSession(t, types.Grid{Width: 8, Height: 8}, WithSeed(12345))
	turns := []types.Direction{types.Up, types.Left, types.Down, types.Right}

	for i := 0; i < 2000; i++ {
		if s.IsOver() {
			require.True(t, s.Restart())
		}
		if i%3 == 0 {
			s.SetDirection(turns[(i/3)%len(turns)])
		}
		s.Tick(clock.step(moveInterval), moveInterval)
		assertFoodOffSnake(t, s)
	}
}

func TestSeedMakesRoundsReproducible(t *testing.T) {
	a, _ := newTestSession(t, defaultGrid, WithSeed(77))
	b, _ := newTestSession(t, defaultGrid, WithSeed(77))
	fa, _ := a.Food()
	fb, _ := b.Food()
	assert.Equal(t, fa, fb)
}
