package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Outcome tells whether a round is still running and, if not, how it ended.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeDied
	// OutcomeGridFull ends a round when the snake leaves no cell for food.
	OutcomeGridFull
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDied:
		return "died"
	case OutcomeGridFull:
		return "grid full"
	default:
		return "running"
	}
}

// TickResult reports what a call to Tick did.
type TickResult int

const (
	TickIdle TickResult = iota
	TickMoved
	TickAte
	TickDied
	TickGridFull
)

func (r TickResult) String() string {
	switch r {
	case TickMoved:
		return "moved"
	case TickAte:
		return "ate"
	case TickDied:
		return "died"
	case TickGridFull:
		return "grid full"
	default:
		return "idle"
	}
}

type Option func(*Session)

// WithClock replaces time.Now, used by Reset to stamp the round start.
func WithClock(clock func() time.Time) Option {
	return func(s *Session) { s.clock = clock }
}

// WithSeed fixes the food placement sequence.
func WithSeed(seed uint64) Option {
	return func(s *Session) { s.seed = seed }
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithStats records every finished round into sm.
func WithStats(sm *manager.StatsManager) Option {
	return func(s *Session) { s.stats = sm }
}

// Session owns one player's snake, food and score. Everything is replaced
// wholesale by Reset; callers only read it through Snapshot.
type Session struct {
	ID        string
	grid      types.Grid
	snake     *entity.Snake
	food      types.Point
	hasFood   bool
	score     int
	outcome   Outcome
	lastMove  time.Time
	startTime time.Time

	seed         uint64
	clock        func() time.Time
	logger       *log.Logger
	stats        *manager.StatsManager
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

func NewSession(grid types.Grid, opts ...Option) (*Session, error) {
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s := &Session{
		grid:   grid,
		seed:   uint64(time.Now().UnixNano()),
		clock:  time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.collisionMgr = manager.NewCollisionManager(grid)
	s.foodMgr = manager.NewFoodManager(grid, s.collisionMgr, s.seed)
	s.Reset()

	return s, nil
}

// Reset starts a new round: fresh snake, new food, zero score.
func (s *Session) Reset() {
	now := s.clock()

	s.ID = uuid.NewString()
	s.snake = entity.NewSnake(s.grid)
	s.score = 0
	s.outcome = OutcomeRunning
	s.lastMove = now
	s.startTime = now
	s.hasFood = false

	food, err := s.foodMgr.Spawn(s.snake.Segments())
	if err != nil {
		// Validate guarantees room for food, so this is a broken grid.
		s.finish(OutcomeGridFull, now)
		s.logger.Error("Could not place food", "round", s.ID, "error", err)
		return
	}
	s.food = food
	s.hasFood = true

	s.logger.Info("Round started", "round", s.ID, "grid", fmt.Sprintf("%dx%d", s.grid.Width, s.grid.Height))
}

// Restart resets the session only when the round is over.
func (s *Session) Restart() bool {
	if !s.IsOver() {
		return false
	}
	s.Reset()
	return true
}

// SetDirection buffers a turn for the next move. Ignored once the round is over.
func (s *Session) SetDirection(dir types.Direction) {
	if s.IsOver() {
		return
	}
	s.snake.SetDirection(dir)
}

// Tick advances the snake when at least interval has passed since the last
// move. Food is checked only after a successful move, so one tick scores
// at most one point.
func (s *Session) Tick(now time.Time, interval time.Duration) TickResult {
	if s.IsOver() {
		return TickIdle
	}
	if now.Sub(s.lastMove) < interval {
		return TickIdle
	}
	s.lastMove = now

	if s.snake.Advance() == entity.Died {
		s.finish(OutcomeDied, now)
		s.logger.Info("Snake died", "round", s.ID, "cause", s.snake.Cause(), "score", s.score)
		return TickDied
	}

	if !s.hasFood || !s.collisionMgr.IsFoodCollision(s.snake.Head(), s.food) {
		return TickMoved
	}

	s.snake.RequestGrowth()
	s.score++
	s.logger.Debug("Food eaten", "round", s.ID, "cell", s.food, "score", s.score)

	food, err := s.foodMgr.Spawn(s.snake.Segments())
	if errors.Is(err, manager.ErrExhaustedGrid) {
		s.hasFood = false
		s.finish(OutcomeGridFull, now)
		s.logger.Warn("Grid full", "round", s.ID, "score", s.score)
		return TickGridFull
	}
	s.food = food
	return TickAte
}

func (s *Session) finish(outcome Outcome, now time.Time) {
	s.outcome = outcome
	if s.stats == nil {
		return
	}
	cause := outcome.String()
	if outcome == OutcomeDied {
		cause = s.snake.Cause().String()
	}
	s.stats.AddRound(manager.RoundRecord{
		ID:        s.ID,
		StartTime: s.startTime,
		EndTime:   now,
		Score:     s.score,
		Length:    s.snake.Length(),
		Cause:     cause,
	})
}

// IsOver reports whether the round ended, by death or by filling the grid.
func (s *Session) IsOver() bool {
	return s.outcome != OutcomeRunning
}

func (s *Session) Outcome() Outcome { return s.outcome }
func (s *Session) Score() int       { return s.score }
func (s *Session) Grid() types.Grid { return s.grid }

// Stats returns the shared statistics, nil when none were configured.
func (s *Session) Stats() *manager.StatsManager { return s.stats }

// Food returns the food cell and whether one is placed.
func (s *Session) Food() (types.Point, bool) {
	return s.food, s.hasFood
}
