// Package config holds the constants fixed at process start.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"grid-snake/game/types"

	"github.com/charmbracelet/log"
)

var ErrInvalidConfig = errors.New("invalid config")

type Color struct {
	R, G, B uint8
}

// Hex formats the colour as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette only affects drawing, never the simulation.
type Palette struct {
	Background Color
	GridLine   Color
	Snake      Color
	Food       Color
	GameOver   Color
	Score      Color
}

type Config struct {
	WindowWidth  int
	WindowHeight int
	CellSize     int
	FPS          int
	MoveInterval time.Duration

	SnakeBodyMargin int
	FoodMargin      int
	Palette         Palette

	TUI       bool
	LogLevel  string
	LogFile   string
	Seed      uint64
	StatsKept int
}

func Default() Config {
	return Config{
		WindowWidth:     640,
		WindowHeight:    480,
		CellSize:        20,
		FPS:             60,
		MoveInterval:    100 * time.Millisecond,
		SnakeBodyMargin: 3,
		FoodMargin:      4,
		Palette: Palette{
			Background: Color{0, 0, 0},
			GridLine:   Color{40, 40, 40},
			Snake:      Color{148, 0, 211},
			Food:       Color{255, 100, 0},
			GameOver:   Color{255, 50, 50},
			Score:      Color{200, 200, 200},
		},
		LogLevel:  "info",
		StatsKept: 200,
	}
}

// Grid derives the grid size in cells from the window and cell size.
func (c Config) Grid() types.Grid {
	return types.Grid{
		Width:  c.WindowWidth / c.CellSize,
		Height: c.WindowHeight / c.CellSize,
	}
}

func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return fmt.Errorf("cell size %d: %w", c.CellSize, ErrInvalidConfig)
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("window %dx%d: %w", c.WindowWidth, c.WindowHeight, ErrInvalidConfig)
	case c.FPS <= 0:
		return fmt.Errorf("fps %d: %w", c.FPS, ErrInvalidConfig)
	case c.MoveInterval <= 0:
		return fmt.Errorf("move interval %s: %w", c.MoveInterval, ErrInvalidConfig)
	case c.SnakeBodyMargin < 0 || 2*c.SnakeBodyMargin >= c.CellSize:
		return fmt.Errorf("body margin %d for cell size %d: %w", c.SnakeBodyMargin, c.CellSize, ErrInvalidConfig)
	case c.FoodMargin < 0 || 2*c.FoodMargin >= c.CellSize:
		return fmt.Errorf("food margin %d for cell size %d: %w", c.FoodMargin, c.CellSize, ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, ErrInvalidConfig)
	}
	if err := c.Grid().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// FromFlags parses startup flags on top of the defaults.
func FromFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Default()
	speed := fs.Int("speed", int(cfg.MoveInterval/time.Millisecond), "Move interval in milliseconds (lower = faster)")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Target frame rate")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "Play in the terminal instead of a window")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file instead of stderr")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Food placement seed, 0 picks one from the clock")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.MoveInterval = time.Duration(*speed) * time.Millisecond

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewLogger builds the process logger at the configured level.
func (c Config) NewLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "snake",
	}), nil
}
