package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"grid-snake/config"
	"grid-snake/game"
	"grid-snake/game/input"
	"grid-snake/game/manager"
	"grid-snake/ui"
	"grid-snake/ui/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	cfg, err := config.FromFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logOut, closeLog, err := openLog(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	logger, err := cfg.NewLogger(logOut)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	opts := []game.Option{
		game.WithLogger(logger),
		game.WithStats(manager.NewStatsManager(cfg.StatsKept)),
	}
	if cfg.Seed != 0 {
		opts = append(opts, game.WithSeed(cfg.Seed))
	}
	session, err := game.NewSession(cfg.Grid(), opts...)
	if err != nil {
		logger.Fatal("Could not create session", "error", err)
	}

	if cfg.TUI {
		runTerminal(session, cfg, logger)
		return
	}
	runWindow(session, cfg)
}

// openLog picks the log destination. The terminal frontend owns the screen,
// so without a log file its logs are discarded.
func openLog(cfg config.Config) (io.Writer, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return f, func() { f.Close() }, nil
	}
	if cfg.TUI {
		return io.Discard, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}

func runTerminal(session *game.Session, cfg config.Config, logger *log.Logger) {
	p := tea.NewProgram(tui.NewModel(session, cfg, nil), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("Terminal program failed", "error", err)
		os.Exit(1)
	}
}

func runWindow(session *game.Session, cfg config.Config) {
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "Snake")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.FPS))

	renderer := ui.NewRenderer(cfg)

	for !rl.WindowShouldClose() {
		keys := ui.PollKeys()
		if keys.Quit {
			break
		}
		input.Apply(session, keys)

		// Moves happen at a fixed interval, independent of the frame rate.
		session.Tick(time.Now(), cfg.MoveInterval)

		renderer.Draw(session.Snapshot(), session.Stats())
	}
}
