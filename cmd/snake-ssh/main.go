// Command snake-ssh serves the terminal game over SSH. Every connection
// gets its own independent round.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grid-snake/config"
	"grid-snake/game"
	"grid-snake/game/manager"
	"grid-snake/ui/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
)

const maxConnectionsPerIP = 2

func main() {
	fs := flag.CommandLine
	host := fs.String("host", "0.0.0.0", "Address to listen on")
	port := fs.String("port", "2323", "Port to listen on")
	hostKey := fs.String("host-key", ".ssh/snake_ed25519", "Path to the SSH host key, created if missing")

	cfg, err := config.FromFlags(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log.SetDefault(logger)

	limiter := newIPLimiter(maxConnectionsPerIP)
	addr := net.JoinHostPort(*host, *port)

	sshServer, err := wish.NewServer(
		wish.WithAddress(addr),
		wish.WithHostKeyPath(*hostKey),
		wish.WithMiddleware(
			bubbletea.Middleware(sessionHandler(cfg, logger)),
			logging.Middleware(),
			activeterm.Middleware(),
			limiter.middleware(logger),
		),
	)
	if err != nil {
		logger.Fatal("Failed to create ssh server", "error", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	logger.Info("Starting SSH server", "addr", addr)
	go func() {
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Error("Could not start server", "error", err)
			done <- nil
		}
	}()

	<-done

	logger.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sshServer.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		logger.Error("Could not stop server", "error", err)
	}
}

// sessionHandler builds a fresh game session and terminal model per connection.
func sessionHandler(cfg config.Config, logger *log.Logger) bubbletea.Handler {
	return func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		sessionLogger := logger.With("user", s.User(), "ip", remoteIP(s.RemoteAddr()))

		opts := []game.Option{
			game.WithLogger(sessionLogger),
			game.WithStats(manager.NewStatsManager(cfg.StatsKept)),
		}
		if cfg.Seed != 0 {
			opts = append(opts, game.WithSeed(cfg.Seed))
		}
		session, err := game.NewSession(cfg.Grid(), opts...)
		if err != nil {
			sessionLogger.Error("Could not create session", "error", err)
			return nil, nil
		}

		model := tui.NewModel(session, cfg, bubbletea.MakeRenderer(s))
		return model, []tea.ProgramOption{tea.WithAltScreen()}
	}
}
