// Package tui plays the game in a terminal with Bubble Tea.
package tui

import (
	"time"

	"grid-snake/config"
	"grid-snake/game"
	"grid-snake/game/input"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TickMsg drives one frame. The session decides whether the snake moves.
type TickMsg time.Time

func tickCmd(frame time.Duration) tea.Cmd {
	return tea.Tick(frame, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type Model struct {
	session  *game.Session
	interval time.Duration
	frame    time.Duration
	keys     keyMap
	help     help.Model
	styles   styles
	width    int
	height   int
}

// NewModel wraps a session. A nil renderer uses the process terminal; SSH
// hosts pass one bound to the connection.
func NewModel(session *game.Session, cfg config.Config, r *lipgloss.Renderer) Model {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	m := Model{
		session:  session,
		interval: cfg.MoveInterval,
		frame:    time.Second / time.Duration(cfg.FPS),
		keys:     defaultKeyMap(),
		help:     help.New(),
		styles:   newStyles(r, cfg.Palette),
	}
	m.syncKeys()
	return m
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.frame)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		keys := m.keys.keyState(msg)
		if keys.Quit {
			return m, tea.Quit
		}
		input.Apply(m.session, keys)
		m.syncKeys()
		return m, nil

	case TickMsg:
		m.session.Tick(time.Time(msg), m.interval)
		m.syncKeys()
		return m, tickCmd(m.frame)
	}
	return m, nil
}

// syncKeys enables restart only once the round is over.
func (m *Model) syncKeys() {
	over := m.session.IsOver()
	m.keys.Restart.SetEnabled(over)
	m.keys.Up.SetEnabled(!over)
	m.keys.Down.SetEnabled(!over)
	m.keys.Left.SetEnabled(!over)
	m.keys.Right.SetEnabled(!over)
}
