package tui

import (
	"strings"

	"grid-snake/config"
	"grid-snake/game"
	"grid-snake/game/types"
	"grid-snake/ui/shape"

	"github.com/charmbracelet/lipgloss"
)

// Each cell is two columns wide so the board looks square in a terminal.
const (
	emptyCell = "  "
	bodyCell  = "██"
	foodCell  = "()"
)

var (
	headRunes = map[types.Direction]string{
		types.Up:    "▲▲",
		types.Down:  "▼▼",
		types.Left:  "◀◀",
		types.Right: "▶▶",
	}
	tailRunes = map[types.Direction]string{
		types.Up:    "╹╹",
		types.Down:  "╻╻",
		types.Left:  "╸━",
		types.Right: "━╺",
	}
)

type styles struct {
	board    lipgloss.Style
	empty    lipgloss.Style
	snake    lipgloss.Style
	food     lipgloss.Style
	score    lipgloss.Style
	gameOver lipgloss.Style
	stats    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, p config.Palette) styles {
	return styles{
		board: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(p.GridLine.Hex())),
		empty:    r.NewStyle().Background(lipgloss.Color(p.Background.Hex())),
		snake:    r.NewStyle().Foreground(lipgloss.Color(p.Snake.Hex())),
		food:     r.NewStyle().Foreground(lipgloss.Color(p.Food.Hex())).Bold(true),
		score:    r.NewStyle().Foreground(lipgloss.Color(p.Score.Hex())),
		gameOver: r.NewStyle().Foreground(lipgloss.Color(p.GameOver.Hex())).Bold(true),
		stats:    r.NewStyle().Faint(true),
	}
}

func (m Model) View() string {
	snap := m.session.Snapshot()

	header := m.styles.score.Render(shape.ScoreLabel(snap.Score))
	if label := shape.StatsLabel(m.session.Stats()); label != "" {
		header += "   " + m.styles.stats.Render(label)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(m.styles.board.Render(m.renderBoard(snap)))
	b.WriteString("\n")
	if snap.Over() {
		b.WriteString(m.styles.gameOver.Render(shape.OverLabel(snap.Outcome)))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderBoard(snap game.Snapshot) string {
	cells := make(map[types.Point]string, len(snap.Segments)+1)
	if snap.HasFood {
		cells[snap.Food] = m.styles.food.Render(foodCell)
	}
	last := len(snap.Segments) - 1
	for i, p := range snap.Segments {
		switch {
		case i == 0:
			cells[p] = m.styles.snake.Render(headRunes[snap.Direction])
		case i == last:
			cells[p] = m.styles.snake.Render(tailRunes[snap.TailOrientation])
		default:
			cells[p] = m.styles.snake.Render(bodyCell)
		}
	}

	rows := make([]string, 0, snap.Grid.Height)
	var row strings.Builder
	for y := 0; y < snap.Grid.Height; y++ {
		row.Reset()
		for x := 0; x < snap.Grid.Width; x++ {
			if cell, ok := cells[types.Point{X: x, Y: y}]; ok {
				row.WriteString(cell)
				continue
			}
			row.WriteString(m.styles.empty.Render(emptyCell))
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}
