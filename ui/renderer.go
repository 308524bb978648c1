package ui

import (
	"grid-snake/config"
	"grid-snake/game"
	"grid-snake/game/input"
	"grid-snake/game/manager"
	"grid-snake/ui/shape"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	scoreFontSize    = 20
	gameOverFontSize = 40
	statsFontSize    = 16
	textMargin       = 8
)

type Renderer struct {
	layout       shape.Layout
	palette      config.Palette
	screenWidth  int32
	screenHeight int32
}

func NewRenderer(cfg config.Config) *Renderer {
	return &Renderer{
		layout: shape.Layout{
			CellSize:   int32(cfg.CellSize),
			BodyMargin: int32(cfg.SnakeBodyMargin),
			FoodMargin: int32(cfg.FoodMargin),
		},
		palette:      cfg.Palette,
		screenWidth:  int32(cfg.WindowWidth),
		screenHeight: int32(cfg.WindowHeight),
	}
}

func color(c config.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// Draw renders one frame. Food is drawn before the snake so the snake wins
// any overlap, and the score stays on top of everything.
func (r *Renderer) Draw(snap game.Snapshot, stats *manager.StatsManager) {
	rl.BeginDrawing()
	rl.ClearBackground(color(r.palette.Background))

	r.drawGrid(snap)
	if snap.HasFood {
		food := r.layout.Food(snap.Food)
		rl.DrawRectangle(food.X, food.Y, food.W, food.H, color(r.palette.Food))
	}
	r.drawSnake(snap)

	if snap.Over() {
		r.drawGameOver(snap.Outcome)
	}
	rl.DrawText(shape.ScoreLabel(snap.Score), textMargin, textMargin, scoreFontSize, color(r.palette.Score))
	if label := shape.StatsLabel(stats); label != "" {
		width := rl.MeasureText(label, statsFontSize)
		rl.DrawText(label, r.screenWidth-width-textMargin, textMargin, statsFontSize, color(r.palette.Score))
	}

	rl.EndDrawing()
}

func (r *Renderer) drawGrid(snap game.Snapshot) {
	lineColor := color(r.palette.GridLine)
	for _, l := range r.layout.GridLines(snap.Grid) {
		rl.DrawLine(l.X1, l.Y1, l.X2, l.Y2, lineColor)
	}
}

func (r *Renderer) drawSnake(snap game.Snapshot) {
	snakeColor := color(r.palette.Snake)
	last := len(snap.Segments) - 1
	for i, p := range snap.Segments {
		switch {
		case i == 0:
			head := r.layout.Head(p)
			rl.DrawCircle(head.CenterX, head.CenterY, head.Radius, snakeColor)
		case i == last:
			tail := r.layout.Tail(p, snap.TailOrientation)
			rl.DrawTriangle(
				rl.Vector2{X: tail[0].X, Y: tail[0].Y},
				rl.Vector2{X: tail[1].X, Y: tail[1].Y},
				rl.Vector2{X: tail[2].X, Y: tail[2].Y},
				snakeColor)
		default:
			body := r.layout.Body(p)
			rl.DrawRectangle(body.X, body.Y, body.W, body.H, snakeColor)
		}
	}
}

func (r *Renderer) drawGameOver(outcome game.Outcome) {
	text := shape.OverLabel(outcome)
	width := rl.MeasureText(text, gameOverFontSize)
	x, y := shape.Centered(r.screenWidth, r.screenHeight, width, gameOverFontSize)
	rl.DrawText(text, x, y, gameOverFontSize, color(r.palette.GameOver))
}

// PollKeys reads the keys held during this frame. Arrows and WASD steer.
func PollKeys() input.KeyState {
	return input.KeyState{
		Up:      rl.IsKeyDown(rl.KeyUp) || rl.IsKeyDown(rl.KeyW),
		Down:    rl.IsKeyDown(rl.KeyDown) || rl.IsKeyDown(rl.KeyS),
		Left:    rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA),
		Right:   rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD),
		Restart: rl.IsKeyDown(rl.KeyR),
		Quit:    rl.IsKeyPressed(rl.KeyEscape),
	}
}
