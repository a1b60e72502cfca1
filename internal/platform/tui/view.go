package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

const (
	hudHeight = 1 // Score/time/level line above the board
	border    = 1

	levelBaseDelay = 300 // Delay that maps to level 0
	levelStepDelay = 20  // Delay reduction per level
)

// Board glyphs. Every grid cell spans cellWidth terminal columns.
const (
	glyphGrid  = '·'
	glyphHead  = '█'
	glyphBody  = '▓'
	glyphFood  = '█'
	glyphBlank = ' '
)

// Renderer paints game snapshots onto a screen. It holds no game state.
type Renderer struct {
	cellWidth int
}

// NewRenderer creates a renderer that scales each grid cell to cellWidth columns.
func NewRenderer(cellWidth int) Renderer {
	return Renderer{cellWidth: max(1, cellWidth)}
}

// Layout returns the screen area the whole game occupies (HUD + bordered
// board) for a grid of the given size, centered on a screen of screenW×screenH.
func (r Renderer) Layout(gridW, gridH, screenW, screenH int) core.Rect {
	w := gridW*r.cellWidth + 2*border
	h := gridH + 2*border + hudHeight
	return core.CenteredRect(screenW, screenH, w, h)
}

// Fits reports whether a grid can be drawn on a screen of the given size.
func (r Renderer) Fits(gridW, gridH, screenW, screenH int) bool {
	area := r.Layout(gridW, gridH, screenW, screenH)
	return area.W <= screenW && area.H <= screenH
}

// Draw clears dst and repaints the full frame for snap.
// A nil screen is a no-op.
func (r Renderer) Draw(dst *core.Screen, snap snake.Snapshot) {
	if dst == nil {
		return
	}
	dst.Clear()

	if !r.Fits(snap.Width, snap.Height, dst.Width(), dst.Height()) {
		r.drawTooSmall(dst, snap)
		return
	}

	area := r.Layout(snap.Width, snap.Height, dst.Width(), dst.Height())
	box := core.NewRect(area.X, area.Y+hudHeight, area.W, area.H-hudHeight)
	board := box.Inset(border)

	r.drawHUD(dst, core.NewRect(area.X, area.Y, area.W, hudHeight), snap)
	dst.DrawBox(box, core.ColorGray)
	r.drawGrid(dst, board, snap)

	if snap.HasFood {
		r.drawCell(dst, board, snap.Food, core.Cell{Rune: glyphFood, Color: core.ColorBrightRed})
	}

	// Body first so the head is never hidden
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		cell := core.Cell{Rune: glyphBody, Color: core.ColorGreen}
		if i == 0 {
			cell = core.Cell{Rune: glyphHead, Color: core.ColorBrightGreen}
		}
		r.drawCell(dst, board, snap.Snake[i], cell)
	}

	switch snap.State {
	case snake.StateReady:
		r.drawOverlay(dst, board, []overlayLine{
			{"SNAKE GAME", core.ColorBrightYellow},
			{"", core.ColorDefault},
			{"Use arrow keys to move", core.ColorWhite},
			{"Eat the red food to grow", core.ColorWhite},
			{"Avoid hitting walls and yourself", core.ColorWhite},
			{"", core.ColorDefault},
			{"Press SPACE to start", core.ColorBrightWhite},
		})
	case snake.StateGameOver:
		r.drawOverlay(dst, board, []overlayLine{
			{"GAME OVER", core.ColorBrightRed},
			{"", core.ColorDefault},
			{fmt.Sprintf("Final Score: %d", snap.Score), core.ColorBrightWhite},
			{"", core.ColorDefault},
			{"Press SPACE to restart", core.ColorWhite},
		})
	}
}

// drawHUD draws SCORE on the left, TIME in the middle and LEVEL on the right.
func (r Renderer) drawHUD(dst *core.Screen, area core.Rect, snap snake.Snapshot) {
	score := fmt.Sprintf("SCORE %d", snap.Score)
	clock := fmt.Sprintf("TIME %s", FormatClock(snap.Timer))
	level := fmt.Sprintf("LEVEL %d", SpeedLevel(snap.Delay))

	dst.DrawText(area.X+1, area.Y, score, core.ColorBrightWhite)
	dst.DrawTextCentered(area, area.Y, clock, core.ColorBrightWhite)
	dst.DrawText(area.Right()-1-len(level), area.Y, level, core.ColorBrightWhite)
}

// drawGrid marks every cell of the board with a faint dot.
func (r Renderer) drawGrid(dst *core.Screen, board core.Rect, snap snake.Snapshot) {
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			dst.SetCell(board.X+x*r.cellWidth, board.Y+y, core.Cell{Rune: glyphGrid, Color: core.ColorDarkGray})
		}
	}
}

// drawCell fills the columns of one grid cell.
func (r Renderer) drawCell(dst *core.Screen, board core.Rect, p snake.Position, c core.Cell) {
	sx := board.X + p.X*r.cellWidth
	sy := board.Y + p.Y
	if !board.Contains(sx, sy) {
		return
	}
	for i := 0; i < r.cellWidth; i++ {
		dst.SetCell(sx+i, sy, c)
	}
}

type overlayLine struct {
	text  string
	color core.Color
}

// drawOverlay blanks the board and centers the lines on it.
func (r Renderer) drawOverlay(dst *core.Screen, board core.Rect, lines []overlayLine) {
	dst.FillRect(board, core.Cell{Rune: glyphBlank})

	top := board.Y + (board.H-len(lines))/2
	for i, line := range lines {
		if line.text == "" {
			continue
		}
		dst.DrawTextCentered(board, top+i, line.text, line.color)
	}
}

// drawTooSmall replaces the board with a resize notice.
func (r Renderer) drawTooSmall(dst *core.Screen, snap snake.Snapshot) {
	area := r.Layout(snap.Width, snap.Height, 0, 0)
	_, cy := dst.Bounds().Center()

	dst.DrawTextCentered(dst.Bounds(), cy-1, "Window too small", core.ColorBrightYellow)
	dst.DrawTextCentered(dst.Bounds(), cy+1, fmt.Sprintf("Resize to at least %dx%d", area.W, area.H), core.ColorWhite)
}

// FormatClock formats seconds as mm:ss. Minutes keep growing past 99.
func FormatClock(seconds int) string {
	seconds = max(0, seconds)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// SpeedLevel converts a move delay into a display level: lower delay, higher
// level, never below 1.
func SpeedLevel(delayMs int) int {
	n := levelBaseDelay - delayMs
	if n <= 0 {
		return 1
	}
	return max(1, (n+levelStepDelay-1)/levelStepDelay)
}
