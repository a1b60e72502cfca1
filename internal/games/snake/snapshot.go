package snake

import "fmt"

// Snapshot is a read-only copy of the game state, taken at redraw time.
// It owns its slice, so the platform may keep it while the game moves on.
type Snapshot struct {
	Width     int
	Height    int
	Snake     []Position // Head at index 0
	Food      Position
	HasFood   bool // False when the snake fills the board
	Direction Direction
	State     State
	Score     int
	Timer     int // Seconds spent playing
	Delay     int // Milliseconds between moves
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	body := make([]Position, len(g.snake))
	copy(body, g.snake)

	return Snapshot{
		Width:     g.opts.Width,
		Height:    g.opts.Height,
		Snake:     body,
		Food:      g.food,
		HasFood:   g.food != noFood,
		Direction: g.direction,
		State:     g.state,
		Score:     g.score,
		Timer:     g.timer,
		Delay:     g.delay,
	}
}

// Head returns the head position.
func (s Snapshot) Head() Position {
	if len(s.Snake) == 0 {
		return noFood
	}
	return s.Snake[0]
}

// String is a one-line summary used in debug logs.
func (s Snapshot) String() string {
	head := s.Head()
	return fmt.Sprintf("state=%s score=%d time=%ds delay=%dms len=%d head=(%d,%d) dir=%s food=(%d,%d)",
		s.State, s.Score, s.Timer, s.Delay, len(s.Snake), head.X, head.Y, s.Direction, s.Food.X, s.Food.Y)
}
