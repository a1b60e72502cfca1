// Package snake implements the authoritative Snake game state: snake body,
// food, direction, score, timer, speed and the Ready/Playing/GameOver state
// machine. It knows nothing about terminals; the platform layer drives it
// through Tick, RequestDirection, Start, Restart and AdvanceClock and reads
// it back through Snapshot.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit step applied to the head for this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// State is the game lifecycle state.
type State int

const (
	StateReady State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event reports what a Tick did.
type Event int

const (
	EventNone     Event = iota // Not playing, nothing happened
	EventMoved                 // Snake advanced one cell
	EventAte                   // Snake advanced onto food and grew
	EventCollided              // Move hit a wall or the body, game over
)

// Position is a grid cell.
type Position struct {
	X, Y int
}

// Add returns the position offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// noFood marks a board with no free cell left.
var noFood = Position{X: -1, Y: -1}

// InitialDirection is the direction every game starts with.
const InitialDirection = DirRight

// Options configures a new game.
type Options struct {
	Width        int // Grid width in cells
	Height       int // Grid height in cells
	InitialDelay int // Milliseconds between moves at the start
	DelayStep    int // Milliseconds removed per food eaten
	MinDelay     int // Floor for the delay
	Seed         int64
}

// OptionsFromConfig builds engine options from a loaded configuration.
func OptionsFromConfig(cfg config.SnakeConfig, seed int64) Options {
	return Options{
		Width:        cfg.Grid.Width,
		Height:       cfg.Grid.Height,
		InitialDelay: cfg.Speed.InitialDelayMs,
		DelayStep:    cfg.Speed.StepMs,
		MinDelay:     cfg.Speed.MinDelayMs,
		Seed:         seed,
	}
}

// Game implements the Snake game.
type Game struct {
	opts Options
	rng  *rand.Rand

	// Snake state
	snake      []Position // Head at index 0
	direction  Direction  // Last committed direction
	pending    Direction  // Requested direction for the next tick
	hasPending bool

	food  Position
	state State
	score int
	timer int // Seconds spent playing
	delay int // Milliseconds between moves
}

// New creates a game in the Ready state.
func New(opts Options) *Game {
	g := &Game{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}
	g.Restart()
	return g
}

// Restart resets every piece of state and returns to Ready. It can be called
// from any state; the game does not start until Start is called.
func (g *Game) Restart() {
	g.snake = []Position{{X: g.opts.Width / 2, Y: g.opts.Height / 2}}
	g.direction = InitialDirection
	g.pending = InitialDirection
	g.hasPending = false
	g.score = 0
	g.timer = 0
	g.delay = g.opts.InitialDelay
	g.state = StateReady
	g.spawnFood()
}

// Start moves a Ready game to Playing. It has no effect in any other state.
func (g *Game) Start() {
	if g.state == StateReady {
		g.state = StatePlaying
	}
}

// RequestDirection buffers a direction change for the next tick.
// Requests outside Playing and reversals of the committed direction are
// dropped; among valid requests between two ticks the last one wins.
func (g *Game) RequestDirection(d Direction) {
	if g.state != StatePlaying {
		return
	}
	if d == g.direction.Opposite() {
		return
	}
	g.pending = d
	g.hasPending = true
}

// Tick advances the snake by one cell.
func (g *Game) Tick() Event {
	if g.state != StatePlaying {
		return EventNone
	}

	// Apply buffered direction
	if g.hasPending {
		g.direction = g.pending
		g.hasPending = false
	}

	newHead := g.snake[0].Add(g.direction.Delta())
	eats := newHead == g.food

	if g.collides(newHead, eats) {
		g.state = StateGameOver
		return EventCollided
	}

	g.snake = append([]Position{newHead}, g.snake...)

	if !eats {
		g.snake = g.snake[:len(g.snake)-1]
		return EventMoved
	}

	g.score++
	g.delay = max(g.opts.MinDelay, g.delay-g.opts.DelayStep)
	g.spawnFood()
	return EventAte
}

// collides reports whether the head may not move to p. The tail cell is a
// legal target because it is vacated in the same tick, unless the snake is
// growing this tick and the tail stays put.
func (g *Game) collides(p Position, growing bool) bool {
	if !g.inBounds(p) {
		return true
	}

	body := g.snake
	if !growing {
		body = body[:len(body)-1]
	}
	for _, seg := range body {
		if seg == p {
			return true
		}
	}
	return false
}

func (g *Game) inBounds(p Position) bool {
	return p.X >= 0 && p.X < g.opts.Width && p.Y >= 0 && p.Y < g.opts.Height
}

// AdvanceClock adds one second to the play timer. Only counts while Playing.
func (g *Game) AdvanceClock() {
	if g.state == StatePlaying {
		g.timer++
	}
}

// spawnFood places food at a uniformly random cell not covered by the snake.
func (g *Game) spawnFood() {
	var free []Position
	for y := 0; y < g.opts.Height; y++ {
		for x := 0; x < g.opts.Width; x++ {
			p := Position{X: x, Y: y}
			if !g.isSnakeAt(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		// Board is full; the next move can only be a collision.
		g.food = noFood
		return
	}

	g.food = free[g.rng.Intn(len(free))]
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p Position) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// State returns the lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Delay returns the current milliseconds between moves.
func (g *Game) Delay() int {
	return g.delay
}

// Score returns the number of food items eaten this game.
func (g *Game) Score() int {
	return g.score
}

// Len returns the number of snake segments.
func (g *Game) Len() int {
	return len(g.snake)
}
