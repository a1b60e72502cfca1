package snake

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func testOptions(seed int64) Options {
	return Options{
		Width:        30,
		Height:       20,
		InitialDelay: 200,
		DelayStep:    5,
		MinDelay:     80,
		Seed:         seed,
	}
}

// arrange puts a playing game into a hand-built position.
func arrange(g *Game, body []Position, dir Direction, food Position) {
	g.snake = append([]Position(nil), body...)
	g.direction = dir
	g.pending = dir
	g.hasPending = false
	g.food = food
	g.state = StatePlaying
}

func TestNewGameIsReady(t *testing.T) {
	g := New(testOptions(1))
	snap := g.Snapshot()

	if snap.State != StateReady {
		t.Errorf("New game should be ready, got %s", snap.State)
	}
	if len(snap.Snake) != 1 || snap.Snake[0] != (Position{X: 15, Y: 10}) {
		t.Errorf("Snake should be a single segment at (15, 10), got %v", snap.Snake)
	}
	if snap.Direction != DirRight {
		t.Errorf("Initial direction should be right, got %s", snap.Direction)
	}
	if snap.Score != 0 || snap.Timer != 0 || snap.Delay != 200 {
		t.Errorf("Expected score 0, timer 0, delay 200, got %d, %d, %d", snap.Score, snap.Timer, snap.Delay)
	}
	if !snap.HasFood || g.isSnakeAt(snap.Food) {
		t.Errorf("Food should be placed off the snake, got %v", snap.Food)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := New(testOptions(12345))
	g2 := New(testOptions(12345))
	g1.Start()
	g2.Start()

	for i := 0; i < 40; i++ {
		switch i {
		case 5:
			g1.RequestDirection(DirDown)
			g2.RequestDirection(DirDown)
		case 9:
			g1.RequestDirection(DirLeft)
			g2.RequestDirection(DirLeft)
		case 20:
			g1.RequestDirection(DirUp)
			g2.RequestDirection(DirUp)
		}
		g1.Tick()
		g2.Tick()
		g1.AdvanceClock()
		g2.AdvanceClock()
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("Snapshots diverged:\n%s\n%s", g1.Snapshot(), g2.Snapshot())
	}
}

func TestTickIgnoredUnlessPlaying(t *testing.T) {
	g := New(testOptions(7))
	before := g.Snapshot()

	if ev := g.Tick(); ev != EventNone {
		t.Errorf("Tick in ready state should do nothing, got event %d", ev)
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("Tick in ready state should not change the game")
	}

	arrange(g, []Position{{X: 29, Y: 5}}, DirRight, Position{X: 0, Y: 0})
	g.Tick() // into the wall
	over := g.Snapshot()

	if ev := g.Tick(); ev != EventNone {
		t.Errorf("Tick after game over should do nothing, got event %d", ev)
	}
	if !reflect.DeepEqual(over, g.Snapshot()) {
		t.Error("Tick after game over should not change the game")
	}
}

func TestThreeTicksFromCenter(t *testing.T) {
	g := New(testOptions(3))
	g.Start()
	g.food = Position{X: 0, Y: 0} // Out of the way

	for i := 0; i < 3; i++ {
		if ev := g.Tick(); ev != EventMoved {
			t.Fatalf("Tick %d: expected EventMoved, got %d", i, ev)
		}
	}

	snap := g.Snapshot()
	if len(snap.Snake) != 1 {
		t.Errorf("Snake should still have 1 segment, got %d", len(snap.Snake))
	}
	if snap.Head() != (Position{X: 18, Y: 10}) {
		t.Errorf("Head should be at (18, 10), got %v", snap.Head())
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := New(testOptions(42))
	g.Start()
	g.food = Position{X: 0, Y: 0}

	g.RequestDirection(DirLeft)
	g.Tick()

	if head := g.Snapshot().Head(); head != (Position{X: 16, Y: 10}) {
		t.Errorf("Reversal should be ignored and the head moved right, got %v", head)
	}
	if g.direction != DirRight {
		t.Errorf("Direction should still be right, got %s", g.direction)
	}
}

func TestReversalCheckedAgainstCommittedDirection(t *testing.T) {
	body := []Position{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}

	t.Run("reverse of committed is dropped", func(t *testing.T) {
		g := New(testOptions(1))
		arrange(g, body, DirRight, Position{X: 0, Y: 0})

		// Up then Left: Left is the reverse of the committed Right, so Up survives
		g.RequestDirection(DirUp)
		g.RequestDirection(DirLeft)
		g.Tick()

		if head := g.Snapshot().Head(); head != (Position{X: 10, Y: 9}) {
			t.Errorf("Expected head to move up to (10, 9), got %v", head)
		}
	})

	t.Run("last valid request wins", func(t *testing.T) {
		g := New(testOptions(1))
		arrange(g, body, DirRight, Position{X: 0, Y: 0})

		// Down is the reverse of the pending Up but not of the committed Right
		g.RequestDirection(DirUp)
		g.RequestDirection(DirDown)
		g.Tick()

		if head := g.Snapshot().Head(); head != (Position{X: 10, Y: 11}) {
			t.Errorf("Expected head to move down to (10, 11), got %v", head)
		}
	})
}

func TestRequestDirectionIgnoredUnlessPlaying(t *testing.T) {
	g := New(testOptions(5))
	g.RequestDirection(DirDown) // Ready: dropped
	g.Start()
	g.food = Position{X: 0, Y: 0}
	g.Tick()

	if head := g.Snapshot().Head(); head != (Position{X: 16, Y: 10}) {
		t.Errorf("Request made before start should be dropped, head at %v", head)
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name string
		head Position
		dir  Direction
	}{
		{"right wall", Position{X: 29, Y: 10}, DirRight},
		{"left wall", Position{X: 0, Y: 10}, DirLeft},
		{"top wall", Position{X: 15, Y: 0}, DirUp},
		{"bottom wall", Position{X: 15, Y: 19}, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New(testOptions(789))
			arrange(g, []Position{tc.head}, tc.dir, Position{X: 3, Y: 3})
			before := g.Snapshot()

			if ev := g.Tick(); ev != EventCollided {
				t.Errorf("Expected EventCollided, got %d", ev)
			}

			after := g.Snapshot()
			if after.State != StateGameOver {
				t.Errorf("Game should be over after hitting wall, got %s", after.State)
			}
			if !reflect.DeepEqual(before.Snake, after.Snake) {
				t.Errorf("Snake should be frozen, was %v now %v", before.Snake, after.Snake)
			}
			if after.Score != before.Score || after.Delay != before.Delay || after.Food != before.Food {
				t.Error("Score, delay and food should be frozen on collision")
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	g := New(testOptions(111))

	// Moving right puts the head on (6, 5), a body segment that is not the tail
	arrange(g, []Position{
		{X: 5, Y: 5}, // Head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}, DirUp, Position{X: 0, Y: 0})
	g.RequestDirection(DirRight)

	if ev := g.Tick(); ev != EventCollided {
		t.Errorf("Expected EventCollided, got %d", ev)
	}
	if g.State() != StateGameOver {
		t.Error("Game should be over after self collision")
	}
}

func TestMoveIntoVacatedTail(t *testing.T) {
	g := New(testOptions(222))

	// A 2x2 loop: the head chases its own tail at (6, 5)
	arrange(g, []Position{
		{X: 5, Y: 5}, // Head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5}, // Tail
	}, DirUp, Position{X: 0, Y: 0})
	g.RequestDirection(DirRight)

	if ev := g.Tick(); ev != EventMoved {
		t.Fatalf("Moving into the vacated tail should be legal, got event %d", ev)
	}

	want := []Position{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}}
	if got := g.Snapshot().Snake; !reflect.DeepEqual(got, want) {
		t.Errorf("Snake = %v, expected %v", got, want)
	}
	if g.State() != StatePlaying {
		t.Errorf("Game should still be playing, got %s", g.State())
	}
}

func TestMoveIntoTailWhileGrowingCollides(t *testing.T) {
	g := New(testOptions(223))

	// Food on the tail means the tail does not move away this tick
	arrange(g, []Position{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
	}, DirUp, Position{X: 6, Y: 5})
	g.RequestDirection(DirRight)

	if ev := g.Tick(); ev != EventCollided {
		t.Errorf("Growing into the tail should collide, got event %d", ev)
	}
}

func TestSnakeGrowth(t *testing.T) {
	g := New(testOptions(333))
	g.Start()

	head := g.snake[0]
	g.food = Position{X: head.X + 1, Y: head.Y}
	initialLen := g.Len()

	if ev := g.Tick(); ev != EventAte {
		t.Fatalf("Expected EventAte, got %d", ev)
	}

	snap := g.Snapshot()
	if len(snap.Snake) != initialLen+1 {
		t.Errorf("Snake should grow by 1 after eating food, got %d vs %d", len(snap.Snake), initialLen+1)
	}
	if snap.Score != 1 {
		t.Errorf("Score should be 1 after eating food, got %d", snap.Score)
	}
	if snap.Delay != 195 {
		t.Errorf("Delay should drop to 195, got %d", snap.Delay)
	}
	if g.isSnakeAt(snap.Food) {
		t.Errorf("New food spawned on snake at %v", snap.Food)
	}

	// The next plain move keeps the new length
	g.food = Position{X: 0, Y: 0}
	g.Tick()
	if g.Len() != initialLen+1 {
		t.Errorf("Length should stay %d after a plain move, got %d", initialLen+1, g.Len())
	}
}

func TestSpeedRampIsMonotonicAndFloored(t *testing.T) {
	opts := testOptions(444)
	opts.Width = 100
	opts.Height = 3
	g := New(opts)
	g.Start()

	prev := g.Delay()
	for i := 0; i < 40; i++ {
		head := g.snake[0]
		g.food = Position{X: head.X + 1, Y: head.Y}
		if ev := g.Tick(); ev != EventAte {
			t.Fatalf("Meal %d: expected EventAte, got %d", i, ev)
		}

		if g.Delay() > prev {
			t.Fatalf("Delay increased from %d to %d", prev, g.Delay())
		}
		if g.Delay() < opts.MinDelay {
			t.Fatalf("Delay %d dropped below floor %d", g.Delay(), opts.MinDelay)
		}
		prev = g.Delay()
	}

	if g.Delay() != opts.MinDelay {
		t.Errorf("After 40 meals delay should sit at the floor, got %d", g.Delay())
	}
	if g.Score() != 40 {
		t.Errorf("Score should be 40, got %d", g.Score())
	}
}

func TestFoodSpawnValidity(t *testing.T) {
	g := New(testOptions(999))

	// A long snake along the top rows
	var body []Position
	for x := 29; x >= 0; x-- {
		body = append(body, Position{X: x, Y: 0})
	}
	for x := 0; x < 20; x++ {
		body = append(body, Position{X: x, Y: 1})
	}
	arrange(g, body, DirLeft, Position{X: 0, Y: 5})

	for i := 0; i < 100; i++ {
		g.spawnFood()

		if g.isSnakeAt(g.food) {
			t.Errorf("Food spawned on snake at (%d, %d)", g.food.X, g.food.Y)
		}
		if !g.inBounds(g.food) {
			t.Errorf("Food spawned out of bounds at (%d, %d)", g.food.X, g.food.Y)
		}
	}
}

func TestFoodWhenBoardFull(t *testing.T) {
	opts := testOptions(5)
	opts.Width = 2
	opts.Height = 2
	g := New(opts)

	arrange(g, []Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, DirUp, Position{})
	g.spawnFood()

	snap := g.Snapshot()
	if snap.HasFood {
		t.Errorf("A full board should have no food, got %v", snap.Food)
	}
}

func TestRestartFromGameOver(t *testing.T) {
	g := New(testOptions(555))
	g.Start()

	// Eat once, let time pass, then hit the right wall
	g.food = Position{X: 16, Y: 10}
	g.Tick()
	g.AdvanceClock()
	g.AdvanceClock()
	g.RequestDirection(DirDown)
	g.food = Position{X: 0, Y: 0}
	for g.State() == StatePlaying {
		g.Tick()
	}

	snap := g.Snapshot()
	if snap.Score != 1 || snap.Timer != 2 || snap.Delay != 195 {
		t.Fatalf("Unexpected state before restart: %s", snap)
	}

	g.Restart()
	snap = g.Snapshot()

	if snap.State != StateReady {
		t.Errorf("Restart should return to ready, got %s", snap.State)
	}
	if snap.Score != 0 || snap.Timer != 0 || snap.Delay != 200 {
		t.Errorf("Restart should reset score/timer/delay, got %d/%d/%d", snap.Score, snap.Timer, snap.Delay)
	}
	if !reflect.DeepEqual(snap.Snake, []Position{{X: 15, Y: 10}}) {
		t.Errorf("Restart should put a single segment at the center, got %v", snap.Snake)
	}
	if snap.Direction != DirRight {
		t.Errorf("Restart should reset direction, got %s", snap.Direction)
	}
	if g.isSnakeAt(snap.Food) {
		t.Errorf("Food should be off the new snake, got %v", snap.Food)
	}
}

func TestRestartClearsPendingDirection(t *testing.T) {
	g := New(testOptions(8))
	g.Start()
	g.RequestDirection(DirUp)

	g.Restart()
	g.Start()
	g.food = Position{X: 0, Y: 0}
	g.Tick()

	if head := g.Snapshot().Head(); head != (Position{X: 16, Y: 10}) {
		t.Errorf("Pending direction should be cleared by restart, head at %v", head)
	}
}

func TestLifecycleTransitions(t *testing.T) {
	g := New(testOptions(9))

	// Ready -> Ready is idempotent
	g.Restart()
	if g.State() != StateReady {
		t.Fatalf("Expected ready, got %s", g.State())
	}

	g.Start()
	if g.State() != StatePlaying {
		t.Fatalf("Start should enter playing, got %s", g.State())
	}

	// Start while playing changes nothing
	g.Start()
	if g.State() != StatePlaying {
		t.Fatalf("Start while playing should be a no-op, got %s", g.State())
	}

	// Playing -> Ready abandons the game
	g.Restart()
	if g.State() != StateReady {
		t.Fatalf("Restart while playing should return to ready, got %s", g.State())
	}

	// Start has no effect after game over
	arrange(g, []Position{{X: 0, Y: 0}}, DirUp, Position{X: 5, Y: 5})
	g.Tick()
	g.Start()
	if g.State() != StateGameOver {
		t.Errorf("Start after game over should be a no-op, got %s", g.State())
	}
}

func TestAdvanceClockOnlyWhilePlaying(t *testing.T) {
	g := New(testOptions(10))

	g.AdvanceClock()
	if g.Snapshot().Timer != 0 {
		t.Error("Timer should not run in ready state")
	}

	g.Start()
	g.AdvanceClock()
	g.AdvanceClock()
	if g.Snapshot().Timer != 2 {
		t.Errorf("Timer should be 2, got %d", g.Snapshot().Timer)
	}

	arrange(g, []Position{{X: 0, Y: 0}}, DirLeft, Position{X: 5, Y: 5})
	g.Tick()
	g.AdvanceClock()
	if g.Snapshot().Timer != 2 {
		t.Errorf("Timer should freeze after game over, got %d", g.Snapshot().Timer)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := New(testOptions(11))
	snap := g.Snapshot()
	snap.Snake[0] = Position{X: -5, Y: -5}

	if g.snake[0] == (Position{X: -5, Y: -5}) {
		t.Error("Mutating a snapshot should not affect the game")
	}
}

func TestDirectionHelpers(t *testing.T) {
	tests := []struct {
		dir      Direction
		opposite Direction
		dx, dy   int
		name     string
	}{
		{DirUp, DirDown, 0, -1, "up"},
		{DirDown, DirUp, 0, 1, "down"},
		{DirLeft, DirRight, -1, 0, "left"},
		{DirRight, DirLeft, 1, 0, "right"},
	}

	for _, tc := range tests {
		if tc.dir.Opposite() != tc.opposite {
			t.Errorf("%s.Opposite() = %s, expected %s", tc.dir, tc.dir.Opposite(), tc.opposite)
		}
		dx, dy := tc.dir.Delta()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%s.Delta() = (%d, %d), expected (%d, %d)", tc.dir, dx, dy, tc.dx, tc.dy)
		}
		if tc.dir.String() != tc.name {
			t.Errorf("String() = %q, expected %q", tc.dir.String(), tc.name)
		}
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	opts := OptionsFromConfig(cfg, 77)

	if opts != testOptions(77) {
		t.Errorf("OptionsFromConfig = %+v, expected %+v", opts, testOptions(77))
	}
}
