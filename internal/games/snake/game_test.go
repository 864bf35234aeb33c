package snake

import (
	"testing"

	"github.com/ameleshko/arcadia/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// step advances enough ticks for exactly one snake move.
func step(g *Game, in core.InputFrame) {
	interval := g.moveInterval()
	for i := 0; i < interval; i++ {
		g.Step(in)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (int, []Point) {
		g := New()
		g.Reset(testRuntime(777))
		dirs := []core.Action{core.ActionUp, core.ActionRight, core.ActionDown, core.ActionRight}
		for i := 0; i < 40; i++ {
			in := core.NewInputFrame()
			in.Set(dirs[i%len(dirs)])
			step(g, in)
			if g.gameOver {
				break
			}
		}
		return g.score, g.snake
	}

	score1, body1 := run()
	score2, body2 := run()

	if score1 != score2 {
		t.Errorf("Determinism failed: scores differ %d vs %d", score1, score2)
	}
	if len(body1) != len(body2) {
		t.Fatalf("Determinism failed: lengths differ %d vs %d", len(body1), len(body2))
	}
	for i := range body1 {
		if body1[i] != body2[i] {
			t.Errorf("Determinism failed: segment %d differs %v vs %v", i, body1[i], body2[i])
		}
	}
}

func TestInitialState(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	if len(g.snake) != g.cfg.Grid.InitialLength {
		t.Errorf("Initial length = %d, expected %d", len(g.snake), g.cfg.Grid.InitialLength)
	}
	if g.direction != DirRight {
		t.Error("Snake should start moving right")
	}
	if g.isSnakeAt(g.food) {
		t.Error("Food must not spawn on the snake")
	}
}

func TestMovesOnCadenceOnly(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	head := g.snake[0]
	empty := core.NewInputFrame()

	// One tick short of the interval: no movement yet.
	for i := 0; i < g.moveInterval()-1; i++ {
		g.Step(empty)
	}
	if g.snake[0] != head {
		t.Error("Snake moved before its cadence tick")
	}

	g.Step(empty)
	if g.snake[0] == head {
		t.Error("Snake should move on the cadence tick")
	}
	if g.snake[0].X != head.X+1 {
		t.Errorf("Snake should move right by one cell, head %v -> %v", head, g.snake[0])
	}
}

func TestNoInstantReversal(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	step(g, left)

	if g.direction == DirLeft {
		t.Error("Moving right, a left intent must be rejected")
	}
	if g.gameOver {
		t.Error("Rejected reversal must not kill the snake")
	}
}

func TestEatingGrowsAndScores(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	// Plant regular food directly in the snake's path.
	head := g.snake[0]
	g.food = Point{X: head.X + 1, Y: head.Y}
	g.specialFood = false

	lenBefore := len(g.snake)
	empty := core.NewInputFrame()
	step(g, empty)

	if g.score != 1 {
		t.Errorf("Eating food should score 1, got %d", g.score)
	}
	if g.food == (Point{X: head.X + 1, Y: head.Y}) {
		t.Error("Food should respawn after being eaten")
	}

	// The held tail means one net segment of growth.
	step(g, empty)
	if len(g.snake) != lenBefore+1 {
		t.Errorf("Snake length = %d, expected %d", len(g.snake), lenBefore+1)
	}
}

func TestSpecialFoodScoresBonus(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	head := g.snake[0]
	g.food = Point{X: head.X + 1, Y: head.Y}
	g.specialFood = true

	empty := core.NewInputFrame()
	step(g, empty)

	if g.score != g.cfg.Grid.SpecialValue {
		t.Errorf("Special food should score %d, got %d", g.cfg.Grid.SpecialValue, g.score)
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	// Drive right until the wall.
	empty := core.NewInputFrame()
	for i := 0; i < g.gridW*g.moveInterval()+10 && !g.gameOver; i++ {
		g.Step(empty)
	}
	if !g.gameOver {
		t.Error("Driving into the wall must end the game")
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	// Grow enough to be able to hit ourselves.
	g.growing = 5
	for i := 0; i < 5; i++ {
		step(g, core.NewInputFrame())
	}

	// Tight clockwise box: right, down, left, up bites the body.
	for _, a := range []core.Action{core.ActionDown, core.ActionLeft, core.ActionUp} {
		in := core.NewInputFrame()
		in.Set(a)
		step(g, in)
	}
	if !g.gameOver {
		t.Error("Turning back into the body must end the game")
	}
}
