package racing

import (
	"testing"

	"github.com/ameleshko/arcadia/internal/config"
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

// fixedConfig disables difficulty scaling and random spawning so tests
// can place obstacles by hand.
func fixedConfig(g *Game) {
	g.cfg.Difficulty.Enabled = false
	g.cfg.Track.SpawnChance = 0
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical runs.
	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i%17 == 0:
			inputSequence[i].Set(core.ActionLeft)
		case i%23 == 0:
			inputSequence[i].Set(core.ActionRight)
		}
	}

	run := func() (core.GameState, int, int) {
		g := New()
		g.Reset(testRuntime(9001))
		var state core.GameState
		for _, in := range inputSequence {
			state = g.Step(in).State
			if state.GameOver {
				break
			}
		}
		return state, g.tick, g.carLane
	}

	state1, ticks1, lane1 := run()
	state2, ticks2, lane2 := run()

	if state1.Score != state2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", state1.Score, state2.Score)
	}
	if ticks1 != ticks2 {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", ticks1, ticks2)
	}
	if lane1 != lane2 {
		t.Errorf("Determinism failed: lanes differ. Run1=%d, Run2=%d", lane1, lane2)
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	for i := 0; i < 200; i++ {
		in := core.NewInputFrame()
		if i%10 == 0 {
			in.Set(core.ActionLeft)
		}
		g.Step(in)
	}

	g.Reset(testRuntime(42))

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.gameOver {
		t.Error("Reset should clear gameOver flag")
	}
	if g.carLane != g.lanes/2 {
		t.Errorf("Reset should center the car, lane=%d", g.carLane)
	}
	if g.obstacles.Len() != 0 {
		t.Errorf("Reset should release all obstacles, %d still live", g.obstacles.Len())
	}
}

func TestSteeringClampsAtEdges(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	fixedConfig(g)

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for i := 0; i < 10; i++ {
		g.Step(left)
	}
	if g.carLane != 0 {
		t.Errorf("Holding left should pin the car to lane 0, got %d", g.carLane)
	}

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for i := 0; i < 10; i++ {
		g.Step(right)
	}
	if g.carLane != g.lanes-1 {
		t.Errorf("Holding right should pin the car to lane %d, got %d", g.lanes-1, g.carLane)
	}
}

func TestObstacleTransitAndDespawn(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))
	fixedConfig(g)

	// Car in the rightmost lane, hazard rolling down the leftmost.
	g.carLane = g.lanes - 1
	g.obstacles.Spawn(Obstacle{Lane: 0, Y: 0})

	// One row per interval; the obstacle leaves the track on its 15th
	// advance, tick 15 * 6 = 90.
	idle := core.NewInputFrame()
	for i := 0; i < 15*6; i++ {
		g.Step(idle)
		if g.obstacles.Len() > g.cfg.Track.MaxObstacles {
			t.Fatalf("Pool exceeded its bound: %d live", g.obstacles.Len())
		}
	}

	if g.obstacles.Len() != 0 {
		t.Errorf("Obstacle should have left the track, %d still live", g.obstacles.Len())
	}
	if g.score != dodgePoints {
		t.Errorf("Dodged obstacle should score %d, got %d", dodgePoints, g.score)
	}
	if g.gameOver {
		t.Error("Obstacle in another lane must not end the game")
	}
}

func TestCollisionEndsGame(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))
	fixedConfig(g)

	// One row above the car, same lane: fatal on the next advance.
	g.obstacles.Spawn(Obstacle{Lane: g.carLane, Y: g.carY - 1})

	idle := core.NewInputFrame()
	for i := 0; i < 6; i++ {
		g.Step(idle)
	}

	if !g.gameOver {
		t.Fatal("Obstacle reaching the car's cell should end the game")
	}

	// Score must freeze after game over.
	scoreAtEnd := g.score
	for i := 0; i < 100; i++ {
		g.Step(idle)
	}
	if g.score != scoreAtEnd {
		t.Errorf("Score changed after game over: %d -> %d", scoreAtEnd, g.score)
	}
}

func TestPoolCapacityUnderSpawnPressure(t *testing.T) {
	g := New()
	g.Reset(testRuntime(11))
	g.cfg.Difficulty.Enabled = false
	g.cfg.Track.SpawnChance = 100
	g.cfg.Track.MoveEveryTicks = 1
	g.cfg.Track.MinMoveEvery = 1
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	// Park the car out of harm's way so the run never ends.
	g.carY = -100

	idle := core.NewInputFrame()
	spawnedAny := false
	for i := 0; i < 500; i++ {
		g.Step(idle)
		if g.obstacles.Len() > g.cfg.Track.MaxObstacles {
			t.Fatalf("Pool exceeded its bound on tick %d: %d live", i, g.obstacles.Len())
		}
		if g.obstacles.Len() > 0 {
			spawnedAny = true
		}
	}

	if !spawnedAny {
		t.Error("Constant spawn pressure should have produced obstacles")
	}
	if g.gameOver {
		t.Error("Parked car should never collide")
	}
}

func TestCadenceTightensWithScore(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))

	base := g.moveInterval()
	g.score = 1000
	tight := g.moveInterval()

	if tight > base {
		t.Errorf("Cadence should tighten with score: base=%d tight=%d", base, tight)
	}
	if tight < g.cfg.Track.MinMoveEvery {
		t.Errorf("Cadence floor violated: %d < %d", tight, g.cfg.Track.MinMoveEvery)
	}
}

func TestPauseFreezesState(t *testing.T) {
	g := New()
	g.Reset(testRuntime(2))
	fixedConfig(g)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.paused {
		t.Fatal("Pause action should pause the game")
	}

	tickBefore := g.tick
	idle := core.NewInputFrame()
	for i := 0; i < 50; i++ {
		g.Step(idle)
	}
	if g.tick != tickBefore {
		t.Errorf("Paused game advanced: tick %d -> %d", tickBefore, g.tick)
	}

	g.Step(pause)
	if g.paused {
		t.Error("Second pause action should resume the game")
	}
}
