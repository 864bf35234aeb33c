package flappy

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

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical runs.
	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%8 == 0 {
			inputSequence[i].Set(core.ActionJump)
		}
	}

	run := func() (core.GameState, int) {
		g := New()
		g.Reset(testRuntime(12345))
		var state core.GameState
		for _, in := range inputSequence {
			state = g.Step(in).State
			if state.GameOver {
				break
			}
		}
		return state, g.tickCount
	}

	state1, ticks1 := run()
	state2, ticks2 := run()

	if state1.Score != state2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", state1.Score, state2.Score)
	}
	if ticks1 != ticks2 {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", ticks1, ticks2)
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	for i := 0; i < 60; i++ {
		in := core.NewInputFrame()
		if i%8 == 0 {
			in.Set(core.ActionJump)
		}
		g.Step(in)
	}

	g.Reset(testRuntime(42))

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.gameOver || g.paused {
		t.Error("Reset should clear gameOver and paused flags")
	}
	if g.pipes.Active() != 0 {
		t.Errorf("Reset should release all pipes, %d still live", g.pipes.Active())
	}
}

func TestFlapPhysics(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	initialY := g.playerY

	flap := core.NewInputFrame()
	flap.Set(core.ActionJump)
	g.Step(flap)

	if g.playerY >= initialY {
		t.Errorf("Flap should move player up, was %f, now %f", initialY, g.playerY)
	}
}

func TestFallSpeedClamped(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	empty := core.NewInputFrame()
	for i := 0; i < 60 && !g.gameOver; i++ {
		g.Step(empty)
		if g.playerVel > g.cfg.Physics.MaxFallSpeed {
			t.Fatalf("Fall speed %f exceeds clamp %f", g.playerVel, g.cfg.Physics.MaxFallSpeed)
		}
	}
}

func TestCeilingClampsWithoutDeath(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	// Hammer the flap: the bird must pin against the ceiling, alive.
	flap := core.NewInputFrame()
	flap.Set(core.ActionJump)
	for i := 0; i < 40 && !g.gameOver; i++ {
		g.Step(flap)
		if g.playerY < 0 {
			t.Fatalf("Player escaped above the ceiling: y=%f", g.playerY)
		}
	}
	if g.playerY != 0 {
		t.Errorf("Constant flapping should pin the bird at the ceiling, y=%f", g.playerY)
	}
	if g.gameOver {
		t.Error("Touching the ceiling must not end the game")
	}
}

func TestGroundEndsGame(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	empty := core.NewInputFrame()
	for i := 0; i < 200 && !g.gameOver; i++ {
		g.Step(empty)
	}
	if !g.gameOver {
		t.Error("A bird that never flaps must hit the ground")
	}
}

func TestPipeScoringIdempotence(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Difficulty.Enabled = false
	cfg.Obstacles.PipeSpacing = 1000 // One pipe only
	diff := config.NewDifficultyManager(cfg.Difficulty)

	pm := NewPipeManager(7, 40, 24, &cfg, diff)

	playerX := 12
	total := 0
	for tick := 0; tick < 60; tick++ {
		total += pm.Update(playerX, 0, tick)
	}
	if total != 1 {
		t.Errorf("A single pipe must score exactly once, got %d", total)
	}
}

func TestPipePoolCapacity(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Difficulty.Enabled = false
	cfg.Physics.BaseSpeed = 0    // Pipes never leave
	cfg.Obstacles.PipeSpacing = -1 // Spawn pressure every tick
	diff := config.NewDifficultyManager(cfg.Difficulty)

	pm := NewPipeManager(7, 40, 24, &cfg, diff)

	for tick := 0; tick < 100; tick++ {
		pm.Update(12, 0, tick)
		if pm.Active() > cfg.Obstacles.MaxPipes {
			t.Fatalf("Pool overflow: %d live > cap %d", pm.Active(), cfg.Obstacles.MaxPipes)
		}
	}
}

func TestPipeGapAlwaysPassable(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	pm := NewPipeManager(99, 40, 24, &cfg, diff)

	// Drive spawns at high difficulty; every gap must stay within the
	// playable band and at least the configured minimum.
	for tick := 0; tick < 500; tick++ {
		pm.Update(12, 1000, tick)
		pm.ForEach(func(p *Pipe) {
			if p.GapHeight < cfg.Obstacles.MinGapSize {
				t.Fatalf("Gap %d below minimum %d", p.GapHeight, cfg.Obstacles.MinGapSize)
			}
			if p.GapY < cfg.Obstacles.TopMargin {
				t.Fatalf("Gap starts at %d, above the top margin", p.GapY)
			}
			if p.GapY+p.GapHeight > 24-cfg.Obstacles.BottomMargin {
				t.Fatalf("Gap ends at %d, below the bottom margin", p.GapY+p.GapHeight)
			}
		})
	}
}

func TestCollisionForgivesGraze(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Difficulty.Enabled = false
	diff := config.NewDifficultyManager(cfg.Difficulty)

	pm := NewPipeManager(1, 40, 24, &cfg, diff)

	// Top pipe occupies columns 11-13 down to row 9; the bird sits at
	// columns 10-11, row 9, overlapping the pipe by one column.
	pm.pool.Spawn(Pipe{X: 11, GapY: 10, GapHeight: 6})
	bird := core.NewRect(10, 9, 2, 1)

	if pm.CheckCollision(bird, 23) {
		t.Error("A one-column graze within the forgiveness margin must not be fatal")
	}

	// Two columns deep is past the margin.
	deep := core.NewRect(11, 9, 2, 1)
	if !pm.CheckCollision(deep, 23) {
		t.Error("An overlap deeper than the margin must be fatal")
	}

	// With the margin disabled, the same graze kills.
	cfg.Player.HitMargin = 0
	if !pm.CheckCollision(bird, 23) {
		t.Error("With a zero margin, any overlap must be fatal")
	}
}

func TestPauseFreezesState(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.paused {
		t.Fatal("Pause intent should pause the game")
	}

	y := g.playerY
	ticks := g.tickCount
	empty := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(empty)
	}
	if g.playerY != y || g.tickCount != ticks {
		t.Error("Paused game must not advance")
	}

	g.Step(pause)
	if g.paused {
		t.Error("Second pause intent should resume")
	}
}
