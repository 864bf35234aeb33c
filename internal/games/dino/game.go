// Package dino implements a Chrome Dino-style endless runner.
// The player runs automatically and must jump over ground obstacles
// and duck under low-flying birds.
package dino

import (
	"fmt"
	"math/rand"

	"github.com/ameleshko/arcadia/internal/arena"
	"github.com/ameleshko/arcadia/internal/config"
	"github.com/ameleshko/arcadia/internal/core"
	"github.com/ameleshko/arcadia/internal/registry"
	"github.com/ameleshko/arcadia/internal/stats"
)

// Visual characters for rendering
const (
	DinoBody    = '█'
	DinoHead    = '◆'
	DinoLeg1    = '╱'
	DinoLeg2    = '╲'
	CactusChar  = '▓'
	RockChar    = '●'
	BirdChar    = 'v'
	BirdCharAlt = '^'
	CloudChar   = '~'
	GroundChar  = '═'
	StarChar    = '.'
)

// dayNightCycleTicks is how long each time-of-day phase lasts.
const dayNightCycleTicks = 900

// maxClouds bounds the decorative cloud pool.
const maxClouds = 5

// bannerTicks is how long an achievement banner stays on screen.
const bannerTicks = 90

type timeOfDay int

const (
	timeDay timeOfDay = iota
	timeSunset
	timeNight
	timeSunrise
)

type cloud struct {
	X float64
	Y int
}

// Game implements the Dino Runner game logic.
type Game struct {
	playerY    float64 // Vertical offset from ground, negative = airborne
	playerVel  float64
	isGrounded bool

	// Input feel: a jump pressed early is buffered, a jump pressed
	// just after leaving the ground still fires.
	jumpBuffer  int
	coyoteTimer int
	duckTimer   int

	obstacles *ObstacleManager
	clouds    *arena.Pool[cloud]
	cloudRNG  *rand.Rand

	score     int
	gameOver  bool
	paused    bool
	tickCount int
	legFrame  int
	groundY   int

	phase      timeOfDay
	phaseTimer int

	runtime    core.RuntimeConfig
	cfg        config.DinoConfig
	difficulty *config.DifficultyManager

	lifetime    *stats.File // Lifetime counters and achievements, nil in tests
	banner      string      // Achievement unlock banner
	bannerTimer int

	// Per-run counters folded into lifetime stats on game over
	runJumps      int
	runDucks      int
	runDodged     int
	runCloseCalls int
}

// configPath stores the custom config path set via CLI.
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new Dino Runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dino"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dino Runner"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDino(configPath)
	if err != nil {
		cfg = config.DefaultDinoConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.groundY = runtime.ScreenH - cfg.Player.GroundOffset
	g.playerY = 0
	g.playerVel = 0
	g.isGrounded = true
	g.jumpBuffer = 0
	g.coyoteTimer = 0
	g.duckTimer = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.legFrame = 0
	g.phase = timeDay
	g.phaseTimer = 0
	g.banner = ""
	g.bannerTimer = 0
	g.runJumps = 0
	g.runDucks = 0
	g.runDodged = 0
	g.runCloseCalls = 0

	if g.obstacles == nil {
		g.obstacles = NewObstacleManager(runtime.Seed, runtime.ScreenW, &g.cfg, g.difficulty)
	} else {
		g.obstacles.UpdateConfig(&g.cfg, g.difficulty)
		g.obstacles.UpdateScreenSize(runtime.ScreenW)
		g.obstacles.Reset(runtime.Seed)
	}

	if g.clouds == nil {
		g.clouds = arena.New[cloud](maxClouds)
	} else {
		g.clouds.Reset()
	}
	g.cloudRNG = rand.New(rand.NewSource(runtime.Seed + 1))
}

// AttachStats wires a lifetime stat file into the game. Without it the
// game still runs; it just unlocks nothing.
func (g *Game) AttachStats(f *stats.File) {
	g.lifetime = f
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.legFrame = (g.legFrame + 1) % 10
	if g.bannerTimer > 0 {
		g.bannerTimer--
		if g.bannerTimer == 0 {
			g.banner = ""
		}
	}

	g.updateTimers(in)
	g.applyPhysics(in)
	g.updateDayNight()
	g.updateClouds()

	// Obstacles move, spawn, score, and collide in one pass.
	res := g.obstacles.Update(g.playerRect(), g.groundY, g.score, g.tickCount)
	g.runDodged += res.Dodged
	g.runCloseCalls += res.CloseCalls

	g.score++

	if res.Hit {
		g.finish()
	} else {
		g.checkAchievements()
	}

	return core.StepResult{State: g.State()}
}

// updateTimers handles jump buffering, coyote time, and the duck pose.
func (g *Game) updateTimers(in core.InputFrame) {
	if in.Has(core.ActionJump) {
		g.jumpBuffer = g.cfg.Feel.JumpBufferTicks
	} else if g.jumpBuffer > 0 {
		g.jumpBuffer--
	}

	if g.isGrounded {
		g.coyoteTimer = g.cfg.Feel.CoyoteTicks
	} else if g.coyoteTimer > 0 {
		g.coyoteTimer--
	}

	if in.Has(core.ActionDown) && g.isGrounded {
		if g.duckTimer == 0 {
			g.runDucks++
		}
		g.duckTimer = g.cfg.Feel.DuckTicks
	} else if g.duckTimer > 0 {
		g.duckTimer--
	}
}

// applyPhysics fires buffered jumps and integrates vertical motion.
func (g *Game) applyPhysics(in core.InputFrame) {
	if g.jumpBuffer > 0 && (g.isGrounded || g.coyoteTimer > 0) {
		g.playerVel = g.cfg.Physics.JumpImpulse
		g.isGrounded = false
		g.coyoteTimer = 0
		g.jumpBuffer = 0
		g.duckTimer = 0
		g.runJumps++
		if g.lifetime != nil && g.lifetime.Unlock(stats.DinoAchFirstJump) {
			g.showBanner(stats.DinoAchievements[stats.DinoAchFirstJump].Name)
		}
	}

	if !g.isGrounded {
		g.playerVel += g.cfg.Physics.Gravity
		// Holding duck in the air drops faster.
		if in.Has(core.ActionDown) {
			g.playerVel += g.cfg.Physics.Gravity
		}
		if g.playerVel > g.cfg.Physics.MaxFallSpeed {
			g.playerVel = g.cfg.Physics.MaxFallSpeed
		}
		g.playerY += g.playerVel

		if g.playerY >= 0 {
			g.playerY = 0
			g.playerVel = 0
			g.isGrounded = true
		}
	}
}

// updateDayNight advances the day/sunset/night/sunrise cycle.
func (g *Game) updateDayNight() {
	g.phaseTimer++
	if g.phaseTimer < dayNightCycleTicks {
		return
	}
	g.phaseTimer = 0
	g.phase = (g.phase + 1) % 4
	if g.phase == timeNight && g.lifetime != nil && g.lifetime.Unlock(stats.DinoAchNightRunner) {
		g.showBanner(stats.DinoAchievements[stats.DinoAchNightRunner].Name)
	}
}

// updateClouds drifts the decorative clouds and spawns replacements.
func (g *Game) updateClouds() {
	g.clouds.ForEach(func(_ int, c *cloud) {
		c.X -= 0.25
	})
	g.clouds.DespawnIf(func(c *cloud) bool { return c.X < -4 })

	if !g.clouds.Full() && g.cloudRNG.Intn(120) == 0 {
		g.clouds.Spawn(cloud{
			X: float64(g.runtime.ScreenW),
			Y: 1 + g.cloudRNG.Intn(core.Max(1, g.groundY-8)),
		})
	}
}

// isDucking reports whether the duck pose is active.
func (g *Game) isDucking() bool {
	return g.duckTimer > 0 && g.isGrounded
}

// playerRect returns the player's collision rectangle in screen
// coordinates. Ducking shrinks and lowers the hitbox.
func (g *Game) playerRect() core.Rect {
	w := g.cfg.Player.Width
	h := g.cfg.Player.Height
	if g.isDucking() {
		h = 1
	}
	screenY := g.groundY - h - int(-g.playerY)
	return core.NewRect(g.cfg.Player.X, screenY, w, h)
}

// checkAchievements unlocks threshold achievements as counters cross.
func (g *Game) checkAchievements() {
	if g.lifetime == nil {
		return
	}
	type threshold struct {
		slot  int
		value int
		have  int
	}
	total := func(slot int, run int) int { return int(g.lifetime.Get(slot)) + run }
	checks := []threshold{
		{stats.DinoAchScore100, 100, g.score},
		{stats.DinoAchScore500, 500, g.score},
		{stats.DinoAchScore1000, 1000, g.score},
		{stats.DinoAchScore2500, 2500, g.score},
		{stats.DinoAchScore5000, 5000, g.score},
		{stats.DinoAchLegend, 10000, g.score},
		{stats.DinoAchMarathon, 300 * 60, g.tickCount},
		{stats.DinoAchDuckMaster, 50, total(stats.DinoTotalDucks, g.runDucks)},
		{stats.DinoAchCloseCalls, 10, total(stats.DinoCloseCalls, g.runCloseCalls)},
		{stats.DinoAchSurvivalExpert, 100, total(stats.DinoObstaclesDodged, g.runDodged)},
		{stats.DinoAchExtinctionAvoided, 50, int(g.lifetime.Get(stats.DinoGamesPlayed))},
	}
	for _, c := range checks {
		if c.have >= c.value && g.lifetime.Unlock(c.slot) {
			g.showBanner(stats.DinoAchievements[c.slot].Name)
		}
	}

	speed := g.difficulty.Speed(g.cfg.Physics.BaseSpeed, g.score, g.tickCount)
	if g.cfg.Physics.MaxSpeed > 0 && speed >= g.cfg.Physics.MaxSpeed && g.lifetime.Unlock(stats.DinoAchSpeedDemon) {
		g.showBanner(stats.DinoAchievements[stats.DinoAchSpeedDemon].Name)
	}
}

// showBanner displays an achievement unlock banner.
func (g *Game) showBanner(name string) {
	g.banner = "Achievement: " + name
	g.bannerTimer = bannerTicks
}

// finish ends the run and folds per-run counters into lifetime stats.
// Games are counted here, not in Reset, so mid-run resets (window
// resize) do not inflate the play count.
func (g *Game) finish() {
	g.gameOver = true
	if g.lifetime == nil {
		return
	}
	g.lifetime.Add(stats.DinoGamesPlayed, 1)
	g.lifetime.RaiseMax(stats.DinoHighScore, int32(g.score))
	g.lifetime.Add(stats.DinoTotalJumps, int32(g.runJumps))
	g.lifetime.Add(stats.DinoTotalDucks, int32(g.runDucks))
	g.lifetime.Add(stats.DinoObstaclesDodged, int32(g.runDodged))
	g.lifetime.Add(stats.DinoCloseCalls, int32(g.runCloseCalls))
	// Best effort: a failed save must not break the game over screen.
	_ = g.lifetime.Save()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	night := g.phase == timeNight
	if night {
		for y := 0; y < g.groundY-4; y += 3 {
			for x := (y * 7) % 13; x < dst.Width(); x += 13 {
				dst.SetColored(x, y, StarChar, core.ColorGray)
			}
		}
	}

	g.clouds.ForEach(func(_ int, c *cloud) {
		dst.SetColored(int(c.X), c.Y, CloudChar, core.ColorGray)
		dst.SetColored(int(c.X)+1, c.Y, CloudChar, core.ColorGray)
		dst.SetColored(int(c.X)+2, c.Y, CloudChar, core.ColorGray)
	})

	dst.DrawHLine(0, g.groundY, dst.Width(), GroundChar)

	g.obstacles.ForEach(func(o *Obstacle) {
		g.drawObstacle(dst, o)
	})

	g.drawDino(dst)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	if g.lifetime != nil {
		hi := core.Max(int(g.lifetime.Get(stats.DinoHighScore)), g.score)
		dst.DrawText(20, 0, fmt.Sprintf(" HI: %d ", hi))
	}
	if g.difficulty.IsEnabled() {
		speed := g.difficulty.Speed(g.cfg.Physics.BaseSpeed, g.score, g.tickCount)
		if g.cfg.Physics.MaxSpeed > 0 && speed > g.cfg.Physics.MaxSpeed {
			speed = g.cfg.Physics.MaxSpeed
		}
		levelText := fmt.Sprintf(" Spd: %.1f ", speed)
		dst.DrawText(dst.Width()-len(levelText)-2, 0, levelText)
	}
	if g.banner != "" {
		dst.DrawTextColored((dst.Width()-len(g.banner))/2, 1, g.banner, core.ColorYellow)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawObstacle renders a single obstacle.
func (g *Game) drawObstacle(dst *core.Screen, o *Obstacle) {
	r := o.Rect(g.groundY)
	switch o.Type {
	case BirdLow, BirdHigh:
		ch := BirdChar
		if (g.legFrame/5)%2 == 1 {
			ch = BirdCharAlt
		}
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, r.Y, ch, core.ColorCyan)
		}
	case Rock:
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, r.Y, RockChar, core.ColorGray)
		}
	default:
		dst.DrawRectColored(r, CactusChar, core.ColorGreen)
	}
}

// drawDino renders the player character.
func (g *Game) drawDino(dst *core.Screen) {
	playerX := g.cfg.Player.X

	if g.isDucking() {
		y := g.groundY - 1
		dst.Set(playerX, y, DinoBody)
		dst.Set(playerX+1, y, DinoBody)
		dst.Set(playerX+2, y, DinoHead)
		return
	}

	baseY := g.groundY - g.cfg.Player.Height - int(-g.playerY)

	dst.Set(playerX+1, baseY, DinoHead)
	dst.Set(playerX+2, baseY, DinoBody)
	dst.Set(playerX, baseY+1, DinoBody)
	dst.Set(playerX+1, baseY+1, DinoBody)

	// Legs animate while grounded, tuck mid-air
	legY := baseY + 2
	if g.isGrounded {
		if g.legFrame < 5 {
			dst.Set(playerX, legY, DinoLeg1)
			dst.Set(playerX+2, legY, DinoLeg2)
		} else {
			dst.Set(playerX+1, legY, DinoLeg1)
			dst.Set(playerX+2, legY, DinoLeg2)
		}
	} else {
		dst.Set(playerX, legY, DinoLeg1)
		dst.Set(playerX+1, legY, DinoLeg2)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("dino", func() registry.Game {
		return New()
	})
}
