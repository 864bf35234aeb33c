// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"fmt"

	"github.com/ameleshko/arcadia/internal/config"
	"github.com/ameleshko/arcadia/internal/core"
	"github.com/ameleshko/arcadia/internal/registry"
	"github.com/ameleshko/arcadia/internal/stats"
)

// Visual characters for rendering
const (
	PlayerChar    = '▶'
	PlayerBody    = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

const bannerTicks = 90

// Game implements the Flappy Bird game logic.
type Game struct {
	playerY   float64
	playerVel float64
	pipes     *PipeManager
	score     int
	gameOver  bool
	paused    bool
	tickCount int

	runtime    core.RuntimeConfig
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager

	lifetime    *stats.File
	banner      string
	bannerTimer int
	runFlaps    int
	runPassed   int
}

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

// New creates a new Flappy Bird game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// AttachStats wires a lifetime stat file into the game.
func (g *Game) AttachStats(f *stats.File) {
	g.lifetime = f
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadFlappy(configPath)
	if err != nil {
		cfg = config.DefaultFlappyConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.playerY = float64(runtime.ScreenH) / 2.0
	g.playerVel = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.banner = ""
	g.bannerTimer = 0
	g.runFlaps = 0
	g.runPassed = 0

	if g.pipes == nil {
		g.pipes = NewPipeManager(runtime.Seed, runtime.ScreenW, runtime.ScreenH, &g.cfg, g.difficulty)
	} else {
		g.pipes.UpdateConfig(&g.cfg, g.difficulty)
		g.pipes.UpdateScreenSize(runtime.ScreenW, runtime.ScreenH)
		g.pipes.Reset(runtime.Seed)
	}
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
	if g.bannerTimer > 0 {
		g.bannerTimer--
		if g.bannerTimer == 0 {
			g.banner = ""
		}
	}

	if in.Has(core.ActionJump) {
		g.playerVel = g.cfg.Physics.FlapImpulse
		g.runFlaps++
	}

	g.playerVel += g.cfg.Physics.Gravity
	if g.playerVel > g.cfg.Physics.MaxFallSpeed {
		g.playerVel = g.cfg.Physics.MaxFallSpeed
	}
	g.playerY += g.playerVel

	passed := g.pipes.Update(g.cfg.Player.X+g.cfg.Player.Width, g.score, g.tickCount)
	g.score += passed
	g.runPassed += passed

	// Ceiling is soft: clamp and keep flying.
	if g.playerY < 0 {
		g.playerY = 0
		g.playerVel = 0
	}

	// The ground is not.
	groundY := g.runtime.ScreenH - 2
	if int(g.playerY)+g.cfg.Player.Height >= groundY {
		g.playerY = float64(groundY - g.cfg.Player.Height)
		g.finish()
	}

	if !g.gameOver && g.pipes.CheckCollision(g.playerRect(), g.runtime.ScreenH-1) {
		g.finish()
	}

	if !g.gameOver {
		g.checkAchievements()
	}

	return core.StepResult{State: g.State()}
}

// playerRect returns the player's collision rectangle.
func (g *Game) playerRect() core.Rect {
	return core.NewRect(g.cfg.Player.X, int(g.playerY), g.cfg.Player.Width, g.cfg.Player.Height)
}

// checkAchievements unlocks score and endurance achievements.
func (g *Game) checkAchievements() {
	if g.lifetime == nil {
		return
	}
	checks := []struct {
		slot  int
		value int
		have  int
	}{
		{stats.FlappyAchFirstFlight, 1, g.score},
		{stats.FlappyAchFrequentFlyer, 10, g.score},
		{stats.FlappyAchAcePilot, 25, g.score},
		{stats.FlappyAchPipeMaster, 50, g.score},
		{stats.FlappyAchLegendaryBird, 100, g.score},
		{stats.FlappyAchSurvivor, 300 * 60, g.tickCount},
	}
	for _, c := range checks {
		if c.have >= c.value && g.lifetime.Unlock(c.slot) {
			g.showBanner(stats.FlappyAchievements[c.slot].Name)
		}
	}
}

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
	g.lifetime.Add(stats.FlappyGamesPlayed, 1)
	g.lifetime.RaiseMax(stats.FlappyHighScore, int32(g.score))
	g.lifetime.Add(stats.FlappyTotalFlaps, int32(g.runFlaps))
	g.lifetime.Add(stats.FlappyPipesPassed, int32(g.runPassed))
	g.lifetime.Add(stats.FlappyCrashes, 1)
	if g.lifetime.Get(stats.FlappyCrashes) >= 50 {
		g.lifetime.Unlock(stats.FlappyAchCrashLanding)
	}
	if g.lifetime.Get(stats.FlappyGamesPlayed) >= 100 {
		g.lifetime.Unlock(stats.FlappyAchMarathonFlyer)
	}
	_ = g.lifetime.Save()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	groundY := dst.Height() - 1
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar)

	g.pipes.ForEach(func(p *Pipe) {
		g.drawPipe(dst, p)
	})

	playerY := int(g.playerY)
	for dy := 0; dy < g.cfg.Player.Height; dy++ {
		for dx := 0; dx < g.cfg.Player.Width; dx++ {
			ch := PlayerBody
			if dx == g.cfg.Player.Width-1 && dy == 0 {
				ch = PlayerChar
			}
			dst.SetColored(g.cfg.Player.X+dx, playerY+dy, ch, core.ColorYellow)
		}
	}

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	if g.lifetime != nil {
		hi := core.Max(int(g.lifetime.Get(stats.FlappyHighScore)), g.score)
		dst.DrawText(20, 0, fmt.Sprintf(" HI: %d ", hi))
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

// drawPipe renders a single pipe to the screen.
func (g *Game) drawPipe(dst *core.Screen, p *Pipe) {
	screenH := dst.Height() - 1 // Account for ground
	pipeWidth := g.cfg.Obstacles.PipeWidth
	px := int(p.X)

	for y := 0; y < p.GapY; y++ {
		for x := 0; x < pipeWidth; x++ {
			dst.SetColored(px+x, y, PipeChar, core.ColorGreen)
		}
	}
	if p.GapY > 0 {
		for x := 0; x < pipeWidth; x++ {
			dst.SetColored(px+x, p.GapY-1, PipeCapTop, core.ColorGreen)
		}
	}

	bottomY := p.GapY + p.GapHeight
	for y := bottomY; y < screenH; y++ {
		for x := 0; x < pipeWidth; x++ {
			dst.SetColored(px+x, y, PipeChar, core.ColorGreen)
		}
	}
	if bottomY < screenH {
		for x := 0; x < pipeWidth; x++ {
			dst.SetColored(px+x, bottomY, PipeCapBottom, core.ColorGreen)
		}
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
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
