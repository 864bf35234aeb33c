// Package racing implements a three-lane dodging game. Obstacles roll
// down the track on a cadence that tightens as the score grows; the
// player steers between lanes to avoid them.
package racing

import (
	"fmt"
	"math/rand"

	"github.com/ameleshko/arcadia/internal/arena"
	"github.com/ameleshko/arcadia/internal/config"
	"github.com/ameleshko/arcadia/internal/core"
	"github.com/ameleshko/arcadia/internal/registry"
)

// Visual characters for rendering
const (
	CarChar      = 'A'
	ObstacleChar = 'X'
	BorderChar   = '|'
	DividerChar  = ':'
)

// Points awarded for each obstacle that rolls off the track.
const dodgePoints = 10

// Obstacle is a single hazard occupying one lane cell.
type Obstacle struct {
	Lane int
	Y    int
}

// Game implements the Racing game.
type Game struct {
	rng        *rand.Rand
	tick       int
	score      int
	moveTicker int

	carLane   int
	carY      int
	obstacles *arena.Pool[Obstacle]

	trackW     int
	trackH     int
	lanes      int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int
	tooSmall   bool

	gameOver bool
	paused   bool

	runtime    core.RuntimeConfig
	cfg        config.RacingConfig
	difficulty *config.DifficultyManager
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

// New creates a new Racing game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "racing"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Racing"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRacing(configPath)
	if err != nil {
		cfg = config.DefaultRacingConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.score = 0
	g.moveTicker = 0
	g.gameOver = false
	g.paused = false

	g.trackW = cfg.Track.Width
	g.trackH = cfg.Track.Height
	g.lanes = core.Max(1, cfg.Track.Lanes)
	g.hudHeight = 2

	g.carLane = g.lanes / 2
	g.carY = g.trackH - 2
	g.obstacles = arena.New[Obstacle](cfg.Track.MaxObstacles)

	// The track must fit inside the screen with its borders and HUD.
	g.tooSmall = runtime.ScreenW < g.trackW+2 || runtime.ScreenH < g.trackH+g.hudHeight+1
	if g.tooSmall {
		return
	}
	g.mapOffsetX = (runtime.ScreenW - g.trackW) / 2
	g.mapOffsetY = g.hudHeight
}

// laneX returns the column of a lane's center within the track.
func (g *Game) laneX(lane int) int {
	laneW := g.trackW / g.lanes
	return lane*laneW + laneW/2
}

// moveInterval returns the current ticks-per-row cadence.
func (g *Game) moveInterval() int {
	return g.difficulty.Interval(g.cfg.Track.MoveEveryTicks, g.cfg.Track.MinMoveEvery, g.score, g.tick)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if in.Has(core.ActionLeft) && g.carLane > 0 {
		g.carLane--
	}
	if in.Has(core.ActionRight) && g.carLane < g.lanes-1 {
		g.carLane++
	}
	if g.hitObstacle() {
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}

	g.moveTicker++
	if g.moveTicker >= g.moveInterval() {
		g.moveTicker = 0
		g.advanceObstacles()
		g.trySpawn()
	}

	if g.hitObstacle() {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// hitObstacle reports whether any obstacle occupies the car's cell.
func (g *Game) hitObstacle() bool {
	hit := false
	g.obstacles.ForEach(func(_ int, o *Obstacle) {
		if o.Lane == g.carLane && o.Y == g.carY {
			hit = true
		}
	})
	return hit
}

// advanceObstacles rolls every obstacle one row down and scores the
// ones that leave the track.
func (g *Game) advanceObstacles() {
	g.obstacles.ForEach(func(_ int, o *Obstacle) {
		o.Y++
	})
	dodged := g.obstacles.DespawnIf(func(o *Obstacle) bool {
		return o.Y >= g.trackH
	})
	g.score += dodged * dodgePoints
}

// trySpawn rolls the spawn chance and places at most one new obstacle
// at the top of a random lane. A lane whose top rows are already
// occupied is skipped so obstacles never stack into a wall.
func (g *Game) trySpawn() {
	if g.obstacles.Full() {
		return
	}
	if g.rng.Intn(100) >= g.cfg.Track.SpawnChance {
		return
	}

	lane := g.rng.Intn(g.lanes)
	blocked := false
	g.obstacles.ForEach(func(_ int, o *Obstacle) {
		if o.Lane == lane && o.Y < 3 {
			blocked = true
		}
	})
	if blocked {
		return
	}

	g.obstacles.Spawn(Obstacle{Lane: lane, Y: 0})
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	dst.DrawText(20, 0, fmt.Sprintf(" Speed: 1/%d ", g.moveInterval()))

	if g.tooSmall {
		g.drawCenteredMessage(dst, "WINDOW TOO SMALL", "Resize to continue")
		return
	}

	// Track borders and lane dividers
	for y := 0; y < g.trackH; y++ {
		dst.SetColored(g.mapOffsetX-1, g.mapOffsetY+y, BorderChar, core.ColorGray)
		dst.SetColored(g.mapOffsetX+g.trackW, g.mapOffsetY+y, BorderChar, core.ColorGray)
		if y%2 == 0 {
			laneW := g.trackW / g.lanes
			for l := 1; l < g.lanes; l++ {
				dst.SetColored(g.mapOffsetX+l*laneW, g.mapOffsetY+y, DividerChar, core.ColorGray)
			}
		}
	}

	g.obstacles.ForEach(func(_ int, o *Obstacle) {
		dst.SetColored(g.mapOffsetX+g.laneX(o.Lane), g.mapOffsetY+o.Y, ObstacleChar, core.ColorRed)
	})

	dst.SetColored(g.mapOffsetX+g.laneX(g.carLane), g.mapOffsetY+g.carY, CarChar, core.ColorYellow)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d", g.score))
	}
}

// drawCenteredMessage draws a boxed two-line message in screen center.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

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

func init() {
	registry.Register("racing", func() registry.Game { return New() })
}
