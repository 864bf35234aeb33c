// Package invaders implements Space Invaders: a marching alien
// formation, destructible barriers, a shared bullet pool and a bonus
// saucer. The formation speeds up as it thins out and with each wave.
package invaders

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
	PlayerChars      = `/^\`
	UFOChars         = "<O>"
	PlayerBulletChar = '|'
	AlienBulletChar  = '!'
	BarrierChar      = '#'
)

// Game implements the Space Invaders game.
type Game struct {
	rng   *rand.Rand
	tick  int
	score int
	wave  int
	lives int

	playerX       int
	playerY       int
	shootCooldown int

	formation   *Formation
	marchTicker int
	shootTicker int

	bullets  *arena.Pool[Bullet]
	barriers []Barrier
	ufo      UFO

	tooSmall bool
	gameOver bool
	paused   bool

	runtime    core.RuntimeConfig
	cfg        config.InvadersConfig
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

// New creates a new Space Invaders game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.score = 0
	g.wave = 1
	g.lives = cfg.Combat.Lives
	g.gameOver = false
	g.paused = false
	g.marchTicker = 0
	g.shootTicker = 0
	g.shootCooldown = 0

	gridW := (cfg.Formation.Cols-1)*alienStrideX + alienW
	g.tooSmall = runtime.ScreenW < gridW+4 || runtime.ScreenH < 16
	if g.tooSmall {
		return
	}

	g.playerX = runtime.ScreenW / 2
	g.playerY = runtime.ScreenH - 2
	g.bullets = arena.New[Bullet](cfg.Combat.MaxBullets)
	g.spawnFormation()
	g.spawnBarriers()
	g.ufo = UFO{Y: 2}
	g.ufo.arm(cfg.Combat.UFOEvery, g.rng)
}

// spawnFormation builds a fresh centered alien grid.
func (g *Game) spawnFormation() {
	gridW := (g.cfg.Formation.Cols-1)*alienStrideX + alienW
	startX := (g.runtime.ScreenW - gridW) / 2
	g.formation = NewFormation(g.cfg.Formation.Rows, g.cfg.Formation.Cols, startX, 4)
}

// spawnBarriers spreads intact shields evenly above the player.
func (g *Game) spawnBarriers() {
	n := g.cfg.Formation.NumBarriers
	bw := g.cfg.Formation.BarrierWidth
	bh := g.cfg.Formation.BarrierHeight
	g.barriers = g.barriers[:0]
	if n <= 0 || bw <= 0 || bh <= 0 {
		return
	}

	spacing := (g.runtime.ScreenW - n*bw) / (n + 1)
	y := g.playerY - bh - 2
	for i := 0; i < n; i++ {
		x := spacing + i*(bw+spacing)
		g.barriers = append(g.barriers, NewBarrier(x, y, bw, bh))
	}
}

// marchInterval returns the formation cadence: tightens with score and
// with the formation thinning out, never below the configured floor.
func (g *Game) marchInterval() int {
	base := g.difficulty.Interval(g.cfg.Formation.MoveEvery, g.cfg.Formation.MinMoveEvery, g.score, g.tick)
	return g.formation.Interval(base, g.cfg.Formation.MinMoveEvery)
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
	if g.shootCooldown > 0 {
		g.shootCooldown--
	}
	g.processInput(in)

	g.updateBullets()
	g.resolveHits()

	g.marchTicker++
	if g.marchTicker >= g.marchInterval() {
		g.marchTicker = 0
		g.formation.Advance(1, g.runtime.ScreenW-2)
	}

	g.shootTicker++
	if g.shootTicker >= g.difficulty.Interval(g.cfg.Combat.AlienShootEvery, 5, g.score, g.tick) {
		g.shootTicker = 0
		g.alienShoot()
	}

	g.ufo.update(g.runtime.ScreenW, g.cfg.Combat.UFOEvery, g.rng)

	if g.formation.Alive() == 0 {
		g.nextWave()
	}
	if g.formation.LowestY() >= g.playerY {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// processInput steers the cannon and fires.
func (g *Game) processInput(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.playerX = core.Max(2, g.playerX-2)
	}
	if in.Has(core.ActionRight) {
		g.playerX = core.Min(g.runtime.ScreenW-3, g.playerX+2)
	}
	if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
		g.fire()
	}
}

// fire spawns a player bullet if the cooldown allows and a slot is free.
func (g *Game) fire() {
	if g.shootCooldown > 0 {
		return
	}
	if _, ok := g.bullets.Spawn(Bullet{X: g.playerX, Y: g.playerY - 1, FromPlayer: true}); ok {
		g.shootCooldown = g.cfg.Combat.ShootCooldown
	}
}

// alienShoot drops a bullet from a random live alien.
func (g *Game) alienShoot() {
	a := g.formation.RandomAlive(g.rng)
	if a == nil {
		return
	}
	g.bullets.Spawn(Bullet{X: a.X + alienW/2, Y: a.Y + 1})
}

// updateBullets moves every bullet one cell and drops the off-screen
// ones.
func (g *Game) updateBullets() {
	g.bullets.ForEach(func(_ int, b *Bullet) {
		if b.FromPlayer {
			b.Y--
		} else {
			b.Y++
		}
	})
	g.bullets.DespawnIf(func(b *Bullet) bool {
		return b.Y < 1 || b.Y >= g.runtime.ScreenH-1
	})
}

// resolveHits settles every bullet against aliens, the saucer, the
// barriers and the player.
func (g *Game) resolveHits() {
	var spent []int

	g.bullets.ForEach(func(idx int, b *Bullet) {
		if b.FromPlayer {
			if points, ok := g.formation.KillAt(b.X, b.Y); ok {
				g.score += points
				spent = append(spent, idx)
				return
			}
			if g.ufo.hitBy(b.X, b.Y) {
				g.score += g.cfg.Combat.UFOPoints
				g.ufo.arm(g.cfg.Combat.UFOEvery, g.rng)
				spent = append(spent, idx)
				return
			}
		} else if b.Y == g.playerY && core.Abs(b.X-g.playerX) <= 1 {
			spent = append(spent, idx)
			g.playerHit()
			return
		}

		for i := range g.barriers {
			if g.barriers[i].Absorb(b.X, b.Y) {
				spent = append(spent, idx)
				return
			}
		}
	})

	for _, idx := range spent {
		g.bullets.Despawn(idx)
	}
}

// playerHit takes a life and clears incoming fire for a beat.
func (g *Game) playerHit() {
	g.lives--
	if g.lives <= 0 {
		g.gameOver = true
		return
	}
	g.bullets.DespawnIf(func(b *Bullet) bool {
		return !b.FromPlayer
	})
	g.playerX = g.runtime.ScreenW / 2
	g.shootCooldown = g.cfg.Combat.ShootCooldown
}

// nextWave rebuilds the formation one notch faster. Barrier damage
// carries over.
func (g *Game) nextWave() {
	g.wave++
	g.bullets.Reset()
	g.spawnFormation()
	g.marchTicker = 0
	g.shootTicker = 0
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	dst.DrawText(20, 0, fmt.Sprintf(" Wave: %d ", g.wave))
	lives := ""
	for i := 0; i < g.lives; i++ {
		lives += "^"
	}
	dst.DrawTextColored(34, 0, fmt.Sprintf(" Lives: %-3s ", lives), core.ColorGreen)

	if g.tooSmall {
		g.drawCenteredMessage(dst, "WINDOW TOO SMALL", "Resize to continue")
		return
	}

	if g.ufo.Active {
		dst.DrawTextColored(g.ufo.X, g.ufo.Y, UFOChars, core.ColorRed)
	}

	g.formation.ForEach(func(a *Alien) {
		dst.DrawTextColored(a.X, a.Y, alienSprite(a, g.formation.rows), alienColor(a, g.formation.rows))
	})

	for i := range g.barriers {
		b := &g.barriers[i]
		for y := b.Y; y < b.Y+b.H; y++ {
			for x := b.X; x < b.X+b.W; x++ {
				if b.CellAt(x, y) {
					dst.SetColored(x, y, BarrierChar, core.ColorGreen)
				}
			}
		}
	}

	g.bullets.ForEach(func(_ int, b *Bullet) {
		if b.FromPlayer {
			dst.SetColored(b.X, b.Y, PlayerBulletChar, core.ColorYellow)
		} else {
			dst.SetColored(b.X, b.Y, AlienBulletChar, core.ColorRed)
		}
	})

	dst.DrawTextColored(g.playerX-1, g.playerY, PlayerChars, core.ColorCyan)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d", g.score))
	}
}

// alienSprite picks the two-frame sprite by formation row.
func alienSprite(a *Alien, rows int) string {
	switch {
	case a.Row == rows-1:
		if a.frame == 0 {
			return "(@)"
		}
		return "@@@"
	case a.Row >= rows/2:
		if a.frame == 0 {
			return "|#|"
		}
		return "###"
	default:
		if a.frame == 0 {
			return `\V/`
		}
		return "VVV"
	}
}

func alienColor(a *Alien, rows int) core.Color {
	switch {
	case a.Row == rows-1:
		return core.ColorRed
	case a.Row >= rows/2:
		return core.ColorYellow
	default:
		return core.ColorCyan
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
	registry.Register("invaders", func() registry.Game { return New() })
}
