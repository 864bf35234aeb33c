package flappy

import (
	"math/rand"

	"github.com/ameleshko/arcadia/internal/arena"
	"github.com/ameleshko/arcadia/internal/config"
	"github.com/ameleshko/arcadia/internal/core"
)

// Pipe represents a vertical obstacle with a gap for the player to pass
// through. Passed flips once the player has cleared it, so each pipe
// scores at most once.
type Pipe struct {
	X         float64
	GapY      int
	GapHeight int
	Passed    bool
}

// TopRect returns the collision rectangle for the top portion of the pipe.
func (p *Pipe) TopRect(pipeWidth int) core.Rect {
	return core.NewRect(int(p.X), 0, pipeWidth, p.GapY)
}

// BottomRect returns the collision rectangle for the bottom portion of the pipe.
func (p *Pipe) BottomRect(pipeWidth, screenH int) core.Rect {
	bottomY := p.GapY + p.GapHeight
	return core.NewRect(int(p.X), bottomY, pipeWidth, screenH-bottomY)
}

// PipeManager owns the pooled pipe slots and handles spawning, movement,
// scoring, and removal.
type PipeManager struct {
	pool       *arena.Pool[Pipe]
	rng        *rand.Rand
	screenW    int
	screenH    int
	cfg        *config.FlappyConfig
	difficulty *config.DifficultyManager
}

// NewPipeManager creates a pipe manager with a fixed slot capacity.
func NewPipeManager(seed int64, screenW, screenH int, cfg *config.FlappyConfig, diff *config.DifficultyManager) *PipeManager {
	pm := &PipeManager{
		pool:       arena.New[Pipe](cfg.Obstacles.MaxPipes),
		screenW:    screenW,
		screenH:    screenH,
		cfg:        cfg,
		difficulty: diff,
	}
	pm.Reset(seed)
	return pm
}

// UpdateConfig updates the configuration.
func (pm *PipeManager) UpdateConfig(cfg *config.FlappyConfig, diff *config.DifficultyManager) {
	if cfg.Obstacles.MaxPipes != pm.pool.Cap() {
		pm.pool = arena.New[Pipe](cfg.Obstacles.MaxPipes)
	}
	pm.cfg = cfg
	pm.difficulty = diff
}

// UpdateScreenSize updates the screen dimensions.
func (pm *PipeManager) UpdateScreenSize(screenW, screenH int) {
	pm.screenW = screenW
	pm.screenH = screenH
}

// Reset releases all pipes and reseeds the RNG.
func (pm *PipeManager) Reset(seed int64) {
	pm.pool.Reset()
	pm.rng = rand.New(rand.NewSource(seed))
}

// Update moves pipes left, scores the ones the player just cleared,
// releases off-screen slots, and spawns when the rightmost pipe has
// moved far enough in. Returns the number of pipes passed this tick.
func (pm *PipeManager) Update(playerX, score, ticks int) int {
	speed := pm.difficulty.Speed(pm.cfg.Physics.BaseSpeed, score, ticks)
	pipeWidth := pm.cfg.Obstacles.PipeWidth

	passed := 0
	rightmost := -1.0
	pm.pool.ForEach(func(_ int, p *Pipe) {
		p.X -= speed
		if !p.Passed && int(p.X)+pipeWidth < playerX {
			p.Passed = true
			passed++
		}
		if p.X > rightmost {
			rightmost = p.X
		}
	})

	pm.pool.DespawnIf(func(p *Pipe) bool {
		return int(p.X)+pipeWidth <= 0
	})

	if pm.pool.Len() == 0 || rightmost < float64(pm.screenW-pm.cfg.Obstacles.PipeSpacing) {
		pm.spawn(score, ticks)
	}

	return passed
}

// spawn creates a new pipe at the right edge of the screen. A full pool
// drops the spawn.
func (pm *PipeManager) spawn(score, ticks int) {
	maxGap := pm.cfg.Obstacles.MaxGapSize
	minGap := pm.cfg.Obstacles.MinGapSize

	currentGap := pm.difficulty.GapSize(maxGap, score, ticks)
	if currentGap < minGap {
		currentGap = minGap
	}

	gapHeight := minGap
	if gapRange := currentGap - minGap; gapRange > 0 {
		gapHeight = minGap + pm.rng.Intn(gapRange+1)
	}

	topMargin := pm.cfg.Obstacles.TopMargin
	bottomMargin := pm.cfg.Obstacles.BottomMargin
	maxGapY := pm.screenH - bottomMargin - gapHeight
	minGapY := topMargin
	if maxGapY < minGapY {
		maxGapY = minGapY // Very small screens
	}

	gapY := minGapY
	if maxGapY > minGapY {
		gapY = minGapY + pm.rng.Intn(maxGapY-minGapY+1)
	}

	pm.pool.Spawn(Pipe{
		X:         float64(pm.screenW),
		GapY:      gapY,
		GapHeight: gapHeight,
	})
}

// ForEach visits every live pipe, for rendering.
func (pm *PipeManager) ForEach(fn func(p *Pipe)) {
	pm.pool.ForEach(func(_ int, p *Pipe) { fn(p) })
}

// Active returns the number of live pipes.
func (pm *PipeManager) Active() int {
	return pm.pool.Len()
}

// CheckCollision tests the player box against every live pipe, with the
// configured forgiveness margin so a one-cell graze is survivable.
func (pm *PipeManager) CheckCollision(playerRect core.Rect, screenH int) bool {
	pipeWidth := pm.cfg.Obstacles.PipeWidth
	margin := pm.cfg.Player.HitMargin
	hit := false
	pm.pool.ForEach(func(_ int, p *Pipe) {
		if playerRect.HitsWithMargin(p.TopRect(pipeWidth), margin) || playerRect.HitsWithMargin(p.BottomRect(pipeWidth, screenH), margin) {
			hit = true
		}
	})
	return hit
}
