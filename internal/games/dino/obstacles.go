package dino

import (
	"math/rand"

	"github.com/ameleshko/arcadia/internal/arena"
	"github.com/ameleshko/arcadia/internal/config"
	"github.com/ameleshko/arcadia/internal/core"
)

// ObstacleType distinguishes ground obstacles from flying ones.
type ObstacleType int

const (
	SmallCactus ObstacleType = iota
	LargeCactus
	DoubleCactus
	Rock
	BirdLow  // Flies at duck height: must duck or jump high
	BirdHigh // Flies above standing height: running under works
	numObstacleTypes
)

// obstacleSize gives width and height per obstacle type.
var obstacleSize = [numObstacleTypes][2]int{
	SmallCactus:  {1, 2},
	LargeCactus:  {2, 3},
	DoubleCactus: {4, 2},
	Rock:         {3, 1},
	BirdLow:      {3, 1},
	BirdHigh:     {3, 1},
}

// flyHeight is rows above ground for flying types, 0 for grounded.
var flyHeight = [numObstacleTypes]int{
	BirdLow:  2,
	BirdHigh: 4,
}

// Obstacle is one pooled obstacle. Scored flips once the player has
// fully passed it; Grazed flips once a near miss has been counted.
type Obstacle struct {
	X      float64
	Type   ObstacleType
	Width  int
	Height int
	Scored bool
	Grazed bool
}

// Rect returns the obstacle's collision rectangle in screen coordinates.
func (o *Obstacle) Rect(groundY int) core.Rect {
	y := groundY - o.Height - flyHeight[o.Type]
	return core.NewRect(int(o.X), y, o.Width, o.Height)
}

// UpdateResult reports what happened to the obstacle field this tick.
type UpdateResult struct {
	Dodged     int  // Obstacles the player fully cleared this tick
	CloseCalls int  // Near misses first detected this tick
	Hit        bool // Whether the player collided
}

// ObstacleManager owns the pooled obstacle slots.
type ObstacleManager struct {
	pool       *arena.Pool[Obstacle]
	rng        *rand.Rand
	screenW    int
	spawnTimer int
	lastType   ObstacleType
	cfg        *config.DinoConfig
	difficulty *config.DifficultyManager
}

// NewObstacleManager creates an obstacle manager with a fixed slot capacity.
func NewObstacleManager(seed int64, screenW int, cfg *config.DinoConfig, diff *config.DifficultyManager) *ObstacleManager {
	om := &ObstacleManager{
		pool:       arena.New[Obstacle](cfg.Obstacles.MaxActive),
		screenW:    screenW,
		cfg:        cfg,
		difficulty: diff,
	}
	om.Reset(seed)
	return om
}

// UpdateConfig updates the configuration.
func (om *ObstacleManager) UpdateConfig(cfg *config.DinoConfig, diff *config.DifficultyManager) {
	if cfg.Obstacles.MaxActive != om.pool.Cap() {
		om.pool = arena.New[Obstacle](cfg.Obstacles.MaxActive)
	}
	om.cfg = cfg
	om.difficulty = diff
}

// UpdateScreenSize updates the screen width.
func (om *ObstacleManager) UpdateScreenSize(screenW int) {
	om.screenW = screenW
}

// Reset releases all obstacles and reseeds the RNG.
func (om *ObstacleManager) Reset(seed int64) {
	om.pool.Reset()
	om.rng = rand.New(rand.NewSource(seed))
	om.spawnTimer = om.cfg.Obstacles.BaseSpawnEvery
	om.lastType = SmallCactus
}

// Update advances every live obstacle, releases the off-screen ones,
// spawns when the timer fires, and resolves scoring and collisions
// against the player in a single pass.
func (om *ObstacleManager) Update(playerRect core.Rect, groundY, score, ticks int) UpdateResult {
	var res UpdateResult

	speed := om.difficulty.Speed(om.cfg.Physics.BaseSpeed, score, ticks)
	if max := om.cfg.Physics.MaxSpeed; max > 0 && speed > max {
		speed = max
	}

	margin := om.cfg.Player.HitMargin

	om.pool.ForEach(func(_ int, o *Obstacle) {
		o.X -= speed

		rect := o.Rect(groundY)
		if playerRect.HitsWithMargin(rect, margin) {
			res.Hit = true
			return
		}

		// Full overlap forgiven by the margin still counts as a graze.
		if !o.Grazed && playerRect.Intersects(rect.Inset(-1)) {
			o.Grazed = true
			res.CloseCalls++
		}

		if !o.Scored && int(o.X)+o.Width < playerRect.X {
			o.Scored = true
			res.Dodged++
		}
	})

	om.pool.DespawnIf(func(o *Obstacle) bool {
		return int(o.X)+o.Width < om.cfg.Obstacles.DespawnThreshold
	})

	om.spawnTimer--
	if om.spawnTimer <= 0 {
		om.spawn()
		interval := om.difficulty.Interval(om.cfg.Obstacles.BaseSpawnEvery, om.cfg.Obstacles.MinSpawnEvery, score, ticks)
		jitter := 0
		if om.cfg.Obstacles.SpawnJitter > 0 {
			jitter = om.rng.Intn(om.cfg.Obstacles.SpawnJitter + 1)
		}
		om.spawnTimer = interval + jitter
	}

	return res
}

// spawn places a new obstacle just past the right edge. A full pool
// drops the spawn; the timer will fire again soon enough.
func (om *ObstacleManager) spawn() {
	t := ObstacleType(om.rng.Intn(int(numObstacleTypes)))

	// Avoid back-to-back low birds: forcing a duck right after a duck
	// reads as unfair at speed.
	if t == BirdLow && om.lastType == BirdLow {
		t = SmallCactus
	}

	if _, ok := om.pool.Spawn(Obstacle{
		X:      float64(om.screenW),
		Type:   t,
		Width:  obstacleSize[t][0],
		Height: obstacleSize[t][1],
	}); !ok {
		return
	}
	om.lastType = t
}

// ForEach visits every live obstacle, for rendering.
func (om *ObstacleManager) ForEach(fn func(o *Obstacle)) {
	om.pool.ForEach(func(_ int, o *Obstacle) { fn(o) })
}

// Active returns the number of live obstacles.
func (om *ObstacleManager) Active() int {
	return om.pool.Len()
}
