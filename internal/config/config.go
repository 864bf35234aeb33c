// Package config provides YAML-based game tuning and difficulty
// management for the arcade platform.
package config

// FlappyConfig contains all configuration for the Flappy Bird game.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines physics parameters for Flappy Bird.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	FlapImpulse  float64 `yaml:"flap_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
}

// FlappyObstacles defines pipe parameters for Flappy Bird.
type FlappyObstacles struct {
	PipeWidth    int `yaml:"pipe_width"`
	PipeSpacing  int `yaml:"pipe_spacing"`
	MinGapSize   int `yaml:"min_gap_size"`
	MaxGapSize   int `yaml:"max_gap_size"`
	TopMargin    int `yaml:"top_margin"`
	BottomMargin int `yaml:"bottom_margin"`
	MaxPipes     int `yaml:"max_pipes"`
}

// FlappyPlayer defines player parameters for Flappy Bird.
type FlappyPlayer struct {
	X         int `yaml:"x"`
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	HitMargin int `yaml:"hit_margin"` // Forgiveness margin for collision tests
}

// DinoConfig contains all configuration for the Dino Runner game.
type DinoConfig struct {
	Physics    DinoPhysics      `yaml:"physics"`
	Obstacles  DinoObstacles    `yaml:"obstacles"`
	Player     DinoPlayer       `yaml:"player"`
	Feel       DinoFeel         `yaml:"feel"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DinoPhysics defines physics parameters for Dino Runner.
type DinoPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
}

// DinoObstacles defines obstacle spawn parameters for Dino Runner.
type DinoObstacles struct {
	MaxActive        int `yaml:"max_active"`         // Slot capacity
	BaseSpawnEvery   int `yaml:"base_spawn_every"`   // Ticks between spawns at difficulty 0
	MinSpawnEvery    int `yaml:"min_spawn_every"`    // Floor for the spawn interval
	SpawnJitter      int `yaml:"spawn_jitter"`       // Random extra ticks added per spawn
	DespawnThreshold int `yaml:"despawn_threshold"`  // X below which obstacles are released
}

// DinoPlayer defines player parameters for Dino Runner.
type DinoPlayer struct {
	X            int `yaml:"x"`
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundOffset int `yaml:"ground_offset"` // Rows between ground line and screen bottom
	HitMargin    int `yaml:"hit_margin"`    // Forgiveness margin for collision tests
}

// DinoFeel defines input-feel parameters recovered from the classic runner:
// a jump pressed slightly early is buffered, and a jump slightly after
// running off an edge still fires (coyote time).
type DinoFeel struct {
	JumpBufferTicks int `yaml:"jump_buffer_ticks"`
	CoyoteTicks     int `yaml:"coyote_ticks"`
	DuckTicks       int `yaml:"duck_ticks"` // How long a duck tap holds the duck pose
}

// RacingConfig contains all configuration for the ASCII Racing game.
type RacingConfig struct {
	Track      RacingTrack      `yaml:"track"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RacingTrack defines track and pacing parameters for ASCII Racing.
type RacingTrack struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	Lanes          int `yaml:"lanes"`
	MaxObstacles   int `yaml:"max_obstacles"`
	MoveEveryTicks int `yaml:"move_every_ticks"` // Obstacle advance cadence at difficulty 0
	MinMoveEvery   int `yaml:"min_move_every"`   // Cadence floor (fastest)
	SpawnChance    int `yaml:"spawn_chance"`     // Percent chance to spawn per advance
}

// InvadersConfig contains all configuration for the Space Invaders game.
type InvadersConfig struct {
	Formation  InvadersFormation `yaml:"formation"`
	Combat     InvadersCombat    `yaml:"combat"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// InvadersFormation defines the alien grid for Space Invaders.
type InvadersFormation struct {
	Rows          int `yaml:"rows"`
	Cols          int `yaml:"cols"`
	MoveEvery     int `yaml:"move_every"`      // Ticks between formation steps at full strength
	MinMoveEvery  int `yaml:"min_move_every"`  // Fastest formation cadence
	NumBarriers   int `yaml:"num_barriers"`
	BarrierWidth  int `yaml:"barrier_width"`
	BarrierHeight int `yaml:"barrier_height"`
}

// InvadersCombat defines weapons and lives for Space Invaders.
type InvadersCombat struct {
	MaxBullets      int `yaml:"max_bullets"` // Shared player+alien bullet slot capacity
	ShootCooldown   int `yaml:"shoot_cooldown"`
	AlienShootEvery int `yaml:"alien_shoot_every"`
	Lives           int `yaml:"lives"`
	UFOEvery        int `yaml:"ufo_every"` // Ticks between bonus UFO passes
	UFOPoints       int `yaml:"ufo_points"`
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid       SnakeGrid        `yaml:"grid"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeGrid defines board and pacing parameters for Snake.
type SnakeGrid struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	InitialLength  int `yaml:"initial_length"`
	MoveEveryTicks int `yaml:"move_every_ticks"`
	MinMoveEvery   int `yaml:"min_move_every"`
	SpecialEvery   int `yaml:"special_every"` // Every Nth food is a bonus food
	SpecialValue   int `yaml:"special_value"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Speed gain at max difficulty
	GapReduction      int     `yaml:"gap_reduction"`      // Gap size reduction at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset maps a CLI difficulty string onto a preset.
// Unknown strings yield "", meaning keep the config's own settings.
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	case "fixed":
		return DifficultyFixed
	}
	return ""
}

// ApplyPreset adjusts a DifficultyConfig in place for a named preset.
// "fixed" disables progression entirely.
func ApplyPreset(cfg *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Enabled = false
		return
	}
	cfg.Enabled = true
	cfg.InitialLevel = InitialLevelForPreset(preset)
}
