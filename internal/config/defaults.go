package config

import _ "embed"

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

//go:embed defaults/racing.yaml
var defaultRacingYAML []byte

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      0.4,
			FlapImpulse:  -3.2,
			MaxFallSpeed: 4.0,
			BaseSpeed:    1.0,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:    3,
			PipeSpacing:  28,
			MinGapSize:   6,
			MaxGapSize:   10,
			TopMargin:    2,
			BottomMargin: 2,
			MaxPipes:     10,
		},
		Player: FlappyPlayer{
			X:         10,
			Width:     2,
			Height:    1,
			HitMargin: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
				GapReduction:    3,
			},
		},
	}
}

// DefaultDinoConfig returns the default Dino Runner configuration.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Physics: DinoPhysics{
			Gravity:      0.6,
			JumpImpulse:  -3.4,
			MaxFallSpeed: 3.0,
			BaseSpeed:    1.0,
			MaxSpeed:     2.5,
		},
		Obstacles: DinoObstacles{
			MaxActive:        20,
			BaseSpawnEvery:   90,
			MinSpawnEvery:    25,
			SpawnJitter:      30,
			DespawnThreshold: -4,
		},
		Player: DinoPlayer{
			X:            8,
			Width:        3,
			Height:       3,
			GroundOffset: 3,
			HitMargin:    1,
		},
		Feel: DinoFeel{
			JumpBufferTicks: 5,
			CoyoteTicks:     3,
			DuckTicks:       12,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 600,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   2.0,
				IntervalReduction: 65,
			},
		},
	}
}

// DefaultRacingConfig returns the default ASCII Racing configuration.
func DefaultRacingConfig() RacingConfig {
	return RacingConfig{
		Track: RacingTrack{
			Width:          20,
			Height:         15,
			Lanes:          3,
			MaxObstacles:   5,
			MoveEveryTicks: 6,
			MinMoveEvery:   2,
			SpawnChance:    35,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 4,
			},
		},
	}
}

// DefaultInvadersConfig returns the default Space Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Formation: InvadersFormation{
			Rows:          5,
			Cols:          11,
			MoveEvery:     20,
			MinMoveEvery:  3,
			NumBarriers:   4,
			BarrierWidth:  5,
			BarrierHeight: 2,
		},
		Combat: InvadersCombat{
			MaxBullets:      20,
			ShootCooldown:   8,
			AlienShootEvery: 35,
			Lives:           3,
			UFOEvery:        600,
			UFOPoints:       100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 17,
			},
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Width:          32,
			Height:         20,
			InitialLength:  3,
			MoveEveryTicks: 5,
			MinMoveEvery:   1,
			SpecialEvery:   5,
			SpecialValue:   5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 4,
			},
		},
	}
}
