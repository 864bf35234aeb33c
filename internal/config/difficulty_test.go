package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoreDifficulty(maxAt int, scaling ScalingConfig) *DifficultyManager {
	return NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: maxAt},
		Scaling:      scaling,
	})
}

func TestLevelProgression(t *testing.T) {
	d := scoreDifficulty(100, ScalingConfig{})

	assert.Equal(t, 0.0, d.Level(0, 0))
	assert.Equal(t, 0.5, d.Level(50, 0))
	assert.Equal(t, 1.0, d.Level(100, 0))
	assert.Equal(t, 1.0, d.Level(500, 0), "level saturates past max_at")
}

func TestLevelDisabled(t *testing.T) {
	d := scoreDifficulty(100, ScalingConfig{})
	d.SetEnabled(false)
	d.SetInitialLevel(0.3)

	assert.Equal(t, 0.3, d.Level(90, 0), "disabled manager holds the initial level")
	assert.False(t, d.IsEnabled())
}

func TestIntervalMonotonicWithFloor(t *testing.T) {
	d := scoreDifficulty(600, ScalingConfig{IntervalReduction: 65})

	prev := d.Interval(90, 25, 0, 0)
	require.Equal(t, 90, prev)
	for score := 0; score <= 800; score += 10 {
		cur := d.Interval(90, 25, score, 0)
		assert.LessOrEqual(t, cur, prev, "interval must not grow as score rises (score=%d)", score)
		assert.GreaterOrEqual(t, cur, 25, "interval must respect the floor (score=%d)", score)
		prev = cur
	}
	assert.Equal(t, 25, d.Interval(90, 25, 800, 0), "interval bottoms out at the floor")
}

func TestGapSizeShrinksToMinimum(t *testing.T) {
	d := scoreDifficulty(50, ScalingConfig{GapReduction: 8})

	assert.Equal(t, 10, d.GapSize(10, 0, 0))
	assert.Equal(t, 6, d.GapSize(10, 25, 0))
	assert.Equal(t, 4, d.GapSize(10, 50, 0), "gap never shrinks below the playable minimum")
}

func TestSpeedScales(t *testing.T) {
	d := scoreDifficulty(50, ScalingConfig{SpeedMultiplier: 1.5})

	assert.InDelta(t, 1.0, d.Speed(1.0, 0, 0), 1e-9)
	assert.InDelta(t, 2.5, d.Speed(1.0, 50, 0), 1e-9)
}

func TestDefaultsParseFromEmbeddedYAML(t *testing.T) {
	// The embedded YAML and the hardcoded fallbacks must agree, otherwise
	// behavior silently depends on which source happened to win.
	flappy, err := LoadFlappy("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFlappyConfig().Physics, flappy.Physics)

	dino, err := LoadDino("")
	require.NoError(t, err)
	assert.Equal(t, DefaultDinoConfig().Feel, dino.Feel)

	invaders, err := LoadInvaders("")
	require.NoError(t, err)
	assert.Equal(t, DefaultInvadersConfig().Formation, invaders.Formation)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := LoadSnake("/nonexistent/snake.yaml")
	assert.Error(t, err, "an explicit config path that cannot be read is an error")
}
