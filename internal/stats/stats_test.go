package stats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dino_stats.dat")

	f := Load(path, DinoNumCounters, DinoNumAchievements)
	f.Add(DinoTotalJumps, 42)
	f.RaiseMax(DinoHighScore, 1200)
	f.Unlock(DinoAchFirstJump)
	f.Unlock(DinoAchScore1000)
	require.NoError(t, f.Save())

	g := Load(path, DinoNumCounters, DinoNumAchievements)
	assert.Equal(t, int32(42), g.Get(DinoTotalJumps))
	assert.Equal(t, int32(1200), g.Get(DinoHighScore))
	assert.True(t, g.IsUnlocked(DinoAchFirstJump))
	assert.True(t, g.IsUnlocked(DinoAchScore1000))
	assert.False(t, g.IsUnlocked(DinoAchLegend))
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.dat")

	f := Load(path, FlappyNumCounters, FlappyNumAchievements)
	assert.Equal(t, int32(0), f.Get(FlappyHighScore))
	assert.False(t, f.IsUnlocked(FlappyAchFirstFlight))
}

func TestLoadShortFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.dat")
	require.NoError(t, os.WriteFile(path, []byte{0x54, 0x41}, 0o644))

	f := Load(path, DinoNumCounters, DinoNumAchievements)
	assert.Equal(t, int32(0), f.Get(DinoGamesPlayed), "a truncated file reads as fresh stats")
}

func TestLoadBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.dat")
	junk := make([]byte, 64)
	for i := range junk {
		junk[i] = 0xFF
	}
	require.NoError(t, os.WriteFile(path, junk, 0o644))

	f := Load(path, DinoNumCounters, DinoNumAchievements)
	assert.Equal(t, int32(0), f.Get(DinoHighScore))
	assert.False(t, f.IsUnlocked(DinoAchSpeedDemon))
}

func TestLoadOlderLayout(t *testing.T) {
	// A file written by a build with fewer counters and achievements
	// loads cleanly, with the new slots zeroed.
	path := filepath.Join(t.TempDir(), "old.dat")

	old := &File{path: path, Counters: make([]int32, 3), Unlocked: make([]bool, 2)}
	old.Counters[DinoHighScore] = 77
	old.Unlocked[DinoAchFirstJump] = true
	require.NoError(t, old.Save())

	f := Load(path, DinoNumCounters, DinoNumAchievements)
	assert.Equal(t, int32(77), f.Get(DinoHighScore))
	assert.True(t, f.IsUnlocked(DinoAchFirstJump))
	assert.Equal(t, int32(0), f.Get(DinoCloseCalls))
	assert.False(t, f.IsUnlocked(DinoAchLegend))
}

func TestUnlockReportsFirstOnly(t *testing.T) {
	f := Load(filepath.Join(t.TempDir(), "x.dat"), DinoNumCounters, DinoNumAchievements)

	assert.True(t, f.Unlock(DinoAchDuckMaster))
	assert.False(t, f.Unlock(DinoAchDuckMaster), "second unlock of the same slot is silent")
}

func TestRaiseMaxKeepsLarger(t *testing.T) {
	f := Load(filepath.Join(t.TempDir(), "x.dat"), DinoNumCounters, DinoNumAchievements)

	f.RaiseMax(DinoHighScore, 100)
	f.RaiseMax(DinoHighScore, 50)
	assert.Equal(t, int32(100), f.Get(DinoHighScore))
}

func TestSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "stats.dat")

	f := Load(path, FlappyNumCounters, FlappyNumAchievements)
	f.Add(FlappyTotalFlaps, 1)
	require.NoError(t, f.Save())

	g := Load(path, FlappyNumCounters, FlappyNumAchievements)
	assert.Equal(t, int32(1), g.Get(FlappyTotalFlaps))
}
