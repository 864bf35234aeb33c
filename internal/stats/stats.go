// Package stats persists per-game lifetime statistics and achievement
// unlocks to a small binary file, independent of the score database.
// The file survives across sessions and is tolerant of older layouts:
// a short, missing, or corrupt file simply yields zeroed stats.
package stats

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

const (
	fileMagic   uint32 = 0x53544154 // "STAT"
	fileVersion byte   = 1
)

// headerSize is magic (4) + version, counter count, achievement count, pad (4).
const headerSize = 8

// File holds one game's lifetime counters and achievement unlock flags.
type File struct {
	path     string
	Counters []int32
	Unlocked []bool
}

// Load reads a stat file from path. Any failure to read or decode yields
// a fresh zeroed File bound to the same path, never an error: lifetime
// stats are a nicety and must not block the game from starting.
func Load(path string, numCounters, numAchievements int) *File {
	f := &File{
		path:     path,
		Counters: make([]int32, numCounters),
		Unlocked: make([]bool, numAchievements),
	}

	data, err := os.ReadFile(path)
	if err != nil || len(data) < headerSize {
		return f
	}
	if binary.LittleEndian.Uint32(data[0:4]) != fileMagic || data[4] != fileVersion {
		return f
	}

	savedCounters := int(data[5])
	savedAch := int(data[6])
	need := headerSize + savedCounters*4 + savedAch
	if len(data) < need {
		return f
	}

	// Copy what overlaps; a file from an older build with fewer slots
	// leaves the new slots zeroed.
	off := headerSize
	for i := 0; i < savedCounters && i < numCounters; i++ {
		f.Counters[i] = int32(binary.LittleEndian.Uint32(data[off+i*4:]))
	}
	off += savedCounters * 4
	for i := 0; i < savedAch && i < numAchievements; i++ {
		f.Unlocked[i] = data[off+i] != 0
	}
	return f
}

// Save writes the stat file, creating parent directories as needed.
func (f *File) Save() error {
	buf := make([]byte, headerSize+len(f.Counters)*4+len(f.Unlocked))
	binary.LittleEndian.PutUint32(buf[0:4], fileMagic)
	buf[4] = fileVersion
	buf[5] = byte(len(f.Counters))
	buf[6] = byte(len(f.Unlocked))

	off := headerSize
	for i, c := range f.Counters {
		binary.LittleEndian.PutUint32(buf[off+i*4:], uint32(c))
	}
	off += len(f.Counters) * 4
	for i, u := range f.Unlocked {
		if u {
			buf[off+i] = 1
		}
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("stats: create dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(f.path, buf, 0o644); err != nil {
		return fmt.Errorf("stats: write %s: %w", f.path, err)
	}
	return nil
}

// Path returns the file path this File reads from and writes to.
func (f *File) Path() string {
	return f.path
}

// Get returns a counter value; out-of-range indices read as zero.
func (f *File) Get(counter int) int32 {
	if counter < 0 || counter >= len(f.Counters) {
		return 0
	}
	return f.Counters[counter]
}

// Add increments a counter.
func (f *File) Add(counter int, delta int32) {
	if counter >= 0 && counter < len(f.Counters) {
		f.Counters[counter] += delta
	}
}

// RaiseMax sets a counter to v if v is larger. Used for high scores.
func (f *File) RaiseMax(counter int, v int32) {
	if counter >= 0 && counter < len(f.Counters) && v > f.Counters[counter] {
		f.Counters[counter] = v
	}
}

// Unlock marks an achievement unlocked. It reports true only on the
// first unlock, so callers can show the banner exactly once.
func (f *File) Unlock(i int) bool {
	if i < 0 || i >= len(f.Unlocked) || f.Unlocked[i] {
		return false
	}
	f.Unlocked[i] = true
	return true
}

// IsUnlocked reports whether an achievement has been unlocked.
func (f *File) IsUnlocked(i int) bool {
	return i >= 0 && i < len(f.Unlocked) && f.Unlocked[i]
}

// DefaultPath returns the stat file location for a game:
// ~/.arcadia/<game>_stats.dat, or a file in the working directory
// when the home directory cannot be resolved.
func DefaultPath(game string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return game + "_stats.dat"
	}
	return filepath.Join(home, ".arcadia", game+"_stats.dat")
}
