package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type obstacle struct {
	X, Y   int
	Scored bool
}

func TestPoolSpawnDespawn(t *testing.T) {
	p := New[obstacle](4)

	assert.Equal(t, 4, p.Cap())
	assert.Equal(t, 0, p.Len())

	idx, ok := p.Spawn(obstacle{X: 10})
	require.True(t, ok)
	assert.True(t, p.Alive(idx))
	assert.Equal(t, 1, p.Len())

	got := p.Get(idx)
	require.NotNil(t, got)
	assert.Equal(t, 10, got.X)

	p.Despawn(idx)
	assert.False(t, p.Alive(idx))
	assert.Equal(t, 0, p.Len())
	assert.Nil(t, p.Get(idx))
}

func TestPoolCapacityBound(t *testing.T) {
	p := New[obstacle](3)

	for i := 0; i < 3; i++ {
		_, ok := p.Spawn(obstacle{X: i})
		require.True(t, ok, "spawn %d should fit", i)
	}
	require.True(t, p.Full())

	// Spawning into a full pool is rejected and changes nothing.
	before := make(map[int]obstacle)
	p.ForEach(func(idx int, v *obstacle) { before[idx] = *v })

	idx, ok := p.Spawn(obstacle{X: 99})
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
	assert.Equal(t, 3, p.Len())

	p.ForEach(func(idx int, v *obstacle) {
		assert.Equal(t, before[idx], *v, "neighbor slot %d must be untouched", idx)
	})
}

func TestPoolSlotReuse(t *testing.T) {
	p := New[obstacle](2)

	a, _ := p.Spawn(obstacle{X: 1})
	b, _ := p.Spawn(obstacle{X: 2})

	p.Despawn(a)
	c, ok := p.Spawn(obstacle{X: 3})
	require.True(t, ok)
	assert.Equal(t, a, c, "freed slot should be reused")
	assert.NotEqual(t, b, c)

	// The reused slot starts from the new value, not stale state.
	assert.Equal(t, obstacle{X: 3}, *p.Get(c))
}

func TestPoolDespawnDeadSlotIsNoop(t *testing.T) {
	p := New[obstacle](2)
	idx, _ := p.Spawn(obstacle{})

	p.Despawn(idx)
	p.Despawn(idx) // Double despawn
	p.Despawn(-1)
	p.Despawn(100)

	assert.Equal(t, 0, p.Len())

	// Free list must not contain duplicates: both slots still spawnable once.
	_, ok1 := p.Spawn(obstacle{})
	_, ok2 := p.Spawn(obstacle{})
	_, ok3 := p.Spawn(obstacle{})
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.False(t, ok3)
}

func TestPoolForEachMutation(t *testing.T) {
	p := New[obstacle](5)
	for i := 0; i < 5; i++ {
		p.Spawn(obstacle{X: 10 * i})
	}

	p.ForEach(func(idx int, v *obstacle) {
		v.X -= 5 // Scroll everything left
	})

	seen := 0
	sum := 0
	p.ForEach(func(idx int, v *obstacle) {
		assert.Equal(t, 0, (v.X+5)%10, "mutation through the pointer must stick")
		sum += v.X
		seen++
	})
	assert.Equal(t, 5, seen)
	assert.Equal(t, (0+10+20+30+40)-5*5, sum)
}

func TestPoolDespawnIf(t *testing.T) {
	p := New[obstacle](6)
	for i := 0; i < 6; i++ {
		p.Spawn(obstacle{X: i - 3}) // -3 .. 2
	}

	removed := p.DespawnIf(func(v *obstacle) bool { return v.X < 0 })
	assert.Equal(t, 3, removed)
	assert.Equal(t, 3, p.Len())

	p.ForEach(func(idx int, v *obstacle) {
		assert.GreaterOrEqual(t, v.X, 0)
	})
}

func TestPoolReset(t *testing.T) {
	p := New[obstacle](3)
	p.Spawn(obstacle{X: 1})
	p.Spawn(obstacle{X: 2})

	p.Reset()
	assert.Equal(t, 0, p.Len())

	for i := 0; i < 3; i++ {
		_, ok := p.Spawn(obstacle{X: i})
		require.True(t, ok)
	}
}
