// Package arena provides a fixed-capacity slot pool for game entities.
// Entities (obstacles, bullets, particles) live in preallocated slots that
// are reused rather than freed: spawning claims a free slot in O(1) via a
// free list, despawning returns it. The live count can never exceed the
// capacity chosen at construction, so a full pool rejects spawns instead of
// growing or clobbering neighbors.
package arena

// Pool is a fixed-capacity slot map for entities of type T.
// The zero value is not usable; construct with New.
type Pool[T any] struct {
	items []T
	live  []bool
	free  []int // Stack of free slot indices
	count int
}

// New creates a pool with the given fixed capacity.
// Panics if capacity is not positive; entity counts are compile-time
// constants in practice, so this is a programming error.
func New[T any](capacity int) *Pool[T] {
	if capacity <= 0 {
		panic("arena: capacity must be positive")
	}
	p := &Pool[T]{
		items: make([]T, capacity),
		live:  make([]bool, capacity),
		free:  make([]int, 0, capacity),
	}
	p.Reset()
	return p
}

// Cap returns the fixed slot capacity.
func (p *Pool[T]) Cap() int {
	return len(p.items)
}

// Len returns the number of live entities.
func (p *Pool[T]) Len() int {
	return p.count
}

// Full reports whether every slot is occupied.
func (p *Pool[T]) Full() bool {
	return p.count == len(p.items)
}

// Reset despawns everything and rebuilds the free list.
func (p *Pool[T]) Reset() {
	var zero T
	p.free = p.free[:0]
	for i := len(p.items) - 1; i >= 0; i-- {
		p.items[i] = zero
		p.live[i] = false
		p.free = append(p.free, i)
	}
	p.count = 0
}

// Spawn places v into a free slot and returns its index.
// Returns (-1, false) when the pool is full; the pool is left untouched.
func (p *Pool[T]) Spawn(v T) (int, bool) {
	if len(p.free) == 0 {
		return -1, false
	}
	idx := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.items[idx] = v
	p.live[idx] = true
	p.count++
	return idx, true
}

// Despawn releases the slot at idx for reuse.
// Despawning a dead or out-of-range slot is a no-op.
func (p *Pool[T]) Despawn(idx int) {
	if idx < 0 || idx >= len(p.items) || !p.live[idx] {
		return
	}
	var zero T
	p.items[idx] = zero
	p.live[idx] = false
	p.free = append(p.free, idx)
	p.count--
}

// Alive reports whether the slot at idx holds a live entity.
func (p *Pool[T]) Alive(idx int) bool {
	return idx >= 0 && idx < len(p.items) && p.live[idx]
}

// Get returns a pointer to the entity in slot idx, or nil if the slot is
// dead. The pointer is valid until the slot is despawned.
func (p *Pool[T]) Get(idx int) *T {
	if !p.Alive(idx) {
		return nil
	}
	return &p.items[idx]
}

// ForEach calls fn for every live entity. fn may mutate the entity through
// the pointer. Despawning the visited slot from within fn is allowed;
// spawning from within fn may or may not visit the new entity.
func (p *Pool[T]) ForEach(fn func(idx int, v *T)) {
	for i := range p.items {
		if p.live[i] {
			fn(i, &p.items[i])
		}
	}
}

// DespawnIf removes every live entity for which pred returns true and
// reports how many were removed.
func (p *Pool[T]) DespawnIf(pred func(v *T) bool) int {
	removed := 0
	for i := range p.items {
		if p.live[i] && pred(&p.items[i]) {
			p.Despawn(i)
			removed++
		}
	}
	return removed
}
