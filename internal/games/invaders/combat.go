package invaders

import "math/rand"

// Bullet travels one cell per tick. Player bullets move up, alien
// bullets move down; both share one slot pool.
type Bullet struct {
	X, Y       int
	FromPlayer bool
}

// Barrier is a destructible shield. Each cell soaks exactly one hit.
type Barrier struct {
	X, Y  int
	W, H  int
	cells []bool
}

// NewBarrier builds an intact shield anchored at its top-left cell.
func NewBarrier(x, y, w, h int) Barrier {
	cells := make([]bool, w*h)
	for i := range cells {
		cells[i] = true
	}
	return Barrier{X: x, Y: y, W: w, H: h, cells: cells}
}

// CellAt reports whether an intact cell covers the given position.
func (b *Barrier) CellAt(x, y int) bool {
	rx, ry := x-b.X, y-b.Y
	if rx < 0 || rx >= b.W || ry < 0 || ry >= b.H {
		return false
	}
	return b.cells[ry*b.W+rx]
}

// Absorb destroys the intact cell at the given position. It reports
// whether a cell was consumed.
func (b *Barrier) Absorb(x, y int) bool {
	if !b.CellAt(x, y) {
		return false
	}
	b.cells[(y-b.Y)*b.W+(x-b.X)] = false
	return true
}

// Intact returns the number of surviving cells.
func (b *Barrier) Intact() int {
	n := 0
	for _, c := range b.cells {
		if c {
			n++
		}
	}
	return n
}

// UFO is the bonus saucer crossing the top of the screen.
type UFO struct {
	X, Y   int
	Dir    int
	Active bool
	timer  int
}

// arm schedules the next pass.
func (u *UFO) arm(every int, rng *rand.Rand) {
	u.Active = false
	if every <= 0 {
		u.timer = 0
		return
	}
	u.timer = every/2 + rng.Intn(every)
}

// update counts down to the next pass and moves an active saucer. It
// reports whether the saucer left the screen this tick.
func (u *UFO) update(screenW, every int, rng *rand.Rand) {
	if !u.Active {
		if u.timer > 0 {
			u.timer--
			if u.timer == 0 && every > 0 {
				u.Active = true
				if rng.Intn(2) == 0 {
					u.X, u.Dir = 0, 1
				} else {
					u.X, u.Dir = screenW-alienW, -1
				}
			}
		}
		return
	}

	u.X += u.Dir
	if u.X < -alienW || u.X > screenW {
		u.arm(every, rng)
	}
}

// hitBy reports whether a player bullet at the given cell strikes the
// saucer.
func (u *UFO) hitBy(x, y int) bool {
	return u.Active && y == u.Y && x >= u.X && x < u.X+alienW
}
