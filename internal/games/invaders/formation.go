package invaders

import "math/rand"

// Horizontal and vertical spacing between aliens in the grid.
const (
	alienW       = 3
	alienStrideX = 6
	alienStrideY = 2
)

// Alien is one member of the marching formation.
type Alien struct {
	X, Y  int
	Row   int
	Alive bool
	frame int
}

// Formation is the alien grid. It marches horizontally as a block and
// drops one row when any live member reaches a track edge, flipping
// direction.
type Formation struct {
	aliens []Alien
	rows   int
	cols   int
	dir    int
	total  int
	alive  int
}

// NewFormation builds a full grid anchored at the given top-left cell.
func NewFormation(rows, cols, startX, startY int) *Formation {
	f := &Formation{
		aliens: make([]Alien, 0, rows*cols),
		rows:   rows,
		cols:   cols,
		dir:    1,
		total:  rows * cols,
		alive:  rows * cols,
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			f.aliens = append(f.aliens, Alien{
				X:     startX + col*alienStrideX,
				Y:     startY + row*alienStrideY,
				Row:   row,
				Alive: true,
			})
		}
	}
	return f
}

// Alive returns the number of live aliens.
func (f *Formation) Alive() int {
	return f.alive
}

// ForEach visits every live alien.
func (f *Formation) ForEach(fn func(a *Alien)) {
	for i := range f.aliens {
		if f.aliens[i].Alive {
			fn(&f.aliens[i])
		}
	}
}

// Interval scales the march cadence by remaining strength: a full grid
// marches at base, the last alien at floor.
func (f *Formation) Interval(base, floor int) int {
	if base < floor {
		base = floor
	}
	if f.total == 0 {
		return floor
	}
	iv := floor + (base-floor)*f.alive/f.total
	if iv < 1 {
		iv = 1
	}
	return iv
}

// Advance moves the block one step. When a live alien touches minX or
// maxX the whole block drops one row and reverses instead.
func (f *Formation) Advance(minX, maxX int) (dropped bool) {
	atEdge := false
	f.ForEach(func(a *Alien) {
		if (f.dir == 1 && a.X+alienW-1 >= maxX) || (f.dir == -1 && a.X <= minX) {
			atEdge = true
		}
	})

	if atEdge {
		f.ForEach(func(a *Alien) {
			a.Y++
		})
		f.dir = -f.dir
		return true
	}

	f.ForEach(func(a *Alien) {
		a.X += f.dir
		a.frame = 1 - a.frame
	})
	return false
}

// LowestY returns the bottom row of the live formation, or -1 when
// none remain.
func (f *Formation) LowestY() int {
	lowest := -1
	f.ForEach(func(a *Alien) {
		if a.Y > lowest {
			lowest = a.Y
		}
	})
	return lowest
}

// RandomAlive picks a uniformly random live alien, or nil.
func (f *Formation) RandomAlive(rng *rand.Rand) *Alien {
	if f.alive == 0 {
		return nil
	}
	n := rng.Intn(f.alive)
	var picked *Alien
	f.ForEach(func(a *Alien) {
		if n == 0 && picked == nil {
			picked = a
		}
		n--
	})
	return picked
}

// KillAt destroys the live alien covering the given cell and returns
// its point value. Lower rows are worth more, like the cabinet.
func (f *Formation) KillAt(x, y int) (points int, ok bool) {
	for i := range f.aliens {
		a := &f.aliens[i]
		if !a.Alive || y != a.Y || x < a.X || x >= a.X+alienW {
			continue
		}
		a.Alive = false
		f.alive--
		switch {
		case a.Row == f.rows-1:
			return 30, true
		case a.Row >= f.rows/2:
			return 20, true
		default:
			return 10, true
		}
	}
	return 0, false
}
