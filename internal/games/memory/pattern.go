// Package memory implements the memory grid game: a pattern is revealed
// briefly, then the player reproduces it cell by cell under a mistake
// budget and a time limit.
package memory

import "fmt"

// Grid is a square matrix of on/off cells indexed as grid[y][x].
type Grid [][]bool

// NewGrid returns an all-off grid with the given side length.
func NewGrid(size int) Grid {
	g := make(Grid, size)
	for y := range g {
		g[y] = make([]bool, size)
	}
	return g
}

// Size returns the side length of the grid.
func (g Grid) Size() int {
	return len(g)
}

// Equal reports per-cell equality over the full grid.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for y := range g {
		if len(g[y]) != len(other[y]) {
			return false
		}
		for x := range g[y] {
			if g[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Count returns the number of on cells.
func (g Grid) Count() int {
	n := 0
	for _, row := range g {
		for _, on := range row {
			if on {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for y := range g {
		c[y] = append([]bool(nil), g[y]...)
	}
	return c
}

// RandSource is the randomness a Generator consumes.
// *math/rand.Rand satisfies it; tests can supply scripted sources.
type RandSource interface {
	Intn(n int) int
}

// Generator produces random sample patterns.
type Generator struct {
	src RandSource
}

// NewGenerator creates a generator drawing from src.
func NewGenerator(src RandSource) *Generator {
	return &Generator{src: src}
}

// Generate returns a size×size grid where each cell is independently on
// with probability 0.5. size must be at least 1.
func (g *Generator) Generate(size int) Grid {
	if size < 1 {
		panic(fmt.Sprintf("memory: grid size must be >= 1, got %d", size))
	}
	grid := NewGrid(size)
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = g.src.Intn(2) == 1
		}
	}
	return grid
}
