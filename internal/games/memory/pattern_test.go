package memory

import (
	"math/rand"
	"testing"
)

// constSource always yields the same value, giving all-on (1) or all-off (0) grids.
type constSource int

func (c constSource) Intn(n int) int { return int(c) % n }

// seqSource replays a fixed sequence of values, cycling when exhausted.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func TestGenerateShape(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(1)))

	for _, size := range []int{1, 4, 8, 13} {
		g := gen.Generate(size)
		if g.Size() != size {
			t.Fatalf("Generate(%d) has %d rows", size, g.Size())
		}
		for y, row := range g {
			if len(row) != size {
				t.Errorf("Generate(%d) row %d has %d cells", size, y, len(row))
			}
		}
	}
}

func TestGenerateUsesSource(t *testing.T) {
	if got := NewGenerator(constSource(1)).Generate(4).Count(); got != 16 {
		t.Errorf("all-on source produced %d on cells, want 16", got)
	}
	if got := NewGenerator(constSource(0)).Generate(4).Count(); got != 0 {
		t.Errorf("all-off source produced %d on cells, want 0", got)
	}

	// Row-major fill order
	g := NewGenerator(&seqSource{vals: []int{1, 0, 0, 1}}).Generate(2)
	want := Grid{{true, false}, {false, true}}
	if !g.Equal(want) {
		t.Errorf("Generate = %v, want %v", g, want)
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewSource(42))).Generate(8)
	b := NewGenerator(rand.New(rand.NewSource(42))).Generate(8)
	if !a.Equal(b) {
		t.Error("same seed should produce the same pattern")
	}
}

func TestGenerateRoughlyHalfOn(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(7)))

	on, total := 0, 0
	for i := 0; i < 200; i++ {
		on += gen.Generate(8).Count()
		total += 64
	}
	ratio := float64(on) / float64(total)
	if ratio < 0.45 || ratio > 0.55 {
		t.Errorf("on ratio = %.3f, expected close to 0.5", ratio)
	}
}

func TestGenerateRejectsBadSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Generate(0) should panic")
		}
	}()
	NewGenerator(constSource(1)).Generate(0)
}

func TestGridEqualAndClone(t *testing.T) {
	a := Grid{{true, false}, {false, false}}
	b := a.Clone()
	if !a.Equal(b) {
		t.Fatal("clone should equal original")
	}

	b[1][1] = true
	if a.Equal(b) {
		t.Error("grids differing in one cell should not be equal")
	}
	if a[1][1] {
		t.Error("mutating a clone must not touch the original")
	}

	if a.Equal(NewGrid(3)) {
		t.Error("grids of different size should not be equal")
	}
}
