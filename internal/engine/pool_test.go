package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func TestPoolFill(t *testing.T) {
	p := NewPool()
	if p.Len() != GridCells {
		t.Fatalf("Len() = %d, want %d", p.Len(), GridCells)
	}
	if GridCells != 95*95 {
		t.Fatalf("GridCells = %d, want %d", GridCells, 95*95)
	}

	in := []Position{{20, 20}, {490, 490}, {20, 490}, {250, 250}, {100, 100}}
	for _, c := range in {
		if !p.Contains(c) {
			t.Errorf("pool should contain %v", c)
		}
	}
	out := []Position{EntryPosition, {15, 20}, {495, 250}, {22, 20}, {250, 10}, {0, 0}}
	for _, c := range out {
		if p.Contains(c) {
			t.Errorf("pool should not contain %v", c)
		}
	}
}

func TestPoolTakePut(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := NewPool()

	c, err := p.Take(rng)
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	if p.Contains(c) {
		t.Fatalf("%v still in pool after Take", c)
	}
	if p.Len() != GridCells-1 {
		t.Fatalf("Len() = %d after Take, want %d", p.Len(), GridCells-1)
	}

	p.Put(c)
	p.Put(c)
	if p.Len() != GridCells {
		t.Fatalf("Len() = %d after double Put, want %d", p.Len(), GridCells)
	}

	p.Put(Position{X: 15, Y: 250})
	p.Put(Position{X: 21, Y: 20})
	if p.Len() != GridCells {
		t.Fatalf("off-grid Put changed the pool: Len() = %d", p.Len())
	}
}

func TestPoolDrainsWithoutRepeats(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	p := NewPool()
	seen := make(map[Position]bool, GridCells)

	for i := 0; i < GridCells; i++ {
		c, err := p.Take(rng)
		if err != nil {
			t.Fatalf("Take #%d: %v", i, err)
		}
		if seen[c] {
			t.Fatalf("Take #%d returned %v twice", i, c)
		}
		if !onGrid(c) {
			t.Fatalf("Take #%d returned off-grid cell %v", i, c)
		}
		seen[c] = true
	}

	if _, err := p.Take(rng); !errors.Is(err, ErrPoolExhausted) {
		t.Fatalf("Take on empty pool: err = %v, want ErrPoolExhausted", err)
	}
}
