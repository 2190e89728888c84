package engine

import (
	"errors"
	"math/rand"
)

// ErrPoolExhausted means there was no free cell left to sample. The grid is far
// larger than any reachable obstacle count, so this is a logic error.
var ErrPoolExhausted = errors.New("free-cell pool exhausted")

// Pool is the set of interior grid cells not occupied by the collectible or an
// obstacle. Take and Put are O(1).
type Pool struct {
	cells []Position
	index map[Position]int
}

// GridCells is the number of cells in a full pool.
const GridCells = ((GridMax-GridMin)/Step + 1) * ((GridMax-GridMin)/Step + 1)

func NewPool() *Pool {
	p := &Pool{}
	p.Fill()
	return p
}

// Fill resets the pool to every interior grid cell.
func (p *Pool) Fill() {
	p.cells = make([]Position, 0, GridCells)
	p.index = make(map[Position]int, GridCells)
	for x := GridMin; x <= GridMax; x += Step {
		for y := GridMin; y <= GridMax; y += Step {
			p.index[Position{X: x, Y: y}] = len(p.cells)
			p.cells = append(p.cells, Position{X: x, Y: y})
		}
	}
}

func (p *Pool) Len() int {
	return len(p.cells)
}

func (p *Pool) Contains(c Position) bool {
	_, ok := p.index[c]
	return ok
}

// Take removes and returns a uniformly random free cell.
func (p *Pool) Take(rng *rand.Rand) (Position, error) {
	if len(p.cells) == 0 {
		return Position{}, ErrPoolExhausted
	}
	c := p.cells[rng.Intn(len(p.cells))]
	p.remove(c)
	return c, nil
}

// Put returns a cell to the pool. Cells off the interior grid and cells
// already free are ignored.
func (p *Pool) Put(c Position) {
	if !onGrid(c) || p.Contains(c) {
		return
	}
	p.index[c] = len(p.cells)
	p.cells = append(p.cells, c)
}

func (p *Pool) remove(c Position) {
	i, ok := p.index[c]
	if !ok {
		return
	}
	last := len(p.cells) - 1
	if i != last {
		moved := p.cells[last]
		p.cells[i] = moved
		p.index[moved] = i
	}
	p.cells = p.cells[:last]
	delete(p.index, c)
}

func onGrid(c Position) bool {
	return c.X >= GridMin && c.X <= GridMax && c.Y >= GridMin && c.Y <= GridMax &&
		(c.X-GridMin)%Step == 0 && (c.Y-GridMin)%Step == 0
}
