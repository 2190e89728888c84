package engine

import (
	"fmt"
	"time"
)

// Playfield geometry and timing.
const (
	CanvasWidth  = 500
	CanvasHeight = 500

	// Step is both the grid pitch and the distance the player moves per tick.
	Step = 5

	// Interior grid, inclusive on both ends.
	GridMin = 20
	GridMax = 490

	// The round ends once the player is at or past either edge line.
	EdgeLow  = 10
	EdgeHigh = 490

	CollectReach  = 20
	ObstacleReach = 15

	TickInterval = 10 * time.Millisecond
)

// EntryPosition is where the player appears at the start of every round.
var EntryPosition = Position{X: 15, Y: 250}

// DefaultDirection is the heading at the start of every round.
const DefaultDirection = Right

type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p displaced by v.
func (p Position) Add(v Vector) Position {
	return Position{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Near reports whether p lies strictly inside the box of half-size reach
// centred on c.
func (p Position) Near(c Position, reach int) bool {
	return c.X-reach < p.X && p.X < c.X+reach &&
		c.Y-reach < p.Y && p.Y < c.Y+reach
}

// OffField reports whether p sits on or beyond the boundary lines.
func (p Position) OffField() bool {
	return p.X <= EdgeLow || p.Y <= EdgeLow || p.X >= EdgeHigh || p.Y >= EdgeHigh
}

type Vector struct {
	DX, DY int
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Vector returns the per-tick displacement for d.
func (d Direction) Vector() Vector {
	switch d {
	case Up:
		return Vector{DY: -Step}
	case Down:
		return Vector{DY: Step}
	case Left:
		return Vector{DX: -Step}
	default:
		return Vector{DX: Step}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "unknown"
}
