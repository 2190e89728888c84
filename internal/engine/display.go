package engine

// Marker identifies the kind of thing a display command refers to.
type Marker int

const (
	MarkerPlayer Marker = iota
	MarkerCollectible
	MarkerObstacle
)

func (m Marker) String() string {
	switch m {
	case MarkerPlayer:
		return "player"
	case MarkerCollectible:
		return "collectible"
	case MarkerObstacle:
		return "obstacle"
	}
	return "unknown"
}

// Display receives rendering commands from the engine. The engine never reads
// anything back, and Place/Remove must be idempotent.
//
// Player and collectible markers always use id 0; obstacles are numbered in
// the order they were dropped.
type Display interface {
	Clear()
	Place(m Marker, id int, at Position)
	Remove(m Marker, id int)
	Scores(score, high int)
	GameOver(cause Outcome)
	Redraw()
}

// Nop is a Display that discards everything.
type Nop struct{}

func (Nop) Clear() {}
func (Nop) Place(Marker, int, Position) {}
func (Nop) Remove(Marker, int) {}
func (Nop) Scores(int, int) {}
func (Nop) GameOver(Outcome) {}
func (Nop) Redraw() {}
