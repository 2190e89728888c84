// Package scene keeps the marker table a frontend draws from. It implements
// engine.Display, so the engine writes into it and renderers only read.
package scene

import "bigmonkey/internal/engine"

type Phase int

const (
	Title Phase = iota // no round has started yet
	Playing
	Over
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Over:
		return "over"
	}
	return "title"
}

type Scene struct {
	Player      engine.Position
	Collectible engine.Position
	Score       int
	High        int
	Phase       Phase
	Cause       engine.Outcome // set while Phase is Over

	hasPlayer      bool
	hasCollectible bool
	obstacles      []engine.Position
	present        []bool
	frame          uint64
}

var _ engine.Display = (*Scene)(nil)

func New() *Scene {
	return &Scene{}
}

func (s *Scene) Clear() {
	s.hasPlayer = false
	s.hasCollectible = false
	s.obstacles = s.obstacles[:0]
	s.present = s.present[:0]
	s.Phase = Playing
	s.Cause = engine.Stopped
}

func (s *Scene) Place(m engine.Marker, id int, at engine.Position) {
	switch m {
	case engine.MarkerPlayer:
		s.Player, s.hasPlayer = at, true
	case engine.MarkerCollectible:
		s.Collectible, s.hasCollectible = at, true
	case engine.MarkerObstacle:
		if id < 0 {
			return
		}
		for len(s.obstacles) <= id {
			s.obstacles = append(s.obstacles, engine.Position{})
			s.present = append(s.present, false)
		}
		s.obstacles[id], s.present[id] = at, true
	}
}

func (s *Scene) Remove(m engine.Marker, id int) {
	switch m {
	case engine.MarkerPlayer:
		s.hasPlayer = false
	case engine.MarkerCollectible:
		s.hasCollectible = false
	case engine.MarkerObstacle:
		if id >= 0 && id < len(s.present) {
			s.present[id] = false
		}
	}
}

func (s *Scene) Scores(score, high int) {
	s.Score, s.High = score, high
}

func (s *Scene) GameOver(cause engine.Outcome) {
	s.Phase = Over
	s.Cause = cause
}

// Redraw marks the end of a batch of commands.
func (s *Scene) Redraw() {
	s.frame++
}

// Frame counts Redraw calls; a renderer that only repaints on change can
// compare it with the last frame it drew.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// HasPlayer reports whether the player marker is placed.
func (s *Scene) HasPlayer() bool { return s.hasPlayer }

func (s *Scene) HasCollectible() bool { return s.hasCollectible }

// Obstacles returns the placed obstacles in drop order.
func (s *Scene) Obstacles() []engine.Position {
	out := make([]engine.Position, 0, len(s.obstacles))
	for i, o := range s.obstacles {
		if s.present[i] {
			out = append(out, o)
		}
	}
	return out
}

// Message is the status line shown over the canvas, or "" while playing.
func (s *Scene) Message() string {
	switch s.Phase {
	case Title:
		return "Press Enter or Start to play"
	case Over:
		switch s.Cause {
		case engine.HitObstacle:
			return "Game over: the monkey hit a stone"
		case engine.HitEdge:
			return "Game over: the monkey left the field"
		}
		return "Game over"
	}
	return ""
}
