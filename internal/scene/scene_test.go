package scene

import (
	"testing"

	"bigmonkey/internal/engine"
)

func TestSceneFollowsEngine(t *testing.T) {
	s := New()
	if s.Phase != Title || s.Message() == "" {
		t.Fatalf("new scene: phase %v, message %q", s.Phase, s.Message())
	}

	e := engine.New(engine.WithSeed(1), engine.WithDisplay(s))
	if _, err := e.Start(); err != nil {
		t.Fatal(err)
	}
	r, _ := e.Round()

	if s.Phase != Playing || s.Message() != "" {
		t.Fatalf("after start: phase %v, message %q", s.Phase, s.Message())
	}
	if !s.HasPlayer() || s.Player != engine.EntryPosition {
		t.Fatalf("player = %v (placed %v)", s.Player, s.HasPlayer())
	}
	if !s.HasCollectible() || s.Collectible != r.Collectible {
		t.Fatalf("collectible = %v, want %v", s.Collectible, r.Collectible)
	}
	if s.Frame() != 1 {
		t.Fatalf("Frame() = %d, want 1", s.Frame())
	}

	for i := 0; i < 500; i++ {
		out, err := e.Tick()
		if err != nil {
			t.Fatal(err)
		}
		if out.GameOver() {
			break
		}
	}

	r, _ = e.Round()
	if s.Phase != Over || s.Cause != engine.HitEdge && s.Cause != engine.HitObstacle {
		t.Fatalf("after 500 ticks: phase %v, cause %v", s.Phase, s.Cause)
	}
	if s.Player != r.Player || s.Score != r.Score || len(s.Obstacles()) != len(r.Obstacles) {
		t.Fatalf("scene out of sync: %v/%v score %d/%d obstacles %d/%d",
			s.Player, r.Player, s.Score, r.Score, len(s.Obstacles()), len(r.Obstacles))
	}
}

func TestObstacleMarkers(t *testing.T) {
	s := New()
	s.Place(engine.MarkerObstacle, 2, engine.Position{X: 30, Y: 30})
	s.Place(engine.MarkerObstacle, 0, engine.Position{X: 20, Y: 20})
	s.Place(engine.MarkerObstacle, 0, engine.Position{X: 20, Y: 20})
	s.Place(engine.MarkerObstacle, -1, engine.Position{X: 99, Y: 99})

	got := s.Obstacles()
	if len(got) != 2 || got[0] != (engine.Position{X: 20, Y: 20}) || got[1] != (engine.Position{X: 30, Y: 30}) {
		t.Fatalf("Obstacles() = %v", got)
	}

	s.Remove(engine.MarkerObstacle, 0)
	s.Remove(engine.MarkerObstacle, 0)
	s.Remove(engine.MarkerObstacle, 7)
	if got := s.Obstacles(); len(got) != 1 {
		t.Fatalf("after remove: %v", got)
	}

	s.Clear()
	if len(s.Obstacles()) != 0 || s.HasPlayer() || s.HasCollectible() {
		t.Fatal("Clear left markers behind")
	}
}

func TestMessages(t *testing.T) {
	tests := []struct {
		cause engine.Outcome
		want  string
	}{
		{engine.HitObstacle, "Game over: the monkey hit a stone"},
		{engine.HitEdge, "Game over: the monkey left the field"},
		{engine.Stopped, "Game over"},
	}
	for _, tt := range tests {
		s := New()
		s.Clear()
		s.GameOver(tt.cause)
		if got := s.Message(); got != tt.want {
			t.Errorf("Message() for %v = %q, want %q", tt.cause, got, tt.want)
		}
	}
}
