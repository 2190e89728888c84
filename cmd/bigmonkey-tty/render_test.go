package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"bigmonkey/internal/engine"
	"bigmonkey/internal/scene"
)

func TestCellFor(t *testing.T) {
	tests := []struct {
		p      engine.Position
		w, h   int
		wx, wy int
	}{
		{engine.Position{X: 0, Y: 0}, 100, 51, 0, 1},
		{engine.Position{X: 250, Y: 250}, 100, 51, 50, 26},
		{engine.Position{X: 500, Y: 500}, 100, 51, 99, 50},
		{engine.Position{X: 15, Y: 250}, 80, 25, 2, 13},
	}
	for _, tt := range tests {
		x, y := cellFor(tt.p, tt.w, tt.h)
		if x != tt.wx || y != tt.wy {
			t.Errorf("cellFor(%v, %d, %d) = (%d,%d), want (%d,%d)", tt.p, tt.w, tt.h, x, y, tt.wx, tt.wy)
		}
	}
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func row(s tcell.Screen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		c, _, _, _ := s.GetContent(x, y)
		b.WriteRune(c)
	}
	return b.String()
}

func TestDrawRound(t *testing.T) {
	screen := newScreen(t, 100, 51)
	sc := scene.New()
	eng := engine.New(engine.WithSeed(9), engine.WithDisplay(sc))
	if _, err := eng.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	newRenderer(screen).draw(sc)

	if status := row(screen, 0, 100); !strings.Contains(status, "Score: 0  High: 0") {
		t.Fatalf("status line = %q", status)
	}
	px, py := cellFor(sc.Player, 100, 51)
	if c, _, _, _ := screen.GetContent(px, py); c != playerGlyph {
		t.Fatalf("player cell = %q, want %q", c, playerGlyph)
	}
	cx, cy := cellFor(sc.Collectible, 100, 51)
	if cx == px && cy == py {
		return
	}
	if c, _, _, _ := screen.GetContent(cx, cy); c != collectibleGlyph {
		t.Fatalf("collectible cell = %q, want %q", c, collectibleGlyph)
	}
}

func TestDrawTitleMessage(t *testing.T) {
	screen := newScreen(t, 80, 25)
	sc := scene.New()

	newRenderer(screen).draw(sc)

	if got := row(screen, 13, 80); !strings.Contains(got, sc.Message()) {
		t.Fatalf("middle row = %q, want it to contain %q", got, sc.Message())
	}
}

func TestDrawTinyScreen(t *testing.T) {
	screen := newScreen(t, 3, 2)
	sc := scene.New()
	eng := engine.New(engine.WithSeed(1), engine.WithDisplay(sc))
	if _, err := eng.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	newRenderer(screen).draw(sc)
}
