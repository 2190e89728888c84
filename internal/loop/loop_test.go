package loop

import (
	"context"
	"testing"
	"time"

	"bigmonkey/internal/engine"
)

func runToCompletion(ctx context.Context, t *testing.T, cancel context.CancelFunc, l *Loop) {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("Run did not return")
	}
}

func TestQuitStopsRun(t *testing.T) {
	l := New(engine.New(engine.WithSeed(1)), time.Hour)
	l.Post(Quit())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runToCompletion(ctx, t, cancel, l)
}

func TestCancelStopsRun(t *testing.T) {
	l := New(engine.New(engine.WithSeed(1)), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runToCompletion(ctx, t, cancel, l)
}

func TestEventsAppliedBeforeTick(t *testing.T) {
	eng := engine.New(engine.WithSeed(2))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ticks, starts int
	l := New(eng, time.Millisecond,
		OnTick(func(engine.Outcome) {
			ticks++
			cancel()
		}),
		OnStart(func() { starts++ }),
	)

	l.Post(Start())
	l.Post(Steer(engine.Up))
	l.Post(Steer(engine.Down))
	l.Post(Start())
	l.Post(Steer(engine.Left))
	runToCompletion(ctx, t, cancel, l)

	if ticks != 1 {
		t.Fatalf("ticks = %d, want 1", ticks)
	}
	if starts != 1 {
		t.Fatalf("starts = %d, want 1 (second start must be ignored)", starts)
	}
	r, ok := eng.Round()
	if !ok {
		t.Fatal("no round after start event")
	}
	if r.Heading != engine.Left {
		t.Fatalf("heading = %v, want left", r.Heading)
	}
	if r.Ticks != 1 {
		t.Fatalf("round ticks = %d, want 1", r.Ticks)
	}
}

func TestNoTicksWhileIdle(t *testing.T) {
	eng := engine.New(engine.WithSeed(3))
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	ticked := false
	l := New(eng, time.Millisecond, OnTick(func(engine.Outcome) { ticked = true }))
	runToCompletion(ctx, t, cancel, l)

	if ticked {
		t.Fatal("loop ticked an idle engine")
	}
}

func TestPostNeverBlocks(t *testing.T) {
	l := New(engine.New(engine.WithSeed(4)), time.Hour)
	for i := 0; i < eventBuffer*2; i++ {
		l.Post(Steer(engine.Up))
	}
	if len(l.events) != eventBuffer {
		t.Fatalf("queued %d events, want %d", len(l.events), eventBuffer)
	}
}

func TestRefreshWhileIdle(t *testing.T) {
	eng := engine.New(engine.WithSeed(5))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	refreshed := 0
	l := New(eng, time.Hour, OnRefresh(func() { refreshed++ }))
	l.Post(Refresh())
	l.Post(Refresh())
	l.Post(Quit())
	runToCompletion(ctx, t, cancel, l)

	if refreshed != 2 {
		t.Fatalf("refreshed %d times, want 2", refreshed)
	}
	if eng.State() != engine.Idle {
		t.Fatalf("state = %v, want idle", eng.State())
	}
}
