// Package loop runs an engine on a single goroutine: one tick per interval,
// with input events applied between ticks.
package loop

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"bigmonkey/internal/engine"
)

// EventKind says what a posted Event asks for.
type EventKind int

const (
	EventStart EventKind = iota
	EventSteer
	EventQuit
	EventRefresh // redraw without ticking, e.g. after a resize
)

type Event struct {
	Kind EventKind
	Dir  engine.Direction // EventSteer only
}

func Start() Event { return Event{Kind: EventStart} }

func Quit() Event { return Event{Kind: EventQuit} }

func Steer(d engine.Direction) Event { return Event{Kind: EventSteer, Dir: d} }

func Refresh() Event { return Event{Kind: EventRefresh} }

const eventBuffer = 64

// Loop is the repeating tick task. Only the goroutine inside Run touches the
// engine.
type Loop struct {
	eng       *engine.Engine
	interval  time.Duration
	events    chan Event
	onTick    func(engine.Outcome)
	onStart   func()
	onRefresh func()
	logger    *log.Logger
}

type Option func(*Loop)

// OnTick is called after every tick that ran while a round was live.
func OnTick(fn func(engine.Outcome)) Option {
	return func(l *Loop) { l.onTick = fn }
}

// OnStart is called after a start event actually began a round.
func OnStart(fn func()) Option {
	return func(l *Loop) { l.onStart = fn }
}

// OnRefresh is called for refresh events, on the loop goroutine.
func OnRefresh(fn func()) Option {
	return func(l *Loop) { l.onRefresh = fn }
}

func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

func New(eng *engine.Engine, interval time.Duration, opts ...Option) *Loop {
	if interval <= 0 {
		interval = engine.TickInterval
	}
	l := &Loop{
		eng:      eng,
		interval: interval,
		events:   make(chan Event, eventBuffer),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	return l
}

// Post queues an event. It is safe to call from any goroutine and never
// blocks; if the queue is full the event is dropped.
func (l *Loop) Post(ev Event) {
	select {
	case l.events <- ev:
	default:
		l.logger.Warn("input queue full, event dropped", "kind", ev.Kind)
	}
}

// Run blocks until a quit event, context cancellation or a fatal engine
// error.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-l.events:
			quit, err := l.apply(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}

		case <-ticker.C:
			if ctx.Err() != nil {
				return nil
			}
			quit, err := l.drain()
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			if err := l.tick(); err != nil {
				return err
			}
		}
	}
}

// drain applies everything already queued so the tick sees the latest input.
func (l *Loop) drain() (bool, error) {
	for {
		select {
		case ev := <-l.events:
			quit, err := l.apply(ev)
			if err != nil || quit {
				return quit, err
			}
		default:
			return false, nil
		}
	}
}

func (l *Loop) apply(ev Event) (bool, error) {
	switch ev.Kind {
	case EventQuit:
		l.logger.Debug("quit requested")
		return true, nil
	case EventSteer:
		l.eng.Steer(ev.Dir)
	case EventStart:
		ok, err := l.eng.Start()
		if err != nil {
			return false, fmt.Errorf("start round: %w", err)
		}
		if ok && l.onStart != nil {
			l.onStart()
		}
	case EventRefresh:
		if l.onRefresh != nil {
			l.onRefresh()
		}
	}
	return false, nil
}

func (l *Loop) tick() error {
	if l.eng.State() != engine.Running {
		return nil
	}
	out, err := l.eng.Tick()
	if err != nil {
		return fmt.Errorf("tick: %w", err)
	}
	if l.onTick != nil {
		l.onTick(out)
	}
	return nil
}
