package main

import (
	"github.com/gdamore/tcell/v2"

	"bigmonkey/internal/engine"
	"bigmonkey/internal/loop"
)

// poll forwards terminal events to the loop until the screen is finalised.
func poll(screen tcell.Screen, l *loop.Loop) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
			l.Post(loop.Refresh())
		case *tcell.EventKey:
			if e, ok := keyEvent(ev); ok {
				l.Post(e)
			}
		}
	}
}

func keyEvent(ev *tcell.EventKey) (loop.Event, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return loop.Steer(engine.Up), true
	case tcell.KeyRight:
		return loop.Steer(engine.Right), true
	case tcell.KeyDown:
		return loop.Steer(engine.Down), true
	case tcell.KeyLeft:
		return loop.Steer(engine.Left), true
	case tcell.KeyEnter:
		return loop.Start(), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return loop.Quit(), true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return loop.Steer(engine.Up), true
		case 'd', 'D':
			return loop.Steer(engine.Right), true
		case 's', 'S':
			return loop.Steer(engine.Down), true
		case 'a', 'A':
			return loop.Steer(engine.Left), true
		case 'q', 'Q':
			return loop.Quit(), true
		}
	}
	return loop.Event{}, false
}
