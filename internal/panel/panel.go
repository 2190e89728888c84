// Package panel lays out the control strip below the canvas and resolves
// clicks and touches on it. Drawing lives with the frontend.
package panel

import (
	"fmt"
	"image"

	"bigmonkey/internal/engine"
)

// Bounds of the control strip in screen coordinates.
const (
	Top    = engine.CanvasHeight
	Height = 100
	Width  = engine.CanvasWidth
)

type Action int

const (
	None Action = iota
	Start
	Quit
	SteerUp
	SteerRight
	SteerDown
	SteerLeft
)

func (a Action) String() string {
	switch a {
	case Start:
		return "start"
	case Quit:
		return "quit"
	case SteerUp:
		return "up"
	case SteerRight:
		return "right"
	case SteerDown:
		return "down"
	case SteerLeft:
		return "left"
	}
	return "none"
}

// Direction returns the heading for a steering action.
func (a Action) Direction() (engine.Direction, bool) {
	switch a {
	case SteerUp:
		return engine.Up, true
	case SteerRight:
		return engine.Right, true
	case SteerDown:
		return engine.Down, true
	case SteerLeft:
		return engine.Left, true
	}
	return 0, false
}

type Button struct {
	Action Action
	Label  string
	Rect   image.Rectangle
}

var buttons = []Button{
	{Start, "Start", image.Rect(10, Top+25, 100, Top+75)},
	{SteerUp, "^", image.Rect(180, Top+6, 220, Top+34)},
	{SteerLeft, "<", image.Rect(135, Top+36, 175, Top+64)},
	{SteerRight, ">", image.Rect(225, Top+36, 265, Top+64)},
	{SteerDown, "v", image.Rect(180, Top+66, 220, Top+94)},
	{Quit, "Quit", image.Rect(400, Top+25, 490, Top+75)},
}

// Panel tracks whether a round is running, which disables Start.
type Panel struct {
	Running bool
}

func New() *Panel {
	return &Panel{}
}

func (p *Panel) Buttons() []Button {
	return buttons
}

func (p *Panel) Enabled(b Button) bool {
	return !(b.Action == Start && p.Running)
}

// HitTest returns the action of the enabled button under (x, y), or None.
func (p *Panel) HitTest(x, y int) Action {
	pt := image.Pt(x, y)
	for _, b := range buttons {
		if pt.In(b.Rect) && p.Enabled(b) {
			return b.Action
		}
	}
	return None
}

// Score labels, drawn at ScoreAt and HighAt.
var (
	ScoreAt = image.Pt(290, Top+40)
	HighAt  = image.Pt(290, Top+64)
)

func ScoreLabel(score int) string { return fmt.Sprintf("Score: %d", score) }

func HighLabel(high int) string { return fmt.Sprintf("High:  %d", high) }
