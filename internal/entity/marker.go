// Package entity holds the animated sprites placed on the canvas.
package entity

import (
	"github.com/hajimehoshi/ebiten/v2"

	"bigmonkey/internal/assets"
	"bigmonkey/internal/engine"
)

// Marker is an animated sprite anchored at its centre.
type Marker struct {
	X, Y  float64
	Scale float64

	frames       []*ebiten.Image
	delays       []int
	currentFrame int
	tickCounter  int
}

func NewMarker(name string) *Marker {
	anim := assets.LoadAnimation(name)
	return &Marker{
		Scale:  1,
		frames: anim.Frames,
		delays: anim.Delays,
	}
}

// MoveTo centres the marker on a canvas position.
func (m *Marker) MoveTo(p engine.Position) {
	m.X, m.Y = float64(p.X), float64(p.Y)
}

// Reset rewinds the animation to its first frame.
func (m *Marker) Reset() {
	m.currentFrame, m.tickCounter = 0, 0
}

func (m *Marker) Update() {
	if len(m.frames) < 2 {
		return
	}

	m.tickCounter++
	if m.tickCounter >= m.delays[m.currentFrame] {
		m.tickCounter = 0
		m.currentFrame = (m.currentFrame + 1) % len(m.frames)
	}
}

func (m *Marker) Draw(screen *ebiten.Image) {
	if len(m.frames) == 0 {
		return
	}

	img := m.frames[m.currentFrame]
	b := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(m.Scale, m.Scale)
	op.GeoM.Translate(m.X, m.Y)
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(img, op)
}
