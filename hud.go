package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bigmonkey/internal/panel"
)

var (
	ColButton    = color.RGBA{0x4e, 0x34, 0x2e, 0xff}
	ColButtonOff = color.RGBA{0x45, 0x45, 0x45, 0xff}
	ColEdge      = color.RGBA{0xff, 0xe0, 0x3d, 0xff}
	ColLabel     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColLabelOff  = color.RGBA{0x90, 0x90, 0x90, 0xff}
)

func (g *Game) drawPanel(screen *ebiten.Image) {
	for _, b := range g.panel.Buttons() {
		fill, label := ColButton, ColLabel
		if !g.panel.Enabled(b) {
			fill, label = ColButtonOff, ColLabelOff
		}
		r := b.Rect
		x, y := float32(r.Min.X), float32(r.Min.Y)
		w, h := float32(r.Dx()), float32(r.Dy())
		vector.DrawFilledRect(screen, x, y, w, h, fill, false)
		vector.StrokeRect(screen, x, y, w, h, 1, ColEdge, false)
		g.drawLabel(screen, b.Label, r.Min.Add(r.Max).Div(2), label, text.AlignCenter)
	}

	g.drawLabel(screen, panel.ScoreLabel(g.scene.Score), panel.ScoreAt, ColLabel, text.AlignStart)
	g.drawLabel(screen, panel.HighLabel(g.scene.High), panel.HighAt, ColLabel, text.AlignStart)
}

func (g *Game) drawLabel(screen *ebiten.Image, s string, at image.Point, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, g.face, op)
}
