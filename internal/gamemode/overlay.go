// Package gamemode draws what sits on top of the canvas between rounds: the
// welcome monkey before the first round and the dizzy monkey after a crash.
package gamemode

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bigmonkey/internal/assets"
	"bigmonkey/internal/engine"
	"bigmonkey/internal/entity"
	"bigmonkey/internal/scene"
)

var (
	colShade = color.RGBA{0x00, 0x00, 0x00, 0x66}
	colText  = color.White
)

type Overlay struct {
	welcome *entity.Marker
	dizzy   *entity.Marker
	face    text.Face
	phase   scene.Phase
	message string
}

func NewOverlay(face text.Face) *Overlay {
	cx, cy := float64(engine.CanvasWidth)/2, float64(engine.CanvasHeight)/2-30

	o := &Overlay{
		welcome: entity.NewMarker(assets.Welcome),
		dizzy:   entity.NewMarker(assets.Dizzy),
		face:    face,
	}
	o.welcome.X, o.welcome.Y = cx, cy
	o.dizzy.X, o.dizzy.Y = cx, cy
	return o
}

// Update follows the scene's phase and advances the active animation.
func (o *Overlay) Update(sc *scene.Scene) {
	if sc.Phase != o.phase {
		o.phase = sc.Phase
		o.welcome.Reset()
		o.dizzy.Reset()
	}
	o.message = sc.Message()

	switch o.phase {
	case scene.Title:
		o.welcome.Update()
	case scene.Over:
		o.dizzy.Update()
	}
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	switch o.phase {
	case scene.Playing:
		return
	case scene.Title:
		o.welcome.Draw(screen)
	case scene.Over:
		vector.DrawFilledRect(screen, 0, 0, engine.CanvasWidth, engine.CanvasHeight, colShade, false)
		o.dizzy.Draw(screen)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(engine.CanvasWidth)/2, float64(engine.CanvasHeight)/2+60)
	op.ColorScale.ScaleWithColor(colText)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, o.message, o.face, op)
}

// DrawDebug prints frame and tick rates in the top-left corner.
func DrawDebug(screen *ebiten.Image, sc *scene.Scene) {
	msg := fmt.Sprintf("TPS %0.1f  FPS %0.1f  frame %d", ebiten.ActualTPS(), ebiten.ActualFPS(), sc.Frame())
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}
