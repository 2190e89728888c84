package main

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"bigmonkey/internal/assets"
	"bigmonkey/internal/config"
	"bigmonkey/internal/engine"
	"bigmonkey/internal/entity"
	"bigmonkey/internal/gamemode"
	"bigmonkey/internal/panel"
	"bigmonkey/internal/scene"
	"bigmonkey/internal/sound"
	"bigmonkey/internal/sound/ebitenaudio"
)

var (
	ColField = color.RGBA{0x2e, 0x7d, 0x32, 0xff}
	ColPanel = color.RGBA{0x2b, 0x2b, 0x2b, 0xff}
)

// keyActions is checked in order, so simultaneous presses resolve the same
// way every frame.
var keyActions = []struct {
	key    ebiten.Key
	action panel.Action
}{
	{ebiten.KeyEnter, panel.Start},
	{ebiten.KeyNumpadEnter, panel.Start},
	{ebiten.KeyArrowUp, panel.SteerUp},
	{ebiten.KeyArrowRight, panel.SteerRight},
	{ebiten.KeyArrowDown, panel.SteerDown},
	{ebiten.KeyArrowLeft, panel.SteerLeft},
	{ebiten.KeyEscape, panel.Quit},
}

// Game holds global state
type Game struct {
	eng     *engine.Engine
	scene   *scene.Scene
	panel   *panel.Panel
	overlay *gamemode.Overlay
	sound   sound.Player
	logger  *log.Logger
	debug   bool

	face        text.Face
	player      *entity.Marker
	collectible *entity.Marker
	stone       *entity.Marker
	touchIDs    []ebiten.TouchID
}

func NewGame(cfg config.Config, logger *log.Logger) *Game {
	sc := scene.New()
	opts := []engine.Option{engine.WithDisplay(sc), engine.WithLogger(logger)}
	if cfg.Seed != 0 {
		opts = append(opts, engine.WithSeed(cfg.Seed))
	}

	var player sound.Player = sound.Mute{}
	if !cfg.Mute {
		player = ebitenaudio.New(logger)
	}

	face := text.NewGoXFace(basicfont.Face7x13)
	return &Game{
		eng:         engine.New(opts...),
		scene:       sc,
		panel:       panel.New(),
		overlay:     gamemode.NewOverlay(face),
		sound:       player,
		logger:      logger,
		debug:       cfg.Debug,
		face:        face,
		player:      entity.NewMarker(assets.Monkey),
		collectible: entity.NewMarker(assets.Banana),
		stone:       entity.NewMarker(assets.Stone),
	}
}

// Update: input first, then one engine tick.
func (g *Game) Update() error {
	for _, a := range g.actions() {
		if err := g.apply(a); err != nil {
			return err
		}
	}

	if g.eng.State() == engine.Running {
		out, err := g.eng.Tick()
		if err != nil {
			return fmt.Errorf("tick: %w", err)
		}
		switch {
		case out == engine.Collected:
			g.sound.Play(sound.CueCollect)
		case out.GameOver():
			g.sound.Play(sound.CueCrash)
		}
	}

	g.panel.Running = g.eng.State() == engine.Running
	g.player.Update()
	g.overlay.Update(g.scene)
	return nil
}

// actions collects this frame's key presses, clicks and taps.
func (g *Game) actions() []panel.Action {
	var acts []panel.Action
	for _, k := range keyActions {
		if inpututil.IsKeyJustPressed(k.key) {
			acts = append(acts, k.action)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if a := g.panel.HitTest(x, y); a != panel.None {
			acts = append(acts, a)
		}
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		if a := g.panel.HitTest(x, y); a != panel.None {
			acts = append(acts, a)
		}
	}
	return acts
}

func (g *Game) apply(a panel.Action) error {
	switch a {
	case panel.Quit:
		g.logger.Info("quit requested")
		return ebiten.Termination
	case panel.Start:
		ok, err := g.eng.Start()
		if err != nil {
			return fmt.Errorf("start round: %w", err)
		}
		if ok {
			g.sound.Play(sound.CueStart)
		}
	default:
		if d, ok := a.Direction(); ok {
			g.eng.Steer(d)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColPanel)
	vector.DrawFilledRect(screen, 0, 0, engine.CanvasWidth, engine.CanvasHeight, ColField, false)

	for _, o := range g.scene.Obstacles() {
		g.stone.MoveTo(o)
		g.stone.Draw(screen)
	}
	if g.scene.HasCollectible() {
		g.collectible.MoveTo(g.scene.Collectible)
		g.collectible.Draw(screen)
	}
	if g.scene.HasPlayer() {
		g.player.MoveTo(g.scene.Player)
		g.player.Draw(screen)
	}

	g.overlay.Draw(screen)
	g.drawPanel(screen)

	if g.debug {
		gamemode.DrawDebug(screen, g.scene)
	}
}

// Layout: fixed logical size, the window is not resizable.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
