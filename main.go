package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	_ "github.com/ebitengine/hideconsole"
	"github.com/hajimehoshi/ebiten/v2"

	"bigmonkey/internal/config"
	"bigmonkey/internal/engine"
	"bigmonkey/internal/logging"
	"bigmonkey/internal/panel"
)

const (
	ScreenWidth  = engine.CanvasWidth
	ScreenHeight = engine.CanvasHeight + panel.Height
	WindowTitle  = "Big Monkey"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := logging.New(os.Stderr, cfg.Debug)

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	// One Update per engine tick.
	ebiten.SetTPS(cfg.TPS)

	game := NewGame(cfg, logger)
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game stopped", "err", err)
	}
}
