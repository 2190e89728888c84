// Command bigmonkey-tty plays Big Monkey in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"bigmonkey/internal/config"
	"bigmonkey/internal/engine"
	"bigmonkey/internal/logging"
	"bigmonkey/internal/loop"
	"bigmonkey/internal/scene"
	"bigmonkey/internal/sound"
	"bigmonkey/internal/sound/beepaudio"
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

	logger, logFile, err := logging.OpenFile(cfg.LogDir, cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("game stopped", "err", err)
		fmt.Fprintln(os.Stderr, err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	var player sound.Player = sound.Mute{}
	if !cfg.Mute {
		bp, err := beepaudio.New(logger)
		if err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer bp.Close()
			player = bp
		}
	}

	sc := scene.New()
	opts := []engine.Option{engine.WithDisplay(sc), engine.WithLogger(logger)}
	if cfg.Seed != 0 {
		opts = append(opts, engine.WithSeed(cfg.Seed))
	}
	eng := engine.New(opts...)
	r := newRenderer(screen)

	l := loop.New(eng, cfg.TickInterval(),
		loop.WithLogger(logger),
		loop.OnStart(func() {
			player.Play(sound.CueStart)
			r.draw(sc)
		}),
		loop.OnTick(func(out engine.Outcome) {
			switch {
			case out == engine.Collected:
				player.Play(sound.CueCollect)
			case out.GameOver():
				player.Play(sound.CueCrash)
			}
			r.draw(sc)
		}),
		loop.OnRefresh(func() { r.draw(sc) }),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go poll(screen, l)
	l.Post(loop.Refresh())

	logger.Info("terminal frontend running", "tps", cfg.TPS)
	return l.Run(ctx)
}
