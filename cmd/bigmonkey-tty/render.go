package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"bigmonkey/internal/engine"
	"bigmonkey/internal/scene"
)

var (
	fieldStyle       = tcell.StyleDefault.Background(tcell.NewRGBColor(0x2e, 0x7d, 0x32))
	playerStyle      = fieldStyle.Foreground(tcell.NewRGBColor(0x8d, 0x55, 0x24)).Bold(true)
	collectibleStyle = fieldStyle.Foreground(tcell.ColorYellow).Bold(true)
	obstacleStyle    = fieldStyle.Foreground(tcell.NewRGBColor(0x9e, 0x9e, 0x9e))
	statusStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	messageStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
)

const (
	playerGlyph      = 'M'
	collectibleGlyph = ')'
	obstacleGlyph    = 'o'
	helpText         = "arrows/wasd steer  Enter start  q quit"
)

type renderer struct {
	screen tcell.Screen
}

func newRenderer(screen tcell.Screen) *renderer {
	return &renderer{screen: screen}
}

// draw paints the whole frame: a status line on row 0 and the field below.
func (r *renderer) draw(sc *scene.Scene) {
	s := r.screen
	w, h := s.Size()
	s.Clear()

	for y := 1; y < h; y++ {
		for x := 0; x < w; x++ {
			s.SetContent(x, y, ' ', nil, fieldStyle)
		}
	}

	for _, o := range sc.Obstacles() {
		x, y := cellFor(o, w, h)
		s.SetContent(x, y, obstacleGlyph, nil, obstacleStyle)
	}
	if sc.HasCollectible() {
		x, y := cellFor(sc.Collectible, w, h)
		s.SetContent(x, y, collectibleGlyph, nil, collectibleStyle)
	}
	if sc.HasPlayer() {
		x, y := cellFor(sc.Player, w, h)
		s.SetContent(x, y, playerGlyph, nil, playerStyle)
	}

	status := fmt.Sprintf(" Score: %d  High: %d", sc.Score, sc.High)
	drawText(s, 0, 0, w, status, statusStyle)
	if len(status)+len(helpText)+2 < w {
		drawText(s, w-len(helpText)-1, 0, w, helpText, statusStyle)
	}

	if msg := sc.Message(); msg != "" {
		msg = " " + msg + " "
		drawText(s, (w-len(msg))/2, 1+(h-1)/2, w, msg, messageStyle)
	}
	s.Show()
}

// cellFor maps a canvas position onto the terminal grid below the status
// line.
func cellFor(p engine.Position, w, h int) (int, int) {
	rows := h - 1
	x := p.X * w / engine.CanvasWidth
	y := p.Y * rows / engine.CanvasHeight
	return clamp(x, 0, w-1), 1 + clamp(y, 0, rows-1)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func drawText(s tcell.Screen, x, y, w int, str string, style tcell.Style) {
	if x < 0 {
		x = 0
	}
	for _, c := range str {
		if x >= w {
			return
		}
		s.SetContent(x, y, c, nil, style)
		x++
	}
}
