// Package beepaudio plays sound cues through the beep speaker, for frontends
// that have no ebiten audio context.
package beepaudio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"bigmonkey/internal/sound"
)

const sampleRate = beep.SampleRate(sound.SampleRate)

type Player struct {
	mu     sync.Mutex
	ready  bool
	logger *log.Logger
}

var _ sound.Player = (*Player)(nil)

// New initialises the speaker. A machine without audio is not fatal: the
// error is returned and the Player stays silent.
func New(logger *log.Logger) (*Player, error) {
	p := &Player{logger: logger}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return p, fmt.Errorf("init speaker: %w", err)
	}
	p.ready = true
	return p, nil
}

func (p *Player) Play(c sound.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}

	tone, ok := sound.ToneFor(c)
	if !ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, tone.Freq)
	if err != nil {
		p.logger.Warn("sine tone", "cue", c, "err", err)
		return
	}
	speaker.Play(envelope(beep.Take(sampleRate.N(tone.Duration), sine), tone))
}

// Close stops anything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		speaker.Clear()
		p.ready = false
	}
}

// envelope applies the tone's decay and volume to s.
func envelope(s beep.Streamer, tone sound.Tone) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			at := float64(pos+i) / float64(sampleRate)
			g := math.Exp(-tone.Decay*at) * tone.Volume
			samples[i][0] *= g
			samples[i][1] *= g
		}
		pos += n
		return n, ok
	})
}
