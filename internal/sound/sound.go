// Package sound describes the game's sound cues and synthesises them as raw
// PCM. The ebitenaudio and beepaudio subpackages play them.
package sound

import (
	"math"
	"time"
)

const SampleRate = 44100

type Cue int

const (
	CueStart Cue = iota
	CueCollect
	CueCrash
)

// Tone is a single decaying sine note.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Decay    float64 // envelope is exp(-Decay*t)
	Volume   float64 // 0..1
}

var tones = map[Cue]Tone{
	CueStart:   {Freq: 660, Duration: 120 * time.Millisecond, Decay: 4, Volume: 0.18},
	CueCollect: {Freq: 880, Duration: 100 * time.Millisecond, Decay: 3, Volume: 0.2},
	CueCrash:   {Freq: 220, Duration: 500 * time.Millisecond, Decay: 3, Volume: 0.25},
}

// ToneFor returns the tone played for c.
func ToneFor(c Cue) (Tone, bool) {
	t, ok := tones[c]
	return t, ok
}

// Cues lists every cue, for players that prepare buffers up front.
func Cues() []Cue {
	return []Cue{CueStart, CueCollect, CueCrash}
}

// Samples returns the tone as mono float samples in -1..1.
func (t Tone) Samples(rate int) []float64 {
	n := int(float64(rate) * t.Duration.Seconds())
	out := make([]float64, n)
	for i := range out {
		at := float64(i) / float64(rate)
		env := math.Exp(-t.Decay * at)
		out[i] = math.Sin(2*math.Pi*t.Freq*at) * env * t.Volume
	}
	return out
}

// PCM16 returns the tone as interleaved stereo signed 16-bit little-endian
// PCM, the format ebiten's audio context consumes.
func (t Tone) PCM16(rate int) []byte {
	samples := t.Samples(rate)
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		v := int16(s * math.MaxInt16)
		buf[i*4] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v)
		buf[i*4+3] = byte(v >> 8)
	}
	return buf
}

// Player plays cues without blocking the caller.
type Player interface {
	Play(Cue)
}

// Mute is a Player that plays nothing.
type Mute struct{}

func (Mute) Play(Cue) {}
