package beepaudio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"bigmonkey/internal/sound"
)

// constant streams full-scale samples forever.
var constant = beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{1, 1}
	}
	return len(samples), true
})

func TestEnvelope(t *testing.T) {
	tone := sound.Tone{Freq: 440, Duration: 50 * time.Millisecond, Decay: 3, Volume: 0.5}
	n := sampleRate.N(tone.Duration)
	s := envelope(beep.Take(n, constant), tone)

	buf := make([][2]float64, 512)
	total := 0
	for {
		k, ok := s.Stream(buf)
		for i := 0; i < k; i++ {
			at := float64(total+i) / float64(sampleRate)
			want := math.Exp(-tone.Decay*at) * tone.Volume
			if math.Abs(buf[i][0]-want) > 1e-9 || buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d = %v, want %f", total+i, buf[i], want)
			}
		}
		total += k
		if !ok || k == 0 {
			break
		}
	}
	if total != n {
		t.Fatalf("streamed %d samples, want %d", total, n)
	}
}

func TestSilentPlayerIgnoresCues(t *testing.T) {
	p := &Player{}
	p.Play(sound.CueCrash)
	p.Close()
}
