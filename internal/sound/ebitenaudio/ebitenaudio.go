// Package ebitenaudio plays sound cues through ebiten's audio context.
package ebitenaudio

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"bigmonkey/internal/sound"
)

type Player struct {
	players map[sound.Cue]*audio.Player
	logger  *log.Logger
}

var _ sound.Player = (*Player)(nil)

// New prepares one in-memory player per cue. ebiten allows a single audio
// context per process, so an existing one is reused.
func New(logger *log.Logger) *Player {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sound.SampleRate)
	}

	p := &Player{
		players: make(map[sound.Cue]*audio.Player),
		logger:  logger,
	}
	for _, c := range sound.Cues() {
		tone, _ := sound.ToneFor(c)
		p.players[c] = ctx.NewPlayerFromBytes(tone.PCM16(sound.SampleRate))
	}
	return p
}

func (p *Player) Play(c sound.Cue) {
	pl, ok := p.players[c]
	if !ok {
		return
	}
	if err := pl.Rewind(); err != nil {
		p.logger.Warn("rewind cue", "cue", c, "err", err)
		return
	}
	pl.Play()
}
