package main

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"glowsnake/internal/snake"
)

const sampleRate = 44100

type sounds struct {
	start *audio.Player
	eat   *audio.Player
	crash *audio.Player
}

func newSounds(ctx *audio.Context) *sounds {
	return &sounds{
		start: ctx.NewPlayerFromBytes(beep(660, 0.15)),
		eat:   ctx.NewPlayerFromBytes(beep(880, 0.1)),
		crash: ctx.NewPlayerFromBytes(beep(220, 0.4)),
	}
}

// play is a no-op on a nil receiver so the game runs silent without audio.
func (s *sounds) play(ev snake.Events) {
	if s == nil {
		return
	}
	for _, p := range s.cues(ev) {
		replay(p)
	}
}

func (s *sounds) cues(ev snake.Events) []*audio.Player {
	var out []*audio.Player
	if ev.Started {
		out = append(out, s.start)
	}
	if ev.Collided {
		out = append(out, s.crash)
	}
	if ev.Ate {
		out = append(out, s.eat)
	}
	return out
}

func replay(p *audio.Player) {
	if err := p.Rewind(); err != nil {
		log.Printf("rewind sound: %v", err)
		return
	}
	p.Play()
}

// beep renders a decaying sine tone as 16-bit little-endian stereo PCM.
func beep(freq, durSec float64) []byte {
	n := int(sampleRate * durSec)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		v := int16(math.Sin(2*math.Pi*freq*t) * 4000 * math.Exp(-3*t))
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}
