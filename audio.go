package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/dimshift/sim"
)

const sampleRate = 44100

// Audio synthesizes one short square-wave tone per game event at startup
// and replays it on demand. No audio files ship with the game.
type Audio struct {
	ctx *audio.Context

	step    *audio.Player
	collect *audio.Player
	stomp   *audio.Player
	hurt    *audio.Player
	portal  *audio.Player
	powerup *audio.Player
	jump    *audio.Player
	swap    *audio.Player
}

func NewAudio() *Audio {
	ctx := audio.NewContext(sampleRate)
	return &Audio{
		ctx:     ctx,
		step:    ctx.NewPlayerFromBytes(tone(220, 0.03, 0.12)),
		collect: ctx.NewPlayerFromBytes(tone(880, 0.08, 0.25)),
		stomp:   ctx.NewPlayerFromBytes(tone(160, 0.12, 0.35)),
		hurt:    ctx.NewPlayerFromBytes(tone(110, 0.25, 0.4)),
		portal:  ctx.NewPlayerFromBytes(tone(660, 0.3, 0.3)),
		powerup: ctx.NewPlayerFromBytes(tone(1040, 0.15, 0.3)),
		jump:    ctx.NewPlayerFromBytes(tone(440, 0.06, 0.2)),
		swap:    ctx.NewPlayerFromBytes(tone(520, 0.2, 0.25)),
	}
}

// Play voices one frame's worth of simulation events.
func (a *Audio) Play(ev sim.Events) {
	if a == nil || !ev.Any() {
		return
	}
	if ev.Step {
		replay(a.step)
	}
	if ev.Collect {
		replay(a.collect)
	}
	if ev.EnemyDeath {
		replay(a.stomp)
	}
	if ev.PlayerDeath {
		replay(a.hurt)
	}
	if ev.LevelComplete {
		replay(a.portal)
	}
	if ev.PowerupCollected != "" {
		replay(a.powerup)
	}
}

func (a *Audio) PlayJump() {
	if a != nil {
		replay(a.jump)
	}
}

func (a *Audio) PlaySwitch() {
	if a != nil {
		replay(a.swap)
	}
}

func replay(p *audio.Player) {
	if p == nil {
		return
	}
	_ = p.Rewind()
	p.Play()
}

// tone renders a square wave at freq for dur seconds as 16-bit stereo
// PCM, with a linear fade-out so the cut-off doesn't click.
func tone(freq, dur, vol float64) []byte {
	n := int(dur * sampleRate)
	b := make([]byte, n*4)
	for i := 0; i < n; i++ {
		v := vol
		if math.Sin(2*math.Pi*freq*float64(i)/sampleRate) < 0 {
			v = -vol
		}
		v *= 1 - float64(i)/float64(n)
		s := int16(v * math.MaxInt16)
		b[i*4] = byte(s)
		b[i*4+1] = byte(s >> 8)
		b[i*4+2] = byte(s)
		b[i*4+3] = byte(s >> 8)
	}
	return b
}
