// Package sound plays short feedback tones through the system speaker.
//
// The speaker is optional: when it cannot be opened the Player stays silent
// and callers fall back to the terminal bell.
package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"
)

const (
	SampleRate = beep.SampleRate(44100)

	buzzFreq     = 220.0
	buzzDuration = 60 * time.Millisecond

	chimeLow      = 880.0
	chimeHigh     = 1320.0
	chimeDuration = 90 * time.Millisecond
)

// Player owns the speaker once Init succeeds.
type Player struct {
	ready bool
}

// Init opens the speaker. On failure the player stays silent.
func (p *Player) Init() error {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return err
	}
	p.ready = true
	return nil
}

// Ready reports whether tones will be audible.
func (p *Player) Ready() bool { return p != nil && p.ready }

// Ring plays the short buzz used for rejected input.
func (p *Player) Ring() {
	p.play(Buzz())
}

// Chime plays the rising two-note tone used for an accepted password.
func (p *Player) Chime() {
	p.play(Chime())
}

// Close releases the speaker.
func (p *Player) Close() {
	if p.Ready() {
		speaker.Close()
		p.ready = false
	}
}

func (p *Player) play(s beep.Streamer, err error) {
	if !p.Ready() {
		return
	}
	if err != nil {
		log.Warn().Err(err).Msg("build tone")
		return
	}
	speaker.Play(s)
}

// Tone returns a sine tone of the given frequency and length.
func Tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(SampleRate.N(d), sine), nil
}

// Buzz is the rejected-input tone.
func Buzz() (beep.Streamer, error) {
	return Tone(buzzFreq, buzzDuration)
}

// Chime is the success tone: two rising notes.
func Chime() (beep.Streamer, error) {
	low, err := Tone(chimeLow, chimeDuration)
	if err != nil {
		return nil, err
	}
	high, err := Tone(chimeHigh, chimeDuration)
	if err != nil {
		return nil, err
	}
	return beep.Seq(low, high), nil
}
