// Package sound plays short tones for game events.  Audio is optional:
// a nil or uninitialised Player is a silent no-op, and a failure to open
// the audio device never stops the game.
package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is used for every generated tone.
const SampleRate = beep.SampleRate(44100)

// Cue is a single sine tone.
type Cue struct {
	Freq     float64
	Duration time.Duration
}

// Game event cues.
var (
	CueStart = Cue{Freq: 660, Duration: 80 * time.Millisecond}
	CueFood  = Cue{Freq: 880, Duration: 50 * time.Millisecond}
	CueLost  = Cue{Freq: 220, Duration: 400 * time.Millisecond}
)

// Player owns the speaker.
type Player struct {
	ready bool
}

// Open initialises the speaker.  On error the returned Player is still
// usable and silent.
func Open() (*Player, error) {
	p := &Player{}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return p, err
	}
	p.ready = true
	return p, nil
}

// Tone returns a streamer for c that ends after c.Duration.
func Tone(c Cue) (beep.Streamer, error) {
	sine, err := generators.SineTone(SampleRate, c.Freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(SampleRate.N(c.Duration), sine), nil
}

// Play starts c and returns immediately.
func (p *Player) Play(c Cue) {
	if p == nil || !p.ready {
		return
	}
	tone, err := Tone(c)
	if err != nil {
		return
	}
	speaker.Play(tone)
}

// PlayAndWait plays c and waits until it finishes or max elapses, for
// cues that precede process exit.
func (p *Player) PlayAndWait(c Cue, max time.Duration) {
	if p == nil || !p.ready {
		return
	}
	tone, err := Tone(c)
	if err != nil {
		return
	}
	done := make(chan struct{})
	speaker.Play(beep.Seq(tone, beep.Callback(func() { close(done) })))
	select {
	case <-done:
	case <-time.After(max):
	}
}

// Close releases the speaker.
func (p *Player) Close() {
	if p == nil || !p.ready {
		return
	}
	speaker.Close()
	p.ready = false
}
