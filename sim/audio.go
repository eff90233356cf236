package sim

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Audio plays short sine cues on controller events so mode changes are
// audible while watching the wireframe. Construction may fail on hosts
// without an audio device; the simulator then runs silently.
type Audio struct {
	sr    beep.SampleRate
	ready bool
	mute  bool
}

// NewAudio initializes the speaker. mute produces a no-op player without
// touching the audio device.
func NewAudio(mute bool) *Audio {
	a := &Audio{sr: beep.SampleRate(44100), mute: mute}
	if mute {
		return a
	}
	if err := speaker.Init(a.sr, a.sr.N(time.Second/10)); err != nil {
		return a
	}
	a.ready = true
	return a
}

// ModeSwitch plays the high cue used when auto-pilot engages or breaks.
func (a *Audio) ModeSwitch() {
	a.tone(880, 60*time.Millisecond)
}

// CoastStart plays the low cue used when a release starts coasting.
func (a *Audio) CoastStart() {
	a.tone(440, 50*time.Millisecond)
}

func (a *Audio) tone(freq float64, d time.Duration) {
	if !a.ready || a.mute {
		return
	}
	s, err := generators.SineTone(a.sr, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(a.sr.N(d), s))
}

// Close releases the audio device.
func (a *Audio) Close() {
	if a.ready {
		speaker.Close()
	}
}
