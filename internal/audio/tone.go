// Package audio plays short sound cues for moves and rotations.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// tone generates a fixed-length wave with a linear fade-out.
type tone struct {
	freq     float64
	phase    float64
	wave     WaveType
	rate     beep.SampleRate
	position int
	duration int
}

// NewTone creates a streamer that plays a single note for the given duration.
func NewTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		wave:     wave,
		rate:     rate,
		duration: rate.N(duration),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		}

		fade := 1 - float64(t.position)/float64(t.duration)
		samples[i][0] = val * fade
		samples[i][1] = val * fade

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// withVolume scales a streamer; vol <= 0 silences it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// MoveCue is a rising two-note blip played after a successful step.
func MoveCue(rate beep.SampleRate, vol float64) beep.Streamer {
	return withVolume(beep.Seq(
		NewTone(520, 40*time.Millisecond, WaveSine, rate),
		NewTone(780, 60*time.Millisecond, WaveSine, rate),
	), vol)
}

// RotateCue is a short square-wave click played when a tile turns.
func RotateCue(rate beep.SampleRate, vol float64) beep.Streamer {
	return withVolume(NewTone(1200, 25*time.Millisecond, WaveSquare, rate), vol)
}
