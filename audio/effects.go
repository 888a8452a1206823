package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/grid-snake/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	sweep    float64 // frequency change per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweepOscillator(freq, 0, duration, wave, rate)
}

// NewSweepOscillator creates an oscillator whose frequency moves by sweep Hz per second
func NewSweepOscillator(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		if freq < 0 {
			freq = 0
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	releaseStart   int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope fades the last release of a duration-long stream to silence
func NewEnvelope(s beep.Streamer, duration, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	rel := min(rate.N(release), total)
	return &envelope{
		streamer:       s,
		releaseStart:   total - rel,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position >= e.releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume, math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateEatSound generates a short rising two-note chirp
func CreateEatSound(rate beep.SampleRate, vol float64) beep.Streamer {
	half := constants.EatSoundDuration / 2
	first := NewEnvelope(NewOscillator(constants.EatSoundFreq, half, WaveSine, rate), half, half/4, rate)
	second := NewEnvelope(NewOscillator(constants.EatSoundFreq*1.5, half, WaveSine, rate), half, half/2, rate)
	return newVolume(beep.Seq(first, second), vol)
}

// CreateGameOverSound generates a falling saw buzz
func CreateGameOverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := constants.GameOverSoundDuration
	sweep := -constants.GameOverSoundFreq / 2 / d.Seconds()
	osc := NewSweepOscillator(constants.GameOverSoundFreq, sweep, d, WaveSaw, rate)
	return newVolume(NewEnvelope(osc, d, d/2, rate), vol*0.5)
}
