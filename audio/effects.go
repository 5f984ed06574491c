package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
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
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
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

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes a streamer with linear attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if rem := e.totalSamples - e.position; rem < e.releaseSamples && e.releaseSamples > 0 {
			vol = float64(rem) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// scaled applies a fixed volume factor
type scaled struct {
	streamer beep.Streamer
	factor   float64
}

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	return &scaled{streamer: s, factor: vol}
}

func (v *scaled) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = v.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= v.factor
		samples[i][1] *= v.factor
	}
	return n, ok
}

func (v *scaled) Err() error { return v.streamer.Err() }

// CreateClickSound is the brief single-click blip
func CreateClickSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(880, 40*time.Millisecond, WaveSine, rate)
	env := NewEnvelope(osc, 40*time.Millisecond, 2*time.Millisecond, 20*time.Millisecond, rate)
	return newVolume(env, 0.3)
}

// CreateOpenSound is the two-tone bell played when a detail view opens
func CreateOpenSound(rate beep.SampleRate) beep.Streamer {
	low := NewEnvelope(NewOscillator(523.25, 180*time.Millisecond, WaveSine, rate),
		180*time.Millisecond, 5*time.Millisecond, 120*time.Millisecond, rate)
	high := NewEnvelope(NewOscillator(783.99, 180*time.Millisecond, WaveSine, rate),
		180*time.Millisecond, 5*time.Millisecond, 120*time.Millisecond, rate)
	return newVolume(beep.Mix(low, high), 0.25)
}

// CreateStepSound is the short carousel paging whoosh
func CreateStepSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(220, 90*time.Millisecond, WaveSaw, rate)
	env := NewEnvelope(osc, 90*time.Millisecond, 10*time.Millisecond, 60*time.Millisecond, rate)
	return newVolume(env, 0.2)
}
