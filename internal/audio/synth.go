package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

func waveSample(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	}
	return 0
}

// oscillator generates a fixed-length raw wave
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
			return i, i > 0
		}

		val := waveSample(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
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
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
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
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear volume in [0, 1]
// math.Log2(0) is -Inf, so 0 maps to a silent stream
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateGunshotSound generates a short noise crack over a low thump
func CreateGunshotSound(rate beep.SampleRate, volume float64) beep.Streamer {
	const duration = 120 * time.Millisecond

	crack := NewEnvelope(NewOscillator(0, duration, WaveNoise, rate), duration, 2*time.Millisecond, 100*time.Millisecond, rate)
	thump := NewEnvelope(NewOscillator(70, 80*time.Millisecond, WaveSquare, rate), 80*time.Millisecond, time.Millisecond, 60*time.Millisecond, rate)

	return newVolume(beep.Mix(newVolume(crack, 0.7), newVolume(thump, 0.3)), volume)
}

// musicGenerator loops a minor-key bass line forever
type musicGenerator struct {
	notes       []float64
	noteSamples int
	position    int
	note        int
	phase       float64
	rate        beep.SampleRate
}

// NewMusicGenerator creates an endless background track
func NewMusicGenerator(rate beep.SampleRate) beep.Streamer {
	return &musicGenerator{
		// A2 A2 C3 A2 G2 G2 E2 G2
		notes:       []float64{110, 110, 130.81, 110, 98, 98, 82.41, 98},
		noteSamples: rate.N(250 * time.Millisecond),
		rate:        rate,
	}
}

func (m *musicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		// short fade at each note edge avoids clicks
		edge := m.noteSamples / 20
		vol := 1.0
		if m.position < edge {
			vol = float64(m.position) / float64(edge)
		} else if m.noteSamples-m.position < edge {
			vol = float64(m.noteSamples-m.position) / float64(edge)
		}

		val := 0.6*waveSample(WaveSaw, m.phase) + 0.4*waveSample(WaveSine, m.phase)
		samples[i][0] = val * vol
		samples[i][1] = val * vol

		m.phase += m.notes[m.note] / float64(m.rate)
		m.phase -= math.Floor(m.phase)
		m.position++
		if m.position >= m.noteSamples {
			m.position = 0
			m.note = (m.note + 1) % len(m.notes)
		}
	}
	return len(samples), true
}

func (m *musicGenerator) Err() error { return nil }
