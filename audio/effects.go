package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects the oscillator shape of a cue
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sample returns the wave value at phase in [0, 1)
func (w WaveType) sample(phase float64, rng *rand.Rand) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	case WaveNoise:
		return rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// oscillator is a fixed-length mono tone duplicated to both channels
type oscillator struct {
	wave      WaveType
	step      float64 // phase advance per sample
	phase     float64
	remaining int
	rng       *rand.Rand
}

// NewOscillator streams duration worth of a single wave at freq
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	o := &oscillator{
		wave:      wave,
		step:      freq / float64(rate),
		remaining: rate.N(duration),
	}
	if wave == WaveNoise {
		o.rng = rand.New(rand.NewPCG(uint64(freq*1000), uint64(o.remaining)))
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.remaining <= 0 {
		return 0, false
	}
	n := min(len(samples), o.remaining)
	for i := 0; i < n; i++ {
		v := o.wave.sample(o.phase, o.rng)
		samples[i] = [2]float64{v, v}
		_, o.phase = math.Modf(o.phase + o.step)
	}
	o.remaining -= n
	return n, true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a source in over attack and out over release
type envelope struct {
	src     beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

// NewEnvelope shapes s with a linear attack and release across duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	return &envelope{
		src:     s,
		total:   total,
		attack:  att,
		release: min(rate.N(release), total-att),
	}
}

// gain is the envelope level at sample position pos
func (e *envelope) gain(pos int) float64 {
	if pos < e.attack {
		return float64(pos) / float64(e.attack)
	}
	if left := e.total - pos; e.release > 0 && left < e.release {
		return float64(left) / float64(e.release)
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	if e.pos >= e.total {
		return 0, false
	}
	n, ok := e.src.Stream(samples[:min(len(samples), e.total-e.pos)])
	for i := 0; i < n; i++ {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.src.Err() }

// newVolume applies a linear gain; zero and below is silence since the
// effect works in log2 space
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Synthesize builds the streamer for a recipe at the given volume
// Two-note recipes play back to back, each taking half the duration
func Synthesize(r Recipe, vol float64, rate beep.SampleRate) beep.Streamer {
	if r.Freq2 <= 0 {
		osc := NewOscillator(r.Freq, r.Duration, r.Wave, rate)
		return newVolume(NewEnvelope(osc, r.Duration, r.Attack, r.Release, rate), vol)
	}

	half := r.Duration / 2
	note := func(freq float64) beep.Streamer {
		return NewEnvelope(NewOscillator(freq, half, r.Wave, rate), half, r.Attack, r.Release/2, rate)
	}
	return newVolume(beep.Seq(note(r.Freq), note(r.Freq2)), vol)
}

// CueStreamer returns the synthesized streamer for a cataloged cue
func CueStreamer(name string, cfg *AudioConfig) (beep.Streamer, error) {
	r, ok := Cues[name]
	if !ok {
		return nil, ErrUnknownCue
	}
	return Synthesize(r, r.Volume*cfg.CueVolume(name), beep.SampleRate(cfg.SampleRate)), nil
}
