package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
)

type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
	waveNoise
)

// fade is the attack and release length of every tone.
const fade = 8 * time.Millisecond

// tone is a fixed-length oscillator with a linear attack and release.
type tone struct {
	freq  float64
	wave  waveType
	amp   float64
	phase float64
	pos   int
	total int
	fadeN int
	rate  beep.SampleRate
	rng   *rand.Rand
}

func newTone(n note, amp float64, rate beep.SampleRate) *tone {
	t := &tone{
		freq:  n.freq,
		wave:  n.wave,
		amp:   amp,
		total: rate.N(n.dur),
		fadeN: rate.N(fade),
		rate:  rate,
	}
	if n.wave == waveNoise {
		t.rng = rand.New(rand.NewPCG(uint64(t.total), 1))
	}
	return t
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		v := t.amp * t.envelope() * t.sample()
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func (t *tone) sample() float64 {
	if t.freq == 0 {
		return 0
	}
	switch t.wave {
	case waveSquare:
		if t.phase < 0.5 {
			return 1
		}
		return -1
	case waveSaw:
		return 2 * (t.phase - 0.5)
	case waveNoise:
		return t.rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * t.phase)
	}
}

func (t *tone) envelope() float64 {
	if t.fadeN <= 0 {
		return 1
	}
	if t.pos < t.fadeN {
		return float64(t.pos) / float64(t.fadeN)
	}
	if left := t.total - t.pos; left < t.fadeN {
		return float64(left) / float64(t.fadeN)
	}
	return 1
}

// render builds the streamer for a cue at the given sample rate.
func render(c Cue, amp float64, rate beep.SampleRate) beep.Streamer {
	notes := melodies[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newTone(n, amp, rate))
	}
	return beep.Seq(parts...)
}
