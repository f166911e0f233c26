package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) (count int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		count += n
		if !ok {
			return count, peak
		}
	}
}

func TestEveryCueHasMelody(t *testing.T) {
	for c := CueWatering; c <= CueVictory; c++ {
		assert.NotEmpty(t, melodies[c], c.String())
		assert.Positive(t, c.Duration(), c.String())
		assert.NotEqual(t, "unknown", c.String())
	}
	assert.Equal(t, "unknown", Cue(99).String())
}

func TestRenderLengthMatchesDuration(t *testing.T) {
	const rate = beep.SampleRate(8000)
	for c := CueWatering; c <= CueVictory; c++ {
		var want int
		for _, n := range melodies[c] {
			want += rate.N(n.dur)
		}
		got, peak := drain(render(c, 0.5, rate))
		assert.Equal(t, want, got, c.String())
		assert.LessOrEqual(t, peak, 0.5+1e-9, c.String())
		assert.Positive(t, peak, c.String())
	}
}

func TestToneEnvelope(t *testing.T) {
	const rate = beep.SampleRate(1000)
	tn := newTone(note{freq: 250, dur: fade * 4, wave: waveSquare}, 1, rate)

	buf := make([][2]float64, tn.total)
	n, ok := tn.Stream(buf)
	require.True(t, ok)
	require.Equal(t, tn.total, n)

	assert.Zero(t, buf[0][0], "attack starts silent")
	assert.InDelta(t, 1, math.Abs(buf[tn.total/2][0]), 1e-9)
	assert.Equal(t, buf[3][0], buf[3][1], "mono on both channels")

	n, ok = tn.Stream(buf)
	assert.Zero(t, n)
	assert.False(t, ok)
	assert.NoError(t, tn.Err())
}

func TestRestIsSilent(t *testing.T) {
	tn := newTone(note{freq: 0, dur: 10 * fade, wave: waveSine}, 1, beep.SampleRate(1000))
	_, peak := drain(tn)
	assert.Zero(t, peak)
}

func TestPlayerWithoutInitIsNoop(t *testing.T) {
	p := NewPlayer()
	assert.NotPanics(t, func() {
		p.Play(CueVictory)
		p.Close()
	})

	var s Sink = Silent{}
	s.Play(CueFail)
}
