// Package audio plays the short synthesized cues of the watering game.
package audio

import (
	"time"
)

// Cue identifies a game sound.
type Cue int

const (
	CueWatering Cue = iota
	CueSuccess
	CueFail
	CueGrowth
	CueGameOver
	CueVictory
)

func (c Cue) String() string {
	switch c {
	case CueWatering:
		return "watering"
	case CueSuccess:
		return "success"
	case CueFail:
		return "fail"
	case CueGrowth:
		return "growth"
	case CueGameOver:
		return "game_over"
	case CueVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// note is one tone of a cue. A zero freq is a rest.
type note struct {
	freq float64
	dur  time.Duration
	wave waveType
}

// melodies maps each cue to its notes, played in order.
var melodies = map[Cue][]note{
	CueWatering: {
		{freq: 0, dur: 20 * time.Millisecond, wave: waveNoise},
		{freq: 1, dur: 120 * time.Millisecond, wave: waveNoise},
	},
	CueSuccess: {
		{freq: 659.25, dur: 90 * time.Millisecond, wave: waveSine},
		{freq: 987.77, dur: 160 * time.Millisecond, wave: waveSine},
	},
	CueFail: {
		{freq: 196.00, dur: 140 * time.Millisecond, wave: waveSquare},
		{freq: 146.83, dur: 220 * time.Millisecond, wave: waveSquare},
	},
	CueGrowth: {
		{freq: 523.25, dur: 70 * time.Millisecond, wave: waveSine},
		{freq: 659.25, dur: 70 * time.Millisecond, wave: waveSine},
		{freq: 783.99, dur: 120 * time.Millisecond, wave: waveSine},
	},
	CueGameOver: {
		{freq: 392.00, dur: 200 * time.Millisecond, wave: waveSaw},
		{freq: 311.13, dur: 200 * time.Millisecond, wave: waveSaw},
		{freq: 261.63, dur: 400 * time.Millisecond, wave: waveSaw},
	},
	CueVictory: {
		{freq: 523.25, dur: 100 * time.Millisecond, wave: waveSine},
		{freq: 659.25, dur: 100 * time.Millisecond, wave: waveSine},
		{freq: 783.99, dur: 100 * time.Millisecond, wave: waveSine},
		{freq: 0, dur: 40 * time.Millisecond, wave: waveSine},
		{freq: 1046.50, dur: 300 * time.Millisecond, wave: waveSine},
	},
}

// Duration is the total play time of a cue.
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, n := range melodies[c] {
		d += n.dur
	}
	return d
}
