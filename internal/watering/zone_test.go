package watering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	zones := ZoneConfig{GreenStart: 0.4, GreenEnd: 0.6, Margin: 0.15}

	tests := []struct {
		pos  float64
		want Outcome
	}{
		{0.5, OutcomePerfect},
		{0.4, OutcomePerfect}, // inclusive lower edge
		{0.6, OutcomePerfect}, // inclusive upper edge
		{0.3, OutcomeGood},
		{0.26, OutcomeGood}, // inside [0.25, 0.4)
		{0.24, OutcomeBad},
		{0.75, OutcomeGood}, // inclusive outer edge
		{0.76, OutcomeBad},
		{0.0, OutcomeBad},
		{1.0, OutcomeBad},
	}

	for _, tt := range tests {
		got := Classify(tt.pos, zones)
		assert.Equal(t, tt.want, got, "Classify(%v)", tt.pos)
	}
}

func TestClassify_MarginClampedToBar(t *testing.T) {
	zones := ZoneConfig{GreenStart: 0.05, GreenEnd: 0.95, Margin: 0.2}

	lo, hi := zones.Bounds()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)

	assert.Equal(t, OutcomeGood, Classify(0.0, zones))
	assert.Equal(t, OutcomeGood, Classify(1.0, zones))
}

func TestClassify_ZeroMargin(t *testing.T) {
	zones := ZoneConfig{GreenStart: 0.4, GreenEnd: 0.6}
	assert.Equal(t, OutcomeBad, Classify(0.39, zones))
	assert.Equal(t, OutcomePerfect, Classify(0.4, zones))
	assert.Equal(t, OutcomeBad, Classify(0.61, zones))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "bad", OutcomeBad.String())
	assert.Equal(t, "good", OutcomeGood.String())
	assert.Equal(t, "perfect", OutcomePerfect.String())
	assert.False(t, OutcomeBad.Succeeded())
	assert.True(t, OutcomeGood.Succeeded())
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name    string
		pos     float64
		held    time.Duration
		speed   float64
		want    float64
		wantEnd bool
	}{
		{"half second", 0, 500 * time.Millisecond, 0.5, 0.25, false},
		{"clamped at end", 0.9, time.Second, 0.5, 1, true},
		{"threshold releases", 0.98, 100 * time.Millisecond, 0.1, 0.99, true},
		{"negative hold ignored", 0.3, -time.Second, 0.5, 0.3, false},
		{"zero hold", 0.3, 0, 0.5, 0.3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, end := Advance(tt.pos, tt.held, tt.speed)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestGrowthAndLives(t *testing.T) {
	assert.Equal(t, 1, NextStage(0, 3))
	assert.Equal(t, 3, NextStage(2, 3))
	assert.Equal(t, 3, NextStage(3, 3), "capped at stage count")
	assert.False(t, IsGrown(2, 3))
	assert.True(t, IsGrown(3, 3))

	assert.Equal(t, 2, ConsumeLife(3))
	assert.Equal(t, 0, ConsumeLife(1))
	assert.Equal(t, 0, ConsumeLife(0), "floored at zero")
	assert.False(t, IsExhausted(1))
	assert.True(t, IsExhausted(0))
}
