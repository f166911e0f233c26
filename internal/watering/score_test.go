package watering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountersRecord(t *testing.T) {
	var c Counters
	c.Record(OutcomePerfect)
	c.Record(OutcomeGood)
	c.Record(OutcomeBad)
	c.Record(OutcomePerfect)

	assert.Equal(t, 2, c.PerfectHits)
	assert.Equal(t, 1, c.GoodHits)
	assert.Equal(t, 4, c.TotalAttempts, "bad releases still count as attempts")
	assert.InDelta(t, 0.5, c.Precision(), 1e-9)
	assert.InDelta(t, 0.75, c.Accuracy(), 1e-9)
}

func TestFinalize_Victory(t *testing.T) {
	c := Counters{PerfectHits: 2, GoodHits: 1, TotalAttempts: 3}

	got := Finalize(c, 42*time.Second, 3, 3, 3)

	assert.InDelta(t, 10.0, got.Precision, 1e-9)
	assert.Equal(t, 10.0, got.Patience)
	assert.Equal(t, 10.0, got.Persistence)
	assert.Equal(t, 42*time.Second, got.Elapsed)
}

func TestFinalize_ZeroAttempts(t *testing.T) {
	got := Finalize(Counters{}, 0, 0, 3, 3)

	assert.Equal(t, 0.0, got.Precision)
	assert.Equal(t, 10.0, got.Patience, "fewer attempts than baseline saturates at max")
	assert.Equal(t, 5.0, got.Persistence)
}

func TestFinalize_Patience(t *testing.T) {
	tests := []struct {
		attempts int
		want     float64
	}{
		{1, 10},
		{3, 10},
		{4, 9},
		{8, 5},
		{13, 0},
		{40, 0},
	}

	for _, tt := range tests {
		got := Finalize(Counters{TotalAttempts: tt.attempts}, 0, 0, 3, 3)
		assert.Equal(t, tt.want, got.Patience, "attempts=%d", tt.attempts)
	}
}

func TestFinalize_PersistenceOnWither(t *testing.T) {
	got := Finalize(Counters{TotalAttempts: 5, GoodHits: 2}, 0, 2, 3, 3)
	assert.Equal(t, 5.0, got.Persistence)
	assert.Equal(t, 0.0, got.Precision)
}
