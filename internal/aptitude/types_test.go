package aptitude

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArea(t *testing.T) {
	for _, a := range AllAreas() {
		got, err := ParseArea(string(a))
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err := ParseArea("astrology")
	assert.Error(t, err)
}

func TestParseTrait(t *testing.T) {
	for _, tr := range AllTraits() {
		got, err := ParseTrait(string(tr))
		require.NoError(t, err)
		assert.Equal(t, tr, got)
	}

	_, err := ParseTrait("")
	assert.Error(t, err)
}

func TestDisplayNames(t *testing.T) {
	for _, a := range AllAreas() {
		assert.NotEqual(t, string(a), a.DisplayName(), "area %s has no display name", a)
	}
	for _, tr := range AllTraits() {
		assert.NotEmpty(t, tr.DisplayName())
	}
}

func TestScoresTotal(t *testing.T) {
	s := Scores{Precision: 10, Patience: 10, Persistence: 5}
	assert.InDelta(t, 25.0, s.Total(), 1e-9)
}

func TestTotalsTopArea(t *testing.T) {
	totals := NewTotals()
	assert.Equal(t, Area(""), totals.TopArea())

	totals.Areas[CreativeArts] = 4
	totals.Areas[NaturalSciences] = 4
	assert.Equal(t, NaturalSciences, totals.TopArea(), "ties resolve to display order")

	totals.Areas[SportsActivity] = 9
	assert.Equal(t, SportsActivity, totals.TopArea())
}

func TestTotalsMax(t *testing.T) {
	totals := NewTotals()
	totals.Areas[HealthMedicine] = 3
	totals.Traits[Patience] = 7.5
	assert.InDelta(t, 7.5, totals.Max(), 1e-9)
}
