package aptitude

import (
	"fmt"
	"time"
)

// Area is a vocational field that mini-games attribute points to.
type Area string

const (
	NaturalSciences Area = "natural_sciences"
	CreativeArts    Area = "creative_arts"
	TechEngineering Area = "tech_engineering"
	HumanitiesLit   Area = "humanities_literature"
	HealthMedicine  Area = "health_medicine"
	SportsActivity  Area = "sports_activity"
)

// AllAreas returns all vocational areas in display order.
func AllAreas() []Area {
	return []Area{NaturalSciences, CreativeArts, TechEngineering, HumanitiesLit, HealthMedicine, SportsActivity}
}

// DisplayName returns a human-readable label for the area.
func (a Area) DisplayName() string {
	switch a {
	case NaturalSciences:
		return "Natural Sciences"
	case CreativeArts:
		return "Creative Arts"
	case TechEngineering:
		return "Technology & Engineering"
	case HumanitiesLit:
		return "Humanities & Literature"
	case HealthMedicine:
		return "Health & Medicine"
	case SportsActivity:
		return "Sports & Activity"
	default:
		return string(a)
	}
}

// ParseArea converts a stored or user-supplied name into an Area.
func ParseArea(s string) (Area, error) {
	for _, a := range AllAreas() {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown aptitude area %q", s)
}

// Trait is a behavioral skill observed while playing.
type Trait string

const (
	Patience          Trait = "patience"
	Creativity        Trait = "creativity"
	Logic             Trait = "logic"
	Leadership        Trait = "leadership"
	AttentionToDetail Trait = "attention_to_detail"
)

// AllTraits returns all observed traits in display order.
func AllTraits() []Trait {
	return []Trait{Patience, Creativity, Logic, Leadership, AttentionToDetail}
}

// DisplayName returns a human-readable label for the trait.
func (t Trait) DisplayName() string {
	switch t {
	case Patience:
		return "Patience"
	case Creativity:
		return "Creativity"
	case Logic:
		return "Logic"
	case Leadership:
		return "Leadership"
	case AttentionToDetail:
		return "Attention to Detail"
	default:
		return string(t)
	}
}

// ParseTrait converts a stored name into a Trait.
func ParseTrait(s string) (Trait, error) {
	for _, t := range AllTraits() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown trait %q", s)
}

// Scores are the derived metrics of one finished challenge.
// They are computed once, forwarded to the profile, and not retained.
type Scores struct {
	Precision   float64
	Patience    float64
	Persistence float64

	// Elapsed is the wall time between session start and the terminal state.
	Elapsed time.Duration
}

// Total returns the sum of the three scores.
func (s Scores) Total() float64 {
	return s.Precision + s.Patience + s.Persistence
}

// Totals holds accumulated points per area and per trait.
type Totals struct {
	Areas  map[Area]float64
	Traits map[Trait]float64
}

// NewTotals returns Totals with every area and trait present at zero.
func NewTotals() Totals {
	t := Totals{
		Areas:  make(map[Area]float64, len(AllAreas())),
		Traits: make(map[Trait]float64, len(AllTraits())),
	}
	for _, a := range AllAreas() {
		t.Areas[a] = 0
	}
	for _, tr := range AllTraits() {
		t.Traits[tr] = 0
	}
	return t
}

// TopArea returns the area with the highest total, or "" when all are zero.
// Ties resolve to the area listed first in AllAreas.
func (t Totals) TopArea() Area {
	var best Area
	bestScore := 0.0
	for _, a := range AllAreas() {
		if v := t.Areas[a]; v > bestScore {
			best = a
			bestScore = v
		}
	}
	return best
}

// Max returns the highest single value across areas and traits.
// Used to scale progress bars.
func (t Totals) Max() float64 {
	m := 0.0
	for _, v := range t.Areas {
		if v > m {
			m = v
		}
	}
	for _, v := range t.Traits {
		if v > m {
			m = v
		}
	}
	return m
}
