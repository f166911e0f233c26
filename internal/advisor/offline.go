package advisor

import (
	"fmt"

	"github.com/abhisek/sprout/internal/aptitude"
	"github.com/abhisek/sprout/internal/store"
)

var areaFields = map[aptitude.Area][]string{
	aptitude.NaturalSciences: {"Botanist", "Biologist", "Environmental scientist", "Farmer"},
	aptitude.CreativeArts:    {"Illustrator", "Musician", "Designer", "Animator"},
	aptitude.TechEngineering: {"Software engineer", "Robotics engineer", "Architect", "Inventor"},
	aptitude.HumanitiesLit:   {"Writer", "Teacher", "Journalist", "Historian"},
	aptitude.HealthMedicine:  {"Doctor", "Nurse", "Veterinarian", "Pharmacist"},
	aptitude.SportsActivity:  {"Athlete", "Coach", "Physiotherapist", "Park ranger"},
}

var traitPhrases = map[aptitude.Trait]string{
	aptitude.Patience:          "Waits for the right moment",
	aptitude.Creativity:        "Finds new ways to do things",
	aptitude.Logic:             "Thinks step by step",
	aptitude.Leadership:        "Helps others get going",
	aptitude.AttentionToDetail: "Notices small details",
}

// offlineReport builds a report from the totals alone. Used when no
// provider is configured or the provider fails.
func offlineReport(in Input) store.ReportData {
	top := in.Totals.TopArea()
	if top == "" {
		top = aptitude.NaturalSciences
	}

	var strengths []string
	for _, t := range topTraits(in.Totals, 3) {
		strengths = append(strengths, traitPhrases[t])
	}

	return store.ReportData{
		Version:         reportVersion,
		TopArea:         string(top),
		Offline:         true,
		Summary:         fmt.Sprintf("%s, you shine in %s! You keep coming back to it and it shows.", in.PlayerName, top.DisplayName()),
		Strengths:       strengths,
		SuggestedFields: areaFields[top],
		Encouragement:   "Keep playing and exploring, every game helps you grow.",
	}
}

// topTraits returns up to n traits with a positive total, highest first.
// Ties keep AllTraits order.
func topTraits(t aptitude.Totals, n int) []aptitude.Trait {
	var out []aptitude.Trait
	for _, tr := range aptitude.AllTraits() {
		if t.Traits[tr] <= 0 {
			continue
		}
		i := len(out)
		for i > 0 && t.Traits[out[i-1]] < t.Traits[tr] {
			i--
		}
		out = append(out, "")
		copy(out[i+1:], out[i:])
		out[i] = tr
	}
	if len(out) > n {
		out = out[:n]
	}
	return out
}
