package advisor

import (
	"fmt"
	"strings"

	"github.com/abhisek/sprout/internal/aptitude"
)

const systemPrompt = `You write short career reports for children aged 8 to 12 who play
educational mini-games. Scores are points collected while playing; higher means
more interest or skill. Be warm and concrete, never judge, and never mention
numbers or scores. Write in simple English.`

// buildPrompt renders the player's profile as the user message.
func buildPrompt(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Player: %s\n\n", in.PlayerName)

	b.WriteString("Interest areas (points):\n")
	for _, a := range aptitude.AllAreas() {
		fmt.Fprintf(&b, "- %s: %.0f\n", a.DisplayName(), in.Totals.Areas[a])
	}

	b.WriteString("\nObserved traits (points):\n")
	for _, t := range aptitude.AllTraits() {
		fmt.Fprintf(&b, "- %s: %.0f\n", t.DisplayName(), in.Totals.Traits[t])
	}

	if in.Stats.Played > 0 {
		fmt.Fprintf(&b, "\nPlant watering: %d games, %d plants fully grown, %d perfect waterings.\n",
			in.Stats.Played, in.Stats.Victories, in.Stats.PerfectHits)
	}

	if top := in.Totals.TopArea(); top != "" {
		fmt.Fprintf(&b, "\nStrongest area: %s.\n", top.DisplayName())
	}
	return b.String()
}
