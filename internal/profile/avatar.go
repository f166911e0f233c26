package profile

import "github.com/abhisek/sprout/internal/aptitude"

// Avatar is a selectable player portrait. Choosing one awards
// AvatarPrimaryBonus to PrimaryArea and AvatarSecondaryBonus to
// SecondaryArea.
type Avatar struct {
	ID    int
	Glyph string
	Name  string

	PrimaryArea   aptitude.Area
	SecondaryArea aptitude.Area
}

// Avatars lists the portraits a player can pick, indexed by ID.
var Avatars = []Avatar{
	{ID: 0, Glyph: "🌱", Name: "Sprout", PrimaryArea: aptitude.NaturalSciences, SecondaryArea: aptitude.HealthMedicine},
	{ID: 1, Glyph: "🌻", Name: "Sunny", PrimaryArea: aptitude.CreativeArts, SecondaryArea: aptitude.HumanitiesLit},
	{ID: 2, Glyph: "🌵", Name: "Spike", PrimaryArea: aptitude.SportsActivity, SecondaryArea: aptitude.NaturalSciences},
	{ID: 3, Glyph: "🌷", Name: "Tulip", PrimaryArea: aptitude.HumanitiesLit, SecondaryArea: aptitude.CreativeArts},
	{ID: 4, Glyph: "🍄", Name: "Moss", PrimaryArea: aptitude.HealthMedicine, SecondaryArea: aptitude.NaturalSciences},
	{ID: 5, Glyph: "🐝", Name: "Buzz", PrimaryArea: aptitude.TechEngineering, SecondaryArea: aptitude.SportsActivity},
}

// AvatarByID returns the avatar with the given ID, falling back to the
// first one for unknown IDs.
func AvatarByID(id int) Avatar {
	if id < 0 || id >= len(Avatars) {
		return Avatars[0]
	}
	return Avatars[id]
}
