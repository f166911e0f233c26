package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sprout/internal/aptitude"
	"github.com/abhisek/sprout/internal/profile"
)

var interestsCmd = &cobra.Command{
	Use:   "interests [area...]",
	Short: "Show or declare the areas the player enjoys",
	Long: "Declaring interests gives each area a head start of 10 points. It can be\n" +
		"done once per profile. Areas: " + areaNames() + ".",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		svc := profile.NewService(st.ProfileRepo(), st.ChallengeRepo(), gameWatering)
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			areas, err := svc.Interests(ctx)
			if err != nil {
				return fmt.Errorf("load interests: %w", err)
			}
			if len(areas) == 0 {
				fmt.Fprintln(out, "No interests declared yet.")
				return nil
			}
			for _, a := range areas {
				fmt.Fprintf(out, "  • %s\n", a.DisplayName())
			}
			return nil
		}

		areas, err := parseAreas(args)
		if err != nil {
			return err
		}
		err = svc.RegisterInterests(ctx, areas)
		if errors.Is(err, profile.ErrAlreadyRegistered) {
			return errors.New("interests were already declared; run `sprout reset` to start over")
		}
		if err != nil {
			return fmt.Errorf("register interests: %w", err)
		}
		for _, a := range areas {
			fmt.Fprintf(out, "+%.0f %s\n", profile.InterestBonus, a.DisplayName())
		}
		return nil
	},
}

// parseAreas accepts area ids, separated by spaces or commas.
func parseAreas(args []string) ([]aptitude.Area, error) {
	var areas []aptitude.Area
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			a, err := aptitude.ParseArea(field)
			if err != nil {
				return nil, err
			}
			areas = append(areas, a)
		}
	}
	return areas, nil
}

func areaNames() string {
	names := make([]string, 0, len(aptitude.AllAreas()))
	for _, a := range aptitude.AllAreas() {
		names = append(names, string(a))
	}
	return strings.Join(names, ", ")
}
