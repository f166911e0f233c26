package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sprout/internal/aptitude"
	"github.com/abhisek/sprout/internal/profile"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aptitude totals and challenge statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("history")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		svc := profile.NewService(st.ProfileRepo(), st.ChallengeRepo(), gameWatering)

		name, err := svc.PlayerName(ctx)
		if err != nil {
			return fmt.Errorf("load player: %w", err)
		}
		avatar, err := svc.Avatar(ctx)
		if err != nil {
			return fmt.Errorf("load avatar: %w", err)
		}
		totals, err := svc.Totals(ctx)
		if err != nil {
			return fmt.Errorf("load totals: %w", err)
		}
		stats, err := svc.Stats(ctx)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		out := cmd.OutOrStdout()
		sep := strings.Repeat("─", 44)

		fmt.Fprintf(out, "%s  %s\n", avatar.Glyph, name)
		if top := totals.TopArea(); top != "" {
			fmt.Fprintf(out, "Strongest area: %s\n", top.DisplayName())
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Areas")
		fmt.Fprintln(out, sep)
		for _, a := range aptitude.AllAreas() {
			fmt.Fprintf(out, "%-28s %8.1f\n", a.DisplayName(), totals.Areas[a])
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Traits")
		fmt.Fprintln(out, sep)
		for _, t := range aptitude.AllTraits() {
			fmt.Fprintf(out, "%-28s %8.1f\n", t.DisplayName(), totals.Traits[t])
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Challenges")
		fmt.Fprintln(out, sep)
		fmt.Fprintf(out, "%-28s %8d\n", "Played", stats.Played)
		fmt.Fprintf(out, "%-28s %8d\n", "Plants grown", stats.Victories)
		fmt.Fprintf(out, "%-28s %8d\n", "Waterings", stats.TotalAttempts)
		fmt.Fprintf(out, "%-28s %8d\n", "Perfect waterings", stats.PerfectHits)
		fmt.Fprintf(out, "%-28s %8.1f\n", "Best precision", stats.BestPrecision)

		if limit <= 0 || stats.Played == 0 {
			return nil
		}
		history, err := svc.History(ctx, limit)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		fmt.Fprintln(out)
		fmt.Fprintf(out, "%-16s  %-9s  %-6s  %-8s  %s\n", "When", "Result", "Stage", "Attempts", "Points")
		fmt.Fprintln(out, sep)
		for _, e := range history {
			result := "withered"
			if e.Victory {
				result = "grown"
			}
			points := e.Precision + e.Patience + e.Persistence
			fmt.Fprintf(out, "%-16s  %-9s  %d/%-4d  %-8d  %.1f\n",
				e.Timestamp.Local().Format("2006-01-02 15:04"),
				result, e.FinalStage, e.StageCount, e.TotalAttempts, points)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("history", 5, "Number of recent challenges to list (0 to hide)")
}
