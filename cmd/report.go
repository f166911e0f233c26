package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sprout/internal/advisor"
	"github.com/abhisek/sprout/internal/logging"
	"github.com/abhisek/sprout/internal/profile"
	"github.com/abhisek/sprout/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the latest career report, or write a new one",
	RunE: func(cmd *cobra.Command, args []string) error {
		regenerate, _ := cmd.Flags().GetBool("new")

		level, err := logLevel(cmd)
		if err != nil {
			return err
		}
		log := logging.New(cmd.ErrOrStderr(), level)

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		svc := profile.NewService(st.ProfileRepo(), st.ChallengeRepo(), gameWatering)
		adv := newAdvisor(ctx, st, log)

		var rep *store.Report
		if !regenerate {
			rep, err = adv.Latest(ctx)
			if err != nil {
				return fmt.Errorf("load report: %w", err)
			}
		}
		if rep == nil {
			in, err := advisor.LoadInput(ctx, svc)
			if err != nil {
				return fmt.Errorf("load profile: %w", err)
			}
			rep, err = adv.Generate(ctx, in)
			if errors.Is(err, advisor.ErrNoScores) {
				fmt.Fprintln(cmd.OutOrStdout(), "No report yet: play a game first.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("generate report: %w", err)
			}
		}

		printReport(cmd, rep)
		return nil
	},
}

func init() {
	reportCmd.Flags().Bool("new", false, "Write a fresh report instead of printing the cached one")
}

func printReport(cmd *cobra.Command, rep *store.Report) {
	out := cmd.OutOrStdout()
	d := rep.Data
	sep := strings.Repeat("─", 60)

	fmt.Fprintln(out, d.Summary)
	fmt.Fprintln(out, sep)
	fmt.Fprintln(out, "Strengths")
	for _, s := range d.Strengths {
		fmt.Fprintf(out, "  • %s\n", s)
	}
	fmt.Fprintln(out, "Fields to explore")
	for _, f := range d.SuggestedFields {
		fmt.Fprintf(out, "  • %s\n", f)
	}
	fmt.Fprintln(out, sep)
	fmt.Fprintln(out, d.Encouragement)

	by := "offline"
	if !d.Offline && d.Model != "" {
		by = "by " + d.Model
	}
	fmt.Fprintf(out, "\n(written %s, %s)\n", rep.Timestamp.Local().Format("2006-01-02 15:04"), by)
}
