package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/sprout/internal/logging"
	"github.com/abhisek/sprout/internal/profile"
	"github.com/abhisek/sprout/internal/watering"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play a scripted watering challenge without the TUI",
	Long: "Simulate presses and releases the watering can at the given indicator\n" +
		"positions on a virtual clock, printing every state change and the final scores.",
	Example: "  sprout simulate --releases 0.5,0.3,0.9\n  sprout simulate --releases 0.55,0.5,0.45 --dry-run",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("releases")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		releases, err := parseReleases(raw)
		if err != nil {
			return err
		}
		cfg, err := loadWateringConfig(cmd)
		if err != nil {
			return err
		}
		level, err := logLevel(cmd)
		if err != nil {
			return err
		}

		var svc *profile.Service
		if !dryRun {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()
			svc = profile.NewService(st.ProfileRepo(), st.ChallengeRepo(), gameWatering)
		}

		out := cmd.OutOrStdout()
		res, err := simulate(cfg, releases, svc, out, logging.New(cmd.ErrOrStderr(), level))
		if err != nil {
			return err
		}
		printResult(out, cfg, res, dryRun)
		return nil
	},
}

func init() {
	simulateCmd.Flags().String("releases", "0.5,0.5,0.5", "Comma-separated indicator positions (0..1) to release at")
	simulateCmd.Flags().Bool("dry-run", false, "Do not save scores to the profile")
}

// parseReleases reads a comma-separated list of positions in [0, 1].
func parseReleases(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid release %q: %w", field, err)
		}
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("release %v is outside the bar (0..1)", v)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.New("at least one release is required")
	}
	return out, nil
}

// simResult is what a scripted session produced.
type simResult struct {
	session  watering.Session
	result   *watering.Result
	attempts int
}

// captureResults keeps the final result and forwards it to next when set.
type captureResults struct {
	next   watering.ResultRecorder
	result *watering.Result
}

func (c *captureResults) RecordResult(ctx context.Context, r watering.Result) error {
	c.result = &r
	if c.next == nil {
		return nil
	}
	return c.next.RecordResult(ctx, r)
}

// simulate drives a Machine through releases on a ManualScheduler. The
// indicator is ticked straight to each release position; reaching the end
// of the bar releases automatically. It stops early once the session ends.
func simulate(cfg watering.Config, releases []float64, svc *profile.Service, out io.Writer, log *slog.Logger) (simResult, error) {
	sched := watering.NewManualScheduler()
	start := time.Now()
	results := &captureResults{}

	opts := watering.Options{
		Scheduler:    sched,
		Presentation: &printer{w: out, clock: sched},
		Results:      results,
		Clock:        func() time.Time { return start.Add(sched.Now()) },
		Logger:       log,
	}
	if svc != nil {
		opts.Profile = svc
		results.next = svc
	}

	m, err := watering.New(cfg, opts)
	if err != nil {
		return simResult{}, err
	}
	defer m.Leave()

	var attempts int
	for _, target := range releases {
		if m.Session().Phase.Terminal() {
			break
		}
		attempts++
		fmt.Fprintf(out, "%7.2fs  press, aiming for %.2f\n", sched.Now().Seconds(), target)
		m.Press()

		held := time.Duration(math.Ceil(target / cfg.IndicatorSpeed * float64(time.Second)))
		m.Tick(held)
		sched.Advance(held)
		m.Release()

		sched.RunPending()
	}

	return simResult{session: m.Session(), result: results.result, attempts: attempts}, nil
}

// printer is a Presentation that writes one line per notification,
// stamped with the virtual clock.
type printer struct {
	w     io.Writer
	clock *watering.ManualScheduler
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, "%7.2fs  %s\n", p.clock.Now().Seconds(), fmt.Sprintf(format, args...))
}

func (p *printer) PhaseChanged(phase watering.Phase) { p.line("phase %s", phase) }
func (p *printer) StageChanged(stage int)            { p.line("stage %d", stage) }
func (p *printer) LivesChanged(remaining int)        { p.line("lives %d", remaining) }
func (p *printer) Outcome(o watering.Outcome)        { p.line("outcome %s", o) }
func (p *printer) Victory()                          { p.line("the plant is fully grown") }
func (p *printer) GameOver()                         { p.line("the plant withered") }

// IndicatorMoved is too chatty to print; the release line shows the position.
func (p *printer) IndicatorMoved(float64) {}

func printResult(w io.Writer, cfg watering.Config, res simResult, dryRun bool) {
	sep := strings.Repeat("\u2500", 40)
	fmt.Fprintln(w)
	fmt.Fprintln(w, sep)

	if res.result == nil {
		fmt.Fprintf(w, "Session unfinished after %d releases (phase %s, stage %d/%d, lives %d).\n",
			res.attempts, res.session.Phase, res.session.Stage, cfg.StageCount, res.session.LivesRemaining)
		fmt.Fprintln(w, "No scores are awarded for an unfinished session.")
		return
	}

	r := res.result
	outcome := "Victory"
	if !r.Victory {
		outcome = "Game over"
	}
	fmt.Fprintf(w, "%-14s %s\n", "Result:", outcome)
	fmt.Fprintf(w, "%-14s %d/%d\n", "Stage:", r.FinalStage, r.StageCount)
	fmt.Fprintf(w, "%-14s %d\n", "Lives left:", r.LivesLeft)
	fmt.Fprintf(w, "%-14s %d (%d perfect, %d good)\n", "Attempts:",
		r.Counters.TotalAttempts, r.Counters.PerfectHits, r.Counters.GoodHits)
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "%-14s %5.1f\n", "Precision:", r.Scores.Precision)
	fmt.Fprintf(w, "%-14s %5.1f\n", "Patience:", r.Scores.Patience)
	fmt.Fprintf(w, "%-14s %5.1f\n", "Persistence:", r.Scores.Persistence)
	fmt.Fprintf(w, "%-14s %5.1f  -> %s\n", "Total:", r.Scores.Total(), cfg.Area.DisplayName())
	if dryRun {
		fmt.Fprintln(w, "(dry run: profile unchanged)")
	}
}
