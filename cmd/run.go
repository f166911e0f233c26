package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/sprout/internal/advisor"
	"github.com/abhisek/sprout/internal/app"
	"github.com/abhisek/sprout/internal/audio"
	"github.com/abhisek/sprout/internal/llm"
	"github.com/abhisek/sprout/internal/logging"
	"github.com/abhisek/sprout/internal/profile"
	"github.com/abhisek/sprout/internal/screens/home"
	"github.com/abhisek/sprout/internal/store"
)

type appOptions struct {
	splash bool
	sound  bool
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, opts appOptions) error {
	ctx := cmd.Context()

	cfg, err := loadWateringConfig(cmd)
	if err != nil {
		return err
	}

	level, err := logLevel(cmd)
	if err != nil {
		return err
	}
	log := logging.Discard()
	if logPath, err := logging.DefaultLogPath(); err == nil {
		fileLog, f, err := logging.OpenFile(logPath, level)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		} else {
			defer f.Close()
			log = fileLog
		}
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	deps := home.Deps{
		Profile:  profile.NewService(st.ProfileRepo(), st.ChallengeRepo(), gameWatering),
		Advisor:  newAdvisor(ctx, st, log),
		Watering: cfg,
		Sound:    audio.Silent{},
		Logger:   log,
	}

	if opts.sound {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			fmt.Fprintln(os.Stderr, "Sound unavailable:", err)
		} else {
			defer player.Close()
			deps.Sound = player
		}
	}

	log.Info("sprout started", "splash", opts.splash, "sound", opts.sound,
		"stages", cfg.StageCount, "lives", cfg.MaxLives)
	return app.Run(deps, opts.splash)
}

// newAdvisor builds the report service. Without an LLM provider the
// reports are written offline.
func newAdvisor(ctx context.Context, st *store.Store, log *slog.Logger) *advisor.Service {
	provider, err := newProvider(ctx, st, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Career reports will be written offline.")
		provider = nil
	}
	return advisor.NewService(provider, st.ReportRepo(), log)
}

// newProvider configures the LLM from SPROUT_* variables, falling back to
// the vendors' standard API key variables.
func newProvider(ctx context.Context, st *store.Store, log *slog.Logger) (llm.Provider, error) {
	cfg := llm.DefaultConfig().ApplyEnv()
	if discovered, ok := cfg.Discover(); ok {
		cfg = discovered
	}
	return llm.NewProvider(ctx, cfg, st.EventRepo(), log)
}
