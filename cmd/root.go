package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/sprout/internal/logging"
	"github.com/abhisek/sprout/internal/store"
	"github.com/abhisek/sprout/internal/watering"
)

const gameWatering = "watering"

var rootCmd = &cobra.Command{
	Use:   "sprout",
	Short: "Terminal mini-games that discover what kids are good at",
	Long: "Sprout is a terminal game for kids. Timing challenges like watering a plant\n" +
		"build an aptitude profile, and a career report suggests fields to explore.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, appOptions{splash: true})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SPROUT_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to watering tuning YAML (overrides SPROUT_CONFIG env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(avatarCmd)
	rootCmd.AddCommand(interestsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SPROUT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// loadWateringConfig reads the tuning file named by --config or
// SPROUT_CONFIG. Without either, the default tuning is used.
func loadWateringConfig(cmd *cobra.Command) (watering.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("SPROUT_CONFIG")
	}
	if path == "" {
		return watering.DefaultConfig(), nil
	}
	cfg, err := watering.LoadConfig(path)
	if err != nil {
		return watering.Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// logLevel parses --log-level.
func logLevel(cmd *cobra.Command) (slog.Level, error) {
	s, _ := cmd.Flags().GetString("log-level")
	return logging.ParseLevel(s)
}
