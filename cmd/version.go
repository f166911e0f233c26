package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/abhisek/sprout/internal/watering"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and where the garden is saved",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		cfg, err := loadWateringConfig(cmd)
		if err != nil {
			return err
		}
		info, _ := debug.ReadBuildInfo()
		writeVersion(cmd.OutOrStdout(), info, dbPath, cfg)
		return nil
	},
}

// writeVersion prints the build details. info may be nil when the binary
// was built without module support.
func writeVersion(w io.Writer, info *debug.BuildInfo, dbPath string, cfg watering.Config) {
	v := version
	if v == "(devel)" && info != nil && info.Main.Version != "" {
		v = info.Main.Version
	}
	fmt.Fprintf(w, "sprout %s\n", v)
	if info != nil {
		fmt.Fprintf(w, "  go:       %s\n", info.GoVersion)
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				fmt.Fprintf(w, "  commit:   %s\n", s.Value)
			}
		}
	}
	fmt.Fprintf(w, "  garden:   %s\n", dbPath)
	fmt.Fprintf(w, "  stages:   %d, lives: %d\n", cfg.StageCount, cfg.MaxLives)
}
