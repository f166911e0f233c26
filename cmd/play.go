package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	RunE: func(cmd *cobra.Command, args []string) error {
		sound, _ := cmd.Flags().GetBool("sound")
		noSplash, _ := cmd.Flags().GetBool("no-splash")
		return runApp(cmd, appOptions{splash: !noSplash, sound: sound})
	},
}

func init() {
	playCmd.Flags().Bool("sound", false, "Play sound cues through the default audio device")
	playCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")
}
