package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sprout/internal/profile"
)

var avatarCmd = &cobra.Command{
	Use:   "avatar [id|name]",
	Short: "List avatars or pick one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		svc := profile.NewService(st.ProfileRepo(), st.ChallengeRepo(), gameWatering)
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			id, err := parseAvatar(args[0])
			if err != nil {
				return err
			}
			if err := svc.SetAvatar(ctx, id); err != nil {
				return fmt.Errorf("set avatar: %w", err)
			}
			a := profile.AvatarByID(id)
			fmt.Fprintf(out, "Avatar set to %s %s\n", a.Glyph, a.Name)
			return nil
		}

		current, err := svc.Avatar(ctx)
		if err != nil {
			return fmt.Errorf("load avatar: %w", err)
		}
		for _, a := range profile.Avatars {
			marker := " "
			if a.ID == current.ID {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %d  %s  %s\n", marker, a.ID, a.Glyph, a.Name)
		}
		return nil
	},
}

// parseAvatar accepts an avatar ID or a case-insensitive avatar name.
func parseAvatar(s string) (int, error) {
	if id, err := strconv.Atoi(s); err == nil {
		return id, nil
	}
	for _, a := range profile.Avatars {
		if strings.EqualFold(a.Name, s) {
			return a.ID, nil
		}
	}
	return 0, fmt.Errorf("unknown avatar %q", s)
}
