package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/servicecordiale/cordiale/internal/theme"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved theme so the terminal's preference applies again",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.prefs.Delete(cmd.Context(), theme.PreferenceKey); err != nil {
			return fmt.Errorf("reset theme preference: %w", err)
		}
		e.log.Info("theme preference reset")
		fmt.Fprintln(cmd.OutOrStdout(), "Theme preference cleared.")
		return nil
	},
}
