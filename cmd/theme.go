package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/servicecordiale/cordiale/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the saved theme",
	RunE:  runThemeShow,
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current mode and its palette",
	Args:  cobra.NoArgs,
	RunE:  runThemeShow,
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between dark and light",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		th := newTheme(cmd.Context(), e, nil)
		dark := th.Toggle(cmd.Context())
		fmt.Fprintln(cmd.OutOrStdout(), theme.ModeString(dark))
		return nil
	},
}

var themeSetCmd = &cobra.Command{
	Use:       "set dark|light",
	Short:     "Save a mode",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{theme.ModeDark, theme.ModeLight},
	RunE: func(cmd *cobra.Command, args []string) error {
		dark, ok := theme.ParseMode(args[0])
		if !ok {
			return fmt.Errorf("unknown mode %q: want %s or %s", args[0], theme.ModeDark, theme.ModeLight)
		}

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		th := newTheme(cmd.Context(), e, nil)
		th.Set(cmd.Context(), dark)
		fmt.Fprintln(cmd.OutOrStdout(), theme.ModeString(dark))
		return nil
	},
}

func init() {
	themeCmd.AddCommand(themeShowCmd, themeToggleCmd, themeSetCmd)
}

func runThemeShow(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	th := newTheme(cmd.Context(), e, nil)
	writePalette(cmd.OutOrStdout(), th.IsDark(), th.Palette())
	return nil
}

func writePalette(w io.Writer, dark bool, p theme.Palette) {
	fmt.Fprintf(w, "mode: %s\n\n", theme.ModeString(dark))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range p.Roles() {
		fmt.Fprintf(tw, "%s\t%s\n", r.Name, r.Value)
	}
	tw.Flush()
}
