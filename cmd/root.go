package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "cordiale",
	Short:        "Service Cordiale, in your terminal",
	Long:         "Cordiale shows the Service Cordiale landing page: the hero, the rotating offers and how to get in touch.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite preference database (overrides CORDIALE_DB)")
	flags.String("catalog", "", "Path to a YAML offer catalog (overrides CORDIALE_CATALOG)")
	flags.Duration("interval", 0, "Time each offer stays on screen (overrides CORDIALE_INTERVAL)")
	flags.String("log-level", "", "Log level: trace, debug, info, warn, error (overrides CORDIALE_LOG_LEVEL)")
	flags.String("log-file", "", "Log file path (overrides CORDIALE_LOG_FILE)")
	flags.Bool("ephemeral", false, "Keep the theme preference in memory only")

	rootCmd.Flags().Bool("skip-intro", false, "Open directly on the landing page")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(offersCmd)
	rootCmd.AddCommand(previewCmd)
}
