package cmd

import (
	"github.com/spf13/cobra"

	"github.com/servicecordiale/cordiale/internal/app"
)

// runApp resolves configuration, opens the preference store, loads the
// catalog and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	cat, err := loadCatalog(e.cfg)
	if err != nil {
		e.log.Error(err, "load catalog")
		return err
	}
	e.log.WithFields(map[string]any{"source": cat.Source(), "offers": cat.Len()}).Info("catalog loaded")

	skipIntro, _ := cmd.Flags().GetBool("skip-intro")
	return app.Run(ctx, app.Options{
		Theme:     newTheme(ctx, e, nil),
		Catalog:   cat,
		Interval:  e.cfg.Interval,
		Logger:    e.log,
		SkipIntro: skipIntro,
	})
}
