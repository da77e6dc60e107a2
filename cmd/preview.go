package cmd

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/servicecordiale/cordiale/internal/app"
	"github.com/servicecordiale/cordiale/internal/catalog"
	"github.com/servicecordiale/cordiale/internal/theme"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print one frame of the landing page (no terminal needed)",
	Long: `Render the landing page at a fixed size and print it.

This is a stateless tool: the saved theme is neither read nor written.
Useful for checking layouts and palettes in CI or a pager.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("width", 100, "Frame width in columns")
	previewCmd.Flags().Int("height", 32, "Frame height in rows")
	previewCmd.Flags().String("mode", theme.ModeDark, "Theme mode: dark or light")
	previewCmd.Flags().String("section", "hero", "Section to show: hero or offers")
	previewCmd.Flags().Int("offer", 1, "Offer to show in the offers section (1-based)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	width, _ := flags.GetInt("width")
	height, _ := flags.GetInt("height")
	modeVal, _ := flags.GetString("mode")
	section, _ := flags.GetString("section")
	offer, _ := flags.GetInt("offer")

	dark, ok := theme.ParseMode(modeVal)
	if !ok {
		return fmt.Errorf("invalid mode %q: must be dark or light", modeVal)
	}
	if section != "hero" && section != "offers" {
		return fmt.Errorf("invalid section %q: must be hero or offers", section)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	frame, err := renderPreview(cmd.Context(), cat, dark, section, offer, width, height)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), frame)
	return nil
}

// renderPreview drives the root model with synthetic messages and returns
// the resulting frame. Commands are never run, so no timer starts.
func renderPreview(ctx context.Context, cat *catalog.Catalog, dark bool, section string, offer, width, height int) (string, error) {
	th := theme.New(nil, theme.Fixed(dark))
	th.Initialize(ctx)

	m, err := app.New(ctx, app.Options{Theme: th, Catalog: cat, SkipIntro: true})
	if err != nil {
		return "", err
	}

	var model tea.Model = m
	model, _ = model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	if section == "offers" {
		if offer < 1 || offer > cat.Len() || offer > 9 {
			return "", fmt.Errorf("offer %d out of range 1..%d", offer, min(cat.Len(), 9))
		}
		d := rune('0' + offer)
		model, _ = model.Update(tea.KeyPressMsg{Code: d, Text: string(d)})
	}
	return model.(app.AppModel).Render(), nil
}
