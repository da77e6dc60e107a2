// Package styles builds the lipgloss styles for one palette. Nothing here is
// global: screens build a Styles from the current palette when they render,
// so a theme toggle takes effect on the next frame.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/servicecordiale/cordiale/internal/theme"
	"github.com/servicecordiale/cordiale/internal/ui/colorx"
)

// Styles is every style the UI draws with.
type Styles struct {
	Palette theme.Palette

	// Resolved colors.
	Bg        color.Color
	BgAlt     color.Color
	BgCard    color.Color
	Text      color.Color
	TextSoft  color.Color
	TextMuted color.Color
	Accent    color.Color
	OnAccent  color.Color
	NavBg     color.Color
	NavText   color.Color
	Border    color.Color

	// Typography
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Hint     lipgloss.Style
	Emphasis lipgloss.Style

	// Layout
	Nav    lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
	Rule   lipgloss.Style

	// States
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Arrow       lipgloss.Style

	// Components
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
	ToggleDark     lipgloss.Style
	ToggleLight    lipgloss.Style
}

// New builds the styles for p.
func New(p theme.Palette) Styles {
	bgHex := p.BgPrimary.Base()
	navHex := colorx.Flatten(p.NavBg, bgHex)
	borderHex := colorx.Blend(p.TextMuted, bgHex, 0.5)

	s := Styles{
		Palette:   p,
		Bg:        lipgloss.Color(bgHex),
		BgAlt:     lipgloss.Color(p.BgSecondary),
		BgCard:    lipgloss.Color(p.BgCard),
		Text:      lipgloss.Color(p.TextPrimary),
		TextSoft:  lipgloss.Color(p.TextSecondary),
		TextMuted: lipgloss.Color(p.TextMuted),
		Accent:    lipgloss.Color(p.Accent),
		OnAccent:  lipgloss.Color(p.OnAccent),
		NavBg:     lipgloss.Color(navHex),
		NavText:   lipgloss.Color(p.NavText),
		Border:    lipgloss.Color(borderHex),
	}

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.Text).
		Align(lipgloss.Center)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(s.Accent).
		Italic(true).
		Align(lipgloss.Center)

	s.Body = lipgloss.NewStyle().
		Foreground(s.TextSoft)

	s.Muted = lipgloss.NewStyle().
		Foreground(s.TextMuted)

	s.Hint = lipgloss.NewStyle().
		Foreground(s.TextMuted).
		Italic(true)

	s.Emphasis = lipgloss.NewStyle().
		Foreground(s.Accent).
		Bold(true)

	s.Nav = lipgloss.NewStyle().
		Background(s.NavBg).
		Foreground(s.NavText).
		Padding(0, 2)

	s.Footer = lipgloss.NewStyle().
		Background(s.BgAlt).
		Foreground(s.TextMuted).
		Padding(0, 2)

	s.Card = lipgloss.NewStyle().
		Background(s.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Border).
		Padding(1, 2)

	s.Rule = lipgloss.NewStyle().
		Foreground(s.Accent)

	s.TabActive = lipgloss.NewStyle().
		Foreground(s.Text).
		Bold(true).
		Underline(true)

	s.TabInactive = lipgloss.NewStyle().
		Foreground(s.TextMuted)

	s.Arrow = lipgloss.NewStyle().
		Foreground(s.Accent).
		Bold(true)

	s.ButtonActive = lipgloss.NewStyle().
		Background(s.Accent).
		Foreground(s.OnAccent).
		Bold(true).
		Padding(0, 2)

	s.ButtonInactive = lipgloss.NewStyle().
		Foreground(s.Accent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Accent).
		Padding(0, 2)

	// The toggle shows the mode it switches to.
	s.ToggleDark = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.AccentColor)).
		Foreground(lipgloss.Color("#0F172A")).
		Padding(0, 1)

	s.ToggleLight = lipgloss.NewStyle().
		Background(lipgloss.Color("#1E293B")).
		Foreground(lipgloss.Color(theme.AccentColor)).
		Padding(0, 1)

	return s
}

// For returns the styles for the reader's current palette.
func For(r theme.Reader) Styles {
	return New(r.Palette())
}

// Background returns n rows of the primary gradient, top to bottom.
func (s Styles) Background(n int) []color.Color {
	hexes := colorx.Ramp(s.Palette.BgPrimary[:], n)
	out := make([]color.Color, len(hexes))
	for i, h := range hexes {
		out[i] = lipgloss.Color(h)
	}
	return out
}
