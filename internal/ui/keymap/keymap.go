// Package keymap holds the key bindings shared by every screen.
package keymap

import (
	"fmt"

	"charm.land/bubbles/v2/key"

	"github.com/servicecordiale/cordiale/internal/ui/layout"
)

// KeyMap defines all the keybindings for the application.
type KeyMap struct {
	// Global keys
	Quit        key.Binding
	Back        key.Binding
	ToggleTheme key.Binding

	// Carousel
	Prev key.Binding
	Next key.Binding
	GoTo key.Binding

	// Sections
	NextSection key.Binding
	PrevSection key.Binding
	Activate    key.Binding
}

// Default returns the default bindings.
func Default() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quitter"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "retour"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "thème"),
		),

		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "précédent"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "suivant"),
		),
		GoTo: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "offre"),
		),

		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "section précédente"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "valider"),
		),
	}
}

// Digit returns the zero-based offer index for a GoTo key, or false when
// k is not a digit 1-9.
func Digit(k fmt.Stringer) (int, bool) {
	s := k.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}

// Hints converts enabled bindings into footer hints.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
