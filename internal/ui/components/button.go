package components

import (
	"github.com/servicecordiale/cordiale/internal/ui/styles"
)

// Button is a styled button component.
type Button struct {
	Label   string
	Focused bool
}

// NewButton creates a new button.
func NewButton(label string, focused bool) Button {
	return Button{Label: label, Focused: focused}
}

// View renders the button.
func (b Button) View(st styles.Styles) string {
	if b.Focused {
		return st.ButtonActive.Render("▸ " + b.Label)
	}
	return st.ButtonInactive.Render(b.Label)
}
