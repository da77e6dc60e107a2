package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/servicecordiale/cordiale/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name. The navigation bar highlights the
	// link with the same label.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Lifecycle is implemented by screens that hold resources, such as timers,
// only while they are the visible screen. Activate runs every time the
// screen becomes the top of the stack and Deactivate every time it stops
// being it. Calls strictly alternate.
type Lifecycle interface {
	Activate() tea.Cmd
	Deactivate()
}
