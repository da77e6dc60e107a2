package contact

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/servicecordiale/cordiale/internal/catalog"
	"github.com/servicecordiale/cordiale/internal/screen"
	"github.com/servicecordiale/cordiale/internal/theme"
	"github.com/servicecordiale/cordiale/internal/ui/components"
	"github.com/servicecordiale/cordiale/internal/ui/layout"
	"github.com/servicecordiale/cordiale/internal/ui/styles"
)

// WhatsAppURL is where orders and questions go.
const WhatsAppURL = "https://wa.me/237690271950"

// ContactScreen shows how to reach the business, and the offer being
// ordered when there is one.
type ContactScreen struct {
	theme theme.Reader
	offer *catalog.OfferItem
}

var _ screen.Screen = (*ContactScreen)(nil)

// New creates a ContactScreen. offer may be nil.
func New(r theme.Reader, offer *catalog.OfferItem) *ContactScreen {
	return &ContactScreen{theme: r, offer: offer}
}

// Offer returns the offer being ordered, if any.
func (c *ContactScreen) Offer() *catalog.OfferItem {
	return c.offer
}

func (c *ContactScreen) Init() tea.Cmd {
	return nil
}

func (c *ContactScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return c, nil
}

func (c *ContactScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "esc", Description: "retour"},
		{Key: "t", Description: "thème"},
		{Key: "ctrl+c", Description: "quitter"},
	}
}

func (c *ContactScreen) View(width, height int) string {
	st := styles.For(c.theme)
	cw := components.ContentWidth(width)

	sections := []string{components.SectionTitle(st, "Contact"), ""}

	if c.offer != nil {
		order := lipgloss.JoinVertical(lipgloss.Left,
			st.Muted.Render("Votre commande"),
			st.Emphasis.Render(c.offer.Name),
			st.Body.Render(c.offer.Title),
		)
		sections = append(sections, components.Card(st, order, cw-4), "")
	}

	sections = append(sections,
		st.Body.Render("Écrivez-nous sur WhatsApp :"),
		st.Emphasis.Render(WhatsAppURL),
		"",
		components.NewButton("Nous contacter", true).View(st),
	)

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (c *ContactScreen) Title() string {
	return "Contact"
}
