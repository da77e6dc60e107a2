package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/servicecordiale/cordiale/internal/ui/styles"
)

// ContentWidth returns the uniform inner width used for page sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(st styles.Styles, content string, cw int) string {
	return st.Card.
		Width(cw).
		Align(lipgloss.Center).
		Render(content)
}

// ImageCard stands in for a photo: a small framed card carrying its alt
// text. tilt is the photo's rotation in degrees; it becomes a vertical
// offset so neighbouring cards stagger like the tilted originals.
func ImageCard(st styles.Styles, alt string, tilt, width int) string {
	if width < 8 {
		width = 8
	}
	card := lipgloss.NewStyle().
		Background(st.BgCard).
		Foreground(st.TextSoft).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(st.Accent).
		Width(width).
		Height(5).
		Align(lipgloss.Center, lipgloss.Center).
		Render("✦\n" + alt)

	offset := TiltOffset(tilt)
	return strings.Repeat("\n", offset) + card
}

// TiltOffset maps a rotation to a row offset in [0, 2].
func TiltOffset(tilt int) int {
	switch {
	case tilt <= -10:
		return 0
	case tilt < 10:
		return 1
	default:
		return 2
	}
}

// AccentBar is the solid accent band drawn under the hero, right-aligned
// across width.
func AccentBar(st styles.Styles, width int) string {
	if width <= 0 {
		return ""
	}
	bar := lipgloss.NewStyle().
		Background(st.Accent).
		Width(width * 11 / 20).
		Render("")
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, bar)
}

// SectionTitle renders a heading underlined by an accent rule.
func SectionTitle(st styles.Styles, title string) string {
	rule := st.Rule.Render(strings.Repeat("━", lipgloss.Width(title)))
	return lipgloss.JoinVertical(lipgloss.Center, st.Title.Render(title), rule)
}
