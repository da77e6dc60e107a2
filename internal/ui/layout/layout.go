package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/servicecordiale/cordiale/internal/ui/styles"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// Brand is the name shown at the left of the navigation bar.
const Brand = "SERVICE CORDIALE"

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// NavLink is one entry of the navigation bar.
type NavLink struct {
	Label  string
	Active bool
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight returns true if the terminal height is in compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the available height for screen content.
func ContentHeight(totalHeight int) int {
	h := totalHeight - HeaderHeight - FooterHeight
	if h < 0 {
		return 0
	}
	return h
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(st styles.Styles, width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(st.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal trop petit\n\nAgrandissez-le à au moins %d x %d\n\nActuel : %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// ThemeIndicator is the toggle glyph: it shows the mode a press switches to.
func ThemeIndicator(st styles.Styles, dark bool) string {
	if dark {
		return st.ToggleDark.Render("☀ clair")
	}
	return st.ToggleLight.Render("☾ sombre")
}

// RenderHeader renders the navigation bar: brand, links and theme toggle.
func RenderHeader(st styles.Styles, links []NavLink, dark bool, width int) string {
	bar := lipgloss.NewStyle().Background(st.NavBg)

	left := bar.Foreground(st.Accent).Bold(true).Render(Brand)

	parts := make([]string, 0, len(links))
	for _, l := range links {
		if l.Active {
			parts = append(parts, bar.Inherit(st.TabActive).Render(l.Label))
		} else {
			parts = append(parts, bar.Foreground(st.NavText).Render(l.Label))
		}
	}
	center := strings.Join(parts, bar.Render("   "))

	right := ThemeIndicator(st, dark)

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := width - 6 // border and padding
	if innerWidth < 0 {
		innerWidth = 0
	}

	leftGap := (innerWidth-centerLen)/2 - leftLen
	if leftGap < 1 {
		leftGap = 1
	}
	rightGap := innerWidth - leftLen - leftGap - centerLen - rightLen
	if rightGap < 1 {
		rightGap = 1
	}

	content := left + bar.Render(strings.Repeat(" ", leftGap)) + center + bar.Render(strings.Repeat(" ", rightGap)) + right

	return st.Nav.
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(st.Border).
		BorderBackground(st.Bg).
		Render(content)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(st styles.Styles, hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Background(st.BgAlt).Foreground(st.Text).Bold(true)
	desc := lipgloss.NewStyle().Background(st.BgAlt).Foreground(st.TextMuted)
	gap := lipgloss.NewStyle().Background(st.BgAlt).Render("   ")

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, key.Render(h.Key)+desc.Render(" "+h.Description))
	}

	return st.Footer.
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(st.Border).
		BorderBackground(st.Bg).
		Render(strings.Join(parts, gap))
}

// RenderFrame composes the full frame: header + content + footer. The body
// is painted row by row with the primary background gradient.
func RenderFrame(st styles.Styles, header, content, footer string, width, height int) string {
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)

	contentHeight := height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	rows := strings.Split(body, "\n")
	bg := st.Background(len(rows))
	for i, row := range rows {
		rows[i] = lipgloss.NewStyle().
			Width(width).
			Background(bg[i]).
			Render(row)
	}

	return header + "\n" + strings.Join(rows, "\n") + "\n" + footer
}
