package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/servicecordiale/cordiale/internal/ui/styles"
)

// Tabs is a horizontal row of labels with one selected.
type Tabs struct {
	Labels   []string
	Selected int
}

// NewTabs creates tabs with the first label selected.
func NewTabs(labels []string) Tabs {
	return Tabs{Labels: labels}
}

// Select moves the selection, wrapping around both ends.
func (t Tabs) Select(i int) Tabs {
	n := len(t.Labels)
	if n == 0 {
		return t
	}
	t.Selected = ((i % n) + n) % n
	return t
}

// Next selects the following tab.
func (t Tabs) Next() Tabs { return t.Select(t.Selected + 1) }

// Prev selects the preceding tab.
func (t Tabs) Prev() Tabs { return t.Select(t.Selected - 1) }

// View renders the tabs, fitting width when it is positive. Unselected
// labels are truncated first when the row is too wide.
func (t Tabs) View(st styles.Styles, width int) string {
	labels := t.Labels
	if width > 0 {
		labels = fitLabels(labels, t.Selected, width)
	}

	parts := make([]string, 0, len(labels))
	for i, l := range labels {
		if i == t.Selected {
			parts = append(parts, st.TabActive.Render(l))
		} else {
			parts = append(parts, st.TabInactive.Render(l))
		}
	}
	sep := st.Muted.Render(" │ ")
	return strings.Join(parts, sep)
}

func fitLabels(labels []string, selected, width int) []string {
	total := func(ls []string) int {
		w := 0
		for _, l := range ls {
			w += lipgloss.Width(l)
		}
		return w + 3*(len(ls)-1)
	}
	if len(labels) == 0 || total(labels) <= width {
		return labels
	}

	out := make([]string, len(labels))
	copy(out, labels)
	for limit := 12; limit >= 4 && total(out) > width; limit-- {
		for i := range out {
			if i != selected {
				out[i] = Truncate(labels[i], limit)
			}
		}
	}
	return out
}

// Truncate shortens s to at most n cells, ending with an ellipsis.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return ansi.Truncate(s, n, "…")
}
