package components

import (
	"strings"
	"time"
)

// Stagger schedules a sequence of items that appear one after another.
type Stagger struct {
	Delay time.Duration // before the first item
	Step  time.Duration // between consecutive items
}

// Visible reports how many of n items are shown after elapsed.
func (s Stagger) Visible(elapsed time.Duration, n int) int {
	if elapsed < s.Delay || n <= 0 {
		return 0
	}
	if s.Step <= 0 {
		return n
	}
	v := int((elapsed-s.Delay)/s.Step) + 1
	if v > n {
		return n
	}
	return v
}

// Done returns the time at which all n items are shown.
func (s Stagger) Done(n int) time.Duration {
	if n <= 0 {
		return s.Delay
	}
	return s.Delay + time.Duration(n-1)*s.Step
}

// RevealText shows the first visible runes of text. The rest are blanked
// so the line keeps its final width while it animates.
func RevealText(text string, visible int) string {
	r := []rune(text)
	if visible >= len(r) {
		return text
	}
	if visible < 0 {
		visible = 0
	}
	return string(r[:visible]) + strings.Repeat(" ", len(r)-visible)
}
