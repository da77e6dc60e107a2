package theme

import (
	"os"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"golang.org/x/term"
)

// PrefersDarkEnv overrides terminal background detection when set to a
// boolean value.
const PrefersDarkEnv = "CORDIALE_PREFERS_DARK"

// Detector reports the environment's dark-mode preference.
type Detector interface {
	PrefersDark() bool
}

// DetectorFunc adapts a function to Detector.
type DetectorFunc func() bool

func (f DetectorFunc) PrefersDark() bool { return f() }

// Fixed returns a Detector that always reports dark.
func Fixed(dark bool) Detector {
	return DetectorFunc(func() bool { return dark })
}

// EnvDetector reads the preference from PrefersDarkEnv, then from the
// terminal's background color. Anything undetermined counts as light.
type EnvDetector struct {
	// Lookup defaults to os.LookupEnv.
	Lookup func(string) (string, bool)
	// Background defaults to querying the terminal on stdin/stdout.
	Background func() bool
}

func (d EnvDetector) PrefersDark() bool {
	lookup := d.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if raw, ok := lookup(PrefersDarkEnv); ok {
		if v, err := strconv.ParseBool(strings.TrimSpace(raw)); err == nil {
			return v
		}
	}

	bg := d.Background
	if bg == nil {
		bg = terminalIsDark
	}
	return bg()
}

func terminalIsDark() bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	return lipgloss.HasDarkBackground(os.Stdin, os.Stdout)
}
