package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/servicecordiale/cordiale/internal/router"
	"github.com/servicecordiale/cordiale/internal/screen"
	"github.com/servicecordiale/cordiale/internal/theme"
	"github.com/servicecordiale/cordiale/internal/ui/components"
	"github.com/servicecordiale/cordiale/internal/ui/layout"
	"github.com/servicecordiale/cordiale/internal/ui/styles"
)

const (
	tickInterval = 50 * time.Millisecond
	totalDur     = 1600 * time.Millisecond
)

// Headline is revealed character by character.
const Headline = "SERVICE CORDIALE"

// Tagline lines fade in one after the other once most of the headline is out.
var Tagline = []string{
	"Offrez plus qu'un cadeau, Offrez une émotion.",
	"Service Cordial, l'art de faire plaisir.",
}

var (
	titleStagger = components.Stagger{Step: 40 * time.Millisecond}
	lineStagger  = components.Stagger{Delay: 600 * time.Millisecond, Step: 100 * time.Millisecond}
	hintAt       = 1100 * time.Millisecond
)

type tickMsg time.Time

// WelcomeScreen plays the hero entrance before handing over to the landing
// page.
type WelcomeScreen struct {
	theme        theme.Reader
	nextFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by next.
func New(r theme.Reader, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		theme:       r,
		nextFactory: next,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned || w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		if w.elapsed >= totalDur {
			w.elapsed = totalDur
			return w, nil
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

// Done reports whether the entrance has fully played.
func (w *WelcomeScreen) Done() bool {
	return w.elapsed >= totalDur
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.nextFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "une touche", Description: "entrer"},
		{Key: "t", Description: "thème"},
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	st := styles.For(w.theme)

	chars := titleStagger.Visible(w.elapsed, len([]rune(Headline)))
	title := st.Title.Render(components.RevealText(Headline, chars))

	sections := []string{title, ""}

	lines := lineStagger.Visible(w.elapsed, len(Tagline))
	for i, line := range Tagline {
		if i < lines {
			sections = append(sections, st.Subtitle.Render(line))
		} else {
			sections = append(sections, "")
		}
	}

	sections = append(sections, "", st.Rule.Render(strings.Repeat("━", len([]rune(Headline)))), "")

	if w.elapsed >= hintAt {
		sections = append(sections, st.Hint.Render("appuyez sur une touche pour continuer"))
	} else {
		sections = append(sections, "")
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
