// Package landing renders the page itself: the hero and the offers
// carousel. The carousel only auto-advances while this screen is on top.
package landing

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/servicecordiale/cordiale/internal/carousel"
	"github.com/servicecordiale/cordiale/internal/catalog"
	"github.com/servicecordiale/cordiale/internal/logging"
	"github.com/servicecordiale/cordiale/internal/router"
	"github.com/servicecordiale/cordiale/internal/screen"
	"github.com/servicecordiale/cordiale/internal/theme"
	"github.com/servicecordiale/cordiale/internal/ui/components"
	"github.com/servicecordiale/cordiale/internal/ui/keymap"
	"github.com/servicecordiale/cordiale/internal/ui/layout"
	"github.com/servicecordiale/cordiale/internal/ui/styles"
)

// Section is the part of the page in view.
type Section int

const (
	SectionHero Section = iota
	SectionOffers
)

const revealTick = 50 * time.Millisecond

var (
	imageStagger = components.Stagger{Delay: 600 * time.Millisecond, Step: 170 * time.Millisecond}
	aboutStagger = components.Stagger{Delay: 1300 * time.Millisecond, Step: 150 * time.Millisecond}
)

type revealMsg struct{}

// ContactFactory builds the contact screen. offer is nil when the visitor
// asks to get in touch without picking an offer.
type ContactFactory func(offer *catalog.OfferItem) screen.Screen

// Deps is everything the landing screen needs.
type Deps struct {
	Theme    theme.Reader
	Carousel *carousel.Carousel
	Auto     *carousel.AutoAdvance
	Keys     keymap.KeyMap
	Contact  ContactFactory
	Log      *logging.Logger
}

// Screen is the landing page.
type Screen struct {
	deps    Deps
	section Section
	elapsed time.Duration
}

var (
	_ screen.Screen    = (*Screen)(nil)
	_ screen.Lifecycle = (*Screen)(nil)
)

// New creates the landing screen on the hero section.
func New(deps Deps) *Screen {
	if deps.Auto == nil {
		deps.Auto = carousel.NewAutoAdvance(deps.Carousel, carousel.DefaultInterval)
	}
	return &Screen{deps: deps}
}

// SkipReveal shows the hero fully revealed, as after its entrance.
func (s *Screen) SkipReveal() *Screen {
	s.elapsed = s.revealDone()
	return s
}

// Section returns the section in view.
func (s *Screen) Section() Section {
	return s.section
}

// Carousel exposes the carousel driven by this screen.
func (s *Screen) Carousel() *carousel.Carousel {
	return s.deps.Carousel
}

// AutoAdvancing reports whether the auto-advance timer is held.
func (s *Screen) AutoAdvancing() bool {
	return s.deps.Auto.Running()
}

func (s *Screen) Title() string {
	if s.section == SectionOffers {
		return NavOffers
	}
	return NavHome
}

func (s *Screen) Init() tea.Cmd {
	if s.elapsed >= s.revealDone() {
		return nil
	}
	return revealAfter()
}

func revealAfter() tea.Cmd {
	return tea.Tick(revealTick, func(time.Time) tea.Msg { return revealMsg{} })
}

// Activate acquires the auto-advance timer.
func (s *Screen) Activate() tea.Cmd {
	s.deps.Log.WithFields(map[string]any{"interval": s.deps.Auto.Interval().String()}).Debug("carousel auto-advance started")
	return s.deps.Auto.Start()
}

// Deactivate releases the timer. A reveal still in progress is completed
// because its ticks will be routed elsewhere while covered.
func (s *Screen) Deactivate() {
	s.deps.Auto.Stop()
	s.elapsed = s.revealDone()
	s.deps.Log.Debug("carousel auto-advance stopped")
}

func (s *Screen) revealDone() time.Duration {
	return aboutStagger.Done(len(aboutText))
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if advanced, cmd := s.deps.Auto.Update(msg); advanced || cmd != nil {
		return s, cmd
	}

	switch msg := msg.(type) {
	case revealMsg:
		if s.elapsed >= s.revealDone() {
			return s, nil
		}
		s.elapsed += revealTick
		return s, revealAfter()

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	km := s.deps.Keys
	c := s.deps.Carousel

	switch {
	case key.Matches(msg, km.NextSection):
		if s.section == SectionOffers {
			return s.openContact(nil)
		}
		s.section = SectionOffers

	case key.Matches(msg, km.PrevSection):
		if s.section == SectionHero {
			return s.openContact(nil)
		}
		s.section = SectionHero

	case key.Matches(msg, km.GoTo):
		if i, ok := keymap.Digit(msg); ok && i < c.Len() {
			c.GoTo(i)
			s.section = SectionOffers
		}

	case s.section == SectionOffers && key.Matches(msg, km.Prev):
		c.Retreat()

	case s.section == SectionOffers && key.Matches(msg, km.Next):
		c.Advance()

	case key.Matches(msg, km.Activate):
		if s.section == SectionOffers {
			offer := c.Current()
			return s.openContact(&offer)
		}
		return s.openContact(nil)
	}
	return nil
}

func (s *Screen) openContact(offer *catalog.OfferItem) tea.Cmd {
	if s.deps.Contact == nil {
		return nil
	}
	if offer != nil {
		s.deps.Log.WithFields(map[string]any{"offer_id": offer.ID, "offer": offer.Name}).Info("order requested")
	}
	next := s.deps.Contact(offer)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *Screen) KeyHints() []layout.KeyHint {
	km := s.deps.Keys
	if s.section == SectionOffers {
		return keymap.Hints(km.Prev, km.Next, km.GoTo, km.Activate, km.NextSection, km.ToggleTheme, km.Quit)
	}
	return keymap.Hints(km.NextSection, km.Activate, km.ToggleTheme, km.Quit)
}

func (s *Screen) View(width, height int) string {
	st := styles.For(s.deps.Theme)
	var content string
	if s.section == SectionOffers {
		content = s.offersView(st, width, height)
	} else {
		content = s.heroView(st, width, height)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *Screen) heroView(st styles.Styles, width, height int) string {
	cw := components.ContentWidth(width)

	head := lipgloss.JoinVertical(lipgloss.Center,
		st.Title.Render(heroTitle),
		"",
		st.Subtitle.Render(heroSubtitle1),
		st.Subtitle.Render(heroSubtitle2),
	)

	cardWidth := cw/len(heroImages) - 3
	shown := imageStagger.Visible(s.elapsed, len(heroImages))
	cards := make([]string, len(heroImages))
	for i, img := range heroImages {
		card := components.ImageCard(st, img.alt, img.tilt, cardWidth)
		if i >= shown {
			card = blank(card)
		}
		cards[i] = card
	}
	gallery := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	sections := []string{head, "", gallery, components.AccentBar(st, cw)}

	about := s.aboutView(st, cw)
	used := lipgloss.Height(strings.Join(sections, "\n"))
	if used+1+lipgloss.Height(about) <= height {
		sections = append(sections, "", about)
	}

	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func (s *Screen) aboutView(st styles.Styles, cw int) string {
	shown := aboutStagger.Visible(s.elapsed, len(aboutText))
	paras := make([]string, 0, len(aboutText)+1)
	for i, text := range aboutText {
		p := st.Body.Width(cw).Render(text)
		if i >= shown {
			p = blank(p)
		}
		paras = append(paras, p)
	}
	button := components.NewButton(contactLabel, s.section == SectionHero).View(st)
	if shown < len(aboutText) {
		button = blank(button)
	}
	paras = append(paras, button)
	return lipgloss.JoinVertical(lipgloss.Left, paras...)
}

func (s *Screen) offersView(st styles.Styles, width, height int) string {
	cw := components.ContentWidth(width)
	c := s.deps.Carousel

	names := make([]string, c.Len())
	for i, item := range c.Items() {
		names[i] = item.Name
	}
	tabs := components.NewTabs(names).Select(c.Index()).View(st, cw)

	prev := st.Arrow.Render("‹ ") + st.Body.Render(c.Previous().Name)
	next := st.Body.Render(c.Next().Name) + st.Arrow.Render(" ›")
	gap := cw - lipgloss.Width(prev) - lipgloss.Width(next)
	if gap < 1 {
		gap = 1
	}
	neighbours := prev + strings.Repeat(" ", gap) + next

	cur := c.Current()
	detail := lipgloss.JoinVertical(lipgloss.Left,
		st.Emphasis.Render(cur.Name),
		st.Title.Align(lipgloss.Left).Render(cur.Title),
		"",
		st.Body.Width(cw-6).Render(cur.Description),
		"",
		st.Muted.Render("▣ "+cur.ImageRef),
	)
	card := components.Card(st, detail, cw-4)
	card = lipgloss.NewStyle().Align(lipgloss.Left).Render(card)

	status := st.Muted.Render(fmt.Sprintf("%d / %d", c.Index()+1, c.Len())) + "  " + dots(st, c.Index(), c.Len())
	if s.deps.Auto.Running() {
		status += st.Muted.Render(fmt.Sprintf("  ⟳ %s", s.deps.Auto.Interval()))
	}

	order := components.NewButton(orderLabel, true).View(st)

	sections := []string{
		components.SectionTitle(st, offersTitle),
		"",
		tabs,
		"",
		neighbours,
		card,
		status,
	}
	if lipgloss.Height(strings.Join(sections, "\n"))+lipgloss.Height(order) < height {
		sections = append(sections, order)
	}
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func dots(st styles.Styles, current, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		if i == current {
			b.WriteString(st.Emphasis.Render("●"))
		} else {
			b.WriteString(st.Muted.Render("○"))
		}
	}
	return b.String()
}

// blank keeps a block's footprint while hiding it.
func blank(block string) string {
	w := lipgloss.Width(block)
	h := lipgloss.Height(block)
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
