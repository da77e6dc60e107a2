package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/servicecordiale/cordiale/internal/carousel"
	"github.com/servicecordiale/cordiale/internal/catalog"
	"github.com/servicecordiale/cordiale/internal/logging"
	"github.com/servicecordiale/cordiale/internal/router"
	"github.com/servicecordiale/cordiale/internal/screen"
	"github.com/servicecordiale/cordiale/internal/screens/contact"
	"github.com/servicecordiale/cordiale/internal/screens/landing"
	"github.com/servicecordiale/cordiale/internal/screens/welcome"
	"github.com/servicecordiale/cordiale/internal/theme"
	"github.com/servicecordiale/cordiale/internal/ui/keymap"
	"github.com/servicecordiale/cordiale/internal/ui/layout"
	"github.com/servicecordiale/cordiale/internal/ui/styles"
)

// WindowTitle is set on the terminal while the app runs.
const WindowTitle = "Service Cordiale"

// Options configures the application.
type Options struct {
	Theme    *theme.Store
	Catalog  *catalog.Catalog
	Interval time.Duration
	Logger   *logging.Logger

	// SkipIntro opens straight on the landing page, fully revealed.
	SkipIntro bool
}

// marker mirrors the theme for the root view. It is updated through the
// theme store's subscription, so every toggle lands here.
type marker struct {
	dark bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx    context.Context
	theme  *theme.Store
	router *router.Router
	keys   keymap.KeyMap
	log    *logging.Logger
	marker *marker
	width  int
	height int
}

// New builds the root model. It fails when the catalog is empty.
func New(ctx context.Context, opts Options) (AppModel, error) {
	if opts.Theme == nil {
		return AppModel{}, errors.New("app: theme store is required")
	}
	if opts.Catalog == nil {
		return AppModel{}, errors.New("app: catalog is required")
	}

	c, err := carousel.New(opts.Catalog.Items())
	if err != nil {
		return AppModel{}, fmt.Errorf("build carousel from %s: %w", opts.Catalog.Source(), err)
	}

	keys := keymap.Default()
	mk := &marker{dark: opts.Theme.IsDark()}
	opts.Theme.Subscribe(func(dark bool) { mk.dark = dark })

	contactFactory := func(offer *catalog.OfferItem) screen.Screen {
		return contact.New(opts.Theme, offer)
	}
	newLanding := func() *landing.Screen {
		return landing.New(landing.Deps{
			Theme:    opts.Theme,
			Carousel: c,
			Auto:     carousel.NewAutoAdvance(c, opts.Interval),
			Keys:     keys,
			Contact:  contactFactory,
			Log:      opts.Logger,
		})
	}

	var initial screen.Screen
	if opts.SkipIntro {
		initial = newLanding().SkipReveal()
	} else {
		initial = welcome.New(opts.Theme, func() screen.Screen { return newLanding() })
	}

	return AppModel{
		ctx:    ctx,
		theme:  opts.Theme,
		router: router.New(initial),
		keys:   keys,
		log:    opts.Logger,
		marker: mk,
	}, nil
}

// Router exposes the screen stack.
func (m AppModel) Router() *router.Router {
	return m.router
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Start()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		case key.Matches(msg, m.keys.ToggleTheme):
			dark := m.theme.Toggle(m.ctx)
			m.log.WithFields(map[string]any{"mode": theme.ModeString(dark)}).Info("theme toggled")
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.WindowTitle = WindowTitle

	st := styles.New(theme.DerivePalette(m.marker.dark))
	v.BackgroundColor = st.Bg
	v.ForegroundColor = st.Text

	v.SetContent(m.Render())
	return v
}

// Render draws the current frame as a string.
func (m AppModel) Render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	st := styles.New(theme.DerivePalette(m.marker.dark))

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(st, m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	links := make([]layout.NavLink, len(landing.NavLabels))
	for i, label := range landing.NavLabels {
		links[i] = layout.NavLink{Label: label, Active: label == title}
	}
	header := layout.RenderHeader(st, links, m.marker.dark, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else {
		footerHints = keymap.Hints(m.keys.Back, m.keys.ToggleTheme, m.keys.Quit)
	}
	footer := layout.RenderFooter(st, footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(st, header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	m, err := New(ctx, opts)
	if err != nil {
		return err
	}
	defer m.router.Close()

	opts.Logger.Info("ui starting")
	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	opts.Logger.Info("ui stopped")
	return nil
}
