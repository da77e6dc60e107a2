package app

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servicecordiale/cordiale/internal/catalog"
	"github.com/servicecordiale/cordiale/internal/router"
	"github.com/servicecordiale/cordiale/internal/screens/contact"
	"github.com/servicecordiale/cordiale/internal/screens/landing"
	"github.com/servicecordiale/cordiale/internal/store"
	"github.com/servicecordiale/cordiale/internal/theme"
	"github.com/servicecordiale/cordiale/internal/ui/styles"
)

func newTestApp(t *testing.T, skipIntro bool) (AppModel, *store.MemoryPreferences) {
	t.Helper()
	ctx := context.Background()

	prefs := store.NewMemoryPreferences()
	th := theme.New(prefs, theme.Fixed(true))
	th.Initialize(ctx)

	cat, err := catalog.Default()
	require.NoError(t, err)

	m, err := New(ctx, Options{Theme: th, Catalog: cat, SkipIntro: skipIntro})
	require.NoError(t, err)
	return m, prefs
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func TestNewRequiresDependencies(t *testing.T) {
	_, err := New(context.Background(), Options{})
	assert.Error(t, err)
}

func TestNewRejectsEmptyCatalog(t *testing.T) {
	th := theme.New(nil, theme.Fixed(false))
	_, err := New(context.Background(), Options{Theme: th, Catalog: &catalog.Catalog{}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrEmptyCatalog))
}

func TestInitActivatesLanding(t *testing.T) {
	m, _ := newTestApp(t, true)
	m.Init()

	l, ok := m.Router().Active().(*landing.Screen)
	require.True(t, ok)
	assert.True(t, l.AutoAdvancing())

	m.Router().Close()
	assert.False(t, l.AutoAdvancing())
}

func TestWelcomeHandsOverToLanding(t *testing.T) {
	m, _ := newTestApp(t, false)
	m.Init()

	m, cmd := update(t, m, tea.KeyPressMsg{Code: ' ', Text: " "})
	require.NotNil(t, cmd)
	msg := cmd()
	_, ok := msg.(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg, got %T", msg)

	m, _ = update(t, m, msg)
	l, ok := m.Router().Active().(*landing.Screen)
	require.True(t, ok)
	assert.True(t, l.AutoAdvancing())
}

func TestToggleThemePersistsAndRepaints(t *testing.T) {
	m, prefs := newTestApp(t, true)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	darkBg := m.View().BackgroundColor
	assert.Equal(t, styles.New(theme.DerivePalette(true)).Bg, darkBg)

	m, cmd := update(t, m, tea.KeyPressMsg{Code: 't', Text: "t"})
	assert.Nil(t, cmd)
	assert.False(t, m.theme.IsDark())

	v, found, err := prefs.Get(context.Background(), theme.PreferenceKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, theme.ModeLight, v)

	view := m.View()
	assert.Equal(t, styles.New(theme.DerivePalette(false)).Bg, view.BackgroundColor)
	assert.Equal(t, WindowTitle, view.WindowTitle)
}

func TestQuit(t *testing.T) {
	m, _ := newTestApp(t, true)
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestEscPopsOnlyAboveRoot(t *testing.T) {
	m, _ := newTestApp(t, true)
	m.Init()

	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)

	m, cmd = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	require.Equal(t, 2, m.Router().Depth())
	_, ok := m.Router().Active().(*contact.ContactScreen)
	require.True(t, ok)

	m, cmd = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, 1, m.Router().Depth())

	back, ok := m.Router().Active().(*landing.Screen)
	require.True(t, ok)
	assert.True(t, back.AutoAdvancing(), "revealed landing resumes its timer")
}

func TestContactPauseStopsTimer(t *testing.T) {
	m, _ := newTestApp(t, true)
	m.Init()
	l := m.Router().Active().(*landing.Screen)

	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	_, _ = update(t, m, cmd())
	assert.False(t, l.AutoAdvancing())
}

func TestRender(t *testing.T) {
	m, _ := newTestApp(t, true)
	assert.Empty(t, m.Render())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.Render(), "Terminal trop petit")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	out := m.Render()
	assert.Contains(t, out, "SERVICE CORDIALE")
	assert.Contains(t, out, landing.NavOffers)
	assert.Contains(t, out, landing.NavContact)
	assert.Contains(t, out, "clair", "dark mode offers the light toggle")
}
