package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/servicecordiale/cordiale/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
}

// lifecycleScreen records activation calls in a shared log.
type lifecycleScreen struct {
	stubScreen
	log    *[]string
	active bool
}

func (s *lifecycleScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }

func (s *lifecycleScreen) Activate() tea.Cmd {
	s.active = true
	*s.log = append(*s.log, "activate "+s.title)
	return nil
}

func (s *lifecycleScreen) Deactivate() {
	s.active = false
	*s.log = append(*s.log, "deactivate "+s.title)
}

func newLifecycle(title string, log *[]string) *lifecycleScreen {
	return &lifecycleScreen{stubScreen: stubScreen{title: title}, log: log}
}

func TestStartActivatesInitialOnce(t *testing.T) {
	var log []string
	s1 := newLifecycle("first", &log)
	r := New(s1)

	if s1.active {
		t.Fatal("screen must not be active before Start")
	}
	r.Start()
	r.Start()

	if !s1.initRan || !s1.active {
		t.Error("expected Start to init and activate the initial screen")
	}
	if len(log) != 1 {
		t.Errorf("expected one activation, got %v", log)
	}
}

func TestLifecycleOrder(t *testing.T) {
	var log []string
	s1 := newLifecycle("first", &log)
	s2 := newLifecycle("second", &log)
	s3 := newLifecycle("third", &log)

	r := New(s1)
	r.Start()
	r.Push(s2)
	r.Replace(s3)
	r.Pop()
	r.Close()

	want := []string{
		"activate first",
		"deactivate first",
		"activate second",
		"deactivate second",
		"activate third",
		"deactivate third",
		"activate first",
		"deactivate first",
	}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("step %d: expected %q, got %q", i, want[i], log[i])
		}
	}
	if s1.active || s2.active || s3.active {
		t.Error("no screen should be active after Close")
	}
}

func TestPopAtBottomKeepsActive(t *testing.T) {
	var log []string
	s1 := newLifecycle("first", &log)
	r := New(s1)
	r.Start()

	r.Update(PopScreenMsg{})

	if !s1.active {
		t.Error("bottom screen should stay active")
	}
	if len(log) != 1 {
		t.Errorf("expected no extra lifecycle calls, got %v", log)
	}
}

func TestCloseTwiceIsNoop(t *testing.T) {
	var log []string
	r := New(newLifecycle("first", &log))
	r.Start()
	r.Close()
	r.Close()

	if len(log) != 2 {
		t.Errorf("expected activate+deactivate only, got %v", log)
	}
}
