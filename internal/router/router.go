package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/servicecordiale/cordiale/internal/screen"
)

// PushScreenMsg requests the router to push a new screen onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// ReplaceScreenMsg requests the router to swap the top screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router manages a stack of screens. Only the top screen is active; screens
// implementing screen.Lifecycle are told when that changes.
type Router struct {
	stack   []screen.Screen
	started bool
}

// New creates a new Router with the given initial screen. The screen is
// not initialized until Start.
func New(initial screen.Screen) *Router {
	return &Router{
		stack: []screen.Screen{initial},
	}
}

// Start initializes and activates the initial screen. Later calls are
// no-ops.
func (r *Router) Start() tea.Cmd {
	if r.started || len(r.stack) == 0 {
		return nil
	}
	r.started = true
	return r.enter(r.Active())
}

// Push adds a screen on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.leave(r.Active())
	r.stack = append(r.stack, s)
	r.started = true
	return r.enter(s)
}

// Pop removes the top screen. No-op if stack depth would become 0.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.leave(r.Active())
	r.stack = r.stack[:len(r.stack)-1]
	return activate(r.Active())
}

// Replace swaps the top screen for s and calls its Init().
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	r.leave(r.Active())
	r.stack[len(r.stack)-1] = s
	r.started = true
	return r.enter(s)
}

// Close deactivates the top screen. The router must not be used after.
func (r *Router) Close() {
	r.leave(r.Active())
	r.started = false
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}

func (r *Router) enter(s screen.Screen) tea.Cmd {
	if s == nil {
		return nil
	}
	return tea.Batch(s.Init(), activate(s))
}

// leave deactivates s, but only once the router has started: before that
// nothing was activated.
func (r *Router) leave(s screen.Screen) {
	if !r.started || s == nil {
		return
	}
	if lc, ok := s.(screen.Lifecycle); ok {
		lc.Deactivate()
	}
}

func activate(s screen.Screen) tea.Cmd {
	if lc, ok := s.(screen.Lifecycle); ok {
		return lc.Activate()
	}
	return nil
}
