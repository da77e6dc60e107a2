package carousel

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
)

// DefaultInterval is how long an offer stays on screen before the carousel
// moves on by itself.
const DefaultInterval = 10 * time.Second

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// TickMsg is delivered when an auto-advance interval elapses.
type TickMsg struct {
	ID  int
	gen int
	tag int
}

// AutoAdvance advances a Carousel on a fixed interval while it is running.
//
// Start acquires the timer and Stop releases it. Each Start begins a new
// generation; ticks from earlier generations, from other carousels, or
// replayed ticks of the current generation are dropped without being
// rescheduled. After Stop no tick can move the carousel.
type AutoAdvance struct {
	carousel *Carousel
	interval time.Duration

	id      int
	gen     int
	tag     int
	running bool
}

// NewAutoAdvance creates a stopped timer for c. A non-positive interval
// falls back to DefaultInterval.
func NewAutoAdvance(c *Carousel, interval time.Duration) *AutoAdvance {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &AutoAdvance{
		carousel: c,
		interval: interval,
		id:       nextID(),
	}
}

// ID identifies this timer's ticks.
func (a *AutoAdvance) ID() int {
	return a.id
}

// Interval returns the time between advances.
func (a *AutoAdvance) Interval() time.Duration {
	return a.interval
}

// Running reports whether the timer is held.
func (a *AutoAdvance) Running() bool {
	return a.running
}

// Start acquires the timer and schedules the first tick. Calling Start on a
// running timer restarts it; the previous tick chain is abandoned.
func (a *AutoAdvance) Start() tea.Cmd {
	a.gen++
	a.tag = 0
	a.running = true
	return a.tick()
}

// Stop releases the timer. It is safe to call more than once.
func (a *AutoAdvance) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.gen++
}

// Update applies msg if it is the live tick for this timer. It reports
// whether the carousel advanced and returns the command for the next tick.
func (a *AutoAdvance) Update(msg tea.Msg) (bool, tea.Cmd) {
	t, ok := msg.(TickMsg)
	if !ok || !a.running {
		return false, nil
	}
	if t.ID != a.id || t.gen != a.gen || t.tag != a.tag {
		return false, nil
	}

	a.carousel.Advance()
	a.tag++
	return true, a.tick()
}

func (a *AutoAdvance) tick() tea.Cmd {
	id, gen, tag := a.id, a.gen, a.tag
	return tea.Tick(a.interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id, gen: gen, tag: tag}
	})
}
