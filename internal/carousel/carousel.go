// Package carousel owns the position of the offers carousel.
//
// Every navigation path (arrows, direct selection, timer ticks) goes through
// GoTo, which wraps any integer into [0, N). Callers never bounds-check.
package carousel

import (
	"github.com/servicecordiale/cordiale/internal/catalog"
)

// Carousel is a wrap-around cursor over a fixed, non-empty list of offers.
// It is owned by a single event loop and is not safe for concurrent use.
type Carousel struct {
	items []catalog.OfferItem
	index int
}

// New creates a carousel positioned on the first item.
// It returns catalog.ErrEmptyCatalog when items is empty.
func New(items []catalog.OfferItem) (*Carousel, error) {
	if len(items) == 0 {
		return nil, catalog.ErrEmptyCatalog
	}
	own := make([]catalog.OfferItem, len(items))
	copy(own, items)
	return &Carousel{items: own}, nil
}

// Wrap normalizes i into [0, n). n must be positive.
func Wrap(i, n int) int {
	return ((i % n) + n) % n
}

// GoTo moves to slot i modulo the number of items. Any integer is accepted.
func (c *Carousel) GoTo(i int) {
	c.index = Wrap(i, len(c.items))
}

// Advance moves one slot forward, wrapping past the last item.
func (c *Carousel) Advance() {
	c.GoTo(c.index + 1)
}

// Retreat moves one slot backward, wrapping before the first item.
func (c *Carousel) Retreat() {
	c.GoTo(c.index - 1)
}

// Index returns the current slot.
func (c *Carousel) Index() int {
	return c.index
}

// Len returns the number of items.
func (c *Carousel) Len() int {
	return len(c.items)
}

// Items returns a copy of the items in display order.
func (c *Carousel) Items() []catalog.OfferItem {
	out := make([]catalog.OfferItem, len(c.items))
	copy(out, c.items)
	return out
}

// At returns the item offset slots away from the current one.
func (c *Carousel) At(offset int) catalog.OfferItem {
	return c.items[Wrap(c.index+offset, len(c.items))]
}

// Current returns the item on display.
func (c *Carousel) Current() catalog.OfferItem {
	return c.At(0)
}

// Previous returns the item shown behind the left arrow.
func (c *Carousel) Previous() catalog.OfferItem {
	return c.At(-1)
}

// Next returns the item shown behind the right arrow.
func (c *Carousel) Next() catalog.OfferItem {
	return c.At(1)
}
