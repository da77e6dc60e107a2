package carousel

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servicecordiale/cordiale/internal/catalog"
)

func makeItems(n int) []catalog.OfferItem {
	items := make([]catalog.OfferItem, n)
	for i := range items {
		items[i] = catalog.OfferItem{
			ID:          i + 1,
			Name:        fmt.Sprintf("Pack %d", i+1),
			Title:       "title",
			Description: "description",
		}
	}
	return items
}

func newCarousel(t *testing.T, n int) *Carousel {
	t.Helper()
	c, err := New(makeItems(n))
	require.NoError(t, err)
	return c
}

func TestNewEmpty(t *testing.T) {
	_, err := New(nil)
	if !errors.Is(err, catalog.ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestNewCopiesItems(t *testing.T) {
	items := makeItems(3)
	c, err := New(items)
	require.NoError(t, err)

	items[0].Name = "mutated"
	assert.Equal(t, "Pack 1", c.Current().Name)
}

func TestGoToNormalizes(t *testing.T) {
	for _, n := range []int{1, 2, 4, 7} {
		c := newCarousel(t, n)
		for i := -3*n - 2; i <= 3*n+2; i++ {
			c.GoTo(i)
			want := ((i % n) + n) % n
			if c.Index() != want {
				t.Fatalf("N=%d GoTo(%d): index = %d, want %d", n, i, c.Index(), want)
			}
			if c.Index() < 0 || c.Index() >= n {
				t.Fatalf("N=%d GoTo(%d): index %d out of range", n, i, c.Index())
			}
		}
	}
}

func TestGoToExtremes(t *testing.T) {
	c := newCarousel(t, 4)
	maxInt := int(^uint(0) >> 1)
	minInt := -maxInt - 1

	c.GoTo(maxInt)
	assert.Equal(t, Wrap(maxInt, 4), c.Index())
	c.GoTo(minInt)
	assert.Equal(t, Wrap(minInt, 4), c.Index())
	assert.GreaterOrEqual(t, c.Index(), 0)
}

func TestAdvanceRetreatInverse(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 9} {
		c := newCarousel(t, n)
		for start := 0; start < n; start++ {
			c.GoTo(start)
			c.Advance()
			c.Retreat()
			assert.Equal(t, start, c.Index(), "advance then retreat, N=%d", n)

			c.Retreat()
			c.Advance()
			assert.Equal(t, start, c.Index(), "retreat then advance, N=%d", n)
		}
	}
}

func TestDerivedViewsAdjacent(t *testing.T) {
	items := makeItems(5)
	c, err := New(items)
	require.NoError(t, err)

	for k := -7; k <= 12; k++ {
		c.GoTo(k)
		cur := Wrap(k, 5)
		assert.Equal(t, items[cur], c.Current())
		assert.Equal(t, items[Wrap(cur-1, 5)], c.Previous())
		assert.Equal(t, items[Wrap(cur+1, 5)], c.Next())
		assert.Equal(t, items[Wrap(cur+3, 5)], c.At(3))
	}
}

func TestSingleItem(t *testing.T) {
	c := newCarousel(t, 1)
	c.Advance()
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, c.Current(), c.Previous())
	assert.Equal(t, c.Current(), c.Next())
}

func TestScenarioFourItems(t *testing.T) {
	c := newCarousel(t, 4)
	require.Equal(t, 0, c.Index())

	c.GoTo(-1)
	assert.Equal(t, 3, c.Index())

	c.Advance()
	assert.Equal(t, 0, c.Index())
}
