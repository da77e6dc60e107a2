// Package catalog loads the ordered list of offers shown in the carousel.
//
// The catalog is content, not configuration: it is read once at startup,
// checked, and then treated as immutable for the life of the process.
package catalog

import (
	"errors"
	"fmt"
)

// DefaultSource names the embedded catalog in errors and logs.
const DefaultSource = "embedded:offers.yaml"

// ErrEmptyCatalog is returned when a catalog contains no offers. The carousel
// wraps indices modulo the catalog length, so an empty catalog cannot be shown.
var ErrEmptyCatalog = errors.New("offer catalog is empty")

// OfferItem is one marketing offer.
type OfferItem struct {
	ID          int    `yaml:"id" validate:"required,gt=0"`
	Name        string `yaml:"name" validate:"required"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	ImageRef    string `yaml:"image"`
}

// document is the on-disk shape of a catalog file.
type document struct {
	Offers []OfferItem `yaml:"offers" validate:"unique=ID,dive"`
}

// Catalog is an ordered, read-only list of offers.
type Catalog struct {
	source string
	items  []OfferItem
}

// Source reports where the catalog was loaded from.
func (c *Catalog) Source() string {
	return c.source
}

// Len returns the number of offers.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns a copy of the offers in catalog order.
func (c *Catalog) Items() []OfferItem {
	out := make([]OfferItem, len(c.items))
	copy(out, c.items)
	return out
}

// ByID looks up an offer by its identifier.
func (c *Catalog) ByID(id int) (OfferItem, bool) {
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return OfferItem{}, false
}

// LoadError describes a catalog that could not be loaded.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
