package model

import (
	"errors"
	"fmt"
)

// ErrDuplicateID reports an item id that appears more than once in a catalog.
var ErrDuplicateID = errors.New("duplicate item id")

// Item is a single checklist recommendation.
type Item struct {
	ID             string `json:"id"`
	Text           string `json:"text"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
	ActionRequired bool   `json:"action_required"`
}

// Category groups items under a title. Item order is display order.
type Category struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Items       []Item `json:"items"`
}

// CategorizedItem is an item flattened out of its category.
type CategorizedItem struct {
	Item
	Category string `json:"category"`
}

// Catalog is the ordered list of categories.
type Catalog []Category

// Len counts items across all categories.
func (c Catalog) Len() int {
	n := 0
	for _, cat := range c {
		n += len(cat.Items)
	}
	return n
}

// Items flattens the catalog in order, tagging each item with its category title.
func (c Catalog) Items() []CategorizedItem {
	out := make([]CategorizedItem, 0, c.Len())
	for _, cat := range c {
		for _, it := range cat.Items {
			out = append(out, CategorizedItem{Item: it, Category: cat.Title})
		}
	}
	return out
}

// Has reports whether id names an item in the catalog.
func (c Catalog) Has(id string) bool {
	for _, cat := range c {
		for _, it := range cat.Items {
			if it.ID == id {
				return true
			}
		}
	}
	return false
}

// Validate checks that item ids are unique across the whole catalog;
// completion is tracked by a flat id set.
func (c Catalog) Validate() error {
	seen := make(map[string]string, c.Len())
	for _, cat := range c {
		for _, it := range cat.Items {
			if prev, dup := seen[it.ID]; dup {
				return fmt.Errorf("%w: %q in %q and %q", ErrDuplicateID, it.ID, prev, cat.ID)
			}
			seen[it.ID] = cat.ID
		}
	}
	return nil
}

// Clone returns a deep copy.
func (c Catalog) Clone() Catalog {
	if c == nil {
		return nil
	}
	out := make(Catalog, len(c))
	for i, cat := range c {
		cat.Items = append([]Item(nil), cat.Items...)
		out[i] = cat
	}
	return out
}
