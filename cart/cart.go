package cart

import (
	"errors"
	"sort"

	"restaurant-orders/catalog"
)

var (
	ErrQuantity    = errors.New("quantity must be a positive integer")
	ErrUnknownItem = errors.New("invalid menu item")
)

// Cart maps a catalog item id to the quantity selected. It lives inside
// a single browser session, so no locking is needed.
type Cart map[uint]int

func New() Cart {
	return Cart{}
}

// Add increments the quantity for an item. Adding twice accumulates.
func (c Cart) Add(cat catalog.Catalog, itemID uint, qty int) (catalog.Item, error) {
	if qty < 1 {
		return catalog.Item{}, ErrQuantity
	}
	item, ok := cat.Find(itemID)
	if !ok {
		return catalog.Item{}, ErrUnknownItem
	}
	c[itemID] += qty
	return item, nil
}

// Replace swaps the cart contents for the submitted quantities. Only
// entries with a positive quantity survive; everything else is dropped.
func (c Cart) Replace(quantities map[uint]int) {
	for id := range c {
		delete(c, id)
	}
	for id, qty := range quantities {
		if qty > 0 {
			c[id] = qty
		}
	}
}

// Clear empties the cart. Called after a successful checkout.
func (c Cart) Clear() {
	for id := range c {
		delete(c, id)
	}
}

// Line is one resolved cart entry.
type Line struct {
	Item     catalog.Item `json:"item"`
	Quantity int          `json:"quantity"`
	Subtotal float64      `json:"subtotal"`
}

// Snapshot resolves the cart against the catalog, returning lines in
// ascending item-id order plus the grand total. Entries whose item id is
// no longer in the catalog are skipped.
func (c Cart) Snapshot(cat catalog.Catalog) ([]Line, float64) {
	ids := make([]uint, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var lines []Line
	var total float64
	for _, id := range ids {
		item, ok := cat.Find(id)
		if !ok {
			continue
		}
		qty := c[id]
		subtotal := item.Price * float64(qty)
		total += subtotal
		lines = append(lines, Line{Item: item, Quantity: qty, Subtotal: subtotal})
	}
	return lines, total
}
