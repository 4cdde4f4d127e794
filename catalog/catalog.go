package catalog

// Item is a purchasable menu entry. The catalog is fixed at startup and
// read-only during request handling.
type Item struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Catalog []Item

// Find resolves an item id against the catalog.
func (c Catalog) Find(id uint) (Item, bool) {
	for _, it := range c {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
