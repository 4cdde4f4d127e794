package cart

import (
	"errors"
	"testing"

	"restaurant-orders/catalog"
)

var testMenu = catalog.Catalog{
	{ID: 1, Name: "Margherita Pizza", Price: 300},
	{ID: 2, Name: "Pasta Alfredo", Price: 250},
	{ID: 3, Name: "Paneer Tikka", Price: 220},
}

func TestAddAccumulates(t *testing.T) {
	c := New()
	if _, err := c.Add(testMenu, 1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Add(testMenu, 1, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c[1] != 5 {
		t.Fatalf("expected quantity 5 after repeated adds, got %d", c[1])
	}
}

func TestAddValidation(t *testing.T) {
	c := New()

	if _, err := c.Add(testMenu, 1, 0); !errors.Is(err, ErrQuantity) {
		t.Fatalf("expected ErrQuantity for qty 0, got %v", err)
	}
	if _, err := c.Add(testMenu, 1, -2); !errors.Is(err, ErrQuantity) {
		t.Fatalf("expected ErrQuantity for negative qty, got %v", err)
	}
	if _, err := c.Add(testMenu, 99, 1); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
	if len(c) != 0 {
		t.Fatalf("failed adds must not touch the cart, got %v", c)
	}

	item, err := c.Add(testMenu, 2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Name != "Pasta Alfredo" {
		t.Fatalf("expected resolved item, got %q", item.Name)
	}
}

func TestReplaceDropsNonPositive(t *testing.T) {
	c := Cart{1: 2, 2: 1, 3: 4}
	c.Replace(map[uint]int{1: 3, 2: 0, 3: -1})

	if c[1] != 3 {
		t.Fatalf("expected item 1 quantity 3, got %d", c[1])
	}
	if _, ok := c[2]; ok {
		t.Fatalf("zero quantity must drop the entry")
	}
	if _, ok := c[3]; ok {
		t.Fatalf("negative quantity must drop the entry")
	}
}

func TestReplaceIsWholesale(t *testing.T) {
	c := Cart{1: 2, 2: 1}
	// item 2 absent from the submission: it must not survive
	c.Replace(map[uint]int{1: 1})
	if len(c) != 1 || c[1] != 1 {
		t.Fatalf("expected only submitted items to survive, got %v", c)
	}
}

func TestSnapshotTotalsAndOrdering(t *testing.T) {
	c := Cart{3: 1, 1: 2}
	lines, total := c.Snapshot(testMenu)

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Item.ID != 1 || lines[1].Item.ID != 3 {
		t.Fatalf("expected lines ordered by item id, got %v", lines)
	}
	if lines[0].Subtotal != 600 || lines[1].Subtotal != 220 {
		t.Fatalf("expected subtotals 600 and 220, got %v and %v", lines[0].Subtotal, lines[1].Subtotal)
	}
	if total != 820 {
		t.Fatalf("expected total 820, got %v", total)
	}
}

func TestSnapshotSkipsStaleItems(t *testing.T) {
	c := Cart{1: 1, 42: 5}
	lines, total := c.Snapshot(testMenu)
	if len(lines) != 1 || lines[0].Item.ID != 1 {
		t.Fatalf("expected stale item skipped, got %v", lines)
	}
	if total != 300 {
		t.Fatalf("expected total 300, got %v", total)
	}
}

func TestClear(t *testing.T) {
	c := Cart{1: 2, 3: 1}
	c.Clear()
	if len(c) != 0 {
		t.Fatalf("expected empty cart, got %v", c)
	}
}
