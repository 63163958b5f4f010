package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicateProductCode is returned by Add when an item with the same code is already held.
var ErrDuplicateProductCode = errors.New("duplicate product code")

// Inventory holds catalog items in insertion order, indexed by product code.
//
// Populate it with Add before querying; Add must not run concurrently with reads.
type Inventory struct {
	items  []Item
	byCode map[ProductCode]int
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{byCode: make(map[ProductCode]int)}
}

// Add appends item. It rejects a second item with an already-held product code.
func (inv *Inventory) Add(item Item) error {
	if inv.byCode == nil {
		inv.byCode = make(map[ProductCode]int)
	}
	if _, exists := inv.byCode[item.Code]; exists {
		return fmt.Errorf("product code %s: %w", item.Code, ErrDuplicateProductCode)
	}
	inv.byCode[item.Code] = len(inv.items)
	inv.items = append(inv.items, item)
	return nil
}

// Len returns the number of items held.
func (inv *Inventory) Len() int { return len(inv.items) }

// Items returns a copy of all items in insertion order.
func (inv *Inventory) Items() []Item {
	out := make([]Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Get returns the item with the given product code.
func (inv *Inventory) Get(code ProductCode) (Item, bool) {
	idx, ok := inv.byCode[code]
	if !ok {
		return Item{}, false
	}
	return inv.items[idx], true
}

// Values returns the distinct labels stored under key across all items, sorted.
// Set values contribute each of their labels.
func (inv *Inventory) Values(key Key) []string {
	seen := make(map[string]struct{})
	for _, item := range inv.items {
		v, ok := item.Attributes.Get(key)
		if !ok {
			continue
		}
		for _, l := range v.Labels() {
			seen[l] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Brands returns the distinct brand values across all items, sorted.
// An empty inventory yields an empty slice.
func (inv *Inventory) Brands() []string {
	return inv.Values(KeyBrand)
}

// MaxPrice returns the highest item price, or 0 for an empty inventory.
func (inv *Inventory) MaxPrice() float64 {
	var max float64
	for _, item := range inv.items {
		if item.Price > max {
			max = item.Price
		}
	}
	return max
}

// FindMatch returns every item that satisfies criteria, in insertion order.
// The result is never nil; no match yields an empty slice.
func (inv *Inventory) FindMatch(criteria AttributeSet) []Item {
	matches := make([]Item, 0)
	for _, item := range inv.items {
		if !Match(criteria, item) {
			continue
		}
		matches = append(matches, item)
	}
	return matches
}
