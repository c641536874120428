// internal/storefront/cart.go
package storefront

import (
	"math"
	"strconv"
)

// LineItem is what lands in the cart. It is decoupled from the product id.
// Summary may be empty; item_summary is a nullable column.
type LineItem struct {
	Summary string  `json:"summary"`
	Price   float64 `json:"price" validate:"price"`
}

// Cart is an ordered list of line items. It has no observers; whoever mutates
// it re-renders afterwards.
type Cart struct {
	items []LineItem
}

func NewCart() *Cart {
	return &Cart{items: make([]LineItem, 0)}
}

func (c *Cart) Add(item LineItem) {
	c.items = append(c.items, item)
}

// Remove deletes the item at index and reports whether anything was removed.
// An index outside [0, Len()) leaves the cart untouched.
func (c *Cart) Remove(index int) bool {
	if index < 0 || index >= len(c.items) {
		return false
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return true
}

// List returns a snapshot the caller may keep.
func (c *Cart) List() []LineItem {
	snapshot := make([]LineItem, len(c.items))
	copy(snapshot, c.items)
	return snapshot
}

func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price
	}
	return total
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) Clear() {
	c.items = c.items[:0]
}

// FormatPrice renders an amount the way the storefront shows it: "$20", "$4.5".
// Amounts are rounded to cents first, so float sums print as "$0.3".
func FormatPrice(amount float64) string {
	return "$" + strconv.FormatFloat(math.Round(amount*100)/100, 'f', -1, 64)
}
