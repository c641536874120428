// internal/storefront/checkout.go
package storefront

import (
	"strings"
)

// OrderPreview is what checkout hands back instead of submitting an order.
type OrderPreview struct {
	Lines []LineItem
	Total float64
}

func (p OrderPreview) String() string {
	var b strings.Builder
	for _, line := range p.Lines {
		b.WriteString(line.Summary)
		b.WriteString("  ")
		b.WriteString(FormatPrice(line.Price))
		b.WriteString("\n")
	}
	b.WriteString("Total: ")
	b.WriteString(FormatPrice(p.Total))
	return b.String()
}

// Checkout snapshots the cart into a preview and clears it. Nothing is
// submitted anywhere. An empty cart yields ErrEmptyCart and stays untouched.
func Checkout(cart *Cart) (OrderPreview, error) {
	if cart.Len() == 0 {
		return OrderPreview{}, ErrEmptyCart
	}

	preview := OrderPreview{
		Lines: cart.List(),
		Total: cart.Total(),
	}
	cart.Clear()
	return preview, nil
}
