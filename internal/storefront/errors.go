// internal/storefront/errors.go
package storefront

import "errors"

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrPanelClosed     = errors.New("detail panel is closed")
	ErrNoProducts      = errors.New("no products to choose from")
	ErrUnknownCard     = errors.New("unknown card")
	ErrUnknownRow      = errors.New("unknown product row")
	ErrUnknownMenuItem = errors.New("unknown menu item")
)
