// internal/storefront/render.go
package storefront

// CartView is the render-ready cart drawer.
type CartView struct {
	Open  bool
	Items []LineItem
	Total float64
}

// Renderer turns storefront state into display content.
type Renderer interface {
	Gallery(cards []*Card) (string, error)
	Detail(view DetailView) (string, error)
	Cart(view CartView) (string, error)
	Menu(cards []MenuCard) (string, error)
	Notice(message string) (string, error)
}
