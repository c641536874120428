// internal/storefront/menu.go
package storefront

import (
	"fmt"

	"github.com/javajoker/artwork-storefront/internal/models"
)

// MenuCard is one entry of the menu page.
type MenuCard struct {
	Index       int
	ID          uint
	Name        string
	Price       float64
	Category    string
	Description string
	ImageURL    string
}

type Menu struct {
	cart  CartWriter
	cards []MenuCard
}

func NewMenu(cart CartWriter) *Menu {
	return &Menu{cart: cart, cards: make([]MenuCard, 0)}
}

func (m *Menu) Render(items []models.MenuItem) []MenuCard {
	m.cards = make([]MenuCard, len(items))
	for i, item := range items {
		m.cards[i] = MenuCard{
			Index:       i,
			ID:          item.ID,
			Name:        item.Name,
			Price:       item.Price,
			Category:    item.Category,
			Description: item.Description,
			ImageURL:    item.ImageURL,
		}
	}
	return m.Cards()
}

func (m *Menu) Cards() []MenuCard {
	cards := make([]MenuCard, len(m.cards))
	copy(cards, m.cards)
	return cards
}

// AddToOrder puts the menu entry at index into the cart as {name, price}.
func (m *Menu) AddToOrder(index int) error {
	if index < 0 || index >= len(m.cards) {
		return fmt.Errorf("%w: %d", ErrUnknownMenuItem, index)
	}
	card := m.cards[index]
	return m.cart.AddToCart(LineItem{Summary: card.Name, Price: card.Price})
}
