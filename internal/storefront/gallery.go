// internal/storefront/gallery.go
package storefront

import (
	"fmt"

	"github.com/javajoker/artwork-storefront/internal/models"
)

// Row is one product option on a card.
type Row struct {
	Index    int
	Summary  string
	Type     string
	Price    float64
	ImageURL string
}

// Card is one edition in the gallery.
type Card struct {
	ID          string
	ArtworkID   uint
	EditionID   uint
	Title       string
	Subtitle    string
	Description string
	CoverImage  string
	Rows        []Row

	selection    int
	hasSelection bool
}

// RememberSelection records the option a later card click should reopen.
func (c *Card) RememberSelection(index int) {
	c.selection = index
	c.hasSelection = true
}

// Selection is the remembered option, 0 when nothing was chosen yet.
func (c *Card) Selection() int {
	if !c.hasSelection {
		return 0
	}
	return c.selection
}

// DetailPayload builds the panel payload for this card with the given option
// selected. The card itself is the payload origin.
func (c *Card) DetailPayload(selected int) DetailPayload {
	products := make([]DetailProduct, len(c.Rows))
	for i, row := range c.Rows {
		products[i] = DetailProduct{
			Summary:  row.Summary,
			Type:     row.Type,
			Price:    row.Price,
			ImageURL: row.ImageURL,
		}
	}

	return DetailPayload{
		Title:         c.Title,
		Subtitle:      c.Subtitle,
		ImageURL:      c.CoverImage,
		Description:   c.Description,
		Products:      products,
		SelectedIndex: selected,
		Origin:        c,
	}
}

func (c *Card) row(index int) (Row, error) {
	if index < 0 || index >= len(c.Rows) {
		return Row{}, fmt.Errorf("%w: card %s has no row %d", ErrUnknownRow, c.ID, index)
	}
	return c.Rows[index], nil
}

// BuildCards flattens artwork trees into one card per edition, in tree order.
func BuildCards(artworks []models.ArtworkTree) []*Card {
	cards := make([]*Card, 0)
	for _, artwork := range artworks {
		for _, edition := range artwork.Editions {
			card := &Card{
				ID:          fmt.Sprintf("edition-%d-%d", artwork.ID, edition.ID),
				ArtworkID:   artwork.ID,
				EditionID:   edition.ID,
				Title:       artwork.Title,
				Subtitle:    edition.Subtitle,
				Description: models.FirstNonEmpty(edition.Description, artwork.Description),
				CoverImage:  coverImage(edition),
				Rows:        make([]Row, len(edition.Products)),
			}
			for i, product := range edition.Products {
				card.Rows[i] = Row{
					Index:    i,
					Summary:  product.Summary,
					Type:     product.Type,
					Price:    product.Price,
					ImageURL: ResolveImage(product.ImageURL, edition.ImageURL),
				}
			}
			cards = append(cards, card)
		}
	}
	return cards
}

func coverImage(edition models.EditionTree) string {
	if edition.ImageURL != "" {
		return edition.ImageURL
	}
	if len(edition.Products) > 0 {
		return edition.Products[0].ImageURL
	}
	return ""
}

// Target says which part of a card a click landed on.
type Target int

const (
	// TargetCard is the card body outside any product row.
	TargetCard Target = iota
	// TargetQuickAdd is the "+" control of a row.
	TargetQuickAdd
	// TargetDetailTrigger is the "view detail" control of a row.
	TargetDetailTrigger
	// TargetOptionRow is a row but neither of its controls.
	TargetOptionRow
)

func (t Target) String() string {
	switch t {
	case TargetCard:
		return "card"
	case TargetQuickAdd:
		return "quick-add"
	case TargetDetailTrigger:
		return "detail-trigger"
	case TargetOptionRow:
		return "option-row"
	default:
		return fmt.Sprintf("target(%d)", int(t))
	}
}

// Event is a click inside the gallery container.
type Event struct {
	Target Target
	CardID string
	Row    int
}

type Listener func(Event) error

// Container is a render region that owns cards and delegated listeners.
type Container struct {
	region    Region
	cards     []*Card
	byID      map[string]*Card
	listeners []Listener
	bound     bool
}

func NewContainer(region Region) *Container {
	return &Container{region: region, byID: make(map[string]*Card)}
}

func (c *Container) Region() Region {
	return c.region
}

func (c *Container) setCards(cards []*Card) {
	c.cards = cards
	c.byID = make(map[string]*Card, len(cards))
	for _, card := range cards {
		c.byID[card.ID] = card
	}
}

// Bind attaches listener once. Later calls are ignored and return false.
func (c *Container) Bind(listener Listener) bool {
	if c.bound {
		return false
	}
	c.listeners = append(c.listeners, listener)
	c.bound = true
	return true
}

func (c *Container) ListenerCount() int {
	return len(c.listeners)
}

// Click delivers e to every bound listener.
func (c *Container) Click(e Event) error {
	for _, listener := range c.listeners {
		if err := listener(e); err != nil {
			return err
		}
	}
	return nil
}

// Actions is what gallery clicks are routed to.
type Actions interface {
	CartWriter
	OpenDetail(payload DetailPayload)
}

// Gallery projects artwork trees into cards and routes card clicks.
type Gallery struct {
	actions   Actions
	container *Container
}

func NewGallery(actions Actions) *Gallery {
	return &Gallery{
		actions:   actions,
		container: NewContainer(RegionGallery),
	}
}

func (g *Gallery) Container() *Container {
	return g.container
}

// Render replaces the cards. The delegated listener is bound on first render only.
func (g *Gallery) Render(artworks []models.ArtworkTree) []*Card {
	g.container.setCards(BuildCards(artworks))
	g.container.Bind(g.Dispatch)
	return g.Cards()
}

func (g *Gallery) Cards() []*Card {
	cards := make([]*Card, len(g.container.cards))
	copy(cards, g.container.cards)
	return cards
}

func (g *Gallery) Card(id string) (*Card, error) {
	card, ok := g.container.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCard, id)
	}
	return card, nil
}

// Click sends e through the container like a user click would.
func (g *Gallery) Click(e Event) error {
	return g.container.Click(e)
}

// Dispatch routes a click. Quick-add goes straight to the cart; the detail
// trigger remembers the row and opens the panel on it; a card body click opens
// the panel on the remembered row. Clicks on a row outside its controls do
// nothing.
func (g *Gallery) Dispatch(e Event) error {
	card, err := g.Card(e.CardID)
	if err != nil {
		return err
	}

	switch e.Target {
	case TargetQuickAdd:
		row, err := card.row(e.Row)
		if err != nil {
			return err
		}
		return g.actions.AddToCart(LineItem{Summary: row.Summary, Price: row.Price})

	case TargetDetailTrigger:
		row, err := card.row(e.Row)
		if err != nil {
			return err
		}
		card.RememberSelection(row.Index)
		g.actions.OpenDetail(card.DetailPayload(row.Index))
		return nil

	case TargetCard:
		index := card.Selection()
		if index < 0 || index >= len(card.Rows) {
			index = 0
		}
		if len(card.Rows) > 0 {
			card.RememberSelection(index)
		}
		g.actions.OpenDetail(card.DetailPayload(index))
		return nil

	case TargetOptionRow:
		return nil

	default:
		return fmt.Errorf("unsupported gallery target %s", e.Target)
	}
}
