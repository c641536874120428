// internal/storefront/session.go
package storefront

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/artwork-storefront/internal/i18n"
	"github.com/javajoker/artwork-storefront/internal/utils"
)

// Region names a part of the page a Display can show content in.
type Region string

const (
	RegionGallery Region = "gallery-container"
	RegionMenu    Region = "product-container"
	RegionCart    Region = "cart-items"
	RegionDetail  Region = "product-detail-content"
	RegionNotice  Region = "notice"
)

// Display receives rendered content. Each Show replaces the region wholesale.
type Display interface {
	Show(region Region, content string)
}

// MemoryDisplay keeps the last content per region.
type MemoryDisplay struct {
	mu      sync.RWMutex
	regions map[Region]string
}

func NewMemoryDisplay() *MemoryDisplay {
	return &MemoryDisplay{regions: make(map[Region]string)}
}

func (d *MemoryDisplay) Show(region Region, content string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.regions[region] = content
}

func (d *MemoryDisplay) Content(region Region) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.regions[region]
}

// SessionOptions configures NewSession.
type SessionOptions struct {
	Source   CatalogSource
	Renderer Renderer
	Display  Display
	Lang     string
	// APIBaseURL is quoted in the menu connection error.
	APIBaseURL string
}

// Session is one storefront page. It owns the cart and the detail panel and
// hands them to the gallery and menu. Every mutation re-renders the regions it
// touched. A Session is not safe for concurrent use.
type Session struct {
	source   CatalogSource
	renderer Renderer
	display  Display
	lang     string
	apiBase  string

	cart     *Cart
	detail   *DetailPanel
	gallery  *Gallery
	menu     *Menu
	cartOpen bool
}

func NewSession(opts SessionOptions) *Session {
	s := &Session{
		source:   opts.Source,
		renderer: opts.Renderer,
		display:  opts.Display,
		lang:     i18n.Normalize(opts.Lang),
		apiBase:  opts.APIBaseURL,
		cart:     NewCart(),
		detail:   NewDetailPanel(),
	}
	s.gallery = NewGallery(s)
	s.menu = NewMenu(s)
	return s
}

func (s *Session) Cart() *Cart { return s.cart }
func (s *Session) Detail() *DetailPanel { return s.detail }
func (s *Session) Gallery() *Gallery { return s.gallery }
func (s *Session) Menu() *Menu { return s.menu }
func (s *Session) CartOpen() bool { return s.cartOpen }

// Start renders the empty cart and loads both catalogs. Load failures are
// shown inline and do not stop the other load.
func (s *Session) Start(ctx context.Context) error {
	if err := s.renderCart(); err != nil {
		return err
	}
	galleryErr := s.LoadGallery(ctx)
	menuErr := s.LoadMenu(ctx)
	return errors.Join(galleryErr, menuErr)
}

// LoadGallery fetches the artwork trees and renders them. On failure the
// gallery region shows an error message instead.
func (s *Session) LoadGallery(ctx context.Context) error {
	artworks, err := s.source.FetchArtworks(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to load artworks")
		s.showNotice(RegionGallery, i18n.T(s.lang, i18n.KeyGalleryLoadFailed))
		return err
	}

	cards := s.gallery.Render(artworks)
	logrus.WithField("cards", len(cards)).Debug("Gallery rendered")
	return s.renderGallery()
}

func (s *Session) LoadMenu(ctx context.Context) error {
	items, err := s.source.FetchMenu(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to load menu")
		s.showNotice(RegionMenu, i18n.T(s.lang, i18n.KeyMenuLoadFailed, s.apiBase))
		return err
	}

	s.menu.Render(items)
	return s.renderMenu()
}

// AddToCart validates item, appends it and re-renders the cart.
func (s *Session) AddToCart(item LineItem) error {
	if err := utils.ValidateStruct(item); err != nil {
		logrus.WithField("errors", utils.GetValidationErrors(err)).Warn("Rejected line item")
		return fmt.Errorf("invalid line item: %w", err)
	}

	s.cart.Add(item)
	logrus.WithFields(logrus.Fields{
		"summary": item.Summary,
		"price":   item.Price,
		"items":   s.cart.Len(),
	}).Debug("Added to cart")
	return s.renderCart()
}

// OpenDetail opens the panel with payload and renders it.
func (s *Session) OpenDetail(payload DetailPayload) {
	s.detail.Open(payload)
	if err := s.renderDetail(); err != nil {
		logrus.WithError(err).Error("Failed to render detail panel")
	}
}

func (s *Session) ClickGallery(e Event) error {
	return s.gallery.Click(e)
}

// ClickCard is a gallery click addressed by 1-based card position.
func (s *Session) ClickCard(position int, target Target, row int) error {
	cards := s.gallery.Cards()
	if position < 1 || position > len(cards) {
		return fmt.Errorf("%w: #%d", ErrUnknownCard, position)
	}
	return s.ClickGallery(Event{Target: target, CardID: cards[position-1].ID, Row: row})
}

func (s *Session) ClickMenu(index int) error {
	return s.menu.AddToOrder(index)
}

func (s *Session) SelectOption(index int) error {
	if err := s.detail.SelectOption(index); err != nil {
		return err
	}
	return s.renderDetail()
}

func (s *Session) AddSelectedToCart() error {
	err := s.detail.AddSelectedToCart(s)
	if errors.Is(err, ErrNoProducts) {
		return nil
	}
	return err
}

func (s *Session) CloseDetail() error {
	s.detail.Close()
	return s.renderDetail()
}

// RemoveFromCart drops the line at index. Out of range indexes change nothing.
func (s *Session) RemoveFromCart(index int) error {
	if !s.cart.Remove(index) {
		logrus.WithField("index", index).Debug("Ignoring removal outside the cart")
	}
	return s.renderCart()
}

func (s *Session) OpenCart() error {
	s.cartOpen = true
	return s.renderCart()
}

func (s *Session) CloseCart() error {
	s.cartOpen = false
	return s.renderCart()
}

// Checkout turns the cart into an order preview and empties it. The preview
// is logged and announced; nothing is submitted.
func (s *Session) Checkout() (OrderPreview, error) {
	preview, err := Checkout(s.cart)
	if errors.Is(err, ErrEmptyCart) {
		s.showNotice(RegionNotice, i18n.T(s.lang, i18n.KeyCheckoutChooseFirst))
		return preview, err
	}
	if err != nil {
		return preview, err
	}

	logrus.WithFields(logrus.Fields{
		"lines": len(preview.Lines),
		"total": preview.Total,
	}).Info("Order preview ready")
	s.showNotice(RegionNotice, i18n.T(s.lang, i18n.KeyCheckoutPreview, FormatPrice(preview.Total)))
	return preview, s.renderCart()
}

func (s *Session) renderGallery() error {
	content, err := s.renderer.Gallery(s.gallery.Cards())
	if err != nil {
		return err
	}
	s.display.Show(RegionGallery, content)
	return nil
}

func (s *Session) renderMenu() error {
	content, err := s.renderer.Menu(s.menu.Cards())
	if err != nil {
		return err
	}
	s.display.Show(RegionMenu, content)
	return nil
}

func (s *Session) renderCart() error {
	content, err := s.renderer.Cart(CartView{
		Open:  s.cartOpen,
		Items: s.cart.List(),
		Total: s.cart.Total(),
	})
	if err != nil {
		return err
	}
	s.display.Show(RegionCart, content)
	return nil
}

func (s *Session) renderDetail() error {
	view, ok := s.detail.View()
	if !ok || !s.detail.IsOpen() {
		s.display.Show(RegionDetail, "")
		return nil
	}

	content, err := s.renderer.Detail(view)
	if err != nil {
		return err
	}
	s.display.Show(RegionDetail, content)
	return nil
}

func (s *Session) showNotice(region Region, message string) {
	content, err := s.renderer.Notice(message)
	if err != nil {
		logrus.WithError(err).Error("Failed to render notice")
		content = message
	}
	s.display.Show(region, content)
}
