package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memory struct {
	remembered []int
}

func (m *memory) RememberSelection(index int) {
	m.remembered = append(m.remembered, index)
}

type cartSpy struct {
	items []LineItem
}

func (c *cartSpy) AddToCart(item LineItem) error {
	c.items = append(c.items, item)
	return nil
}

func twoProducts() []DetailProduct {
	return []DetailProduct{
		{Summary: "tee", Type: "T-shirt", Price: 10},
		{Summary: "poster", Type: "Poster", Price: 20, ImageURL: "https://x/poster.png"},
	}
}

func TestDetailViewClampsSelection(t *testing.T) {
	panel := NewDetailPanel()
	panel.Open(DetailPayload{
		Title:         "Night Bloom",
		ImageURL:      "https://x/edition.png",
		Products:      twoProducts(),
		SelectedIndex: 5,
	})

	view, ok := panel.View()
	require.True(t, ok)
	assert.False(t, view.Empty)
	assert.Equal(t, 1, view.SelectedIndex)
	assert.Equal(t, "Poster", view.Selected.Type)
	assert.Equal(t, "https://x/poster.png", view.ImageURL)
	require.Len(t, view.Options, 2)
	assert.False(t, view.Options[0].Selected)
	assert.True(t, view.Options[1].Selected)

	require.NoError(t, panel.SelectOption(-3))
	view, _ = panel.View()
	assert.Equal(t, 0, view.SelectedIndex)
	assert.Equal(t, "https://x/edition.png", view.ImageURL)
}

func TestDetailEmptyProducts(t *testing.T) {
	panel := NewDetailPanel()
	panel.Open(DetailPayload{Title: "Untitled"})

	view, ok := panel.View()
	require.True(t, ok)
	assert.True(t, view.Empty)
	assert.Empty(t, view.Options)

	cart := &cartSpy{}
	assert.ErrorIs(t, panel.AddSelectedToCart(cart), ErrNoProducts)
	assert.Empty(t, cart.items)
}

func TestDetailSelectOptionWritesBack(t *testing.T) {
	origin := &memory{}
	panel := NewDetailPanel()
	panel.Open(DetailPayload{Products: twoProducts(), Origin: origin})

	require.NoError(t, panel.SelectOption(1))
	require.NoError(t, panel.SelectOption(7))
	assert.Equal(t, []int{1, 7}, origin.remembered)

	cart := &cartSpy{}
	require.NoError(t, panel.AddSelectedToCart(cart))
	assert.Equal(t, []LineItem{{Summary: "poster", Price: 20}}, cart.items)
}

func TestDetailClosedPanel(t *testing.T) {
	panel := NewDetailPanel()
	_, ok := panel.View()
	assert.False(t, ok)
	assert.ErrorIs(t, panel.SelectOption(0), ErrPanelClosed)
	assert.ErrorIs(t, panel.AddSelectedToCart(&cartSpy{}), ErrPanelClosed)

	panel.Open(DetailPayload{Title: "first", Products: twoProducts(), SelectedIndex: 1})
	panel.Close()
	assert.False(t, panel.IsOpen())
	assert.ErrorIs(t, panel.SelectOption(0), ErrPanelClosed)

	view, ok := panel.View()
	require.True(t, ok)
	assert.Equal(t, "first", view.Title)
}

func TestDetailOpenReplacesState(t *testing.T) {
	panel := NewDetailPanel()
	panel.Open(DetailPayload{Title: "first", Products: twoProducts(), SelectedIndex: 1})
	panel.Open(DetailPayload{Title: "second", Products: twoProducts()[:1]})

	view, ok := panel.View()
	require.True(t, ok)
	assert.Equal(t, "second", view.Title)
	assert.Equal(t, 0, view.SelectedIndex)
	assert.Len(t, view.Options, 1)
}

func TestDetailOpenCopiesProducts(t *testing.T) {
	products := twoProducts()
	panel := NewDetailPanel()
	panel.Open(DetailPayload{Products: products})

	products[0].Summary = "changed"
	selected, ok := panel.Selected()
	require.True(t, ok)
	assert.Equal(t, "tee", selected.Summary)
}

func TestResolveImage(t *testing.T) {
	assert.Equal(t, "https://x/edition.png", ResolveImage("", "https://x/edition.png"))
	assert.Equal(t, "https://x/item.png", ResolveImage("https://x/item.png", "https://x/edition.png"))
	assert.Equal(t, "https://x/item.png", ResolveImage("https://x/item.png", ""))
	assert.Equal(t, "", ResolveImage("", ""))
}

func TestClampIndex(t *testing.T) {
	assert.Equal(t, -1, clampIndex(0, 0))
	assert.Equal(t, 0, clampIndex(-1, 2))
	assert.Equal(t, 1, clampIndex(5, 2))
	assert.Equal(t, 1, clampIndex(1, 2))
}
