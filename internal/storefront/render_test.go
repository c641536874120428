package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLRendererEscapesText(t *testing.T) {
	r, err := NewHTMLRenderer("en")
	require.NoError(t, err)

	cards := BuildCards(sampleArtworks())
	cards[0].Title = `Night <b>Bloom</b>`
	cards[0].CoverImage = "javascript:alert(1)"

	out, err := r.Gallery(cards)
	require.NoError(t, err)
	assert.Contains(t, out, "Night &lt;b&gt;Bloom&lt;/b&gt;")
	assert.NotContains(t, out, "<b>Bloom</b>")
	assert.NotContains(t, out, "javascript:alert")
	assert.Contains(t, out, `id="edition-1-11"`)
	assert.Contains(t, out, "$20")
	assert.Contains(t, out, "Add to cart")
}

func TestHTMLRendererSanitizesMarkdown(t *testing.T) {
	r, err := NewHTMLRenderer("en")
	require.NoError(t, err)

	cards := BuildCards(sampleArtworks())
	cards[0].Description = "Hand-signed **limited** run\n\n<script>alert(1)</script>"

	out, err := r.Gallery(cards[:1])
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>limited</strong>")
	assert.NotContains(t, out, "<script")
}

func TestHTMLRendererEmptyStates(t *testing.T) {
	r, err := NewHTMLRenderer("zh-TW")
	require.NoError(t, err)

	out, err := r.Cart(CartView{})
	require.NoError(t, err)
	assert.Contains(t, out, "您的購物籃是空的")
	assert.Contains(t, out, `<span id="total-price">$0</span>`)
	assert.Contains(t, out, "cart-drawer hidden")

	out, err = r.Detail(DetailView{Empty: true})
	require.NoError(t, err)
	assert.Contains(t, out, "目前沒有可選擇的商品。")

	out, err = r.Gallery(nil)
	require.NoError(t, err)
	assert.Contains(t, out, "目前沒有作品。")
}

func TestHTMLRendererDetail(t *testing.T) {
	r, err := NewHTMLRenderer("en")
	require.NoError(t, err)

	panel := NewDetailPanel()
	panel.Open(BuildCards(sampleArtworks())[0].DetailPayload(5))
	view, ok := panel.View()
	require.True(t, ok)

	out, err := r.Detail(view)
	require.NoError(t, err)
	assert.Contains(t, out, `src="https://x/poster.png"`)
	assert.Contains(t, out, `product-detail-option is-selected" data-option-index="1"`)
	assert.Contains(t, out, `<p class="product-detail-price">$20</p>`)
}

func TestTextRenderer(t *testing.T) {
	r := NewTextRenderer("en")

	out, err := r.Gallery(BuildCards(sampleArtworks()))
	require.NoError(t, err)
	assert.Contains(t, out, "[1]")
	assert.Contains(t, out, "[2]")
	assert.Contains(t, out, "Night Bloom")
	assert.Contains(t, out, "Poster")
	assert.Contains(t, out, "$20")

	out, err = r.Cart(CartView{Items: []LineItem{{Summary: posterSummary, Price: 20}}, Total: 20})
	require.NoError(t, err)
	assert.Contains(t, out, posterSummary)
	assert.Contains(t, out, "Total")

	out, err = r.Cart(CartView{})
	require.NoError(t, err)
	assert.Contains(t, out, "Your cart is empty")
	assert.Contains(t, out, "$0")

	out, err = r.Detail(DetailView{Empty: true})
	require.NoError(t, err)
	assert.Contains(t, out, "There are no products to choose from.")

	out, err = r.Menu([]MenuCard{{Index: 0, Name: "Oat Latte", Price: 4.5, Category: "coffee"}})
	require.NoError(t, err)
	assert.Contains(t, out, "Oat Latte")
	assert.Contains(t, out, "$4.5")
}
