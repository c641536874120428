// internal/storefront/detail.go
package storefront

// DetailProduct is one selectable option inside the detail panel.
type DetailProduct struct {
	Summary  string
	Type     string
	Price    float64
	ImageURL string
}

// SelectionMemory is where a panel records the last chosen option so a later
// open can restore it. Gallery cards implement it.
type SelectionMemory interface {
	RememberSelection(index int)
}

// DetailPayload is everything the panel needs to open.
type DetailPayload struct {
	Title         string
	Subtitle      string
	ImageURL      string
	Description   string
	Products      []DetailProduct
	SelectedIndex int
	Origin        SelectionMemory
}

// DetailOption is one option button of a rendered panel.
type DetailOption struct {
	Index    int
	Type     string
	Price    float64
	Selected bool
}

// DetailView is the render-ready projection of an open panel.
type DetailView struct {
	Title         string
	Subtitle      string
	Description   string
	ImageURL      string
	Empty         bool
	Selected      DetailProduct
	SelectedIndex int
	Options       []DetailOption
}

// CartWriter receives line items from the gallery, the detail panel and the menu.
type CartWriter interface {
	AddToCart(item LineItem) error
}

// DetailPanel is a two state machine, Closed or Open. Closing only hides the
// panel; the state stays around until the next Open replaces it.
type DetailPanel struct {
	open  bool
	state *DetailPayload
}

func NewDetailPanel() *DetailPanel {
	return &DetailPanel{}
}

// Open replaces any previous state wholesale.
func (p *DetailPanel) Open(payload DetailPayload) {
	products := make([]DetailProduct, len(payload.Products))
	copy(products, payload.Products)
	payload.Products = products

	p.state = &payload
	p.open = true
}

func (p *DetailPanel) IsOpen() bool {
	return p.open
}

func (p *DetailPanel) Close() {
	p.open = false
}

// SelectOption stores index as given and writes it back to the originating
// card. Clamping happens when the panel is viewed.
func (p *DetailPanel) SelectOption(index int) error {
	if !p.open {
		return ErrPanelClosed
	}

	p.state.SelectedIndex = index
	if p.state.Origin != nil {
		p.state.Origin.RememberSelection(index)
	}
	return nil
}

// Selected resolves the product at the clamped selection, falling back to the
// first product.
func (p *DetailPanel) Selected() (DetailProduct, bool) {
	if p.state == nil || len(p.state.Products) == 0 {
		return DetailProduct{}, false
	}

	return p.state.Products[clampIndex(p.state.SelectedIndex, len(p.state.Products))], true
}

// AddSelectedToCart adds {summary, price} of the selected product to cart.
func (p *DetailPanel) AddSelectedToCart(cart CartWriter) error {
	if !p.open {
		return ErrPanelClosed
	}

	selected, ok := p.Selected()
	if !ok {
		return ErrNoProducts
	}
	return cart.AddToCart(LineItem{Summary: selected.Summary, Price: selected.Price})
}

// View projects the current state for rendering. The clamped index is stored
// back so later selections start from what was shown. ok is false before the
// first Open.
func (p *DetailPanel) View() (view DetailView, ok bool) {
	if p.state == nil {
		return DetailView{}, false
	}

	state := p.state
	view = DetailView{
		Title:       state.Title,
		Subtitle:    state.Subtitle,
		Description: state.Description,
		ImageURL:    state.ImageURL,
	}

	selected, found := p.Selected()
	if !found {
		view.Empty = true
		return view, true
	}

	state.SelectedIndex = clampIndex(state.SelectedIndex, len(state.Products))
	view.Selected = selected
	view.SelectedIndex = state.SelectedIndex
	view.ImageURL = ResolveImage(selected.ImageURL, state.ImageURL)

	view.Options = make([]DetailOption, len(state.Products))
	for i, product := range state.Products {
		view.Options[i] = DetailOption{
			Index:    i,
			Type:     product.Type,
			Price:    product.Price,
			Selected: i == state.SelectedIndex,
		}
	}
	return view, true
}

// ResolveImage picks the product image, then the edition image, then "".
func ResolveImage(productImage, editionImage string) string {
	if productImage != "" {
		return productImage
	}
	return editionImage
}

// clampIndex limits index to [0, n-1]. For n == 0 it returns -1.
func clampIndex(index, n int) int {
	if n == 0 {
		return -1
	}
	if index < 0 {
		return 0
	}
	if index > n-1 {
		return n - 1
	}
	return index
}
