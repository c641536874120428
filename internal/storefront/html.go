// internal/storefront/html.go
package storefront

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/javajoker/artwork-storefront/internal/i18n"
)

const htmlTemplates = `
{{define "gallery"}}{{if not .}}<p class="gallery-empty">{{t "gallery.empty"}}</p>{{end}}{{range .}}
<div class="art-card" id="{{.ID}}">
  <div class="art-cover"><img src="{{.CoverImage}}" alt="{{.Title}} - {{.Subtitle}}"></div>
  <div class="art-body">
    <h4 class="art-title">{{.Title}}</h4>
    <p class="art-subtitle">{{.Subtitle}}</p>
    <div class="art-description">{{markdown .Description}}</div>
    <div class="art-options">{{range .Rows}}
      <div class="art-option-row" data-option-index="{{.Index}}">
        <button type="button" class="art-plus-btn" aria-label="{{t "gallery.add_to_cart"}}">+</button>
        <button type="button" class="art-detail-trigger" aria-label="{{t "gallery.view_detail"}}"><span class="art-type">{{.Type}}</span> <span class="art-price">{{price .Price}}</span></button>
      </div>{{end}}
    </div>
  </div>
</div>{{end}}{{end}}

{{define "detail"}}<div class="product-detail" aria-label="{{t "detail.heading"}}">
  <button type="button" class="product-detail-close" aria-label="{{t "detail.close"}}">✕</button>
{{if .Empty}}  <p class="product-detail-empty">{{t "detail.no_products"}}</p>
{{else}}  <img class="product-detail-image" src="{{.ImageURL}}" alt="{{.Title}} {{.Subtitle}}">
  <h4>{{.Title}}</h4>
  <p class="product-detail-subtitle">{{.Subtitle}}</p>
  <p class="product-detail-type">{{.Selected.Type}}</p>
  <p class="product-detail-price">{{price .Selected.Price}}</p>
  <div class="product-detail-description">{{markdown .Description}}</div>
  <div class="product-detail-options">{{range .Options}}
    <button type="button" class="product-detail-option{{if .Selected}} is-selected{{end}}" data-option-index="{{.Index}}"><span>{{.Type}}</span> <span>{{price .Price}}</span></button>{{end}}
  </div>
  <button type="button" class="product-detail-add-btn">{{t "detail.add_to_cart"}}</button>
{{end}}</div>{{end}}

{{define "cart"}}<div class="cart-drawer{{if not .Open}} hidden{{end}}">
  <h3>{{t "cart.heading"}}</h3>
{{if not .Items}}  <p class="cart-empty">{{t "cart.empty"}}</p>
{{else}}{{range $i, $item := .Items}}  <div class="cart-line" data-index="{{$i}}"><span class="cart-summary">{{$item.Summary}}</span> <span class="cart-price">{{price $item.Price}}</span> <button type="button" class="cart-remove-btn" aria-label="{{t "cart.remove"}}">✕</button></div>
{{end}}{{end}}  <p class="cart-total">{{t "cart.total"}} <span id="total-price">{{price .Total}}</span></p>
  <button type="button" class="cart-checkout-btn">{{t "cart.checkout"}}</button>
</div>{{end}}

{{define "menu"}}{{range .}}<div class="menu-card" data-index="{{.Index}}">
  <img src="{{.ImageURL}}" alt="{{.Name}}">
  <p class="menu-category">{{.Category}}</p>
  <h4 class="menu-name">{{.Name}}</h4>
  <p class="menu-description">{{.Description}}</p>
  <p class="menu-price">{{price .Price}}</p>
  <button type="button" class="menu-add-btn">{{t "menu.add_to_order"}}</button>
</div>
{{end}}{{end}}

{{define "notice"}}<p class="storefront-notice">{{.}}</p>{{end}}
`

// HTMLRenderer renders storefront regions as HTML fragments. Interpolated
// text is escaped by html/template; descriptions are Markdown and go through
// an HTML sanitizer before being emitted.
type HTMLRenderer struct {
	lang     string
	tmpl     *template.Template
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

func NewHTMLRenderer(lang string) (*HTMLRenderer, error) {
	r := &HTMLRenderer{
		lang:     i18n.Normalize(lang),
		markdown: goldmark.New(),
		policy:   newDescriptionPolicy(),
	}

	tmpl, err := template.New("storefront").Funcs(template.FuncMap{
		"t": func(key string) string {
			return i18n.T(r.lang, key)
		},
		"price":    FormatPrice,
		"markdown": r.renderMarkdown,
	}).Parse(htmlTemplates)
	if err != nil {
		return nil, fmt.Errorf("failed to parse storefront templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

func newDescriptionPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	return policy
}

func (r *HTMLRenderer) renderMarkdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render description: %w", err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

func (r *HTMLRenderer) execute(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}

func (r *HTMLRenderer) Gallery(cards []*Card) (string, error) {
	return r.execute("gallery", cards)
}

func (r *HTMLRenderer) Detail(view DetailView) (string, error) {
	return r.execute("detail", view)
}

func (r *HTMLRenderer) Cart(view CartView) (string, error) {
	return r.execute("cart", view)
}

func (r *HTMLRenderer) Menu(cards []MenuCard) (string, error) {
	return r.execute("menu", cards)
}

func (r *HTMLRenderer) Notice(message string) (string, error) {
	return r.execute("notice", message)
}
