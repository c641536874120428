// internal/storefront/text.go
package storefront

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javajoker/artwork-storefront/internal/i18n"
)

var (
	accentColor = lipgloss.Color("#CA8A04")
	mutedColor  = lipgloss.Color("#9CA3AF")
	errorColor  = lipgloss.Color("#E53935")
)

// TextRenderer renders storefront regions for a terminal. Cards are numbered
// from 1 so shell commands can refer to them.
type TextRenderer struct {
	lang string

	title    lipgloss.Style
	subtitle lipgloss.Style
	muted    lipgloss.Style
	price    lipgloss.Style
	selected lipgloss.Style
	card     lipgloss.Style
	notice   lipgloss.Style
}

func NewTextRenderer(lang string) *TextRenderer {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(mutedColor).
		Padding(0, 1)

	return &TextRenderer{
		lang:     i18n.Normalize(lang),
		title:    lipgloss.NewStyle().Bold(true),
		subtitle: lipgloss.NewStyle().Foreground(accentColor),
		muted:    lipgloss.NewStyle().Foreground(mutedColor),
		price:    lipgloss.NewStyle().Bold(true),
		selected: lipgloss.NewStyle().Foreground(accentColor).Bold(true),
		card:     card,
		notice:   lipgloss.NewStyle().Foreground(errorColor),
	}
}

func (r *TextRenderer) t(key string, args ...interface{}) string {
	return i18n.T(r.lang, key, args...)
}

func (r *TextRenderer) Gallery(cards []*Card) (string, error) {
	if len(cards) == 0 {
		return r.muted.Render(r.t(i18n.KeyGalleryEmpty)), nil
	}

	blocks := make([]string, 0, len(cards))
	for i, card := range cards {
		var b strings.Builder
		fmt.Fprintf(&b, "[%d] %s\n", i+1, r.title.Render(card.Title))
		b.WriteString(r.subtitle.Render(card.Subtitle))
		if card.Description != "" {
			b.WriteString("\n")
			b.WriteString(r.muted.Render(card.Description))
		}
		for _, row := range card.Rows {
			fmt.Fprintf(&b, "\n  %d) %s  %s", row.Index, row.Type, r.price.Render(FormatPrice(row.Price)))
		}
		blocks = append(blocks, r.card.Render(b.String()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...), nil
}

func (r *TextRenderer) Detail(view DetailView) (string, error) {
	var b strings.Builder
	b.WriteString(r.title.Render(r.t(i18n.KeyDetailHeading)))
	b.WriteString("\n")

	if view.Empty {
		b.WriteString(r.muted.Render(r.t(i18n.KeyDetailNoProducts)))
		return r.card.Render(b.String()), nil
	}

	fmt.Fprintf(&b, "%s\n%s\n", r.title.Render(view.Title), r.subtitle.Render(view.Subtitle))
	fmt.Fprintf(&b, "%s  %s\n", view.Selected.Type, r.price.Render(FormatPrice(view.Selected.Price)))
	if view.ImageURL != "" {
		b.WriteString(r.muted.Render(view.ImageURL))
		b.WriteString("\n")
	}
	if view.Description != "" {
		b.WriteString(r.muted.Render(view.Description))
		b.WriteString("\n")
	}
	for _, option := range view.Options {
		line := fmt.Sprintf("%d) %s  %s", option.Index, option.Type, FormatPrice(option.Price))
		if option.Selected {
			line = r.selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString("\n")
		b.WriteString(line)
	}
	return r.card.Render(b.String()), nil
}

func (r *TextRenderer) Cart(view CartView) (string, error) {
	var b strings.Builder
	b.WriteString(r.title.Render(r.t(i18n.KeyCartHeading)))
	b.WriteString("\n")

	if len(view.Items) == 0 {
		b.WriteString(r.muted.Render(r.t(i18n.KeyCartEmpty)))
	}
	for i, item := range view.Items {
		fmt.Fprintf(&b, "%d) %s  %s\n", i, item.Summary, r.price.Render(FormatPrice(item.Price)))
	}

	fmt.Fprintf(&b, "\n%s %s", r.t(i18n.KeyCartTotal), r.price.Render(FormatPrice(view.Total)))
	return r.card.Render(b.String()), nil
}

func (r *TextRenderer) Menu(cards []MenuCard) (string, error) {
	lines := make([]string, 0, len(cards))
	for _, card := range cards {
		line := fmt.Sprintf("%d) %s  %s", card.Index, r.title.Render(card.Name), r.price.Render(FormatPrice(card.Price)))
		if card.Category != "" {
			line += "  " + r.muted.Render(card.Category)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func (r *TextRenderer) Notice(message string) (string, error) {
	return r.notice.Render(message), nil
}
