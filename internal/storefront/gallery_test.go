package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/artwork-storefront/internal/models"
)

type actionsSpy struct {
	cartSpy
	opened []DetailPayload
}

func (a *actionsSpy) OpenDetail(payload DetailPayload) {
	a.opened = append(a.opened, payload)
}

func TestBuildCards(t *testing.T) {
	cards := BuildCards(sampleArtworks())
	require.Len(t, cards, 2)

	first := cards[0]
	assert.Equal(t, "edition-1-11", first.ID)
	assert.Equal(t, "Night Bloom", first.Title)
	assert.Equal(t, "Edition #08/48", first.Subtitle)
	assert.Equal(t, "Printed on cotton", first.Description)
	assert.Equal(t, "https://x/edition.png", first.CoverImage)
	require.Len(t, first.Rows, 2)
	assert.Equal(t, "https://x/edition.png", first.Rows[0].ImageURL)
	assert.Equal(t, "https://x/poster.png", first.Rows[1].ImageURL)

	second := cards[1]
	assert.Equal(t, "Flowers that open after dark", second.Description)
	assert.Equal(t, "", second.CoverImage)
	assert.Empty(t, second.Rows)
}

func TestCoverImageFallsBackToFirstProduct(t *testing.T) {
	cards := BuildCards([]models.ArtworkTree{{
		ID: 2,
		Editions: []models.EditionTree{{
			ID: 21,
			Products: []models.ProductNode{
				{ID: 1, ImageURL: "https://x/first.png"},
				{ID: 2, ImageURL: "https://x/second.png"},
			},
		}},
	}})

	require.Len(t, cards, 1)
	assert.Equal(t, "https://x/first.png", cards[0].CoverImage)
}

func TestGalleryQuickAdd(t *testing.T) {
	actions := &actionsSpy{}
	gallery := NewGallery(actions)
	gallery.Render(sampleArtworks())

	require.NoError(t, gallery.Click(Event{Target: TargetQuickAdd, CardID: "edition-1-11", Row: 1}))

	assert.Equal(t, []LineItem{{Summary: posterSummary, Price: 20}}, actions.items)
	assert.Empty(t, actions.opened)
}

func TestGalleryDetailTriggerRemembersRow(t *testing.T) {
	actions := &actionsSpy{}
	gallery := NewGallery(actions)
	gallery.Render(sampleArtworks())

	require.NoError(t, gallery.Click(Event{Target: TargetDetailTrigger, CardID: "edition-1-11", Row: 1}))
	require.Len(t, actions.opened, 1)
	assert.Equal(t, 1, actions.opened[0].SelectedIndex)
	assert.Len(t, actions.opened[0].Products, 2)
	assert.Equal(t, "https://x/edition.png", actions.opened[0].ImageURL)

	card, err := gallery.Card("edition-1-11")
	require.NoError(t, err)
	assert.Equal(t, 1, card.Selection())
	assert.Same(t, card, actions.opened[0].Origin)

	require.NoError(t, gallery.Click(Event{Target: TargetCard, CardID: "edition-1-11"}))
	require.Len(t, actions.opened, 2)
	assert.Equal(t, 1, actions.opened[1].SelectedIndex)
	assert.Empty(t, actions.items)
}

func TestGalleryCardBodyDefaultsToFirstRow(t *testing.T) {
	actions := &actionsSpy{}
	gallery := NewGallery(actions)
	gallery.Render(sampleArtworks())

	card, err := gallery.Card("edition-1-11")
	require.NoError(t, err)
	card.RememberSelection(9)

	require.NoError(t, gallery.Click(Event{Target: TargetCard, CardID: "edition-1-11"}))
	require.Len(t, actions.opened, 1)
	assert.Equal(t, 0, actions.opened[0].SelectedIndex)
	assert.Equal(t, 0, card.Selection())
}

func TestGalleryOptionRowClickIgnored(t *testing.T) {
	actions := &actionsSpy{}
	gallery := NewGallery(actions)
	gallery.Render(sampleArtworks())

	require.NoError(t, gallery.Click(Event{Target: TargetOptionRow, CardID: "edition-1-11", Row: 0}))
	assert.Empty(t, actions.items)
	assert.Empty(t, actions.opened)
}

func TestGalleryUnknownTargets(t *testing.T) {
	actions := &actionsSpy{}
	gallery := NewGallery(actions)
	gallery.Render(sampleArtworks())

	err := gallery.Click(Event{Target: TargetQuickAdd, CardID: "edition-9-9"})
	assert.ErrorIs(t, err, ErrUnknownCard)

	err = gallery.Click(Event{Target: TargetQuickAdd, CardID: "edition-1-11", Row: 2})
	assert.ErrorIs(t, err, ErrUnknownRow)

	err = gallery.Click(Event{Target: TargetDetailTrigger, CardID: "edition-1-12", Row: 0})
	assert.ErrorIs(t, err, ErrUnknownRow)

	assert.Empty(t, actions.items)
	assert.Empty(t, actions.opened)
}

func TestGalleryRenderBindsOnce(t *testing.T) {
	actions := &actionsSpy{}
	gallery := NewGallery(actions)

	gallery.Render(sampleArtworks())
	gallery.Render(sampleArtworks())
	assert.Equal(t, 1, gallery.Container().ListenerCount())
	assert.Equal(t, RegionGallery, gallery.Container().Region())

	require.NoError(t, gallery.Click(Event{Target: TargetQuickAdd, CardID: "edition-1-11", Row: 0}))
	assert.Len(t, actions.items, 1)
}

func TestGalleryRerenderDropsOldCards(t *testing.T) {
	gallery := NewGallery(&actionsSpy{})
	gallery.Render(sampleArtworks())
	gallery.Render(nil)

	assert.Empty(t, gallery.Cards())
	_, err := gallery.Card("edition-1-11")
	assert.ErrorIs(t, err, ErrUnknownCard)
}

func TestTargetString(t *testing.T) {
	assert.Equal(t, "quick-add", TargetQuickAdd.String())
	assert.Equal(t, "target(42)", Target(42).String())
}
