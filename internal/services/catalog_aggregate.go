// internal/services/catalog_aggregate.go
package services

import (
	"github.com/javajoker/artwork-storefront/internal/models"
)

type editionKey struct {
	artworkID uint
	editionID uint
}

// AggregateArtworks folds flat join rows into artwork → edition → product trees.
//
// Artworks keep first-seen order, editions keep first-seen order inside their
// artwork and products keep row order. Attributes of the first row seen for an
// artwork or edition win; later rows for the same id only append products. A row
// without an edition contributes nothing below the artwork, and a row without an
// item contributes no product.
func AggregateArtworks(rows []models.ArtworkRow) []models.ArtworkTree {
	artworks := make([]models.ArtworkTree, 0)
	artworkIndex := make(map[uint]int)
	editionIndex := make(map[editionKey]int)

	for _, row := range rows {
		ai, ok := artworkIndex[row.ArtworkID]
		if !ok {
			artworks = append(artworks, models.ArtworkTree{
				ID:          row.ArtworkID,
				Title:       models.Value(row.Title),
				Description: models.Value(row.BaseDescription),
				Editions:    make([]models.EditionTree, 0),
			})
			ai = len(artworks) - 1
			artworkIndex[row.ArtworkID] = ai
		}

		if row.EditionID == nil {
			continue
		}

		artwork := &artworks[ai]
		key := editionKey{artworkID: row.ArtworkID, editionID: *row.EditionID}
		ei, ok := editionIndex[key]
		if !ok {
			artwork.Editions = append(artwork.Editions, models.EditionTree{
				ID:          *row.EditionID,
				Subtitle:    models.Value(row.Subtitle),
				ImageURL:    models.Value(row.EditionImageURL),
				Description: models.Value(row.SpecificDescription),
				Products:    make([]models.ProductNode, 0),
			})
			ei = len(artwork.Editions) - 1
			editionIndex[key] = ei
		}

		if row.ItemID == nil {
			continue
		}

		edition := &artwork.Editions[ei]
		edition.Products = append(edition.Products, models.ProductNode{
			ID:       *row.ItemID,
			Summary:  models.Value(row.ItemSummary),
			Type:     models.Value(row.ProductType),
			Price:    models.Value(row.FinalPrice),
			Stock:    models.Value(row.Stock),
			ImageURL: models.FirstNonEmpty(models.Value(row.ItemImageURL), edition.ImageURL),
		})
	}

	return artworks
}
