package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, LogLevel("silent"))
	assert.Equal(t, logger.Error, LogLevel("ERROR"))
	assert.Equal(t, logger.Info, LogLevel("info"))
	assert.Equal(t, logger.Warn, LogLevel(""))
	assert.Equal(t, logger.Warn, LogLevel("verbose"))
}

func TestDemoCatalogShape(t *testing.T) {
	artworks, menu := DemoCatalog()

	assert.NotEmpty(t, menu)
	assert.Len(t, artworks, 3)

	variants := map[string]bool{}
	for _, artwork := range artworks {
		assert.NotEmpty(t, artwork.Title)
		for _, edition := range artwork.Editions {
			for _, item := range edition.Items {
				if assert.NotNil(t, item.Variant, item.ItemSummary) {
					variants[item.Variant.ProductType] = true
				}
				assert.GreaterOrEqual(t, item.FinalPrice, 0.0)
			}
		}
	}
	assert.Len(t, variants, 3)

	assert.Same(t, artworks[0].Editions[0].Items[1].Variant, artworks[1].Editions[0].Items[1].Variant,
		"shared product types are inserted once")
}
