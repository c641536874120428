// internal/database/seed.go
package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/artwork-storefront/internal/models"
)

// DemoCatalog is the data SeedDemoCatalog writes into an empty database.
// Items share *Variant values so each product type is inserted once.
func DemoCatalog() ([]models.Artwork, []models.MenuItem) {
	tee := &models.Variant{ProductType: "T-shirt"}
	poster := &models.Variant{ProductType: "Poster"}
	canvas := &models.Variant{ProductType: "Canvas print"}

	artworks := []models.Artwork{
		{
			Title:           "Night Bloom",
			BaseDescription: "Flowers that open only after dark.",
			Editions: []models.Edition{
				{
					Subtitle:            "Edition #08/48",
					ImageURL:            "editions/night-bloom-08.jpg",
					SpecificDescription: "Hand-signed, *limited* run of 48.",
					Items: []models.Item{
						{Variant: tee, FinalPrice: 10, ItemSummary: "Night Bloom - Edition #08/48 - T-shirt", Stock: 12},
						{Variant: poster, FinalPrice: 20, ItemSummary: "Night Bloom - Edition #08/48 - Poster", Stock: 30, ImageURL: "items/night-bloom-poster.jpg"},
					},
				},
				{
					Subtitle: "Edition #09/48",
					ImageURL: "editions/night-bloom-09.jpg",
				},
			},
		},
		{
			Title:           "Low Tide",
			BaseDescription: "Studies of the harbour at dawn.",
			Editions: []models.Edition{
				{
					Subtitle: "Artist proof",
					Items: []models.Item{
						{Variant: canvas, FinalPrice: 120, ItemSummary: "Low Tide - Artist proof - Canvas print", Stock: 1, ImageURL: "items/low-tide-canvas.jpg"},
						{Variant: poster, FinalPrice: 25, ItemSummary: "Low Tide - Artist proof - Poster", Stock: 8},
					},
				},
			},
		},
		{
			Title:           "Untitled (work in progress)",
			BaseDescription: "Editions announced soon.",
		},
	}

	menu := []models.MenuItem{
		{Name: "Oat Latte", Price: 4.5, Category: "coffee", Description: "Double shot with oat milk.", ImageURL: "menu/oat-latte.jpg"},
		{Name: "Matcha Scone", Price: 3, Category: "bakery", ImageURL: "menu/matcha-scone.jpg"},
	}

	return artworks, menu
}

// SeedDemoCatalog fills an empty catalog. It does nothing once artworks exist.
func SeedDemoCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Artwork{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count artworks: %w", err)
	}
	if count > 0 {
		logrus.WithField("artworks", count).Info("Catalog already populated, skipping seed")
		return nil
	}

	artworks, menu := DemoCatalog()
	err := WithTransaction(db, func(tx *gorm.DB) error {
		if err := tx.Create(&artworks).Error; err != nil {
			return fmt.Errorf("failed to seed artworks: %w", err)
		}
		if err := tx.Create(&menu).Error; err != nil {
			return fmt.Errorf("failed to seed menu: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("artworks", len(artworks)).Info("Demo catalog seeded")
	return nil
}
