// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/artwork-storefront/internal/models"
)

// ErrDataUnavailable is returned for any failed catalog read. Callers must not
// surface the wrapped cause to clients.
var ErrDataUnavailable = errors.New("catalog data unavailable")

const artworkTreeQuery = `
SELECT
	a.id                   AS artwork_id,
	a.title                AS title,
	a.base_description     AS base_description,
	e.id                   AS edition_id,
	e.subtitle             AS subtitle,
	e.image_url            AS edition_image_url,
	e.specific_description AS specific_description,
	i.id                   AS item_id,
	i.final_price          AS final_price,
	i.item_summary         AS item_summary,
	i.stock                AS stock,
	i.image_url            AS item_image_url,
	v.id                   AS variant_id,
	v.product_type         AS product_type
FROM artworks a
LEFT JOIN editions e ON e.artwork_id = a.id
LEFT JOIN items i ON i.edition_id = e.id
LEFT JOIN variants v ON v.id = i.variant_id
ORDER BY a.id, e.id, i.id`

// CatalogStore reads the raw catalog. CatalogRepository is the gorm-backed one.
type CatalogStore interface {
	ArtworkRows(ctx context.Context) ([]models.ArtworkRow, error)
	MenuItems(ctx context.Context) ([]models.MenuItem, error)
}

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ArtworkRows(ctx context.Context) ([]models.ArtworkRow, error) {
	var rows []models.ArtworkRow
	if err := r.db.WithContext(ctx).Raw(artworkTreeQuery).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query artwork rows: %w", err)
	}
	return rows, nil
}

func (r *CatalogRepository) MenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to query menu: %w", err)
	}
	return items, nil
}

type CatalogService struct {
	store  CatalogStore
	assets *AssetService
}

func NewCatalogService(store CatalogStore, assets *AssetService) *CatalogService {
	return &CatalogService{
		store:  store,
		assets: assets,
	}
}

// ListArtworks returns the whole artwork tree, or ErrDataUnavailable. A failed
// query never yields a partial tree.
func (s *CatalogService) ListArtworks(ctx context.Context) ([]models.ArtworkTree, error) {
	rows, err := s.store.ArtworkRows(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to load artworks")
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	artworks := AggregateArtworks(rows)
	for i := range artworks {
		for j := range artworks[i].Editions {
			edition := &artworks[i].Editions[j]
			edition.ImageURL = s.assets.ResolveURL(edition.ImageURL)
			for k := range edition.Products {
				edition.Products[k].ImageURL = s.assets.ResolveURL(edition.Products[k].ImageURL)
			}
		}
	}

	return artworks, nil
}

func (s *CatalogService) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	items, err := s.store.MenuItems(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to load menu")
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	if items == nil {
		items = make([]models.MenuItem, 0)
	}
	for i := range items {
		items[i].ImageURL = s.assets.ResolveURL(items[i].ImageURL)
	}
	return items, nil
}
