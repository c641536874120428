// internal/handlers/catalog.go
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/artwork-storefront/internal/models"
	"github.com/javajoker/artwork-storefront/internal/utils"
)

// CatalogReader is satisfied by *services.CatalogService.
type CatalogReader interface {
	ListArtworks(ctx context.Context) ([]models.ArtworkTree, error)
	ListMenu(ctx context.Context) ([]models.MenuItem, error)
}

type CatalogHandler struct {
	catalog CatalogReader
}

func NewCatalogHandler(catalog CatalogReader) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
	}
}

// GET /api/menu
func (h *CatalogHandler) GetMenu(c *gin.Context) {
	items, err := h.catalog.ListMenu(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	utils.SuccessResponse(c, items)
}

// GET /api/artworks
func (h *CatalogHandler) GetArtworks(c *gin.Context) {
	artworks, err := h.catalog.ListArtworks(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	utils.SuccessResponse(c, artworks)
}

func (h *CatalogHandler) fail(c *gin.Context, err error) {
	c.Error(err)
	logrus.WithError(err).WithFields(logrus.Fields{
		"request_id": utils.GetRequestIDFromContext(c),
		"path":       c.Request.URL.Path,
	}).Error("Catalog query failed")
	utils.DataUnavailableResponse(c)
}
