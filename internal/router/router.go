// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/javajoker/artwork-storefront/internal/config"
	"github.com/javajoker/artwork-storefront/internal/handlers"
	"github.com/javajoker/artwork-storefront/internal/middleware"
	"github.com/javajoker/artwork-storefront/internal/services"
	"github.com/javajoker/artwork-storefront/internal/utils"
)

const version = "1.0.0"

// Initialize builds the production engine. Closing stop ends background work
// started for it.
func Initialize(db *gorm.DB, cfg *config.Config, stop <-chan struct{}) (*gin.Engine, error) {
	// Initialize services
	assetService, err := services.NewAssetService(cfg.AWS)
	if err != nil {
		return nil, err
	}
	catalogService := services.NewCatalogService(services.NewCatalogRepository(db), assetService)

	return Setup(catalogService, cfg, stop), nil
}

// Setup wires the HTTP surface around any catalog reader.
func Setup(catalog handlers.CatalogReader, cfg *config.Config, stop <-chan struct{}) *gin.Engine {
	catalogHandler := handlers.NewCatalogHandler(catalog)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())

	// Off by default: excess load waits on the database pool instead.
	if cfg.RateLimit.Enabled() {
		limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		limiter.StartCleanup(time.Minute, stop)
		r.Use(limiter.Middleware())
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": version,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/menu", catalogHandler.GetMenu)
		api.GET("/artworks", catalogHandler.GetArtworks)
	}

	r.NoRoute(utils.NotFoundResponse)

	return r
}
