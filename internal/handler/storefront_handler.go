package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/amit-00/shop-kit/internal/catalog"
	"github.com/amit-00/shop-kit/internal/middleware"
	"github.com/amit-00/shop-kit/internal/search"
	"github.com/amit-00/shop-kit/pkg/logger"
	"github.com/amit-00/shop-kit/prometheus"
)

// Storefront serves the catalog and search surface. The catalog provider
// and cart manager are injected; handlers hold no package-level state.
type Storefront struct {
	catalogs catalog.Provider
}

// NewStorefront builds the catalog/search handler set.
func NewStorefront(catalogs catalog.Provider) *Storefront {
	return &Storefront{catalogs: catalogs}
}

// ListCatalogs handles retrieving all catalogs
func (h *Storefront) ListCatalogs(c echo.Context) error {
	log := logger.FromEcho(c)

	catalogs := h.catalogs.Catalogs()
	log.Info("Catalogs retrieved", zap.Int("count", len(catalogs)))
	return c.JSON(http.StatusOK, catalogs)
}

// ListProducts handles retrieving products, optionally filtered and
// ranked by the q query parameter. An empty query returns every product
// in catalog order.
func (h *Storefront) ListProducts(c echo.Context) error {
	log := logger.FromEcho(c)

	products := h.catalogs.Products()
	query := c.QueryParam("q")
	if query != "" {
		start := time.Now()
		products = search.Search(products, query)
		prometheus.RecordSearchQuery(time.Since(start))
		log.Info("Products searched",
			zap.String("query", query),
			zap.Int("count", len(products)))
	} else {
		log.Info("Products listed", zap.Int("count", len(products)))
	}

	return c.JSON(http.StatusOK, products)
}

// GetProduct handles retrieving a single product by ID across all catalogs
func (h *Storefront) GetProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	product, ok := h.catalogs.ProductByID(id)
	if !ok {
		log.Warn("Product not found", zap.String("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	log.Info("Product retrieved",
		zap.String("product_id", id),
		zap.String("product_name", product.Name))
	return c.JSON(http.StatusOK, product)
}

// tenantID pulls the resolved tenant from the request context. The
// tenant middleware always runs first, so a missing tenant is a wiring
// bug; we degrade to the default rather than failing the request.
func tenantID(c echo.Context, fallback string) string {
	if id, ok := middleware.TenantFromContext(c); ok {
		return id
	}
	return fallback
}
