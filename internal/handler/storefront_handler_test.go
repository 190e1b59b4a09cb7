package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amit-00/shop-kit/internal/catalog"
	"github.com/amit-00/shop-kit/internal/model"
)

func newStorefrontServer() *echo.Echo {
	e := echo.New()
	h := NewStorefront(catalog.NewStaticProvider(catalog.SeedCatalogs()))
	e.GET("/api/catalogs", h.ListCatalogs)
	e.GET("/api/products", h.ListProducts)
	e.GET("/api/products/:id", h.GetProduct)
	return e
}

func getProducts(t *testing.T, e *echo.Echo, path string) []model.Product {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	return products
}

func TestStorefront(t *testing.T) {
	e := newStorefrontServer()

	t.Run("lists catalogs", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/catalogs", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var catalogs map[string]model.Catalog
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &catalogs))
		assert.Contains(t, catalogs, "featured")
		assert.Contains(t, catalogs, "new-arrivals")
	})

	t.Run("lists all products without a query", func(t *testing.T) {
		products := getProducts(t, e, "/api/products")
		assert.Len(t, products, 10)
	})

	t.Run("filters products by query", func(t *testing.T) {
		products := getProducts(t, e, "/api/products?q=minimalist")

		require.Len(t, products, 2)
		names := []string{products[0].Name, products[1].Name}
		assert.Contains(t, names, "Minimalist Watch")
		assert.Contains(t, names, "Minimalist Chair")
	})

	t.Run("query with no matches returns empty list", func(t *testing.T) {
		products := getProducts(t, e, "/api/products?q=zeppelin")
		assert.Empty(t, products)
	})

	t.Run("gets a product by id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products/1", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var product model.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
		assert.Equal(t, "Minimalist Watch", product.Name)
	})

	t.Run("unknown product id is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products/missing", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
