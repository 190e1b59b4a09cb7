package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amit-00/shop-kit/internal/cart"
	mid "github.com/amit-00/shop-kit/internal/middleware"
	"github.com/amit-00/shop-kit/pkg/config"
	"github.com/amit-00/shop-kit/prometheus"
)

func TestMain(m *testing.M) {
	prometheus.InitMetrics(&config.Config{
		Metrics: config.MetricsConfig{Prefix: "handler_test"},
	})
	os.Exit(m.Run())
}

func newCartServer(storage cart.Storage) *echo.Echo {
	e := echo.New()
	e.Use(mid.TenantMiddleware("minimal"))

	h := NewCartHandler(cart.NewManager(storage, zap.NewNop()), "minimal")
	e.GET("/api/cart", h.GetCart)
	e.POST("/api/cart/items", h.AddItem)
	e.PUT("/api/cart/items/:id", h.UpdateItem)
	e.DELETE("/api/cart/items/:id", h.RemoveItem)
	e.DELETE("/api/cart", h.ClearCart)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, host, body string) (*httptest.ResponseRecorder, CartResponse) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Host = host
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp CartResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestCartHandler(t *testing.T) {
	const host = "shop1.example.com"

	t.Run("empty cart on first access", func(t *testing.T) {
		e := newCartServer(cart.NewMemoryStorage())

		rec, resp := doJSON(t, e, http.MethodGet, "/api/cart", host, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, resp.Items)
		assert.Equal(t, 0, resp.ItemCount)
		assert.True(t, resp.Total.IsZero())
	})

	t.Run("adding the same product twice merges quantities", func(t *testing.T) {
		e := newCartServer(cart.NewMemoryStorage())
		body := `{"id":"1","title":"Minimalist Watch","image":"watch.jpg","price":"299.99"}`

		doJSON(t, e, http.MethodPost, "/api/cart/items", host, body)
		rec, resp := doJSON(t, e, http.MethodPost, "/api/cart/items", host, body)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 2, resp.Items[0].Quantity)
		assert.Equal(t, 2, resp.ItemCount)
		assert.True(t, resp.Total.Equal(decimal.RequireFromString("599.98")))
	})

	t.Run("add with explicit quantity", func(t *testing.T) {
		e := newCartServer(cart.NewMemoryStorage())
		body := `{"id":"1","title":"Minimalist Watch","price":"299.99","quantity":3}`

		rec, resp := doJSON(t, e, http.MethodPost, "/api/cart/items", host, body)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 3, resp.Items[0].Quantity)
	})

	t.Run("add without product id is rejected", func(t *testing.T) {
		e := newCartServer(cart.NewMemoryStorage())

		rec, _ := doJSON(t, e, http.MethodPost, "/api/cart/items", host, `{"title":"No ID"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("quantity update and removal", func(t *testing.T) {
		e := newCartServer(cart.NewMemoryStorage())
		doJSON(t, e, http.MethodPost, "/api/cart/items", host, `{"id":"1","title":"Watch","price":"299.99"}`)

		_, resp := doJSON(t, e, http.MethodPut, "/api/cart/items/1", host, `{"quantity":5}`)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 5, resp.Items[0].Quantity)

		_, resp = doJSON(t, e, http.MethodPut, "/api/cart/items/1", host, `{"quantity":0}`)
		assert.Empty(t, resp.Items)
	})

	t.Run("removing an unknown id is a no-op", func(t *testing.T) {
		e := newCartServer(cart.NewMemoryStorage())
		doJSON(t, e, http.MethodPost, "/api/cart/items", host, `{"id":"1","title":"Watch","price":"299.99"}`)

		rec, resp := doJSON(t, e, http.MethodDelete, "/api/cart/items/missing", host, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, resp.Items, 1)
	})

	t.Run("clear empties the cart", func(t *testing.T) {
		e := newCartServer(cart.NewMemoryStorage())
		doJSON(t, e, http.MethodPost, "/api/cart/items", host, `{"id":"1","title":"Watch","price":"299.99"}`)

		rec, resp := doJSON(t, e, http.MethodDelete, "/api/cart", host, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, resp.Items)
	})

	t.Run("carts are scoped by tenant host", func(t *testing.T) {
		e := newCartServer(cart.NewMemoryStorage())
		doJSON(t, e, http.MethodPost, "/api/cart/items", "shop1.example.com", `{"id":"1","title":"Watch","price":"299.99"}`)

		_, shop1 := doJSON(t, e, http.MethodGet, "/api/cart", "shop1.example.com", "")
		_, shop2 := doJSON(t, e, http.MethodGet, "/api/cart", "shop2.example.com", "")

		assert.Len(t, shop1.Items, 1)
		assert.Empty(t, shop2.Items)
	})

	t.Run("cart survives across requests via storage", func(t *testing.T) {
		storage := cart.NewMemoryStorage()
		e := newCartServer(storage)
		doJSON(t, e, http.MethodPost, "/api/cart/items", host, `{"id":"1","title":"Watch","price":"299.99"}`)

		// A second server over the same storage simulates a restart.
		restarted := newCartServer(storage)
		_, resp := doJSON(t, restarted, http.MethodGet, "/api/cart", host, "")
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Watch", resp.Items[0].Title)
	})
}
