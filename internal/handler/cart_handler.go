package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/amit-00/shop-kit/internal/cart"
	"github.com/amit-00/shop-kit/internal/model"
	"github.com/amit-00/shop-kit/pkg/logger"
	"github.com/amit-00/shop-kit/prometheus"
)

// CartHandler serves the per-tenant cart endpoints. Each request acts on
// the store scoped to the tenant the middleware resolved.
type CartHandler struct {
	carts         *cart.Manager
	defaultTenant string
}

// NewCartHandler builds the cart handler set.
func NewCartHandler(carts *cart.Manager, defaultTenant string) *CartHandler {
	return &CartHandler{carts: carts, defaultTenant: defaultTenant}
}

// AddItemRequest defines the structure for add-to-cart requests. The
// title, image and price become the line item's snapshot. Quantity is
// optional; it defaults to 1.
type AddItemRequest struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Image    string          `json:"image"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// UpdateQuantityRequest defines the structure for quantity updates.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the cart as returned to the storefront, with the
// aggregates recomputed from the line items.
type CartResponse struct {
	Items     []model.LineItem `json:"items"`
	ItemCount int              `json:"item_count"`
	Total     decimal.Decimal  `json:"total"`
}

func cartResponse(s *cart.Store) CartResponse {
	return CartResponse{
		Items:     s.Items(),
		ItemCount: s.ItemCount(),
		Total:     s.Total(),
	}
}

// GetCart handles retrieving the tenant's cart
func (h *CartHandler) GetCart(c echo.Context) error {
	store := h.store(c)
	return c.JSON(http.StatusOK, cartResponse(store))
}

// AddItem handles adding a product to the tenant's cart. Adding an id
// already in the cart increments its quantity instead of duplicating
// the line item. A requested quantity above one is composed from the
// single-increment add plus a follow-up quantity update.
func (h *CartHandler) AddItem(c echo.Context) error {
	log := logger.FromEcho(c)

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.ID == "" {
		log.Warn("Add to cart without product id")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Product id is required",
		})
	}

	store := h.store(c)
	ctx := c.Request().Context()

	before := store.Quantity(req.ID)
	store.Add(ctx, model.LineItem{
		ID:    req.ID,
		Title: req.Title,
		Image: req.Image,
		Price: req.Price,
	})
	if req.Quantity > 1 {
		store.UpdateQuantity(ctx, req.ID, before+req.Quantity)
	}

	prometheus.RecordCartOperation("add")
	log.Info("Item added to cart",
		zap.String("tenant_id", store.TenantID()),
		zap.String("product_id", req.ID),
		zap.Int("quantity", store.Quantity(req.ID)))
	return c.JSON(http.StatusOK, cartResponse(store))
}

// UpdateItem handles setting the quantity of a line item. Quantities of
// zero or less remove the item; unknown ids are a no-op.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	store := h.store(c)
	store.UpdateQuantity(c.Request().Context(), id, req.Quantity)

	prometheus.RecordCartOperation("update_quantity")
	log.Info("Cart quantity updated",
		zap.String("tenant_id", store.TenantID()),
		zap.String("product_id", id),
		zap.Int("quantity", req.Quantity))
	return c.JSON(http.StatusOK, cartResponse(store))
}

// RemoveItem handles deleting a line item. Unknown ids are a no-op.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	store := h.store(c)
	store.Remove(c.Request().Context(), id)

	prometheus.RecordCartOperation("remove")
	log.Info("Item removed from cart",
		zap.String("tenant_id", store.TenantID()),
		zap.String("product_id", id))
	return c.JSON(http.StatusOK, cartResponse(store))
}

// ClearCart handles emptying the tenant's cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	log := logger.FromEcho(c)

	store := h.store(c)
	store.Clear(c.Request().Context())

	prometheus.RecordCartOperation("clear")
	log.Info("Cart cleared", zap.String("tenant_id", store.TenantID()))
	return c.JSON(http.StatusOK, cartResponse(store))
}

func (h *CartHandler) store(c echo.Context) *cart.Store {
	return h.carts.Store(c.Request().Context(), tenantID(c, h.defaultTenant))
}
