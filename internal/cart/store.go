// Package cart holds the per-tenant shopping cart state machine. Cart
// state lives in memory and is written through to a Storage backend
// after every mutation; the in-memory cart stays authoritative even
// when the backend is down.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/amit-00/shop-kit/internal/model"
)

const keyPrefix = "cart:"

// StorageKey returns the storage key for a tenant's cart. Keys embed the
// tenant id so two tenants can never collide on a record.
func StorageKey(tenantID string) string {
	return keyPrefix + tenantID
}

// Store is the cart for exactly one tenant. It must be constructed with
// NewStore, which hydrates persisted state before any operation runs.
type Store struct {
	tenantID string
	storage  Storage
	log      *zap.Logger

	mu    sync.Mutex
	items model.Cart
}

// NewStore builds a ready store for a tenant, loading any persisted cart
// from storage. A missing or unreadable record yields an empty cart; the
// condition is logged and never surfaces as an error.
func NewStore(ctx context.Context, tenantID string, storage Storage, log *zap.Logger) *Store {
	s := &Store{
		tenantID: tenantID,
		storage:  storage,
		log:      log.With(zap.String("tenant_id", tenantID)),
		items:    model.Cart{},
	}
	s.hydrate(ctx)
	return s
}

func (s *Store) hydrate(ctx context.Context) {
	data, err := s.storage.Load(ctx, StorageKey(s.tenantID))
	if errors.Is(err, ErrNotFound) {
		return
	}
	if err != nil {
		s.log.Warn("Failed to load persisted cart, starting empty", zap.Error(err))
		return
	}

	var items model.Cart
	if err := json.Unmarshal(data, &items); err != nil {
		// A malformed record is treated as absent, not fatal.
		s.log.Warn("Persisted cart record is malformed, starting empty", zap.Error(err))
		return
	}
	s.items = items
}

// TenantID returns the tenant this store is scoped to.
func (s *Store) TenantID() string {
	return s.tenantID
}

// Add inserts the item with quantity 1, or increments the existing line
// item's quantity by 1 when the product is already in the cart.
func (s *Store) Add(ctx context.Context, item model.LineItem) {
	s.dispatch(ctx, AddItem{Item: item})
}

// Remove deletes the line item for id. Absent ids are a no-op.
func (s *Store) Remove(ctx context.Context, id string) {
	s.dispatch(ctx, RemoveItem{ID: id})
}

// UpdateQuantity sets the quantity for id verbatim; non-positive
// quantities remove the item instead.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) {
	s.dispatch(ctx, UpdateQuantity{ID: id, Quantity: quantity})
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) {
	s.dispatch(ctx, ClearCart{})
}

func (s *Store) dispatch(ctx context.Context, cmd Command) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = Apply(s.items, cmd)
	s.persist(ctx)
}

// persist writes the whole cart through to storage. Failures are logged
// and swallowed: durability may lapse for the session, correctness of
// the in-memory cart does not. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.log.Error("Failed to serialize cart", zap.Error(err))
		return
	}
	if err := s.storage.Save(ctx, StorageKey(s.tenantID), data); err != nil {
		s.log.Warn("Failed to persist cart, in-memory state retained", zap.Error(err))
	}
}

// Items returns the current line items. Order is unspecified.
func (s *Store) Items() []model.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]model.LineItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	return items
}

// Quantity returns the quantity for a product id, zero when absent.
func (s *Store) Quantity(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[id].Quantity
}

// ItemCount sums the quantities of all line items.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.ItemCount()
}

// Total sums price * quantity over all line items.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Total()
}
