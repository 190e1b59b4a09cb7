package cart

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Manager hands out one Store per tenant, hydrating each tenant's cart
// at most once per process. Stores are created lazily on first access.
type Manager struct {
	storage Storage
	log     *zap.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

// NewManager builds a manager over the given storage backend.
func NewManager(storage Storage, log *zap.Logger) *Manager {
	return &Manager{
		storage: storage,
		log:     log,
		stores:  make(map[string]*Store),
	}
}

// Store returns the cart store for a tenant, creating and hydrating it
// on first access.
func (m *Manager) Store(ctx context.Context, tenantID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[tenantID]; ok {
		return s
	}
	s := NewStore(ctx, tenantID, m.storage, m.log)
	m.stores[tenantID] = s
	return s
}
