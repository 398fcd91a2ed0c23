package store

import (
	"context"
	"sync"

	"github.com/rsalazarq/storefront/internal/models"
)

// MemoryCartStore keeps snapshots in process memory. Used in tests and when
// running without a Redis instance.
type MemoryCartStore struct {
	mu         sync.RWMutex
	carts      map[string][]models.CartLine
	lastOrders map[string]*models.LastOrderInfo

	// FailWrites makes SaveLines fail, for exercising the write-failure path.
	FailWrites error
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{
		carts:      make(map[string][]models.CartLine),
		lastOrders: make(map[string]*models.LastOrderInfo),
	}
}

func (s *MemoryCartStore) LoadLines(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.carts[sessionID]
	out := make([]models.CartLine, len(lines))
	copy(out, lines)

	return out, nil
}

func (s *MemoryCartStore) SaveLines(ctx context.Context, sessionID string, lines []models.CartLine) error {
	if s.FailWrites != nil {
		return s.FailWrites
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved := make([]models.CartLine, len(lines))
	copy(saved, lines)
	s.carts[sessionID] = saved

	return nil
}

func (s *MemoryCartStore) SaveLastOrder(ctx context.Context, sessionID string, info *models.LastOrderInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastOrders[sessionID] = info

	return nil
}

func (s *MemoryCartStore) LoadLastOrder(ctx context.Context, sessionID string) (*models.LastOrderInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastOrders[sessionID], nil
}
