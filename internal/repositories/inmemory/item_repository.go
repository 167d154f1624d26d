package inmemory

import (
	"context"
	"fmt"
	"sync"

	"github.com/sahajlabs/bahikhata/internal/apperrors"
	"github.com/sahajlabs/bahikhata/internal/core/domain"
	portsrepo "github.com/sahajlabs/bahikhata/internal/core/ports/repositories"
)

// memItemRepository is a mutex-guarded in-memory item catalog.
type memItemRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Item
	order []string
}

func newMemItemRepository() portsrepo.ItemRepository {
	return &memItemRepository{
		items: make(map[string]domain.Item),
	}
}

var _ portsrepo.ItemRepository = (*memItemRepository)(nil)

func (r *memItemRepository) SaveItem(_ context.Context, item domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ItemID]; exists {
		return fmt.Errorf("item %s: %w", item.ItemID, apperrors.ErrDuplicate)
	}
	r.items[item.ItemID] = item
	r.order = append(r.order, item.ItemID)
	return nil
}

func (r *memItemRepository) FindItemByID(_ context.Context, itemID string) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &item, nil
}

func (r *memItemRepository) ListItems(_ context.Context) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.Item, len(r.order))
	for i, id := range r.order {
		items[i] = r.items[id]
	}
	return items, nil
}
