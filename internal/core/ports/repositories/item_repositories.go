package repositories

import (
	"context"

	"github.com/sahajlabs/bahikhata/internal/core/domain"
)

// ItemRepository defines persistence operations for the item catalog.
type ItemRepository interface {
	SaveItem(ctx context.Context, item domain.Item) error
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
}
