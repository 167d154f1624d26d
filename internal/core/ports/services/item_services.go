package services

import (
	"context"

	"github.com/sahajlabs/bahikhata/internal/core/domain"
	"github.com/sahajlabs/bahikhata/internal/dto"
)

// ItemSvcFacade defines operations for managing the item catalog.
type ItemSvcFacade interface {
	CreateItem(ctx context.Context, req dto.CreateItemRequest) (*domain.Item, error)
	GetItemByID(ctx context.Context, itemID string) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
}
