package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sahajlabs/bahikhata/internal/apperrors"
	"github.com/sahajlabs/bahikhata/internal/core/domain"
	portsrepo "github.com/sahajlabs/bahikhata/internal/core/ports/repositories"
	portssvc "github.com/sahajlabs/bahikhata/internal/core/ports/services"
	"github.com/sahajlabs/bahikhata/internal/dto"
)

// itemService manages the item catalog used to pre-fill voucher lines.
type itemService struct {
	BaseService
	itemRepo portsrepo.ItemRepository
}

// NewItemService creates a new item service.
func NewItemService(itemRepo portsrepo.ItemRepository) portssvc.ItemSvcFacade {
	return &itemService{itemRepo: itemRepo}
}

var _ portssvc.ItemSvcFacade = (*itemService)(nil)

// CreateItem adds a catalog item.
func (s *itemService) CreateItem(ctx context.Context, req dto.CreateItemRequest) (*domain.Item, error) {
	now := time.Now().UTC()
	item := domain.Item{
		ItemID:  "item_" + uuid.NewString(),
		Name:    req.Name,
		HSNCode: req.HSNCode,
		Price:   req.Price,
		GSTRate: req.GSTRate,
		Unit:    req.Unit,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "api",
			LastUpdatedAt: now,
			LastUpdatedBy: "api",
		},
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save item", slog.String("item_id", item.ItemID))
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	s.LogInfo(ctx, "Item created", slog.String("item_id", item.ItemID), slog.String("hsn", item.HSNCode))
	return &item, nil
}

// GetItemByID retrieves a single catalog item.
func (s *itemService) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to find item", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to find item %s: %w", itemID, err)
	}
	return item, nil
}

// ListItems returns the catalog in creation order.
func (s *itemService) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.itemRepo.ListItems(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list items")
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}
