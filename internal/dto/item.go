package dto

import (
	"github.com/shopspring/decimal"

	"github.com/sahajlabs/bahikhata/internal/core/domain"
)

// CreateItemRequest is the payload for adding a catalog item.
type CreateItemRequest struct {
	Name    string          `json:"name" binding:"required,max=100"`
	HSNCode string          `json:"hsnCode" binding:"required,max=8"`
	Price   decimal.Decimal `json:"price" binding:"required"`
	GSTRate decimal.Decimal `json:"gstRate"`
	Unit    string          `json:"unit" binding:"required,max=10"`
}

// ItemResponse is the API representation of a catalog item.
type ItemResponse struct {
	ItemID  string          `json:"itemID"`
	Name    string          `json:"name"`
	HSNCode string          `json:"hsnCode"`
	Price   decimal.Decimal `json:"price"`
	GSTRate decimal.Decimal `json:"gstRate"`
	Unit    string          `json:"unit"`
}

// ListItemsResponse wraps the item catalog.
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

// ToItemResponse converts a domain item to its API representation.
func ToItemResponse(item domain.Item) ItemResponse {
	return ItemResponse{
		ItemID:  item.ItemID,
		Name:    item.Name,
		HSNCode: item.HSNCode,
		Price:   item.Price,
		GSTRate: item.GSTRate,
		Unit:    item.Unit,
	}
}

// ToListItemsResponse converts a slice of domain items.
func ToListItemsResponse(items []domain.Item) ListItemsResponse {
	resp := ListItemsResponse{Items: make([]ItemResponse, len(items))}
	for i, item := range items {
		resp.Items[i] = ToItemResponse(item)
	}
	return resp
}
