package ports

import (
	"context"

	"github.com/sitewise/mis-backend/internal/core/domain"
)

// CreateItemInput carries the payload for a new inventory item.
type CreateItemInput struct {
	ItemName string
	Quantity int
	Unit     string
	Category string
	Location string
}

// UpdateItemInput is a presence-based partial update; nil fields are left
// unchanged. Quantity may be explicitly set to zero.
type UpdateItemInput struct {
	ItemName *string
	Quantity *int
	Unit     *string
	Category *string
	Location *string
}

// InventoryService implements inventory use-cases.
type InventoryService interface {
	ListItems(ctx context.Context) ([]*domain.InventoryItem, error)
	GetItem(ctx context.Context, id string) (*domain.InventoryItem, error)
	CreateItem(ctx context.Context, input CreateItemInput) (*domain.InventoryItem, error)
	UpdateItem(ctx context.Context, id string, input UpdateItemInput) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, id string) error
}
