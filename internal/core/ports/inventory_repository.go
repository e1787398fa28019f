package ports

import (
	"context"

	"github.com/sitewise/mis-backend/internal/core/domain"
)

// InventoryRepository defines persistence operations for inventory items.
type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	FindByID(ctx context.Context, id string) (*domain.InventoryItem, error)
	FindAll(ctx context.Context) ([]*domain.InventoryItem, error)
	Update(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}
