package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sitewise/mis-backend/internal/api/metrics"
	"github.com/sitewise/mis-backend/internal/core/domain"
	"github.com/sitewise/mis-backend/internal/core/ports"
)

// InventoryService implements inventory use-cases.
type InventoryService struct {
	items  ports.InventoryRepository
	logger zerolog.Logger
}

func NewInventoryService(items ports.InventoryRepository, logger zerolog.Logger) *InventoryService {
	return &InventoryService{items: items, logger: logger}
}

func (s *InventoryService) ListItems(ctx context.Context) ([]*domain.InventoryItem, error) {
	return s.items.FindAll(ctx)
}

func (s *InventoryService) GetItem(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return s.items.FindByID(ctx, id)
}

func (s *InventoryService) CreateItem(ctx context.Context, input ports.CreateItemInput) (*domain.InventoryItem, error) {
	now := time.Now().UTC()
	item := &domain.InventoryItem{
		ItemName:  input.ItemName,
		Quantity:  input.Quantity,
		Unit:      input.Unit,
		Category:  input.Category,
		Location:  input.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.items.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	metrics.InventoryOpsTotal.WithLabelValues("create").Inc()
	s.logger.Info().Str("item_id", created.ID).Str("item_name", created.ItemName).Msg("inventory item created")
	return created, nil
}

// UpdateItem merges the supplied fields into the stored record. Absent
// (nil) fields are left untouched; Quantity may be set to zero.
func (s *InventoryService) UpdateItem(ctx context.Context, id string, input ports.UpdateItemInput) (*domain.InventoryItem, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ItemName != nil {
		item.ItemName = *input.ItemName
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Location != nil {
		item.Location = *input.Location
	}
	item.UpdatedAt = time.Now().UTC()

	updated, err := s.items.Update(ctx, item)
	if err != nil {
		return nil, err
	}

	metrics.InventoryOpsTotal.WithLabelValues("update").Inc()
	return updated, nil
}

func (s *InventoryService) DeleteItem(ctx context.Context, id string) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}

	metrics.InventoryOpsTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Str("item_id", id).Msg("inventory item deleted")
	return nil
}
