package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mirepoix/v1/internal/domain/list"
	"github.com/mirepoix/v1/internal/ports/outbound"
)

// ListRepository implements the list order repository using GORM
type ListRepository struct {
	db *gorm.DB
}

// NewListRepository creates a new list repository
func NewListRepository(db *gorm.DB) outbound.ListRepository {
	return &ListRepository{db: db}
}

// Create persists a list order together with its items
func (r *ListRepository) Create(ctx context.Context, order *list.List) error {
	return r.db.WithContext(ctx).Create(ListToModel(order)).Error
}

// Update saves the order row and its items. Items are replaced wholesale;
// a saved list is small and its items only ever flip their checked state.
func (r *ListRepository) Update(ctx context.Context, order *list.List) error {
	model := ListToModel(order)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Omit("Items").Save(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.New("list not found")
		}

		for i := range model.Items {
			if err := tx.Save(&model.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID finds a list order by ID with its items
func (r *ListRepository) FindByID(ctx context.Context, id uuid.UUID) (*list.List, error) {
	var model ListModel

	result := r.db.WithContext(ctx).Preload("Items").First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New("list not found")
		}
		return nil, result.Error
	}

	return ModelToList(&model), nil
}

// FindAll returns every list order, newest first
func (r *ListRepository) FindAll(ctx context.Context) ([]*list.List, error) {
	var models []ListModel

	result := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	orders := make([]*list.List, 0, len(models))
	for i := range models {
		orders = append(orders, ModelToList(&models[i]))
	}
	return orders, nil
}
