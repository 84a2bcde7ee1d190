package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mirepoix/v1/internal/domain/catalog"
	"github.com/mirepoix/v1/internal/ports/outbound"
)

// CategoryRepository implements the category repository interface using GORM
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) outbound.CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, category *catalog.Category) error {
	return r.db.WithContext(ctx).Create(CategoryToModel(category)).Error
}

// Update updates an existing category
func (r *CategoryRepository) Update(ctx context.Context, category *catalog.Category) error {
	result := r.db.WithContext(ctx).Save(CategoryToModel(category))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("category not found")
	}
	return nil
}

// Delete deletes a category by ID
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("category not found")
	}
	return nil
}

// FindByID finds a category by ID
func (r *CategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var model CategoryModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, result.Error
	}

	return ModelToCategory(&model), nil
}

// FindAll returns every category ordered by display order
func (r *CategoryRepository) FindAll(ctx context.Context) ([]*catalog.Category, error) {
	var models []CategoryModel

	result := r.db.WithContext(ctx).Order("display_order ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*catalog.Category, 0, len(models))
	for i := range models {
		categories = append(categories, ModelToCategory(&models[i]))
	}
	return categories, nil
}

// SetOrder applies the display order for all given categories in a single
// transaction so a partial reorder never becomes visible.
func (r *CategoryRepository) SetOrder(ctx context.Context, order map[uuid.UUID]int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, position := range order {
			result := tx.Model(&CategoryModel{}).
				Where("id = ?", id).
				Update("display_order", position)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return errors.New("category not found")
			}
		}
		return nil
	})
}

// UnitRepository implements the unit repository interface using GORM
type UnitRepository struct {
	db *gorm.DB
}

// NewUnitRepository creates a new unit repository
func NewUnitRepository(db *gorm.DB) outbound.UnitRepository {
	return &UnitRepository{db: db}
}

// Create creates a new unit
func (r *UnitRepository) Create(ctx context.Context, unit *catalog.Unit) error {
	return r.db.WithContext(ctx).Create(UnitToModel(unit)).Error
}

// Update updates an existing unit
func (r *UnitRepository) Update(ctx context.Context, unit *catalog.Unit) error {
	result := r.db.WithContext(ctx).Save(UnitToModel(unit))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("unit not found")
	}
	return nil
}

// Delete deletes a unit by ID
func (r *UnitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&UnitModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("unit not found")
	}
	return nil
}

// FindByID finds a unit by ID
func (r *UnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Unit, error) {
	var model UnitModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New("unit not found")
		}
		return nil, result.Error
	}

	return ModelToUnit(&model), nil
}

// FindAll returns every unit ordered by name
func (r *UnitRepository) FindAll(ctx context.Context) ([]*catalog.Unit, error) {
	var models []UnitModel

	result := r.db.WithContext(ctx).Order("name ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	units := make([]*catalog.Unit, 0, len(models))
	for i := range models {
		units = append(units, ModelToUnit(&models[i]))
	}
	return units, nil
}

// IngredientRepository implements the ingredient registry repository using GORM
type IngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) outbound.IngredientRepository {
	return &IngredientRepository{db: db}
}

// Create creates a new ingredient
func (r *IngredientRepository) Create(ctx context.Context, ingredient *catalog.Ingredient) error {
	return r.db.WithContext(ctx).Create(IngredientToModel(ingredient)).Error
}

// Update updates an existing ingredient
func (r *IngredientRepository) Update(ctx context.Context, ingredient *catalog.Ingredient) error {
	result := r.db.WithContext(ctx).Save(IngredientToModel(ingredient))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("ingredient not found")
	}
	return nil
}

// Delete deletes an ingredient by ID
func (r *IngredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&IngredientModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("ingredient not found")
	}
	return nil
}

// FindByID finds an ingredient by ID
func (r *IngredientRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Ingredient, error) {
	var model IngredientModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New("ingredient not found")
		}
		return nil, result.Error
	}

	return ModelToIngredient(&model), nil
}

// FindAll returns every ingredient ordered by name
func (r *IngredientRepository) FindAll(ctx context.Context) ([]*catalog.Ingredient, error) {
	var models []IngredientModel

	result := r.db.WithContext(ctx).Order("name ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	ingredients := make([]*catalog.Ingredient, 0, len(models))
	for i := range models {
		ingredients = append(ingredients, ModelToIngredient(&models[i]))
	}
	return ingredients, nil
}
