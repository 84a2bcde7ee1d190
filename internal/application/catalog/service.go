// Package catalog provides the application layer for the admin reference
// tables: categories, units, and the ingredient registry.
package catalog

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mirepoix/v1/internal/domain/catalog"
	"github.com/mirepoix/v1/internal/ports/inbound"
	"github.com/mirepoix/v1/internal/ports/outbound"
	"github.com/mirepoix/v1/pkg/errors"
)

// CatalogService implements the reference table use cases
type CatalogService struct {
	categoryRepo   outbound.CategoryRepository
	unitRepo       outbound.UnitRepository
	ingredientRepo outbound.IngredientRepository
	logger         *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	categoryRepo outbound.CategoryRepository,
	unitRepo outbound.UnitRepository,
	ingredientRepo outbound.IngredientRepository,
	logger *zap.Logger,
) inbound.CatalogService {
	return &CatalogService{
		categoryRepo:   categoryRepo,
		unitRepo:       unitRepo,
		ingredientRepo: ingredientRepo,
		logger:         logger.Named("catalog-service"),
	}
}

// ListCategories returns all categories sorted by display order
func (s *CatalogService) ListCategories(ctx context.Context) ([]inbound.CategoryDTO, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list categories", err)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].DisplayOrder < categories[j].DisplayOrder
	})

	dtos := make([]inbound.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		dtos = append(dtos, inbound.CategoryDTO{
			ID:           category.ID,
			Name:         category.Name,
			DisplayOrder: category.DisplayOrder,
		})
	}
	return dtos, nil
}

// CreateCategory adds a category; new entries sort after existing ones
func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*inbound.CategoryDTO, error) {
	existing, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list categories", err)
	}

	category, err := catalog.NewCategory(name, len(existing))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.NewDatabaseError("create category", err)
	}

	s.logger.Info("Category created", zap.String("name", name))
	return &inbound.CategoryDTO{ID: category.ID, Name: category.Name, DisplayOrder: category.DisplayOrder}, nil
}

// UpdateCategory renames a category
func (s *CatalogService) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*inbound.CategoryDTO, error) {
	if name == "" {
		return nil, errors.NewValidationError(catalog.ErrCategoryNameRequired.Error())
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.NewCategoryNotFoundError(id.String())
	}

	category.Name = name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.NewDatabaseError("update category", err)
	}

	return &inbound.CategoryDTO{ID: category.ID, Name: category.Name, DisplayOrder: category.DisplayOrder}, nil
}

// DeleteCategory removes a category
func (s *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return errors.NewCategoryNotFoundError(id.String())
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return errors.NewDatabaseError("delete category", err)
	}
	return nil
}

// SetCategoryOrder applies a manual ordering in one transaction.
// Last write wins; there is no optimistic locking on reference data.
func (s *CatalogService) SetCategoryOrder(ctx context.Context, order map[uuid.UUID]int) error {
	if len(order) == 0 {
		return errors.NewValidationError("order must not be empty")
	}
	if err := s.categoryRepo.SetOrder(ctx, order); err != nil {
		return errors.NewDatabaseError("reorder categories", err)
	}
	s.logger.Info("Category order updated", zap.Int("count", len(order)))
	return nil
}

// ListUnits returns all measurement units
func (s *CatalogService) ListUnits(ctx context.Context) ([]inbound.UnitDTO, error) {
	units, err := s.unitRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list units", err)
	}

	dtos := make([]inbound.UnitDTO, 0, len(units))
	for _, unit := range units {
		dtos = append(dtos, inbound.UnitDTO{ID: unit.ID, Name: unit.Name, Symbol: unit.Symbol})
	}
	return dtos, nil
}

// CreateUnit adds a measurement unit
func (s *CatalogService) CreateUnit(ctx context.Context, name, symbol string) (*inbound.UnitDTO, error) {
	unit, err := catalog.NewUnit(name, symbol)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.unitRepo.Create(ctx, unit); err != nil {
		return nil, errors.NewDatabaseError("create unit", err)
	}

	return &inbound.UnitDTO{ID: unit.ID, Name: unit.Name, Symbol: unit.Symbol}, nil
}

// UpdateUnit renames a unit or changes its symbol
func (s *CatalogService) UpdateUnit(ctx context.Context, id uuid.UUID, name, symbol string) (*inbound.UnitDTO, error) {
	if name == "" {
		return nil, errors.NewValidationError(catalog.ErrUnitNameRequired.Error())
	}
	if symbol == "" {
		return nil, errors.NewValidationError(catalog.ErrUnitSymbolRequired.Error())
	}

	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.NewUnitNotFoundError(id.String())
	}

	unit.Name = name
	unit.Symbol = symbol
	if err := s.unitRepo.Update(ctx, unit); err != nil {
		return nil, errors.NewDatabaseError("update unit", err)
	}

	return &inbound.UnitDTO{ID: unit.ID, Name: unit.Name, Symbol: unit.Symbol}, nil
}

// DeleteUnit removes a unit
func (s *CatalogService) DeleteUnit(ctx context.Context, id uuid.UUID) error {
	if _, err := s.unitRepo.FindByID(ctx, id); err != nil {
		return errors.NewUnitNotFoundError(id.String())
	}
	if err := s.unitRepo.Delete(ctx, id); err != nil {
		return errors.NewDatabaseError("delete unit", err)
	}
	return nil
}

// ListIngredients returns the ingredient registry
func (s *CatalogService) ListIngredients(ctx context.Context) ([]inbound.IngredientDTO, error) {
	ingredients, err := s.ingredientRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list ingredients", err)
	}

	dtos := make([]inbound.IngredientDTO, 0, len(ingredients))
	for _, ingredient := range ingredients {
		dtos = append(dtos, inbound.IngredientDTO{
			ID:       ingredient.ID,
			Name:     ingredient.Name,
			ImageURL: ingredient.ImageURL,
		})
	}
	return dtos, nil
}

// CreateIngredient adds an ingredient registry entry
func (s *CatalogService) CreateIngredient(ctx context.Context, name, imageURL string) (*inbound.IngredientDTO, error) {
	ingredient, err := catalog.NewIngredient(name, imageURL)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.ingredientRepo.Create(ctx, ingredient); err != nil {
		return nil, errors.NewDatabaseError("create ingredient", err)
	}

	return &inbound.IngredientDTO{ID: ingredient.ID, Name: ingredient.Name, ImageURL: ingredient.ImageURL}, nil
}

// UpdateIngredient renames an ingredient or changes its image
func (s *CatalogService) UpdateIngredient(ctx context.Context, id uuid.UUID, name, imageURL string) (*inbound.IngredientDTO, error) {
	if name == "" {
		return nil, errors.NewValidationError(catalog.ErrIngredientNameRequired.Error())
	}

	ingredient, err := s.ingredientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.NewIngredientNotFoundError(id.String())
	}

	ingredient.Name = name
	ingredient.ImageURL = imageURL
	if err := s.ingredientRepo.Update(ctx, ingredient); err != nil {
		return nil, errors.NewDatabaseError("update ingredient", err)
	}

	return &inbound.IngredientDTO{ID: ingredient.ID, Name: ingredient.Name, ImageURL: ingredient.ImageURL}, nil
}

// DeleteIngredient removes an ingredient registry entry
func (s *CatalogService) DeleteIngredient(ctx context.Context, id uuid.UUID) error {
	if _, err := s.ingredientRepo.FindByID(ctx, id); err != nil {
		return errors.NewIngredientNotFoundError(id.String())
	}
	if err := s.ingredientRepo.Delete(ctx, id); err != nil {
		return errors.NewDatabaseError("delete ingredient", err)
	}
	return nil
}
