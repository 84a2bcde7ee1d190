// Package catalog contains the reference entities administrators curate:
// categories, measurement units, and the ingredient registry.
package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Category groups recipes and, transitively, their ingredients in the
// consolidated shopping list. DisplayOrder drives manual ordering in the UI.
type Category struct {
	ID           uuid.UUID
	Name         string
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewCategory creates a category with validation
func NewCategory(name string, displayOrder int) (*Category, error) {
	if name == "" {
		return nil, ErrCategoryNameRequired
	}
	now := time.Now()
	return &Category{
		ID:           uuid.New(),
		Name:         name,
		DisplayOrder: displayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Unit is a measurement unit with a display symbol (e.g. "gram" / "g").
type Unit struct {
	ID        uuid.UUID
	Name      string
	Symbol    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUnit creates a unit with validation
func NewUnit(name, symbol string) (*Unit, error) {
	if name == "" {
		return nil, ErrUnitNameRequired
	}
	if symbol == "" {
		return nil, ErrUnitSymbolRequired
	}
	now := time.Now()
	return &Unit{
		ID:        uuid.New(),
		Name:      name,
		Symbol:    symbol,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Ingredient is a registry entry admins pick from when authoring recipes.
type Ingredient struct {
	ID        uuid.UUID
	Name      string
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewIngredient creates an ingredient with validation
func NewIngredient(name, imageURL string) (*Ingredient, error) {
	if name == "" {
		return nil, ErrIngredientNameRequired
	}
	now := time.Now()
	return &Ingredient{
		ID:        uuid.New(),
		Name:      name,
		ImageURL:  imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
