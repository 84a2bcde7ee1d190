// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/mirepoix/v1/internal/domain/shoppinglist"
)

// RecipeService defines the use cases for recipe management
// This is the primary port that HTTP handlers and other driving adapters will use
type RecipeService interface {
	// Commands - operations that modify state
	CreateRecipe(ctx context.Context, cmd CreateRecipeCommand) (*RecipeDTO, error)
	UpdateRecipe(ctx context.Context, cmd UpdateRecipeCommand) (*RecipeDTO, error)
	PublishRecipe(ctx context.Context, recipeID uuid.UUID) error
	UnpublishRecipe(ctx context.Context, recipeID uuid.UUID) error
	DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error
	AttachImage(ctx context.Context, recipeID uuid.UUID, data []byte, contentType string) (string, error)

	// Queries - operations that read state
	GetRecipeByID(ctx context.Context, recipeID uuid.UUID) (*RecipeDTO, error)
	ListRecipes(ctx context.Context, publishedOnly bool) ([]RecipeDTO, error)
}

// CatalogService manages the reference tables admins curate
type CatalogService interface {
	ListCategories(ctx context.Context) ([]CategoryDTO, error)
	CreateCategory(ctx context.Context, name string) (*CategoryDTO, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*CategoryDTO, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	SetCategoryOrder(ctx context.Context, order map[uuid.UUID]int) error

	ListUnits(ctx context.Context) ([]UnitDTO, error)
	CreateUnit(ctx context.Context, name, symbol string) (*UnitDTO, error)
	UpdateUnit(ctx context.Context, id uuid.UUID, name, symbol string) (*UnitDTO, error)
	DeleteUnit(ctx context.Context, id uuid.UUID) error

	ListIngredients(ctx context.Context) ([]IngredientDTO, error)
	CreateIngredient(ctx context.Context, name, imageURL string) (*IngredientDTO, error)
	UpdateIngredient(ctx context.Context, id uuid.UUID, name, imageURL string) (*IngredientDTO, error)
	DeleteIngredient(ctx context.Context, id uuid.UUID) error
}

// ListService covers the shopper flow: previewing a consolidated list and
// submitting it as a persisted order.
type ListService interface {
	PreviewShoppingList(ctx context.Context, recipeIDs []uuid.UUID) (*shoppinglist.ShoppingList, error)
	CreateList(ctx context.Context, cmd CreateListCommand) (*ListDTO, error)
	GetList(ctx context.Context, id uuid.UUID) (*ListDTO, error)
	ListLists(ctx context.Context) ([]ListDTO, error)
	ToggleItem(ctx context.Context, listID, itemID uuid.UUID, checked bool) error
}

// Command objects for operations

// CreateRecipeCommand contains data for creating a new recipe
type CreateRecipeCommand struct {
	Name             string
	Description      string
	PrepMinutes      int
	Ingredients      []IngredientLineCommand
	Instructions     []string
	ChefInstructions []string
	Categories       []string
}

// UpdateRecipeCommand contains data for updating a recipe.
// Nil fields are left unchanged.
type UpdateRecipeCommand struct {
	RecipeID         uuid.UUID
	Name             *string
	Description      *string
	PrepMinutes      *int
	Ingredients      *[]IngredientLineCommand
	Instructions     *[]string
	ChefInstructions *[]string
	Categories       *[]string
}

// IngredientLineCommand is one ingredient row of a recipe form
type IngredientLineCommand struct {
	Name     string
	Quantity string
	Unit     string
}

// CreateListCommand contains the shopper's order submission
type CreateListCommand struct {
	CustomerName    string
	Email           string
	AppointmentDate string
	AppointmentTime string
	RecipeIDs       []uuid.UUID
}

// Response DTOs

// RecipeDTO is the data transfer object for recipes
type RecipeDTO struct {
	ID               uuid.UUID              `json:"id"`
	Name             string                 `json:"name"`
	Description      string                 `json:"description"`
	PrepMinutes      int                    `json:"prep_minutes"`
	ImageURL         string                 `json:"image_url,omitempty"`
	Ingredients      []IngredientLineDTO    `json:"ingredients"`
	Instructions     []InstructionDTO       `json:"instructions"`
	ChefInstructions []InstructionDTO       `json:"chef_instructions,omitempty"`
	Categories       []string               `json:"categories"`
	Published        bool                   `json:"published"`
	PublishedAt      *string                `json:"published_at,omitempty"`
	CreatedAt        string                 `json:"created_at"`
	UpdatedAt        string                 `json:"updated_at"`
}

// IngredientLineDTO for recipe ingredient rows
type IngredientLineDTO struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// InstructionDTO for instruction data
type InstructionDTO struct {
	StepNumber  int    `json:"step_number"`
	Description string `json:"description"`
}

// CategoryDTO for category reference data
type CategoryDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"order"`
}

// UnitDTO for measurement unit reference data
type UnitDTO struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Symbol string    `json:"symbol"`
}

// IngredientDTO for ingredient registry entries
type IngredientDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url,omitempty"`
}

// ListDTO is the data transfer object for persisted list orders
type ListDTO struct {
	ID              uuid.UUID     `json:"id"`
	CustomerName    string        `json:"customer_name"`
	Email           string        `json:"email"`
	AppointmentDate string        `json:"appointment_date"`
	AppointmentTime string        `json:"appointment_time"`
	RecipeIDs       []uuid.UUID   `json:"recipe_ids"`
	Items           []ListItemDTO `json:"items"`
	PDFURL          string        `json:"pdf_url,omitempty"`
	CreatedAt       string        `json:"created_at"`
	Message         string        `json:"message,omitempty"`
}

// ListItemDTO is one grocery line of a saved list
type ListItemDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Quantity  string    `json:"quantity"`
	Unit      string    `json:"unit"`
	Category  string    `json:"category"`
	IsChecked bool      `json:"is_checked"`
}
