// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mirepoix/v1/internal/domain/catalog"
	"github.com/mirepoix/v1/internal/domain/list"
	"github.com/mirepoix/v1/internal/domain/recipe"
)

// RecipeRepository defines the interface for recipe persistence
type RecipeRepository interface {
	Create(ctx context.Context, recipe *recipe.Recipe) error
	Update(ctx context.Context, recipe *recipe.Recipe) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	FindAll(ctx context.Context) ([]*recipe.Recipe, error)
	FindPublished(ctx context.Context) ([]*recipe.Recipe, error)

	// FindByIDs returns the recipes that exist, keyed by ID. IDs with no
	// matching row are simply absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*recipe.Recipe, error)
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	Create(ctx context.Context, category *catalog.Category) error
	Update(ctx context.Context, category *catalog.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error)
	FindAll(ctx context.Context) ([]*catalog.Category, error)

	// SetOrder applies the display order for all given categories in a
	// single transaction.
	SetOrder(ctx context.Context, order map[uuid.UUID]int) error
}

// UnitRepository defines the interface for measurement unit persistence
type UnitRepository interface {
	Create(ctx context.Context, unit *catalog.Unit) error
	Update(ctx context.Context, unit *catalog.Unit) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Unit, error)
	FindAll(ctx context.Context) ([]*catalog.Unit, error)
}

// IngredientRepository defines the interface for ingredient registry persistence
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *catalog.Ingredient) error
	Update(ctx context.Context, ingredient *catalog.Ingredient) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Ingredient, error)
	FindAll(ctx context.Context) ([]*catalog.Ingredient, error)
}

// ListRepository defines the interface for persisted list orders
type ListRepository interface {
	Create(ctx context.Context, order *list.List) error
	Update(ctx context.Context, order *list.List) error
	FindByID(ctx context.Context, id uuid.UUID) (*list.List, error)
	FindAll(ctx context.Context) ([]*list.List, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// StorageService defines the interface for file storage
type StorageService interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// AIService defines the interface for AI grocery organization.
// OrganizeGroceries takes the flattened ingredient text and returns items
// grouped into grocery store sections.
type AIService interface {
	OrganizeGroceries(ctx context.Context, flattened string) ([]OrganizedItem, error)
}

// OrganizedItem is one grocery line with its store section assigned
type OrganizedItem struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
}

// GroceryCategorizer assigns a grocery store section to an ingredient
// name. It is the local fallback used when the AI service is unavailable.
type GroceryCategorizer interface {
	Categorize(name string) string
}

// EmailService defines the interface for sending emails
type EmailService interface {
	SendShoppingList(ctx context.Context, to string, order *list.List, pdf []byte) error
}

// PDFRenderer defines the interface for rendering a list order to PDF
type PDFRenderer interface {
	Render(order *list.List) ([]byte, error)
}
