// Package recipe provides tests for the recipe application service
package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/mirepoix/v1/internal/domain/recipe"
	"github.com/mirepoix/v1/internal/ports/inbound"
)

// MockRecipeRepository is a mock implementation of the recipe repository
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, r *recipe.Recipe) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipeRepository) Update(ctx context.Context, r *recipe.Recipe) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindAll(ctx context.Context) ([]*recipe.Recipe, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindPublished(ctx context.Context) ([]*recipe.Recipe, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*recipe.Recipe, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]*recipe.Recipe), args.Error(1)
}

// MockCacheRepository is a mock implementation of the cache
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// MockStorageService is a mock implementation of file storage
type MockStorageService struct {
	mock.Mock
}

func (m *MockStorageService) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorageService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStorageService) PublicURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}

type recipeServiceFixture struct {
	service    inbound.RecipeService
	recipeRepo *MockRecipeRepository
	cache      *MockCacheRepository
	storage    *MockStorageService
}

func newFixture(t *testing.T) *recipeServiceFixture {
	f := &recipeServiceFixture{
		recipeRepo: new(MockRecipeRepository),
		cache:      new(MockCacheRepository),
		storage:    new(MockStorageService),
	}
	f.service = NewRecipeService(f.recipeRepo, f.cache, f.storage, zaptest.NewLogger(t))
	return f
}

func publishedRecipe(t *testing.T, name string) *recipe.Recipe {
	t.Helper()
	entity, err := recipe.NewRecipe(name, "A test recipe", 15)
	require.NoError(t, err)
	require.NoError(t, entity.AddIngredient(recipe.IngredientLine{Name: "Carrot", Quantity: "1", Unit: "cup"}))
	require.NoError(t, entity.AddInstruction(recipe.Instruction{StepNumber: 1, Description: "Chop and roast"}))
	require.NoError(t, entity.Publish())
	return entity
}

func TestListRecipes(t *testing.T) {
	ctx := context.Background()

	t.Run("CacheMiss_ShouldFetchAndPopulateCache", func(t *testing.T) {
		f := newFixture(t)
		entity := publishedRecipe(t, "Roast Vegetables")

		f.cache.On("Get", ctx, "recipes:published").Return(nil, errors.New("cache miss"))
		f.recipeRepo.On("FindPublished", ctx).Return([]*recipe.Recipe{entity}, nil)
		f.cache.On("Set", ctx, "recipes:published", mock.Anything, mock.Anything).Return(nil)

		dtos, err := f.service.ListRecipes(ctx, true)

		require.NoError(t, err)
		require.Len(t, dtos, 1)
		assert.Equal(t, "Roast Vegetables", dtos[0].Name)
		f.recipeRepo.AssertExpectations(t)
		f.cache.AssertCalled(t, "Set", ctx, "recipes:published", mock.Anything, mock.Anything)
	})

	t.Run("CacheHit_ShouldSkipRepository", func(t *testing.T) {
		f := newFixture(t)

		cached, err := json.Marshal([]inbound.RecipeDTO{{ID: uuid.New(), Name: "Cached Stew"}})
		require.NoError(t, err)
		f.cache.On("Get", ctx, "recipes:all").Return(cached, nil)

		dtos, err := f.service.ListRecipes(ctx, false)

		require.NoError(t, err)
		require.Len(t, dtos, 1)
		assert.Equal(t, "Cached Stew", dtos[0].Name)
		f.recipeRepo.AssertNotCalled(t, "FindAll", mock.Anything)
	})

	t.Run("MalformedCacheEntry_ShouldFallBackToRepository", func(t *testing.T) {
		f := newFixture(t)
		entity := publishedRecipe(t, "Vegetable Soup")

		f.cache.On("Get", ctx, "recipes:all").Return([]byte("not json"), nil)
		f.recipeRepo.On("FindAll", ctx).Return([]*recipe.Recipe{entity}, nil)
		f.cache.On("Set", ctx, "recipes:all", mock.Anything, mock.Anything).Return(nil)

		dtos, err := f.service.ListRecipes(ctx, false)

		require.NoError(t, err)
		require.Len(t, dtos, 1)
		assert.Equal(t, "Vegetable Soup", dtos[0].Name)
	})

	t.Run("CacheSetFailure_ShouldStillReturnListing", func(t *testing.T) {
		f := newFixture(t)
		entity := publishedRecipe(t, "Sturdy Stew")

		f.cache.On("Get", ctx, "recipes:published").Return(nil, errors.New("cache miss"))
		f.recipeRepo.On("FindPublished", ctx).Return([]*recipe.Recipe{entity}, nil)
		f.cache.On("Set", ctx, "recipes:published", mock.Anything, mock.Anything).Return(errors.New("redis down"))

		dtos, err := f.service.ListRecipes(ctx, true)

		require.NoError(t, err)
		require.Len(t, dtos, 1)
	})
}

func TestCreateRecipe_InvalidatesListCache(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.recipeRepo.On("Create", ctx, mock.Anything).Return(nil)
	f.cache.On("Delete", ctx, "recipes:all").Return(nil)
	f.cache.On("Delete", ctx, "recipes:published").Return(nil)

	_, err := f.service.CreateRecipe(ctx, inbound.CreateRecipeCommand{
		Name:        "New Dish",
		Description: "Fresh out of the kitchen",
		PrepMinutes: 25,
	})

	require.NoError(t, err)
	f.cache.AssertCalled(t, "Delete", ctx, "recipes:all")
	f.cache.AssertCalled(t, "Delete", ctx, "recipes:published")
}
