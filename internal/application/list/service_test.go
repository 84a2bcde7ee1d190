// Package list provides tests for the list application service
package list

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/mirepoix/v1/internal/domain/list"
	"github.com/mirepoix/v1/internal/domain/recipe"
	"github.com/mirepoix/v1/internal/ports/inbound"
	"github.com/mirepoix/v1/internal/ports/outbound"
	apperrors "github.com/mirepoix/v1/pkg/errors"
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

// MockListRepository is a mock implementation of the list repository
type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) Create(ctx context.Context, order *list.List) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockListRepository) Update(ctx context.Context, order *list.List) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockListRepository) FindByID(ctx context.Context, id uuid.UUID) (*list.List, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*list.List), args.Error(1)
}

func (m *MockListRepository) FindAll(ctx context.Context) ([]*list.List, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*list.List), args.Error(1)
}

// MockAIService is a mock implementation of the AI grocery organizer
type MockAIService struct {
	mock.Mock
}

func (m *MockAIService) OrganizeGroceries(ctx context.Context, flattened string) ([]outbound.OrganizedItem, error) {
	args := m.Called(ctx, flattened)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]outbound.OrganizedItem), args.Error(1)
}

// MockEmailService is a mock implementation of the email service
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendShoppingList(ctx context.Context, to string, order *list.List, pdf []byte) error {
	args := m.Called(ctx, to, order, pdf)
	return args.Error(0)
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

// MockPDFRenderer is a mock implementation of the PDF renderer
type MockPDFRenderer struct {
	mock.Mock
}

func (m *MockPDFRenderer) Render(order *list.List) ([]byte, error) {
	args := m.Called(order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// stubCategorizer assigns everything to one section
type stubCategorizer struct {
	section string
}

func (s stubCategorizer) Categorize(name string) string {
	return s.section
}

type listServiceFixture struct {
	recipeRepo *MockRecipeRepository
	listRepo   *MockListRepository
	aiService  *MockAIService
	email      *MockEmailService
	storage    *MockStorageService
	pdf        *MockPDFRenderer
	service    inbound.ListService
}

func newFixture(t *testing.T) *listServiceFixture {
	f := &listServiceFixture{
		recipeRepo: new(MockRecipeRepository),
		listRepo:   new(MockListRepository),
		aiService:  new(MockAIService),
		email:      new(MockEmailService),
		storage:    new(MockStorageService),
		pdf:        new(MockPDFRenderer),
	}
	f.service = NewListService(
		f.recipeRepo,
		f.listRepo,
		f.aiService,
		stubCategorizer{section: "Other"},
		f.pdf,
		f.storage,
		f.email,
		zaptest.NewLogger(t),
	)
	return f
}

func testRecipe(t *testing.T, name string, lines ...recipe.IngredientLine) *recipe.Recipe {
	t.Helper()
	r, err := recipe.NewRecipe(name, "", 10)
	require.NoError(t, err)
	for _, line := range lines {
		require.NoError(t, r.AddIngredient(line))
	}
	r.SetCategories([]string{"Dinner"})
	return r
}

func validCommand(recipeIDs ...uuid.UUID) inbound.CreateListCommand {
	return inbound.CreateListCommand{
		CustomerName:    "Jamie Oliver",
		Email:           "jamie@example.com",
		AppointmentDate: "2026-09-01",
		AppointmentTime: "10:00",
		RecipeIDs:       recipeIDs,
	}
}

func TestPreviewShoppingList(t *testing.T) {
	t.Run("ValidSelection_ShouldReturnConsolidatedView", func(t *testing.T) {
		f := newFixture(t)
		r := testRecipe(t, "Soup", recipe.IngredientLine{Name: "Carrot", Quantity: "2", Unit: "cup"})
		ids := []uuid.UUID{r.ID()}
		f.recipeRepo.On("FindByIDs", mock.Anything, ids).
			Return(map[uuid.UUID]*recipe.Recipe{r.ID(): r}, nil)

		view, err := f.service.PreviewShoppingList(context.Background(), ids)

		require.NoError(t, err)
		assert.Equal(t, 1, view.TotalItems())
		f.listRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("TooManyRecipes_ShouldReturnSelectionLimitError", func(t *testing.T) {
		f := newFixture(t)
		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()}

		_, err := f.service.PreviewShoppingList(context.Background(), ids)

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeSelectionLimit))
	})

	t.Run("DuplicateIDs_ShouldNotCountTowardLimit", func(t *testing.T) {
		f := newFixture(t)
		r := testRecipe(t, "Soup", recipe.IngredientLine{Name: "Carrot", Quantity: "2", Unit: "cup"})
		ids := []uuid.UUID{r.ID(), r.ID(), r.ID(), r.ID(), r.ID()}
		f.recipeRepo.On("FindByIDs", mock.Anything, ids).
			Return(map[uuid.UUID]*recipe.Recipe{r.ID(): r}, nil)

		view, err := f.service.PreviewShoppingList(context.Background(), ids)

		require.NoError(t, err)
		assert.Equal(t, 1, view.TotalItems())
	})

	t.Run("EmptySelection_ShouldReturnValidationError", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.PreviewShoppingList(context.Background(), nil)

		assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))
	})
}

func TestCreateList(t *testing.T) {
	t.Run("HappyPath_ShouldPersistOrganizeAndDeliver", func(t *testing.T) {
		f := newFixture(t)
		r := testRecipe(t, "Soup", recipe.IngredientLine{Name: "Carrot", Quantity: "2", Unit: "cup"})
		ids := []uuid.UUID{r.ID()}

		f.recipeRepo.On("FindByIDs", mock.Anything, ids).
			Return(map[uuid.UUID]*recipe.Recipe{r.ID(): r}, nil)
		f.aiService.On("OrganizeGroceries", mock.Anything, "2 cup Carrot, ").
			Return([]outbound.OrganizedItem{
				{Name: "Carrot", Quantity: "2", Unit: "cup", Category: "Produce"},
			}, nil)
		f.listRepo.On("Create", mock.Anything, mock.AnythingOfType("*list.List")).Return(nil)
		f.listRepo.On("Update", mock.Anything, mock.AnythingOfType("*list.List")).Return(nil)
		f.pdf.On("Render", mock.AnythingOfType("*list.List")).Return([]byte("%PDF"), nil)
		f.storage.On("Upload", mock.Anything, mock.AnythingOfType("string"), []byte("%PDF"), "application/pdf").
			Return("https://bucket/lists/x.pdf", nil)
		f.storage.On("PublicURL", mock.AnythingOfType("string")).Return("https://bucket/lists/x.pdf")
		f.email.On("SendShoppingList", mock.Anything, "jamie@example.com", mock.AnythingOfType("*list.List"), []byte("%PDF")).
			Return(nil)

		dto, err := f.service.CreateList(context.Background(), validCommand(ids...))

		require.NoError(t, err)
		require.Len(t, dto.Items, 1)
		assert.Equal(t, "Produce", dto.Items[0].Category)
		assert.Empty(t, dto.Message)
		assert.Equal(t, "https://bucket/lists/x.pdf", dto.PDFURL)
		f.listRepo.AssertExpectations(t)
		f.email.AssertExpectations(t)
	})

	t.Run("AIFailure_ShouldFallBackToKeywordCategorizer", func(t *testing.T) {
		f := newFixture(t)
		r := testRecipe(t, "Soup", recipe.IngredientLine{Name: "Carrot", Quantity: "2", Unit: "cup"})
		ids := []uuid.UUID{r.ID()}

		f.recipeRepo.On("FindByIDs", mock.Anything, ids).
			Return(map[uuid.UUID]*recipe.Recipe{r.ID(): r}, nil)
		f.aiService.On("OrganizeGroceries", mock.Anything, mock.AnythingOfType("string")).
			Return(nil, errors.New("llm unreachable"))
		f.listRepo.On("Create", mock.Anything, mock.AnythingOfType("*list.List")).Return(nil)
		f.listRepo.On("Update", mock.Anything, mock.AnythingOfType("*list.List")).Return(nil)
		f.pdf.On("Render", mock.AnythingOfType("*list.List")).Return([]byte("%PDF"), nil)
		f.storage.On("Upload", mock.Anything, mock.AnythingOfType("string"), mock.Anything, "application/pdf").
			Return("https://bucket/lists/x.pdf", nil)
		f.storage.On("PublicURL", mock.AnythingOfType("string")).Return("https://bucket/lists/x.pdf")
		f.email.On("SendShoppingList", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		dto, err := f.service.CreateList(context.Background(), validCommand(ids...))

		require.NoError(t, err)
		require.Len(t, dto.Items, 1)
		assert.Equal(t, "Other", dto.Items[0].Category)
	})

	t.Run("EmailFailure_ShouldStillSaveList", func(t *testing.T) {
		f := newFixture(t)
		r := testRecipe(t, "Soup", recipe.IngredientLine{Name: "Carrot", Quantity: "2", Unit: "cup"})
		ids := []uuid.UUID{r.ID()}

		f.recipeRepo.On("FindByIDs", mock.Anything, ids).
			Return(map[uuid.UUID]*recipe.Recipe{r.ID(): r}, nil)
		f.aiService.On("OrganizeGroceries", mock.Anything, mock.AnythingOfType("string")).
			Return([]outbound.OrganizedItem{
				{Name: "Carrot", Quantity: "2", Unit: "cup", Category: "Produce"},
			}, nil)
		f.listRepo.On("Create", mock.Anything, mock.AnythingOfType("*list.List")).Return(nil)
		f.listRepo.On("Update", mock.Anything, mock.AnythingOfType("*list.List")).Return(nil)
		f.pdf.On("Render", mock.AnythingOfType("*list.List")).Return([]byte("%PDF"), nil)
		f.storage.On("Upload", mock.Anything, mock.AnythingOfType("string"), mock.Anything, "application/pdf").
			Return("https://bucket/lists/x.pdf", nil)
		f.storage.On("PublicURL", mock.AnythingOfType("string")).Return("https://bucket/lists/x.pdf")
		f.email.On("SendShoppingList", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("smtp down"))

		dto, err := f.service.CreateList(context.Background(), validCommand(ids...))

		require.NoError(t, err)
		assert.Contains(t, dto.Message, "email")
		f.listRepo.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("*list.List"))
	})

	t.Run("PDFFailure_ShouldStillSaveList", func(t *testing.T) {
		f := newFixture(t)
		r := testRecipe(t, "Soup", recipe.IngredientLine{Name: "Carrot", Quantity: "2", Unit: "cup"})
		ids := []uuid.UUID{r.ID()}

		f.recipeRepo.On("FindByIDs", mock.Anything, ids).
			Return(map[uuid.UUID]*recipe.Recipe{r.ID(): r}, nil)
		f.aiService.On("OrganizeGroceries", mock.Anything, mock.AnythingOfType("string")).
			Return([]outbound.OrganizedItem{
				{Name: "Carrot", Quantity: "2", Unit: "cup", Category: "Produce"},
			}, nil)
		f.listRepo.On("Create", mock.Anything, mock.AnythingOfType("*list.List")).Return(nil)
		f.pdf.On("Render", mock.AnythingOfType("*list.List")).Return(nil, errors.New("render failed"))

		dto, err := f.service.CreateList(context.Background(), validCommand(ids...))

		require.NoError(t, err)
		assert.Contains(t, dto.Message, "PDF")
		f.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.email.AssertNotCalled(t, "SendShoppingList", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownRecipesOnly_ShouldReturnValidationError", func(t *testing.T) {
		f := newFixture(t)
		ids := []uuid.UUID{uuid.New()}
		f.recipeRepo.On("FindByIDs", mock.Anything, ids).
			Return(map[uuid.UUID]*recipe.Recipe{}, nil)

		_, err := f.service.CreateList(context.Background(), validCommand(ids...))

		assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))
		f.listRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("MissingCustomerName_ShouldReturnValidationError", func(t *testing.T) {
		f := newFixture(t)
		cmd := validCommand(uuid.New())
		cmd.CustomerName = "  "

		_, err := f.service.CreateList(context.Background(), cmd)

		assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))
	})
}

func TestToggleItem(t *testing.T) {
	t.Run("ExistingItem_ShouldPersistCheckedState", func(t *testing.T) {
		f := newFixture(t)
		order, err := list.NewList("Jamie", "jamie@example.com", "2026-09-01", "10:00", []uuid.UUID{uuid.New()})
		require.NoError(t, err)
		order.AddItem("Carrot", "2", "cup", "Produce")
		itemID := order.Items[0].ID

		f.listRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		f.listRepo.On("Update", mock.Anything, order).Return(nil)

		require.NoError(t, f.service.ToggleItem(context.Background(), order.ID, itemID, true))
		assert.True(t, order.Items[0].IsChecked)
	})

	t.Run("UnknownList_ShouldReturnNotFound", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.listRepo.On("FindByID", mock.Anything, id).Return(nil, errors.New("record not found"))

		err := f.service.ToggleItem(context.Background(), id, uuid.New(), true)

		assert.True(t, apperrors.Is(err, apperrors.CodeListNotFound))
	})

	t.Run("UnknownItem_ShouldReturnNotFound", func(t *testing.T) {
		f := newFixture(t)
		order, err := list.NewList("Jamie", "jamie@example.com", "2026-09-01", "10:00", []uuid.UUID{uuid.New()})
		require.NoError(t, err)
		f.listRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)

		toggleErr := f.service.ToggleItem(context.Background(), order.ID, uuid.New(), true)

		assert.True(t, apperrors.Is(toggleErr, apperrors.CodeNotFound))
		f.listRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
