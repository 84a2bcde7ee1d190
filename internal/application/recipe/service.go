// Package recipe provides the application layer for recipe management
// This implements the use cases defined in the inbound ports
package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mirepoix/v1/internal/domain/recipe"
	"github.com/mirepoix/v1/internal/ports/inbound"
	"github.com/mirepoix/v1/internal/ports/outbound"
	"github.com/mirepoix/v1/pkg/errors"
)

// Cache keys and lifetime for recipe listings
const (
	cacheKeyAll       = "recipes:all"
	cacheKeyPublished = "recipes:published"
	listCacheTTL      = 5 * time.Minute
)

// RecipeService implements the recipe use cases
type RecipeService struct {
	recipeRepo outbound.RecipeRepository
	cache      outbound.CacheRepository
	storage    outbound.StorageService
	logger     *zap.Logger
}

// NewRecipeService creates a new recipe service
func NewRecipeService(
	recipeRepo outbound.RecipeRepository,
	cache outbound.CacheRepository,
	storage outbound.StorageService,
	logger *zap.Logger,
) inbound.RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		cache:      cache,
		storage:    storage,
		logger:     logger.Named("recipe-service"),
	}
}

// CreateRecipe creates a new recipe
func (s *RecipeService) CreateRecipe(ctx context.Context, cmd inbound.CreateRecipeCommand) (*inbound.RecipeDTO, error) {
	s.logger.Info("Creating new recipe", zap.String("name", cmd.Name))

	entity, err := recipe.NewRecipe(cmd.Name, cmd.Description, cmd.PrepMinutes)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := applyContent(entity, cmd.Ingredients, cmd.Instructions, cmd.ChefInstructions); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	entity.SetCategories(cmd.Categories)

	if err := s.recipeRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create recipe", err)
	}

	s.invalidateListCache(ctx)
	s.logger.Info("Recipe created successfully", zap.String("recipe_id", entity.ID().String()))
	return entityToDTO(entity), nil
}

// UpdateRecipe applies the non-nil fields of the command to an existing recipe
func (s *RecipeService) UpdateRecipe(ctx context.Context, cmd inbound.UpdateRecipeCommand) (*inbound.RecipeDTO, error) {
	entity, err := s.recipeRepo.FindByID(ctx, cmd.RecipeID)
	if err != nil {
		return nil, errors.NewRecipeNotFoundError(cmd.RecipeID.String())
	}

	if cmd.Name != nil {
		if err := entity.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		if err := entity.UpdateDescription(*cmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.PrepMinutes != nil {
		if err := entity.SetPrepMinutes(*cmd.PrepMinutes); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Ingredients != nil {
		lines := make([]recipe.IngredientLine, 0, len(*cmd.Ingredients))
		for _, lineCmd := range *cmd.Ingredients {
			lines = append(lines, recipe.IngredientLine{
				Name:     lineCmd.Name,
				Quantity: lineCmd.Quantity,
				Unit:     lineCmd.Unit,
			})
		}
		if err := entity.SetIngredients(lines); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Instructions != nil {
		if err := replaceInstructions(entity.SetInstructions, *cmd.Instructions); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.ChefInstructions != nil {
		if err := replaceInstructions(entity.SetChefInstructions, *cmd.ChefInstructions); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Categories != nil {
		entity.SetCategories(*cmd.Categories)
	}

	if err := s.recipeRepo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update recipe", err)
	}

	s.invalidateListCache(ctx)
	return entityToDTO(entity), nil
}

// PublishRecipe makes a recipe publicly visible
func (s *RecipeService) PublishRecipe(ctx context.Context, recipeID uuid.UUID) error {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return errors.NewRecipeNotFoundError(recipeID.String())
	}

	if err := entity.Publish(); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := s.recipeRepo.Update(ctx, entity); err != nil {
		return errors.NewDatabaseError("publish recipe", err)
	}

	s.invalidateListCache(ctx)
	s.logger.Info("Recipe published", zap.String("recipe_id", recipeID.String()))
	return nil
}

// UnpublishRecipe removes a recipe from public visibility
func (s *RecipeService) UnpublishRecipe(ctx context.Context, recipeID uuid.UUID) error {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return errors.NewRecipeNotFoundError(recipeID.String())
	}

	if err := entity.Unpublish(); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := s.recipeRepo.Update(ctx, entity); err != nil {
		return errors.NewDatabaseError("unpublish recipe", err)
	}

	s.invalidateListCache(ctx)
	return nil
}

// DeleteRecipe removes a recipe permanently
func (s *RecipeService) DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error {
	if _, err := s.recipeRepo.FindByID(ctx, recipeID); err != nil {
		return errors.NewRecipeNotFoundError(recipeID.String())
	}

	if err := s.recipeRepo.Delete(ctx, recipeID); err != nil {
		return errors.NewDatabaseError("delete recipe", err)
	}

	s.invalidateListCache(ctx)
	s.logger.Info("Recipe deleted", zap.String("recipe_id", recipeID.String()))
	return nil
}

// AttachImage uploads a recipe image and stores its public URL
func (s *RecipeService) AttachImage(ctx context.Context, recipeID uuid.UUID, data []byte, contentType string) (string, error) {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return "", errors.NewRecipeNotFoundError(recipeID.String())
	}

	key := fmt.Sprintf("recipes/%s/image", recipeID)
	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", errors.NewExternalServiceError("object storage", err)
	}

	entity.SetImageURL(url)
	if err := s.recipeRepo.Update(ctx, entity); err != nil {
		return "", errors.NewDatabaseError("store image url", err)
	}

	return url, nil
}

// GetRecipeByID returns a single recipe
func (s *RecipeService) GetRecipeByID(ctx context.Context, recipeID uuid.UUID) (*inbound.RecipeDTO, error) {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}
	return entityToDTO(entity), nil
}

// ListRecipes returns all recipes, or only published ones for shoppers.
// Listings are served from the cache when present; mutations drop the
// cached entries so the next listing is rebuilt from the database.
func (s *RecipeService) ListRecipes(ctx context.Context, publishedOnly bool) ([]inbound.RecipeDTO, error) {
	key := cacheKeyAll
	if publishedOnly {
		key = cacheKeyPublished
	}

	if cached, err := s.cache.Get(ctx, key); err == nil && len(cached) > 0 {
		var dtos []inbound.RecipeDTO
		if err := json.Unmarshal(cached, &dtos); err == nil {
			return dtos, nil
		}
		s.logger.Warn("Discarding malformed cache entry", zap.String("key", key))
	}

	var (
		entities []*recipe.Recipe
		err      error
	)
	if publishedOnly {
		entities, err = s.recipeRepo.FindPublished(ctx)
	} else {
		entities, err = s.recipeRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, errors.NewDatabaseError("list recipes", err)
	}

	dtos := make([]inbound.RecipeDTO, 0, len(entities))
	for _, entity := range entities {
		dtos = append(dtos, *entityToDTO(entity))
	}

	if payload, err := json.Marshal(dtos); err == nil {
		if err := s.cache.Set(ctx, key, payload, listCacheTTL); err != nil {
			s.logger.Warn("Failed to cache recipe listing", zap.String("key", key), zap.Error(err))
		}
	}

	return dtos, nil
}

// invalidateListCache drops cached recipe listings after a mutation.
// Cache errors are logged and swallowed; the database stays authoritative.
func (s *RecipeService) invalidateListCache(ctx context.Context) {
	for _, key := range []string{cacheKeyAll, cacheKeyPublished} {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.Warn("Failed to invalidate cache", zap.String("key", key), zap.Error(err))
		}
	}
}

func applyContent(entity *recipe.Recipe, lines []inbound.IngredientLineCommand, instructions, chefInstructions []string) error {
	for _, lineCmd := range lines {
		if err := entity.AddIngredient(recipe.IngredientLine{
			Name:     lineCmd.Name,
			Quantity: lineCmd.Quantity,
			Unit:     lineCmd.Unit,
		}); err != nil {
			return err
		}
	}
	for _, step := range instructions {
		if err := entity.AddInstruction(recipe.Instruction{Description: step}); err != nil {
			return err
		}
	}
	for _, step := range chefInstructions {
		if err := entity.AddChefInstruction(recipe.Instruction{Description: step}); err != nil {
			return err
		}
	}
	return nil
}

func replaceInstructions(set func([]recipe.Instruction) error, steps []string) error {
	instructions := make([]recipe.Instruction, 0, len(steps))
	for i, step := range steps {
		instructions = append(instructions, recipe.Instruction{StepNumber: i + 1, Description: step})
	}
	return set(instructions)
}

func entityToDTO(entity *recipe.Recipe) *inbound.RecipeDTO {
	dto := &inbound.RecipeDTO{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		PrepMinutes: entity.PrepMinutes(),
		ImageURL:    entity.ImageURL(),
		Categories:  entity.Categories(),
		Published:   entity.IsPublished(),
		CreatedAt:   entity.CreatedAt().Format(time.RFC3339),
		UpdatedAt:   entity.UpdatedAt().Format(time.RFC3339),
	}

	if publishedAt := entity.PublishedAt(); publishedAt != nil {
		formatted := publishedAt.Format(time.RFC3339)
		dto.PublishedAt = &formatted
	}

	for _, line := range entity.Ingredients() {
		dto.Ingredients = append(dto.Ingredients, inbound.IngredientLineDTO{
			Name:     line.Name,
			Quantity: line.Quantity,
			Unit:     line.Unit,
		})
	}
	for _, instruction := range entity.Instructions() {
		dto.Instructions = append(dto.Instructions, inbound.InstructionDTO{
			StepNumber:  instruction.StepNumber,
			Description: instruction.Description,
		})
	}
	for _, instruction := range entity.ChefInstructions() {
		dto.ChefInstructions = append(dto.ChefInstructions, inbound.InstructionDTO{
			StepNumber:  instruction.StepNumber,
			Description: instruction.Description,
		})
	}

	return dto
}
