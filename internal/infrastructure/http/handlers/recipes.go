package handlers

import (
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/mirepoix/v1/internal/ports/inbound"
	"github.com/mirepoix/v1/pkg/errors"
)

// maxImageBytes caps recipe image uploads at 5 MiB
const maxImageBytes = 5 << 20

// RecipeHandler handles recipe management endpoints
type RecipeHandler struct {
	service  inbound.RecipeService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewRecipeHandler creates a recipe handler
func NewRecipeHandler(service inbound.RecipeService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger.Named("recipe-handler"),
	}
}

type ingredientLineRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

type createRecipeRequest struct {
	Name             string                  `json:"name" validate:"required,max=200"`
	Description      string                  `json:"description"`
	PrepMinutes      int                     `json:"prep_minutes" validate:"gte=0"`
	Ingredients      []ingredientLineRequest `json:"ingredients" validate:"dive"`
	Instructions     []string                `json:"instructions"`
	ChefInstructions []string                `json:"chef_instructions"`
	Categories       []string                `json:"categories"`
}

type updateRecipeRequest struct {
	Name             *string                  `json:"name" validate:"omitempty,max=200"`
	Description      *string                  `json:"description"`
	PrepMinutes      *int                     `json:"prep_minutes" validate:"omitempty,gte=0"`
	Ingredients      *[]ingredientLineRequest `json:"ingredients" validate:"omitempty,dive"`
	Instructions     *[]string                `json:"instructions"`
	ChefInstructions *[]string                `json:"chef_instructions"`
	Categories       *[]string                `json:"categories"`
}

// List returns recipes. Shoppers see published recipes only; admins pass
// ?all=true to include drafts.
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	publishedOnly := r.URL.Query().Get("all") != "true"

	recipes, err := h.service.ListRecipes(r.Context(), publishedOnly)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusOK, recipes)
}

// Get returns a single recipe by ID
func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	recipe, err := h.service.GetRecipeByID(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusOK, recipe)
}

// Create creates a new recipe
func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRecipeRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	recipe, err := h.service.CreateRecipe(r.Context(), inbound.CreateRecipeCommand{
		Name:             req.Name,
		Description:      req.Description,
		PrepMinutes:      req.PrepMinutes,
		Ingredients:      toIngredientCommands(req.Ingredients),
		Instructions:     req.Instructions,
		ChefInstructions: req.ChefInstructions,
		Categories:       req.Categories,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusCreated, recipe)
}

// Update applies a partial update to a recipe
func (h *RecipeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	var req updateRecipeRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	cmd := inbound.UpdateRecipeCommand{
		RecipeID:         id,
		Name:             req.Name,
		Description:      req.Description,
		PrepMinutes:      req.PrepMinutes,
		Instructions:     req.Instructions,
		ChefInstructions: req.ChefInstructions,
		Categories:       req.Categories,
	}
	if req.Ingredients != nil {
		lines := toIngredientCommands(*req.Ingredients)
		cmd.Ingredients = &lines
	}

	recipe, err := h.service.UpdateRecipe(r.Context(), cmd)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusOK, recipe)
}

// Delete removes a recipe
func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	if err := h.service.DeleteRecipe(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Recipe deleted"})
}

// Publish makes a recipe visible to shoppers
func (h *RecipeHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.setPublished(w, r, true)
}

// Unpublish hides a recipe from shoppers
func (h *RecipeHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	h.setPublished(w, r, false)
}

func (h *RecipeHandler) setPublished(w http.ResponseWriter, r *http.Request, published bool) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	if published {
		err = h.service.PublishRecipe(r.Context(), id)
	} else {
		err = h.service.UnpublishRecipe(r.Context(), id)
	}
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, APIResponse{Success: true})
}

// UploadImage attaches an image to a recipe. The body is the raw image
// bytes with the Content-Type header carrying the media type.
func (h *RecipeHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" && contentType != "image/webp" {
		respondError(w, h.logger, errors.NewBadRequestError("Unsupported image type"))
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxImageBytes+1))
	if err != nil {
		respondError(w, h.logger, errors.NewBadRequestError("Failed to read image body"))
		return
	}
	if len(data) == 0 {
		respondError(w, h.logger, errors.NewBadRequestError("Empty image body"))
		return
	}
	if len(data) > maxImageBytes {
		respondError(w, h.logger, errors.NewBadRequestError("Image exceeds the 5MB limit"))
		return
	}

	url, err := h.service.AttachImage(r.Context(), id, data, contentType)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusOK, map[string]string{"image_url": url})
}

func toIngredientCommands(lines []ingredientLineRequest) []inbound.IngredientLineCommand {
	cmds := make([]inbound.IngredientLineCommand, 0, len(lines))
	for _, line := range lines {
		cmds = append(cmds, inbound.IngredientLineCommand{
			Name:     line.Name,
			Quantity: line.Quantity,
			Unit:     line.Unit,
		})
	}
	return cmds
}
