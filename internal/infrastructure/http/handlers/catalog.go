package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mirepoix/v1/internal/ports/inbound"
	"github.com/mirepoix/v1/pkg/errors"
)

// CatalogHandler handles the category, unit and ingredient reference endpoints
type CatalogHandler struct {
	service  inbound.CatalogService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewCatalogHandler creates a catalog handler
func NewCatalogHandler(service inbound.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger.Named("catalog-handler"),
	}
}

type categoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type reorderRequest struct {
	Order []uuid.UUID `json:"order" validate:"required,min=1"`
}

type unitRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Symbol string `json:"symbol" validate:"max=20"`
}

type ingredientRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

// Categories

// ListCategories returns categories in display order
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondData(w, http.StatusOK, categories)
}

// CreateCategory adds a category at the end of the display order
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := h.decode(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), req.Name)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondData(w, http.StatusCreated, category)
}

// UpdateCategory renames a category
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	var req categoryRequest
	if err := h.decode(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), id, req.Name)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondData(w, http.StatusOK, category)
}

// DeleteCategory removes a category
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Category deleted"})
}

// ReorderCategories sets the display order from the posted ID sequence
func (h *CatalogHandler) ReorderCategories(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := h.decode(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}

	order := make(map[uuid.UUID]int, len(req.Order))
	for position, id := range req.Order {
		order[id] = position
	}

	if err := h.service.SetCategoryOrder(r.Context(), order); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, APIResponse{Success: true})
}

// Units

// ListUnits returns measurement units
func (h *CatalogHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	units, err := h.service.ListUnits(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondData(w, http.StatusOK, units)
}

// CreateUnit adds a measurement unit
func (h *CatalogHandler) CreateUnit(w http.ResponseWriter, r *http.Request) {
	var req unitRequest
	if err := h.decode(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}

	unit, err := h.service.CreateUnit(r.Context(), req.Name, req.Symbol)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondData(w, http.StatusCreated, unit)
}

// UpdateUnit renames a measurement unit
func (h *CatalogHandler) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	var req unitRequest
	if err := h.decode(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}

	unit, err := h.service.UpdateUnit(r.Context(), id, req.Name, req.Symbol)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondData(w, http.StatusOK, unit)
}

// DeleteUnit removes a measurement unit
func (h *CatalogHandler) DeleteUnit(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	if err := h.service.DeleteUnit(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Unit deleted"})
}

// Ingredients

// ListIngredients returns ingredient registry entries
func (h *CatalogHandler) ListIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.service.ListIngredients(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondData(w, http.StatusOK, ingredients)
}

// CreateIngredient adds an ingredient registry entry
func (h *CatalogHandler) CreateIngredient(w http.ResponseWriter, r *http.Request) {
	var req ingredientRequest
	if err := h.decode(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}

	ingredient, err := h.service.CreateIngredient(r.Context(), req.Name, req.ImageURL)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondData(w, http.StatusCreated, ingredient)
}

// UpdateIngredient updates an ingredient registry entry
func (h *CatalogHandler) UpdateIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	var req ingredientRequest
	if err := h.decode(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}

	ingredient, err := h.service.UpdateIngredient(r.Context(), id, req.Name, req.ImageURL)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondData(w, http.StatusOK, ingredient)
}

// DeleteIngredient removes an ingredient registry entry
func (h *CatalogHandler) DeleteIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	if err := h.service.DeleteIngredient(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Ingredient deleted"})
}

func (h *CatalogHandler) decode(r *http.Request, dst interface{}) error {
	if err := decodeBody(r, dst); err != nil {
		return err
	}
	if err := h.validate.Struct(dst); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}
