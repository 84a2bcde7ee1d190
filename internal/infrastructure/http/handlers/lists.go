package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mirepoix/v1/internal/domain/shoppinglist"
	"github.com/mirepoix/v1/internal/ports/inbound"
	"github.com/mirepoix/v1/pkg/errors"
)

// ListHandler handles the shopper flow endpoints: previewing a consolidated
// shopping list and submitting it as a saved order.
type ListHandler struct {
	service  inbound.ListService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewListHandler creates a list handler
func NewListHandler(service inbound.ListService, logger *zap.Logger) *ListHandler {
	return &ListHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger.Named("list-handler"),
	}
}

type previewRequest struct {
	RecipeIDs []uuid.UUID `json:"recipe_ids" validate:"required,min=1"`
}

type createListRequest struct {
	CustomerName    string      `json:"customer_name" validate:"required,max=200"`
	Email           string      `json:"email" validate:"required,email"`
	AppointmentDate string      `json:"appointment_date"`
	AppointmentTime string      `json:"appointment_time"`
	RecipeIDs       []uuid.UUID `json:"recipe_ids" validate:"required,min=1"`
}

type toggleItemRequest struct {
	IsChecked bool `json:"is_checked"`
}

type previewItem struct {
	Name       string    `json:"name"`
	Quantity   string    `json:"quantity"`
	Unit       string    `json:"unit"`
	RecipeID   uuid.UUID `json:"recipe_id"`
	RecipeName string    `json:"recipe_name"`
}

type previewSection struct {
	Category string        `json:"category"`
	Items    []previewItem `json:"items"`
}

type previewResponse struct {
	Sections   []previewSection `json:"sections"`
	TotalItems int              `json:"total_items"`
}

// Preview consolidates the selected recipes into a shopping list without
// persisting anything
func (h *ListHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	preview, err := h.service.PreviewShoppingList(r.Context(), req.RecipeIDs)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusOK, toPreviewResponse(preview))
}

// Create submits the shopper's order: consolidates, organizes, persists and
// delivers the list
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createListRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	order, err := h.service.CreateList(r.Context(), inbound.CreateListCommand{
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		RecipeIDs:       req.RecipeIDs,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, APIResponse{Success: true, Data: order, Message: order.Message})
}

// List returns all saved list orders, newest first
func (h *ListHandler) List(w http.ResponseWriter, r *http.Request) {
	lists, err := h.service.ListLists(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondData(w, http.StatusOK, lists)
}

// Get returns a saved list order by ID
func (h *ListHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	order, err := h.service.GetList(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondData(w, http.StatusOK, order)
}

// ToggleItem checks or unchecks a grocery line on a saved list
func (h *ListHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	listID, err := parseUUIDParam(r, "id")
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	itemID, err := parseUUIDParam(r, "itemID")
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	var req toggleItemRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}

	if err := h.service.ToggleItem(r.Context(), listID, itemID, req.IsChecked); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, APIResponse{Success: true})
}

func toPreviewResponse(preview *shoppinglist.ShoppingList) previewResponse {
	resp := previewResponse{
		Sections:   []previewSection{},
		TotalItems: preview.TotalItems(),
	}
	for _, category := range preview.Categories() {
		items := make([]previewItem, 0, len(preview.Items(category)))
		for _, item := range preview.Items(category) {
			items = append(items, previewItem{
				Name:       item.Name,
				Quantity:   item.Quantity,
				Unit:       item.Unit,
				RecipeID:   item.RecipeID,
				RecipeName: item.RecipeName,
			})
		}
		resp.Sections = append(resp.Sections, previewSection{Category: category, Items: items})
	}
	return resp
}
