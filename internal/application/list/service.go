// Package list provides the application layer for the shopper flow:
// previewing a consolidated shopping list and submitting it as a persisted
// order with AI grocery organization, PDF rendering, and email delivery.
package list

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mirepoix/v1/internal/domain/list"
	"github.com/mirepoix/v1/internal/domain/shoppinglist"
	"github.com/mirepoix/v1/internal/ports/inbound"
	"github.com/mirepoix/v1/internal/ports/outbound"
	"github.com/mirepoix/v1/pkg/errors"
)

// ListService implements the shopper-facing list use cases
type ListService struct {
	recipeRepo  outbound.RecipeRepository
	listRepo    outbound.ListRepository
	aiService   outbound.AIService
	categorizer outbound.GroceryCategorizer
	pdfRenderer outbound.PDFRenderer
	storage     outbound.StorageService
	email       outbound.EmailService
	logger      *zap.Logger
}

// NewListService creates a new list service
func NewListService(
	recipeRepo outbound.RecipeRepository,
	listRepo outbound.ListRepository,
	aiService outbound.AIService,
	categorizer outbound.GroceryCategorizer,
	pdfRenderer outbound.PDFRenderer,
	storage outbound.StorageService,
	email outbound.EmailService,
	logger *zap.Logger,
) inbound.ListService {
	return &ListService{
		recipeRepo:  recipeRepo,
		listRepo:    listRepo,
		aiService:   aiService,
		categorizer: categorizer,
		pdfRenderer: pdfRenderer,
		storage:     storage,
		email:       email,
		logger:      logger.Named("list-service"),
	}
}

// PreviewShoppingList consolidates the selected recipes into the ephemeral
// category-partitioned view. Nothing is persisted; recipe data is fetched
// fresh so the preview always reflects current recipes.
func (s *ListService) PreviewShoppingList(ctx context.Context, recipeIDs []uuid.UUID) (*shoppinglist.ShoppingList, error) {
	if err := checkSelectionSize(recipeIDs); err != nil {
		return nil, err
	}

	recipes, err := s.recipeRepo.FindByIDs(ctx, recipeIDs)
	if err != nil {
		return nil, errors.NewDatabaseError("load selected recipes", err)
	}

	return shoppinglist.Consolidate(recipeIDs, recipes), nil
}

// CreateList turns a shopper's submission into a persisted order.
//
// The consolidated ingredients are organized into grocery store sections by
// the AI service, falling back to the local keyword categorizer when the AI
// is unavailable. After the order is saved, a PDF is rendered and uploaded
// and a confirmation email is sent; failures in those steps degrade to a
// message on the response and never abort the saved list.
func (s *ListService) CreateList(ctx context.Context, cmd inbound.CreateListCommand) (*inbound.ListDTO, error) {
	if err := checkSelectionSize(cmd.RecipeIDs); err != nil {
		return nil, err
	}

	order, err := list.NewList(cmd.CustomerName, cmd.Email, cmd.AppointmentDate, cmd.AppointmentTime, cmd.RecipeIDs)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	recipes, err := s.recipeRepo.FindByIDs(ctx, cmd.RecipeIDs)
	if err != nil {
		return nil, errors.NewDatabaseError("load selected recipes", err)
	}

	consolidated := shoppinglist.Consolidate(cmd.RecipeIDs, recipes)
	if consolidated.IsEmpty() {
		return nil, errors.NewValidationError("selected recipes contain no ingredients")
	}

	for _, item := range s.organize(ctx, consolidated) {
		order.AddItem(item.Name, item.Quantity, item.Unit, item.Category)
	}

	if err := s.listRepo.Create(ctx, order); err != nil {
		return nil, errors.NewDatabaseError("create list", err)
	}
	s.logger.Info("List created",
		zap.String("list_id", order.ID.String()),
		zap.Int("items", len(order.Items)),
	)

	message := s.deliver(ctx, order)

	dto := orderToDTO(order, s.storage)
	dto.Message = message
	return dto, nil
}

// GetList returns a single saved list
func (s *ListService) GetList(ctx context.Context, id uuid.UUID) (*inbound.ListDTO, error) {
	order, err := s.listRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.NewListNotFoundError(id.String())
	}
	return orderToDTO(order, s.storage), nil
}

// ListLists returns all saved lists
func (s *ListService) ListLists(ctx context.Context) ([]inbound.ListDTO, error) {
	orders, err := s.listRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list orders", err)
	}

	dtos := make([]inbound.ListDTO, 0, len(orders))
	for _, order := range orders {
		dtos = append(dtos, *orderToDTO(order, s.storage))
	}
	return dtos, nil
}

// ToggleItem flips the checked state of a saved list item
func (s *ListService) ToggleItem(ctx context.Context, listID, itemID uuid.UUID, checked bool) error {
	order, err := s.listRepo.FindByID(ctx, listID)
	if err != nil {
		return errors.NewListNotFoundError(listID.String())
	}

	if !order.ToggleItem(itemID, checked) {
		return errors.NewAppError(errors.CodeNotFound, "List item not found", itemID.String())
	}

	if err := s.listRepo.Update(ctx, order); err != nil {
		return errors.NewDatabaseError("update list item", err)
	}
	return nil
}

// organize asks the AI to group the consolidated items into grocery store
// sections. A single attempt, no retries; on failure every item is assigned
// a section by the local keyword categorizer instead.
func (s *ListService) organize(ctx context.Context, consolidated *shoppinglist.ShoppingList) []outbound.OrganizedItem {
	organized, err := s.aiService.OrganizeGroceries(ctx, consolidated.Flatten())
	if err == nil && len(organized) > 0 {
		return organized
	}
	if err != nil {
		s.logger.Warn("AI grocery organization failed, using keyword fallback", zap.Error(err))
	}

	var items []outbound.OrganizedItem
	for _, category := range consolidated.Categories() {
		for _, item := range consolidated.Items(category) {
			items = append(items, outbound.OrganizedItem{
				Name:     item.Name,
				Quantity: item.Quantity,
				Unit:     item.Unit,
				Category: s.categorizer.Categorize(item.Name),
			})
		}
	}
	return items
}

// deliver renders the PDF, uploads it, and emails the shopper. Each step
// degrades independently; the returned message surfaces what was skipped.
func (s *ListService) deliver(ctx context.Context, order *list.List) string {
	pdf, err := s.pdfRenderer.Render(order)
	if err != nil {
		s.logger.Error("PDF rendering failed", zap.String("list_id", order.ID.String()), zap.Error(err))
		return "List saved, but the PDF could not be generated"
	}

	key := fmt.Sprintf("lists/%s.pdf", order.ID)
	if _, err := s.storage.Upload(ctx, key, pdf, "application/pdf"); err != nil {
		s.logger.Error("PDF upload failed", zap.String("list_id", order.ID.String()), zap.Error(err))
	} else {
		order.PDFKey = key
		if err := s.listRepo.Update(ctx, order); err != nil {
			s.logger.Error("Failed to store PDF key", zap.String("list_id", order.ID.String()), zap.Error(err))
		}
	}

	if err := s.email.SendShoppingList(ctx, order.Email, order, pdf); err != nil {
		s.logger.Error("Email delivery failed", zap.String("list_id", order.ID.String()), zap.Error(err))
		return "List saved, but the confirmation email could not be sent"
	}

	return ""
}

// checkSelectionSize enforces the recipe selection cap on distinct IDs
func checkSelectionSize(recipeIDs []uuid.UUID) error {
	if len(recipeIDs) == 0 {
		return errors.NewValidationError("at least one recipe must be selected")
	}

	distinct := make(map[uuid.UUID]bool, len(recipeIDs))
	for _, id := range recipeIDs {
		distinct[id] = true
	}
	if len(distinct) > shoppinglist.MaxSelection {
		return errors.NewSelectionLimitError(shoppinglist.MaxSelection)
	}
	return nil
}

func orderToDTO(order *list.List, storage outbound.StorageService) *inbound.ListDTO {
	dto := &inbound.ListDTO{
		ID:              order.ID,
		CustomerName:    order.CustomerName,
		Email:           order.Email,
		AppointmentDate: order.AppointmentDate,
		AppointmentTime: order.AppointmentTime,
		RecipeIDs:       order.RecipeIDs,
		CreatedAt:       order.CreatedAt.Format(time.RFC3339),
	}

	if order.PDFKey != "" {
		dto.PDFURL = storage.PublicURL(order.PDFKey)
	}

	for _, item := range order.Items {
		dto.Items = append(dto.Items, inbound.ListItemDTO{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
			Category:  item.Category,
			IsChecked: item.IsChecked,
		})
	}

	return dto
}
