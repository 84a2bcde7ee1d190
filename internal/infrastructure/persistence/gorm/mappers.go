// Package gorm provides mapping between domain entities and GORM models
package gorm

import (
	"github.com/google/uuid"

	"github.com/mirepoix/v1/internal/domain/catalog"
	"github.com/mirepoix/v1/internal/domain/list"
	"github.com/mirepoix/v1/internal/domain/recipe"
)

// RecipeToModel converts a domain recipe to a GORM model
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	model := &RecipeModel{
		ID:              r.ID(),
		Name:            r.Name(),
		Description:     r.Description(),
		ImageURL:        r.ImageURL(),
		PrepTimeMinutes: r.PrepMinutes(),
		Categories:      StringSlice(r.Categories()),
		Published:       r.IsPublished(),
		PublishedAt:     r.PublishedAt(),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}

	for _, line := range r.Ingredients() {
		model.Ingredients = append(model.Ingredients, IngredientLineJSON{
			Name:     line.Name,
			Quantity: line.Quantity,
			Unit:     line.Unit,
		})
	}
	for _, step := range r.Instructions() {
		model.Instructions = append(model.Instructions, InstructionJSON{
			StepNumber:  step.StepNumber,
			Description: step.Description,
		})
	}
	for _, step := range r.ChefInstructions() {
		model.ChefInstructions = append(model.ChefInstructions, InstructionJSON{
			StepNumber:  step.StepNumber,
			Description: step.Description,
		})
	}

	return model
}

// ModelToRecipe converts a GORM model to a domain recipe
func ModelToRecipe(model *RecipeModel) *recipe.Recipe {
	lines := make([]recipe.IngredientLine, 0, len(model.Ingredients))
	for _, line := range model.Ingredients {
		lines = append(lines, recipe.IngredientLine{
			Name:     line.Name,
			Quantity: line.Quantity,
			Unit:     line.Unit,
		})
	}

	instructions := make([]recipe.Instruction, 0, len(model.Instructions))
	for _, step := range model.Instructions {
		instructions = append(instructions, recipe.Instruction{
			StepNumber:  step.StepNumber,
			Description: step.Description,
		})
	}

	chefInstructions := make([]recipe.Instruction, 0, len(model.ChefInstructions))
	for _, step := range model.ChefInstructions {
		chefInstructions = append(chefInstructions, recipe.Instruction{
			StepNumber:  step.StepNumber,
			Description: step.Description,
		})
	}

	return recipe.Rehydrate(
		model.ID,
		model.Name,
		model.Description,
		model.PrepTimeMinutes,
		model.ImageURL,
		lines,
		instructions,
		chefInstructions,
		model.Categories,
		model.Published,
		model.PublishedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// CategoryToModel converts a domain category to a GORM model
func CategoryToModel(c *catalog.Category) *CategoryModel {
	return &CategoryModel{
		ID:           c.ID,
		Name:         c.Name,
		DisplayOrder: c.DisplayOrder,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// ModelToCategory converts a GORM model to a domain category
func ModelToCategory(model *CategoryModel) *catalog.Category {
	return &catalog.Category{
		ID:           model.ID,
		Name:         model.Name,
		DisplayOrder: model.DisplayOrder,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// UnitToModel converts a domain unit to a GORM model
func UnitToModel(u *catalog.Unit) *UnitModel {
	return &UnitModel{
		ID:        u.ID,
		Name:      u.Name,
		Symbol:    u.Symbol,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ModelToUnit converts a GORM model to a domain unit
func ModelToUnit(model *UnitModel) *catalog.Unit {
	return &catalog.Unit{
		ID:        model.ID,
		Name:      model.Name,
		Symbol:    model.Symbol,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// IngredientToModel converts a domain ingredient to a GORM model
func IngredientToModel(i *catalog.Ingredient) *IngredientModel {
	return &IngredientModel{
		ID:        i.ID,
		Name:      i.Name,
		ImageURL:  i.ImageURL,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// ModelToIngredient converts a GORM model to a domain ingredient
func ModelToIngredient(model *IngredientModel) *catalog.Ingredient {
	return &catalog.Ingredient{
		ID:        model.ID,
		Name:      model.Name,
		ImageURL:  model.ImageURL,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// ListToModel converts a domain list order to a GORM model
func ListToModel(l *list.List) *ListModel {
	recipeIDs := make(StringSlice, 0, len(l.RecipeIDs))
	for _, id := range l.RecipeIDs {
		recipeIDs = append(recipeIDs, id.String())
	}

	model := &ListModel{
		ID:              l.ID,
		CustomerName:    l.CustomerName,
		Email:           l.Email,
		AppointmentDate: l.AppointmentDate,
		AppointmentTime: l.AppointmentTime,
		RecipeIDs:       recipeIDs,
		PDFKey:          l.PDFKey,
		CreatedAt:       l.CreatedAt,
	}

	for _, item := range l.Items {
		model.Items = append(model.Items, ListItemModel{
			ID:        item.ID,
			ListID:    l.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
			Category:  item.Category,
			IsChecked: item.IsChecked,
		})
	}

	return model
}

// ModelToList converts a GORM model to a domain list order
func ModelToList(model *ListModel) *list.List {
	recipeIDs := make([]uuid.UUID, 0, len(model.RecipeIDs))
	for _, raw := range model.RecipeIDs {
		if id, err := uuid.Parse(raw); err == nil {
			recipeIDs = append(recipeIDs, id)
		}
	}

	order := &list.List{
		ID:              model.ID,
		CustomerName:    model.CustomerName,
		Email:           model.Email,
		AppointmentDate: model.AppointmentDate,
		AppointmentTime: model.AppointmentTime,
		RecipeIDs:       recipeIDs,
		PDFKey:          model.PDFKey,
		CreatedAt:       model.CreatedAt,
	}

	for _, item := range model.Items {
		order.Items = append(order.Items, list.Item{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
			Category:  item.Category,
			IsChecked: item.IsChecked,
		})
	}

	return order
}
