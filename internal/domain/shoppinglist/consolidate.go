// Package shoppinglist implements the ingredient consolidation engine and
// the bounded recipe selection. Both are pure, synchronous computations:
// the consolidated list is a derived view recomputed from current recipe
// data on every request and never persisted as its own row.
package shoppinglist

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mirepoix/v1/internal/domain/recipe"
)

// Uncategorized is the bucket label for recipes with no linked category.
const Uncategorized = "Uncategorized"

// ConsolidatedItem is one merged entry of a category bucket. RecipeID and
// RecipeName keep the attribution of the first recipe that contributed the
// item; later contributions only adjust Quantity.
type ConsolidatedItem struct {
	Name       string
	Quantity   string
	Unit       string
	RecipeID   uuid.UUID
	RecipeName string
}

// ShoppingList maps category labels to ordered item sequences. Category
// order and item order within a bucket follow first encounter.
type ShoppingList struct {
	order   []string
	buckets map[string][]ConsolidatedItem
}

// Categories returns the category labels in first-encounter order
func (l *ShoppingList) Categories() []string {
	return l.order
}

// Items returns the consolidated items for a category in insertion order
func (l *ShoppingList) Items(category string) []ConsolidatedItem {
	return l.buckets[category]
}

// TotalItems counts entries across all buckets. An ingredient of a
// multi-category recipe is counted once per bucket it was fanned out to.
func (l *ShoppingList) TotalItems() int {
	n := 0
	for _, items := range l.buckets {
		n += len(items)
	}
	return n
}

// IsEmpty reports whether no recipe contributed any ingredient
func (l *ShoppingList) IsEmpty() bool {
	return len(l.order) == 0
}

// Flatten renders the list as "<qty> <unit> <name>, " text, the input
// format expected by the grocery organization service.
func (l *ShoppingList) Flatten() string {
	var sb strings.Builder
	for _, category := range l.order {
		for _, item := range l.buckets[category] {
			sb.WriteString(item.Quantity)
			sb.WriteString(" ")
			sb.WriteString(item.Unit)
			sb.WriteString(" ")
			sb.WriteString(item.Name)
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// Consolidate merges the ingredient lines of the given recipes into a
// category-partitioned, quantity-summed shopping list.
//
// Repeated recipe IDs are de-duplicated up front, so selecting a recipe
// twice never doubles its ingredients. Unknown IDs contribute nothing: a
// recipe deleted after being selected degrades gracefully instead of
// failing the whole list. A recipe linked to several categories fans its
// lines out to every one of those buckets.
func Consolidate(recipeIDs []uuid.UUID, recipes map[uuid.UUID]*recipe.Recipe) *ShoppingList {
	list := &ShoppingList{buckets: make(map[string][]ConsolidatedItem)}

	seen := make(map[uuid.UUID]bool, len(recipeIDs))
	for _, id := range recipeIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		r, ok := recipes[id]
		if !ok {
			continue
		}

		labels := r.Categories()
		if len(labels) == 0 {
			labels = []string{Uncategorized}
		}

		for _, line := range r.Ingredients() {
			for _, label := range labels {
				list.merge(label, line, r)
			}
		}
	}

	return list
}

// merge folds one ingredient line into the bucket for label. Matching is
// case-insensitive on name and exact on unit; the first writer keeps the
// name casing and recipe attribution.
func (l *ShoppingList) merge(label string, line recipe.IngredientLine, r *recipe.Recipe) {
	bucket, exists := l.buckets[label]
	if !exists {
		l.order = append(l.order, label)
	}

	for i := range bucket {
		if strings.EqualFold(bucket[i].Name, line.Name) && bucket[i].Unit == line.Unit {
			bucket[i].Quantity = SumQuantities(bucket[i].Quantity, line.Quantity)
			l.buckets[label] = bucket
			return
		}
	}

	l.buckets[label] = append(bucket, ConsolidatedItem{
		Name:       line.Name,
		Quantity:   line.Quantity,
		Unit:       line.Unit,
		RecipeID:   r.ID(),
		RecipeName: r.Name(),
	})
}
