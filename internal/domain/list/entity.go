// Package list holds the persisted shopping list order: the snapshot taken
// when a shopper submits their selection, organized into grocery sections.
// Unlike the ephemeral consolidated view, a List survives recipe edits.
package list

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Item is one line of a saved list. Category here is the grocery store
// section assigned at creation time, not a recipe category.
type Item struct {
	ID        uuid.UUID
	Name      string
	Quantity  string
	Unit      string
	Category  string
	IsChecked bool
}

// List is a submitted shopping list order tied to a pickup appointment.
type List struct {
	ID              uuid.UUID
	CustomerName    string
	Email           string
	AppointmentDate string
	AppointmentTime string
	RecipeIDs       []uuid.UUID
	Items           []Item
	PDFKey          string
	CreatedAt       time.Time
}

// NewList creates a list order with validation
func NewList(customerName, email, appointmentDate, appointmentTime string, recipeIDs []uuid.UUID) (*List, error) {
	if strings.TrimSpace(customerName) == "" {
		return nil, ErrCustomerNameRequired
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if len(recipeIDs) == 0 {
		return nil, ErrNoRecipes
	}

	return &List{
		ID:              uuid.New(),
		CustomerName:    customerName,
		Email:           email,
		AppointmentDate: appointmentDate,
		AppointmentTime: appointmentTime,
		RecipeIDs:       recipeIDs,
		CreatedAt:       time.Now(),
	}, nil
}

// AddItem appends a grocery line to the list
func (l *List) AddItem(name, quantity, unit, category string) {
	l.Items = append(l.Items, Item{
		ID:       uuid.New(),
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
		Category: category,
	})
}

// ToggleItem flips the checked state of an item and reports whether the
// item belongs to this list.
func (l *List) ToggleItem(itemID uuid.UUID, checked bool) bool {
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			l.Items[i].IsChecked = checked
			return true
		}
	}
	return false
}

// Sections returns the grocery section labels in item order, de-duplicated.
func (l *List) Sections() []string {
	var order []string
	seen := make(map[string]bool)
	for _, item := range l.Items {
		if !seen[item.Category] {
			seen[item.Category] = true
			order = append(order, item.Category)
		}
	}
	return order
}

// ItemsIn returns the items filed under the given grocery section
func (l *List) ItemsIn(section string) []Item {
	var out []Item
	for _, item := range l.Items {
		if item.Category == section {
			out = append(out, item)
		}
	}
	return out
}
