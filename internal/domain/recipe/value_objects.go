package recipe

import "errors"

// Value Objects - Immutable objects that describe aspects of the domain

// IngredientLine represents one (name, quantity, unit) entry belonging to
// exactly one recipe. Quantity is numeric-like text ("2", "1.5", "a pinch");
// the shopping-list engine decides whether it can be summed.
type IngredientLine struct {
	Name     string
	Quantity string
	Unit     string
}

// Validate validates the ingredient line
func (l IngredientLine) Validate() error {
	if l.Name == "" {
		return errors.New("ingredient name is required")
	}
	if l.Quantity == "" {
		return errors.New("ingredient quantity is required")
	}
	return nil
}

// Instruction represents a single preparation step
type Instruction struct {
	StepNumber  int
	Description string
}

// Validate validates the instruction
func (i Instruction) Validate() error {
	if i.Description == "" {
		return errors.New("instruction description is required")
	}
	if len(i.Description) > 1000 {
		return errors.New("instruction description too long")
	}
	return nil
}
