package catalog

import "errors"

// Domain errors for catalog entities
var (
	ErrCategoryNameRequired   = errors.New("category name is required")
	ErrUnitNameRequired       = errors.New("unit name is required")
	ErrUnitSymbolRequired     = errors.New("unit symbol is required")
	ErrIngredientNameRequired = errors.New("ingredient name is required")
)
