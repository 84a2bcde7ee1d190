package recipe

import "errors"

// Domain errors for recipe operations
var (
	ErrNameTooShort       = errors.New("recipe name must be at least 2 characters")
	ErrNameTooLong        = errors.New("recipe name must not exceed 200 characters")
	ErrDescriptionTooLong = errors.New("recipe description must not exceed 2000 characters")
	ErrInvalidPrepTime    = errors.New("preparation time cannot be negative")
	ErrNoIngredients      = errors.New("recipe must have at least one ingredient")
	ErrNoInstructions     = errors.New("recipe must have at least one instruction")
	ErrAlreadyPublished   = errors.New("recipe is already published")
	ErrNotPublished       = errors.New("recipe is not published")
)
