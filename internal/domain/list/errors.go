package list

import "errors"

// Domain errors for list orders
var (
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrInvalidEmail         = errors.New("a valid email address is required")
	ErrNoRecipes            = errors.New("a list requires at least one recipe")
)
