// Package recipe contains the core domain logic for recipe management.
// This follows Domain-Driven Design principles with rich domain models.
package recipe

import (
	"time"

	"github.com/google/uuid"
)

// Recipe represents the core recipe entity in our domain.
// It carries two instruction tracks: the customer-facing steps shown on the
// public page, and the chef-facing steps used in the kitchen.
type Recipe struct {
	id uuid.UUID

	name        string
	description string
	prepMinutes int
	imageURL    string

	ingredients      []IngredientLine
	instructions     []Instruction
	chefInstructions []Instruction

	// Category labels linked to this recipe. Empty is allowed; the
	// shopping list then files its ingredients under "Uncategorized".
	categories []string

	published   bool
	publishedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewRecipe creates a new Recipe with validation
func NewRecipe(name, description string, prepMinutes int) (*Recipe, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if prepMinutes < 0 {
		return nil, ErrInvalidPrepTime
	}

	now := time.Now()
	return &Recipe{
		id:          uuid.New(),
		name:        name,
		description: description,
		prepMinutes: prepMinutes,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Rehydrate reconstructs a Recipe from persisted state. It bypasses the
// creation validation because the stored row already passed it.
func Rehydrate(
	id uuid.UUID,
	name, description string,
	prepMinutes int,
	imageURL string,
	ingredients []IngredientLine,
	instructions, chefInstructions []Instruction,
	categories []string,
	published bool,
	publishedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Recipe {
	return &Recipe{
		id:               id,
		name:             name,
		description:      description,
		prepMinutes:      prepMinutes,
		imageURL:         imageURL,
		ingredients:      ingredients,
		instructions:     instructions,
		chefInstructions: chefInstructions,
		categories:       categories,
		published:        published,
		publishedAt:      publishedAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// ID returns the recipe's unique identifier
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// Name returns the recipe's name
func (r *Recipe) Name() string {
	return r.name
}

// Description returns the recipe's description
func (r *Recipe) Description() string {
	return r.description
}

// PrepMinutes returns the preparation time in minutes
func (r *Recipe) PrepMinutes() int {
	return r.prepMinutes
}

// ImageURL returns the recipe's image URL
func (r *Recipe) ImageURL() string {
	return r.imageURL
}

// Ingredients returns the recipe's ingredient lines in authoring order
func (r *Recipe) Ingredients() []IngredientLine {
	return r.ingredients
}

// Instructions returns the customer-facing instruction steps
func (r *Recipe) Instructions() []Instruction {
	return r.instructions
}

// ChefInstructions returns the chef-facing instruction steps
func (r *Recipe) ChefInstructions() []Instruction {
	return r.chefInstructions
}

// Categories returns the recipe's category labels
func (r *Recipe) Categories() []string {
	return r.categories
}

// IsPublished returns whether the recipe is publicly visible
func (r *Recipe) IsPublished() bool {
	return r.published
}

// PublishedAt returns when the recipe was published
func (r *Recipe) PublishedAt() *time.Time {
	return r.publishedAt
}

// CreatedAt returns when the recipe was created
func (r *Recipe) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the recipe was last updated
func (r *Recipe) UpdatedAt() time.Time {
	return r.updatedAt
}

// Rename updates the recipe name with validation
func (r *Recipe) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	r.name = name
	r.touch()
	return nil
}

// UpdateDescription updates the recipe description with validation
func (r *Recipe) UpdateDescription(description string) error {
	if err := validateDescription(description); err != nil {
		return err
	}
	r.description = description
	r.touch()
	return nil
}

// SetPrepMinutes updates the preparation time
func (r *Recipe) SetPrepMinutes(minutes int) error {
	if minutes < 0 {
		return ErrInvalidPrepTime
	}
	r.prepMinutes = minutes
	r.touch()
	return nil
}

// SetImageURL attaches an uploaded image to the recipe
func (r *Recipe) SetImageURL(url string) {
	r.imageURL = url
	r.touch()
}

// AddIngredient appends an ingredient line to the recipe
func (r *Recipe) AddIngredient(line IngredientLine) error {
	if err := line.Validate(); err != nil {
		return err
	}
	r.ingredients = append(r.ingredients, line)
	r.touch()
	return nil
}

// SetIngredients replaces the ingredient lines wholesale
func (r *Recipe) SetIngredients(lines []IngredientLine) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	r.ingredients = lines
	r.touch()
	return nil
}

// AddInstruction appends a customer-facing instruction step
func (r *Recipe) AddInstruction(instruction Instruction) error {
	if err := instruction.Validate(); err != nil {
		return err
	}
	instruction.StepNumber = len(r.instructions) + 1
	r.instructions = append(r.instructions, instruction)
	r.touch()
	return nil
}

// SetInstructions replaces the customer-facing instruction steps wholesale
func (r *Recipe) SetInstructions(instructions []Instruction) error {
	for _, instruction := range instructions {
		if err := instruction.Validate(); err != nil {
			return err
		}
	}
	r.instructions = instructions
	r.touch()
	return nil
}

// SetChefInstructions replaces the chef-facing instruction steps wholesale
func (r *Recipe) SetChefInstructions(instructions []Instruction) error {
	for _, instruction := range instructions {
		if err := instruction.Validate(); err != nil {
			return err
		}
	}
	r.chefInstructions = instructions
	r.touch()
	return nil
}

// AddChefInstruction appends a chef-facing instruction step
func (r *Recipe) AddChefInstruction(instruction Instruction) error {
	if err := instruction.Validate(); err != nil {
		return err
	}
	instruction.StepNumber = len(r.chefInstructions) + 1
	r.chefInstructions = append(r.chefInstructions, instruction)
	r.touch()
	return nil
}

// SetCategories replaces the recipe's category labels
func (r *Recipe) SetCategories(labels []string) {
	r.categories = labels
	r.touch()
}

// Publish makes the recipe publicly visible
func (r *Recipe) Publish() error {
	if r.published {
		return ErrAlreadyPublished
	}
	if len(r.ingredients) == 0 {
		return ErrNoIngredients
	}
	if len(r.instructions) == 0 {
		return ErrNoInstructions
	}

	now := time.Now()
	r.published = true
	r.publishedAt = &now
	r.updatedAt = now
	return nil
}

// Unpublish removes the recipe from public visibility
func (r *Recipe) Unpublish() error {
	if !r.published {
		return ErrNotPublished
	}
	r.published = false
	r.publishedAt = nil
	r.touch()
	return nil
}

func (r *Recipe) touch() {
	r.updatedAt = time.Now()
}

// validateName validates a recipe name
func validateName(name string) error {
	if len(name) < 2 {
		return ErrNameTooShort
	}
	if len(name) > 200 {
		return ErrNameTooLong
	}
	return nil
}

// validateDescription validates a recipe description
func validateDescription(description string) error {
	if len(description) > 2000 {
		return ErrDescriptionTooLong
	}
	return nil
}
