package recipe

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RecipeTestSuite provides a test suite for the Recipe entity
type RecipeTestSuite struct {
	suite.Suite
}

func (suite *RecipeTestSuite) TestRecipeCreation() {
	suite.Run("ValidRecipe_ShouldCreateSuccessfully", func() {
		r, err := NewRecipe("Spaghetti Carbonara", "A classic Italian pasta dish", 25)

		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), r)

		assert.Equal(suite.T(), "Spaghetti Carbonara", r.Name())
		assert.NotEqual(suite.T(), uuid.Nil, r.ID())
		assert.Equal(suite.T(), 25, r.PrepMinutes())
		assert.False(suite.T(), r.IsPublished())
		assert.Nil(suite.T(), r.PublishedAt())
		assert.NotZero(suite.T(), r.CreatedAt())
		assert.NotZero(suite.T(), r.UpdatedAt())
	})

	suite.Run("NameTooShort_ShouldReturnError", func() {
		r, err := NewRecipe("A", "Valid description", 10)

		assert.Error(suite.T(), err)
		assert.Nil(suite.T(), r)
		assert.Equal(suite.T(), ErrNameTooShort, err)
	})

	suite.Run("NameTooLong_ShouldReturnError", func() {
		r, err := NewRecipe(string(make([]byte, 201)), "Valid description", 10)

		assert.Error(suite.T(), err)
		assert.Nil(suite.T(), r)
		assert.Equal(suite.T(), ErrNameTooLong, err)
	})

	suite.Run("DescriptionTooLong_ShouldReturnError", func() {
		r, err := NewRecipe("Valid Name", string(make([]byte, 2001)), 10)

		assert.Error(suite.T(), err)
		assert.Nil(suite.T(), r)
		assert.Equal(suite.T(), ErrDescriptionTooLong, err)
	})

	suite.Run("NegativePrepTime_ShouldReturnError", func() {
		r, err := NewRecipe("Valid Name", "Valid description", -5)

		assert.Error(suite.T(), err)
		assert.Nil(suite.T(), r)
		assert.Equal(suite.T(), ErrInvalidPrepTime, err)
	})
}

func (suite *RecipeTestSuite) TestRecipeModification() {
	suite.Run("Rename_ValidName_ShouldUpdate", func() {
		r, _ := NewRecipe("Original Name", "Description", 10)
		originalUpdatedAt := r.UpdatedAt()

		time.Sleep(1 * time.Millisecond)
		err := r.Rename("Updated Name")

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Updated Name", r.Name())
		assert.True(suite.T(), r.UpdatedAt().After(originalUpdatedAt))
	})

	suite.Run("AddIngredient_Valid_ShouldAppendInOrder", func() {
		r, _ := NewRecipe("Soup", "A soup", 10)

		require.NoError(suite.T(), r.AddIngredient(IngredientLine{Name: "Carrot", Quantity: "2", Unit: "pcs"}))
		require.NoError(suite.T(), r.AddIngredient(IngredientLine{Name: "Salt", Quantity: "1", Unit: "tsp"}))

		require.Len(suite.T(), r.Ingredients(), 2)
		assert.Equal(suite.T(), "Carrot", r.Ingredients()[0].Name)
		assert.Equal(suite.T(), "Salt", r.Ingredients()[1].Name)
	})

	suite.Run("AddIngredient_MissingName_ShouldReturnError", func() {
		r, _ := NewRecipe("Soup", "A soup", 10)

		err := r.AddIngredient(IngredientLine{Quantity: "2", Unit: "pcs"})

		assert.Error(suite.T(), err)
		assert.Empty(suite.T(), r.Ingredients())
	})

	suite.Run("AddInstruction_ShouldNumberSteps", func() {
		r, _ := NewRecipe("Soup", "A soup", 10)

		require.NoError(suite.T(), r.AddInstruction(Instruction{Description: "Chop the carrots"}))
		require.NoError(suite.T(), r.AddInstruction(Instruction{Description: "Boil the water"}))

		require.Len(suite.T(), r.Instructions(), 2)
		assert.Equal(suite.T(), 1, r.Instructions()[0].StepNumber)
		assert.Equal(suite.T(), 2, r.Instructions()[1].StepNumber)
	})

	suite.Run("ChefInstructions_NumberedIndependently", func() {
		r, _ := NewRecipe("Soup", "A soup", 10)

		require.NoError(suite.T(), r.AddInstruction(Instruction{Description: "Customer step"}))
		require.NoError(suite.T(), r.AddChefInstruction(Instruction{Description: "Chef step"}))

		require.Len(suite.T(), r.ChefInstructions(), 1)
		assert.Equal(suite.T(), 1, r.ChefInstructions()[0].StepNumber)
	})
}

func (suite *RecipeTestSuite) TestPublishing() {
	newCompleteRecipe := func() *Recipe {
		r, _ := NewRecipe("Soup", "A soup", 10)
		_ = r.AddIngredient(IngredientLine{Name: "Carrot", Quantity: "2", Unit: "pcs"})
		_ = r.AddInstruction(Instruction{Description: "Cook it"})
		return r
	}

	suite.Run("Publish_CompleteRecipe_ShouldSucceed", func() {
		r := newCompleteRecipe()

		err := r.Publish()

		require.NoError(suite.T(), err)
		assert.True(suite.T(), r.IsPublished())
		require.NotNil(suite.T(), r.PublishedAt())
	})

	suite.Run("Publish_NoIngredients_ShouldReturnError", func() {
		r, _ := NewRecipe("Soup", "A soup", 10)
		_ = r.AddInstruction(Instruction{Description: "Cook it"})

		err := r.Publish()

		assert.Equal(suite.T(), ErrNoIngredients, err)
		assert.False(suite.T(), r.IsPublished())
	})

	suite.Run("Publish_NoInstructions_ShouldReturnError", func() {
		r, _ := NewRecipe("Soup", "A soup", 10)
		_ = r.AddIngredient(IngredientLine{Name: "Carrot", Quantity: "2", Unit: "pcs"})

		err := r.Publish()

		assert.Equal(suite.T(), ErrNoInstructions, err)
	})

	suite.Run("Publish_Twice_ShouldReturnError", func() {
		r := newCompleteRecipe()
		require.NoError(suite.T(), r.Publish())

		err := r.Publish()

		assert.Equal(suite.T(), ErrAlreadyPublished, err)
	})

	suite.Run("Unpublish_Published_ShouldClearPublishedAt", func() {
		r := newCompleteRecipe()
		require.NoError(suite.T(), r.Publish())

		err := r.Unpublish()

		require.NoError(suite.T(), err)
		assert.False(suite.T(), r.IsPublished())
		assert.Nil(suite.T(), r.PublishedAt())
	})

	suite.Run("Unpublish_Draft_ShouldReturnError", func() {
		r := newCompleteRecipe()

		err := r.Unpublish()

		assert.Equal(suite.T(), ErrNotPublished, err)
	})
}

func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}
