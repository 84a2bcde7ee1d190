package shoppinglist

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mirepoix/v1/internal/domain/recipe"
)

// ConsolidateTestSuite provides a test suite for the consolidation engine
type ConsolidateTestSuite struct {
	suite.Suite
}

func buildRecipe(t *testing.T, name string, categories []string, lines ...recipe.IngredientLine) *recipe.Recipe {
	t.Helper()
	r, err := recipe.NewRecipe(name, "", 10)
	require.NoError(t, err)
	for _, line := range lines {
		require.NoError(t, r.AddIngredient(line))
	}
	r.SetCategories(categories)
	return r
}

func index(recipes ...*recipe.Recipe) map[uuid.UUID]*recipe.Recipe {
	m := make(map[uuid.UUID]*recipe.Recipe, len(recipes))
	for _, r := range recipes {
		m[r.ID()] = r
	}
	return m
}

func (suite *ConsolidateTestSuite) TestMerging() {
	suite.Run("SameNameAndUnit_ShouldSumQuantities", func() {
		soup := buildRecipe(suite.T(), "Soup", []string{"Dinner"},
			recipe.IngredientLine{Name: "Carrot", Quantity: "1", Unit: "cup"})
		stew := buildRecipe(suite.T(), "Stew", []string{"Dinner"},
			recipe.IngredientLine{Name: "carrot", Quantity: "2", Unit: "cup"})

		list := Consolidate([]uuid.UUID{soup.ID(), stew.ID()}, index(soup, stew))

		items := list.Items("Dinner")
		require.Len(suite.T(), items, 1)
		assert.Equal(suite.T(), "3", items[0].Quantity)
	})

	suite.Run("CaseInsensitiveMatch_ShouldKeepFirstCasing", func() {
		soup := buildRecipe(suite.T(), "Soup", []string{"Dinner"},
			recipe.IngredientLine{Name: "Carrot", Quantity: "1", Unit: "cup"})
		stew := buildRecipe(suite.T(), "Stew", []string{"Dinner"},
			recipe.IngredientLine{Name: "CARROT", Quantity: "1", Unit: "cup"})

		list := Consolidate([]uuid.UUID{soup.ID(), stew.ID()}, index(soup, stew))

		items := list.Items("Dinner")
		require.Len(suite.T(), items, 1)
		assert.Equal(suite.T(), "Carrot", items[0].Name)
	})

	suite.Run("DifferentUnits_ShouldStaySeparate", func() {
		soup := buildRecipe(suite.T(), "Soup", []string{"Dinner"},
			recipe.IngredientLine{Name: "Carrot", Quantity: "1", Unit: "cup"})
		stew := buildRecipe(suite.T(), "Stew", []string{"Dinner"},
			recipe.IngredientLine{Name: "Carrot", Quantity: "2", Unit: "pcs"})

		list := Consolidate([]uuid.UUID{soup.ID(), stew.ID()}, index(soup, stew))

		assert.Len(suite.T(), list.Items("Dinner"), 2)
	})

	suite.Run("NonNumericQuantity_ShouldConcatenate", func() {
		soup := buildRecipe(suite.T(), "Soup", []string{"Dinner"},
			recipe.IngredientLine{Name: "Salt", Quantity: "a pinch", Unit: ""})
		stew := buildRecipe(suite.T(), "Stew", []string{"Dinner"},
			recipe.IngredientLine{Name: "Salt", Quantity: "1", Unit: ""})

		list := Consolidate([]uuid.UUID{soup.ID(), stew.ID()}, index(soup, stew))

		items := list.Items("Dinner")
		require.Len(suite.T(), items, 1)
		assert.Equal(suite.T(), "a pinch + 1", items[0].Quantity)
	})

	suite.Run("FirstContributor_ShouldKeepAttribution", func() {
		soup := buildRecipe(suite.T(), "Soup", []string{"Dinner"},
			recipe.IngredientLine{Name: "Carrot", Quantity: "1", Unit: "cup"})
		stew := buildRecipe(suite.T(), "Stew", []string{"Dinner"},
			recipe.IngredientLine{Name: "Carrot", Quantity: "2", Unit: "cup"})

		list := Consolidate([]uuid.UUID{soup.ID(), stew.ID()}, index(soup, stew))

		items := list.Items("Dinner")
		require.Len(suite.T(), items, 1)
		assert.Equal(suite.T(), soup.ID(), items[0].RecipeID)
		assert.Equal(suite.T(), "Soup", items[0].RecipeName)
	})
}

func (suite *ConsolidateTestSuite) TestOrderIndependence() {
	suite.Run("ReversedSelection_ShouldSumToSameQuantities", func() {
		soup := buildRecipe(suite.T(), "Soup", []string{"Dinner"},
			recipe.IngredientLine{Name: "Carrot", Quantity: "1", Unit: "cup"},
			recipe.IngredientLine{Name: "Salt", Quantity: "1", Unit: "tsp"})
		stew := buildRecipe(suite.T(), "Stew", []string{"Dinner"},
			recipe.IngredientLine{Name: "carrot", Quantity: "2.5", Unit: "cup"})
		recipes := index(soup, stew)

		forward := Consolidate([]uuid.UUID{soup.ID(), stew.ID()}, recipes)
		reversed := Consolidate([]uuid.UUID{stew.ID(), soup.ID()}, recipes)

		quantities := func(list *ShoppingList) map[string]string {
			out := make(map[string]string)
			for _, category := range list.Categories() {
				for _, item := range list.Items(category) {
					out[category+"/"+strings.ToLower(item.Name)+"/"+item.Unit] = item.Quantity
				}
			}
			return out
		}
		assert.Equal(suite.T(), quantities(forward), quantities(reversed))
	})
}

func (suite *ConsolidateTestSuite) TestCategoryPartitioning() {
	suite.Run("MultiCategoryRecipe_ShouldFanOutToAllBuckets", func() {
		r := buildRecipe(suite.T(), "Frittata", []string{"Breakfast", "Dinner"},
			recipe.IngredientLine{Name: "Egg", Quantity: "6", Unit: "pcs"})

		list := Consolidate([]uuid.UUID{r.ID()}, index(r))

		assert.Equal(suite.T(), []string{"Breakfast", "Dinner"}, list.Categories())
		assert.Len(suite.T(), list.Items("Breakfast"), 1)
		assert.Len(suite.T(), list.Items("Dinner"), 1)
	})

	suite.Run("NoCategories_ShouldFileUnderUncategorized", func() {
		r := buildRecipe(suite.T(), "Mystery Dish", nil,
			recipe.IngredientLine{Name: "Egg", Quantity: "2", Unit: "pcs"})

		list := Consolidate([]uuid.UUID{r.ID()}, index(r))

		assert.Equal(suite.T(), []string{Uncategorized}, list.Categories())
		assert.Len(suite.T(), list.Items(Uncategorized), 1)
	})

	suite.Run("CategoryOrder_ShouldFollowFirstEncounter", func() {
		breakfast := buildRecipe(suite.T(), "Pancakes", []string{"Breakfast"},
			recipe.IngredientLine{Name: "Flour", Quantity: "2", Unit: "cup"})
		dinner := buildRecipe(suite.T(), "Stew", []string{"Dinner"},
			recipe.IngredientLine{Name: "Beef", Quantity: "500", Unit: "g"})

		list := Consolidate([]uuid.UUID{dinner.ID(), breakfast.ID()}, index(breakfast, dinner))

		assert.Equal(suite.T(), []string{"Dinner", "Breakfast"}, list.Categories())
	})
}

func (suite *ConsolidateTestSuite) TestInputHandling() {
	suite.Run("DuplicateRecipeIDs_ShouldCountOnce", func() {
		r := buildRecipe(suite.T(), "Soup", []string{"Dinner"},
			recipe.IngredientLine{Name: "Carrot", Quantity: "1", Unit: "cup"})

		list := Consolidate([]uuid.UUID{r.ID(), r.ID(), r.ID()}, index(r))

		items := list.Items("Dinner")
		require.Len(suite.T(), items, 1)
		assert.Equal(suite.T(), "1", items[0].Quantity)
	})

	suite.Run("UnknownRecipeID_ShouldBeSkipped", func() {
		r := buildRecipe(suite.T(), "Soup", []string{"Dinner"},
			recipe.IngredientLine{Name: "Carrot", Quantity: "1", Unit: "cup"})

		list := Consolidate([]uuid.UUID{uuid.New(), r.ID()}, index(r))

		assert.Equal(suite.T(), 1, list.TotalItems())
	})

	suite.Run("EmptySelection_ShouldProduceEmptyList", func() {
		list := Consolidate(nil, nil)

		assert.True(suite.T(), list.IsEmpty())
		assert.Equal(suite.T(), 0, list.TotalItems())
	})
}

func (suite *ConsolidateTestSuite) TestFlatten() {
	suite.Run("ShouldRenderQuantityUnitNameTriples", func() {
		r := buildRecipe(suite.T(), "Soup", []string{"Dinner"},
			recipe.IngredientLine{Name: "Carrot", Quantity: "2", Unit: "cup"},
			recipe.IngredientLine{Name: "Salt", Quantity: "1", Unit: "tsp"})

		list := Consolidate([]uuid.UUID{r.ID()}, index(r))

		assert.Equal(suite.T(), "2 cup Carrot, 1 tsp Salt, ", list.Flatten())
	})
}

func TestConsolidateTestSuite(t *testing.T) {
	suite.Run(t, new(ConsolidateTestSuite))
}

func TestSumQuantities(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		incoming string
		want     string
	}{
		{"BothIntegers", "1", "2", "3"},
		{"Fractions", "0.5", "0.25", "0.75"},
		{"WholeResult_NoTrailingZeros", "1.5", "0.5", "2"},
		{"WhitespaceTolerated", " 1 ", "2", "3"},
		{"LeftNonNumeric", "a pinch", "1", "a pinch + 1"},
		{"RightNonNumeric", "1", "to taste", "1 + to taste"},
		{"BothNonNumeric", "a pinch", "a dash", "a pinch + a dash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SumQuantities(tt.existing, tt.incoming))
		})
	}
}
