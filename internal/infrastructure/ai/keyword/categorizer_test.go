package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	c := NewCategorizer()

	tests := []struct {
		name string
		item string
		want string
	}{
		{"ExactMatch_Produce", "Carrot", "Produce"},
		{"ExactMatch_CaseInsensitive", "CHICKEN", "Meat & Seafood"},
		{"ExactMatch_Whitespace", "  milk  ", "Dairy"},
		{"SubstringMatch_LongerKeywordWins", "boneless chicken breast", "Meat & Seafood"},
		{"SubstringMatch_CherryTomatoes", "cherry tomatoes", "Produce"},
		{"SubstringMatch_TomatoSauceIsPantry", "crushed tomato sauce", "Pantry"},
		{"SubstringMatch_LongestKeywordWinsAcrossSections", "frozen tomato sauce", "Pantry"},
		{"SubstringMatch_BerriesBeforeFrozen", "frozen strawberries", "Produce"},
		{"SubstringMatch_FrozenFallback", "frozen dumplings", "Frozen"},
		{"SubstringMatch_Sourdough", "sourdough loaf", "Bakery"},
		{"NoMatch_FallsBackToOther", "dragon glass", "Other"},
		{"EmptyName_FallsBackToOther", "   ", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Categorize(tt.item))
		})
	}
}
