// Package keyword provides a local keyword-based grocery categorizer.
// It is the fallback used when the AI organization service is unavailable,
// so a shopper always gets a sectioned list even fully offline.
package keyword

import (
	"strings"

	"github.com/mirepoix/v1/internal/ports/outbound"
)

// DefaultSection is returned when no keyword matches
const DefaultSection = "Other"

// Categorizer assigns grocery store sections by keyword lookup
type Categorizer struct{}

// NewCategorizer creates the keyword categorizer
func NewCategorizer() outbound.GroceryCategorizer {
	return Categorizer{}
}

// Categorize returns the grocery section for the given ingredient name.
// It performs case-insensitive matching: exact match first, then substring
// match where the longest matching keyword wins, so "tomato sauce" beats
// "tomato" regardless of table order. Falls back to "Other" if no match is
// found.
func (Categorizer) Categorize(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return DefaultSection
	}

	if section, ok := exactMatch[name]; ok {
		return section
	}

	section := DefaultSection
	matched := 0
	for _, entry := range substringMatches {
		if len(entry.keyword) > matched && strings.Contains(name, entry.keyword) {
			section = entry.section
			matched = len(entry.keyword)
		}
	}

	return section
}

var exactMatch = map[string]string{
	// Produce
	"apple":        "Produce",
	"apples":       "Produce",
	"banana":       "Produce",
	"bananas":      "Produce",
	"orange":       "Produce",
	"oranges":      "Produce",
	"lemon":        "Produce",
	"lemons":       "Produce",
	"lime":         "Produce",
	"limes":        "Produce",
	"avocado":      "Produce",
	"tomato":       "Produce",
	"tomatoes":     "Produce",
	"potato":       "Produce",
	"potatoes":     "Produce",
	"onion":        "Produce",
	"onions":       "Produce",
	"garlic":       "Produce",
	"lettuce":      "Produce",
	"spinach":      "Produce",
	"kale":         "Produce",
	"broccoli":     "Produce",
	"carrot":       "Produce",
	"carrots":      "Produce",
	"celery":       "Produce",
	"cucumber":     "Produce",
	"mushrooms":    "Produce",
	"corn":         "Produce",
	"grapes":       "Produce",
	"strawberries": "Produce",
	"blueberries":  "Produce",
	"cilantro":     "Produce",
	"basil":        "Produce",
	"parsley":      "Produce",
	"ginger":       "Produce",
	"zucchini":     "Produce",
	"asparagus":    "Produce",
	"green beans":  "Produce",
	"leek":         "Produce",
	"shallot":      "Produce",

	// Dairy
	"milk":           "Dairy",
	"egg":            "Dairy",
	"eggs":           "Dairy",
	"butter":         "Dairy",
	"cheese":         "Dairy",
	"yogurt":         "Dairy",
	"cream cheese":   "Dairy",
	"sour cream":     "Dairy",
	"heavy cream":    "Dairy",
	"cottage cheese": "Dairy",
	"parmesan":       "Dairy",
	"mozzarella":     "Dairy",
	"feta":           "Dairy",

	// Meat & Seafood
	"chicken":       "Meat & Seafood",
	"beef":          "Meat & Seafood",
	"pork":          "Meat & Seafood",
	"turkey":        "Meat & Seafood",
	"bacon":         "Meat & Seafood",
	"sausage":       "Meat & Seafood",
	"ham":           "Meat & Seafood",
	"steak":         "Meat & Seafood",
	"salmon":        "Meat & Seafood",
	"shrimp":        "Meat & Seafood",
	"tuna":          "Meat & Seafood",
	"fish":          "Meat & Seafood",
	"ground beef":   "Meat & Seafood",
	"ground turkey": "Meat & Seafood",
	"lamb":          "Meat & Seafood",

	// Bakery
	"bread":      "Bakery",
	"bagels":     "Bakery",
	"tortillas":  "Bakery",
	"rolls":      "Bakery",
	"buns":       "Bakery",
	"pita":       "Bakery",
	"baguette":   "Bakery",
	"croissants": "Bakery",

	// Pantry
	"rice":            "Pantry",
	"pasta":           "Pantry",
	"flour":           "Pantry",
	"sugar":           "Pantry",
	"salt":            "Pantry",
	"pepper":          "Pantry",
	"oil":             "Pantry",
	"olive oil":       "Pantry",
	"vinegar":         "Pantry",
	"soy sauce":       "Pantry",
	"honey":           "Pantry",
	"peanut butter":   "Pantry",
	"cereal":          "Pantry",
	"oatmeal":         "Pantry",
	"canned tomatoes": "Pantry",
	"broth":           "Pantry",
	"beans":           "Pantry",
	"lentils":         "Pantry",
	"almonds":         "Pantry",
	"spaghetti":       "Pantry",
	"noodles":         "Pantry",
	"maple syrup":     "Pantry",
	"salsa":           "Pantry",
	"cumin":           "Pantry",
	"paprika":         "Pantry",
	"oregano":         "Pantry",

	// Frozen
	"ice cream":      "Frozen",
	"frozen peas":    "Frozen",
	"frozen veggies": "Frozen",
	"frozen fruit":   "Frozen",

	// Beverages
	"water":  "Beverages",
	"juice":  "Beverages",
	"coffee": "Beverages",
	"tea":    "Beverages",
	"wine":   "Beverages",
	"beer":   "Beverages",
}

type substringEntry struct {
	keyword string
	section string
}

// Grouped by section for readability; priority is by keyword length, with
// earlier entries winning length ties.
var substringMatches = []substringEntry{
	// Meat & Seafood
	{"chicken breast", "Meat & Seafood"},
	{"chicken thigh", "Meat & Seafood"},
	{"ground beef", "Meat & Seafood"},
	{"ground turkey", "Meat & Seafood"},
	{"pork chop", "Meat & Seafood"},
	{"chicken", "Meat & Seafood"},
	{"beef", "Meat & Seafood"},
	{"pork", "Meat & Seafood"},
	{"fish", "Meat & Seafood"},
	{"shrimp", "Meat & Seafood"},

	// Dairy
	{"cream cheese", "Dairy"},
	{"sour cream", "Dairy"},
	{"heavy cream", "Dairy"},
	{"greek yogurt", "Dairy"},
	{"almond milk", "Dairy"},
	{"oat milk", "Dairy"},
	{"yogurt", "Dairy"},
	{"cheese", "Dairy"},
	{"milk", "Dairy"},
	{"butter", "Dairy"},
	{"cream", "Dairy"},
	{"egg", "Dairy"},

	// Produce
	{"baby spinach", "Produce"},
	{"green onion", "Produce"},
	{"sweet potato", "Produce"},
	{"bell pepper", "Produce"},
	{"cherry tomato", "Produce"},
	{"cauliflower", "Produce"},
	{"cabbage", "Produce"},
	{"squash", "Produce"},
	{"berries", "Produce"},
	{"berry", "Produce"},
	{"fruit", "Produce"},
	{"herb", "Produce"},
	{"lettuce", "Produce"},
	{"spinach", "Produce"},
	{"apple", "Produce"},
	{"tomato", "Produce"},
	{"potato", "Produce"},
	{"onion", "Produce"},
	{"pepper", "Produce"},
	{"carrot", "Produce"},
	{"celery", "Produce"},
	{"mushroom", "Produce"},

	// Bakery
	{"sourdough", "Bakery"},
	{"bread", "Bakery"},
	{"bagel", "Bakery"},
	{"tortilla", "Bakery"},
	{"bun", "Bakery"},
	{"croissant", "Bakery"},

	// Pantry
	{"peanut butter", "Pantry"},
	{"olive oil", "Pantry"},
	{"coconut oil", "Pantry"},
	{"maple syrup", "Pantry"},
	{"soy sauce", "Pantry"},
	{"tomato sauce", "Pantry"},
	{"canned", "Pantry"},
	{"cereal", "Pantry"},
	{"rice", "Pantry"},
	{"pasta", "Pantry"},
	{"noodle", "Pantry"},
	{"flour", "Pantry"},
	{"sugar", "Pantry"},
	{"spice", "Pantry"},
	{"seasoning", "Pantry"},
	{"sauce", "Pantry"},
	{"broth", "Pantry"},
	{"stock", "Pantry"},
	{"bean", "Pantry"},
	{"lentil", "Pantry"},
	{"oil", "Pantry"},
	{"vinegar", "Pantry"},

	// Frozen
	{"frozen", "Frozen"},
	{"ice cream", "Frozen"},

	// Beverages
	{"sparkling water", "Beverages"},
	{"juice", "Beverages"},
	{"coffee", "Beverages"},
	{"tea", "Beverages"},
	{"wine", "Beverages"},
}
