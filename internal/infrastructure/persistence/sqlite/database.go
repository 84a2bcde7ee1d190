// Package sqlite provides SQLite database setup and configuration
package sqlite

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormModels "github.com/mirepoix/v1/internal/infrastructure/persistence/gorm"
)

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	// Use in-memory database if no path provided
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&gormModels.CategoryModel{},
		&gormModels.UnitModel{},
		&gormModels.IngredientModel{},
		&gormModels.RecipeModel{},
		&gormModels.ListModel{},
		&gormModels.ListItemModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedDatabase populates the database with demo data for development
func SeedDatabase(db *gorm.DB) error {
	var categoryCount int64
	db.Model(&gormModels.CategoryModel{}).Count(&categoryCount)
	if categoryCount > 0 {
		return nil // Already seeded
	}

	categories := []gormModels.CategoryModel{
		{Name: "Breakfast", DisplayOrder: 0},
		{Name: "Lunch", DisplayOrder: 1},
		{Name: "Dinner", DisplayOrder: 2},
		{Name: "Dessert", DisplayOrder: 3},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			return fmt.Errorf("failed to create demo category: %w", err)
		}
	}

	units := []gormModels.UnitModel{
		{Name: "gram", Symbol: "g"},
		{Name: "kilogram", Symbol: "kg"},
		{Name: "cup", Symbol: "cup"},
		{Name: "tablespoon", Symbol: "tbsp"},
		{Name: "teaspoon", Symbol: "tsp"},
		{Name: "piece", Symbol: "pcs"},
	}
	for i := range units {
		if err := db.Create(&units[i]).Error; err != nil {
			return fmt.Errorf("failed to create demo unit: %w", err)
		}
	}

	// Random but plausible recipes for local development
	faker := gofakeit.New(0)
	for i := 0; i < 8; i++ {
		category := categories[i%len(categories)]

		recipe := gormModels.RecipeModel{
			Name:            faker.Dinner(),
			Description:     faker.Sentence(12),
			PrepTimeMinutes: faker.Number(10, 90),
			Categories:      gormModels.StringSlice{category.Name},
			Published:       true,
		}

		lineCount := faker.Number(3, 6)
		for j := 0; j < lineCount; j++ {
			unit := units[faker.Number(0, len(units)-1)]
			recipe.Ingredients = append(recipe.Ingredients, gormModels.IngredientLineJSON{
				Name:     faker.Vegetable(),
				Quantity: fmt.Sprintf("%d", faker.Number(1, 500)),
				Unit:     unit.Symbol,
			})
		}

		stepCount := faker.Number(2, 5)
		for j := 0; j < stepCount; j++ {
			recipe.Instructions = append(recipe.Instructions, gormModels.InstructionJSON{
				StepNumber:  j + 1,
				Description: faker.Sentence(10),
			})
		}

		if err := db.Create(&recipe).Error; err != nil {
			return fmt.Errorf("failed to create demo recipe: %w", err)
		}
	}

	return nil
}
