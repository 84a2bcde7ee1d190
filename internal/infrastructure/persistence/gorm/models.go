// Package gorm provides GORM model definitions for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryModel represents the GORM model for recipe categories
type CategoryModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	DisplayOrder int       `gorm:"default:0;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UnitModel represents the GORM model for measurement units
type UnitModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Symbol    string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IngredientModel represents the GORM model for the ingredient registry
type IngredientModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null;index"`
	ImageURL  string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecipeModel represents the GORM model for recipes
type RecipeModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:text"`

	PrepTimeMinutes int `gorm:"column:prep_time_minutes;default:0"`

	// Ingredient lines and instruction tracks are stored as JSON columns;
	// they are always loaded with the recipe and never queried separately.
	Ingredients      IngredientLines  `gorm:"type:json"`
	Instructions     InstructionSteps `gorm:"type:json"`
	ChefInstructions InstructionSteps `gorm:"column:chef_instructions;type:json"`
	Categories       StringSlice      `gorm:"type:json"`

	Published   bool       `gorm:"default:false;index"`
	PublishedAt *time.Time `gorm:"index"`
	CreatedAt   time.Time  `gorm:"index"`
	UpdatedAt   time.Time
}

// ListModel represents the GORM model for persisted list orders
type ListModel struct {
	ID              uuid.UUID   `gorm:"type:char(36);primaryKey"`
	CustomerName    string      `gorm:"type:varchar(255);not null"`
	Email           string      `gorm:"type:varchar(255);not null"`
	AppointmentDate string      `gorm:"type:varchar(20)"`
	AppointmentTime string      `gorm:"type:varchar(20)"`
	RecipeIDs       StringSlice `gorm:"column:recipe_ids;type:json"`
	PDFKey          string      `gorm:"column:pdf_key;type:text"`
	CreatedAt       time.Time   `gorm:"index"`

	// Relationships
	Items []ListItemModel `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
}

// ListItemModel represents the GORM model for saved list items
type ListItemModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	ListID    uuid.UUID `gorm:"type:char(36);not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Quantity  string    `gorm:"type:varchar(100)"`
	Unit      string    `gorm:"type:varchar(100)"`
	Category  string    `gorm:"type:varchar(100);index"`
	IsChecked bool      `gorm:"default:false"`
}

// IngredientLineJSON is the stored shape of one recipe ingredient line
type IngredientLineJSON struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// InstructionJSON is the stored shape of one instruction step
type InstructionJSON struct {
	StepNumber  int    `json:"step_number"`
	Description string `json:"description"`
}

// IngredientLines custom type for handling ingredient lines in JSON
type IngredientLines []IngredientLineJSON

// Scan implements the sql.Scanner interface
func (l *IngredientLines) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientLines{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into IngredientLines", value)
	}
}

// Value implements the driver.Valuer interface
func (l IngredientLines) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// InstructionSteps custom type for handling instruction steps in JSON
type InstructionSteps []InstructionJSON

// Scan implements the sql.Scanner interface
func (s *InstructionSteps) Scan(value interface{}) error {
	if value == nil {
		*s = InstructionSteps{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into InstructionSteps", value)
	}
}

// Value implements the driver.Valuer interface
func (s InstructionSteps) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// StringSlice custom type for handling string slices in JSON
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// BeforeCreate hook for CategoryModel
func (c *CategoryModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for UnitModel
func (u *UnitModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for IngredientModel
func (i *IngredientModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for RecipeModel
func (r *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for ListModel
func (l *ListModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for ListItemModel
func (i *ListItemModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (CategoryModel) TableName() string {
	return "categories"
}

func (UnitModel) TableName() string {
	return "units"
}

func (IngredientModel) TableName() string {
	return "ingredients"
}

func (RecipeModel) TableName() string {
	return "recipes"
}

func (ListModel) TableName() string {
	return "lists"
}

func (ListItemModel) TableName() string {
	return "list_items"
}
