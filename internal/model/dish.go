package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dish is a recipe from the household catalog. Meal plans reference it by ID
// only: deleting a dish leaves dangling plan rows that the planning views
// render as "Plat supprimé" and the shopping engine skips.
type Dish struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       string    `gorm:"index;not null"`
	Name         string    `gorm:"index;not null"`
	Course       string    `gorm:"not null;default:'Dîner'"` // meal the dish is usually served as
	BaseServings int       `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Ingredients []DishIngredient `gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE"`
}

// DishIngredient is one ingredient line of a dish. Quantity and Price are
// nullable: free-text recipes often list ingredients without amounts, and the
// engine treats a missing quantity as zero demand.
type DishIngredient struct {
	ID       uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DishID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name     string           `gorm:"not null"`
	Quantity *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Unit     string           `gorm:"not null;default:''"`
	Category string           `gorm:"not null;default:'Autres'"`
	Price    *decimal.Decimal `gorm:"type:decimal(10,2)"`
}

// TableName overrides GORM's pluralization (dish_ingredients is fine, dishes is not "dishs").
func (Dish) TableName() string { return "dishes" }
