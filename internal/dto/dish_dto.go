package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type IngredientRequest struct {
	Name     string           `json:"name"     validate:"required,min=1,max=120"`
	Quantity *decimal.Decimal `json:"quantity"`
	Unit     string           `json:"unit"`
	Category string           `json:"category" validate:"required"`
	Price    *decimal.Decimal `json:"price"`
}

type CreateDishRequest struct {
	Name         string              `json:"name"          validate:"required,min=2,max=120"`
	Course       string              `json:"course"`
	BaseServings int                 `json:"base_servings" validate:"min=1"`
	Ingredients  []IngredientRequest `json:"ingredients"   validate:"required,min=1,dive"`
}

type UpdateDishRequest struct {
	Name         *string             `json:"name"          validate:"omitempty,min=2,max=120"`
	Course       *string             `json:"course"`
	BaseServings *int                `json:"base_servings" validate:"omitempty,min=1"`
	Ingredients  []IngredientRequest `json:"ingredients"   validate:"omitempty,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type IngredientResponse struct {
	Name     string           `json:"name"`
	Quantity *decimal.Decimal `json:"quantity"`
	Unit     string           `json:"unit"`
	Category string           `json:"category"`
	Price    *decimal.Decimal `json:"price"`
}

type DishResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Course       string               `json:"course"`
	BaseServings int                  `json:"base_servings"`
	Ingredients  []IngredientResponse `json:"ingredients"`
}
