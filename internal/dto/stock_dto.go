package dto

import "github.com/shopspring/decimal"

type CreateStockItemRequest struct {
	Name     string          `json:"name"     validate:"required,min=1,max=120"`
	Quantity decimal.Decimal `json:"quantity" validate:"min=0"`
	Unit     string          `json:"unit"`
	Category string          `json:"category"`
}

type UpdateStockItemRequest struct {
	Name     *string          `json:"name"     validate:"omitempty,min=1,max=120"`
	Quantity *decimal.Decimal `json:"quantity" validate:"omitempty,min=0"`
	Unit     *string          `json:"unit"`
	Category *string          `json:"category"`
}

type StockItemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	Category string          `json:"category"`
	// Status is "Épuisé", "Stock bas" or empty.
	Status string `json:"status,omitempty"`
}
