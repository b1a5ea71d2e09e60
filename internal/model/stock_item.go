package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockItem is an on-hand pantry quantity. Its lifecycle is independent from
// dishes and meal plans: it is only mutated by direct stock edits.
type StockItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    string          `gorm:"index;not null"`
	Name      string          `gorm:"not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Unit      string          `gorm:"not null;default:''"`
	Category  string          `gorm:"not null;default:'Autres'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
