package repository

import (
	"context"

	"planiftchop/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockRepository defines the data access contract for pantry stock.
type StockRepository interface {
	Create(ctx context.Context, item *model.StockItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.StockItem, error)
	ListByUser(ctx context.Context, userID string) ([]model.StockItem, error)
	// ListLow returns items at or below the threshold, lowest first.
	ListLow(ctx context.Context, userID string, threshold decimal.Decimal) ([]model.StockItem, error)
	Update(ctx context.Context, item *model.StockItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type stockRepo struct{ db *gorm.DB }

func NewStockRepository(db *gorm.DB) StockRepository { return &stockRepo{db: db} }

func (r *stockRepo) Create(ctx context.Context, item *model.StockItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *stockRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.StockItem, error) {
	var item model.StockItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *stockRepo) ListByUser(ctx context.Context, userID string) ([]model.StockItem, error) {
	var items []model.StockItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("category ASC, name ASC").
		Find(&items).Error
	return items, err
}

func (r *stockRepo) ListLow(ctx context.Context, userID string, threshold decimal.Decimal) ([]model.StockItem, error) {
	var items []model.StockItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND quantity <= ?", userID, threshold).
		Order("quantity ASC, name ASC").
		Find(&items).Error
	return items, err
}

func (r *stockRepo) Update(ctx context.Context, item *model.StockItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *stockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.StockItem{}, "id = ?", id).Error
}
