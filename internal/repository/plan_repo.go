package repository

import (
	"context"

	"planiftchop/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanRepository defines the data access contract for meal plans.
type PlanRepository interface {
	Create(ctx context.Context, p *model.MealPlan) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MealPlan, error)
	// ListByDateRange returns plans with date in [start, end] (inclusive ISO
	// string comparison). onlyUnprepared restricts to prepared = false.
	ListByDateRange(ctx context.Context, userID, start, end string, onlyUnprepared bool) ([]model.MealPlan, error)
	SetPrepared(ctx context.Context, id uuid.UUID, prepared bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type planRepo struct{ db *gorm.DB }

func NewPlanRepository(db *gorm.DB) PlanRepository { return &planRepo{db: db} }

func (r *planRepo) Create(ctx context.Context, p *model.MealPlan) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *planRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.MealPlan, error) {
	var p model.MealPlan
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *planRepo) ListByDateRange(ctx context.Context, userID, start, end string, onlyUnprepared bool) ([]model.MealPlan, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end)
	if onlyUnprepared {
		q = q.Where("prepared = false")
	}
	var plans []model.MealPlan
	err := q.Order("date ASC").Find(&plans).Error
	return plans, err
}

func (r *planRepo) SetPrepared(ctx context.Context, id uuid.UUID, prepared bool) error {
	res := r.db.WithContext(ctx).Model(&model.MealPlan{}).
		Where("id = ?", id).
		Update("prepared", prepared)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *planRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MealPlan{}, "id = ?", id).Error
}
