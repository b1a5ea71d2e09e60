package repository

import (
	"context"

	"planiftchop/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DishRepository defines the data access contract for the dish catalog.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type DishRepository interface {
	Create(ctx context.Context, d *model.Dish) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Dish, error)
	List(ctx context.Context, userID string) ([]model.Dish, error)
	// Update replaces the dish row and its ingredient lines atomically.
	Update(ctx context.Context, d *model.Dish) error
	// Delete removes the dish permanently. Meal plans keep their dangling
	// reference — consumers must degrade gracefully.
	Delete(ctx context.Context, id uuid.UUID) error
}

type dishRepo struct{ db *gorm.DB }

func NewDishRepository(db *gorm.DB) DishRepository { return &dishRepo{db: db} }

func (r *dishRepo) Create(ctx context.Context, d *model.Dish) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *dishRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Dish, error) {
	var d model.Dish
	err := r.db.WithContext(ctx).Preload("Ingredients").First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *dishRepo) List(ctx context.Context, userID string) ([]model.Dish, error) {
	var dishes []model.Dish
	err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&dishes).Error
	return dishes, err
}

func (r *dishRepo) Update(ctx context.Context, d *model.Dish) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dish_id = ?", d.ID).Delete(&model.DishIngredient{}).Error; err != nil {
			return err
		}
		return tx.Save(d).Error
	})
}

func (r *dishRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dish_id = ?", id).Delete(&model.DishIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Dish{}, "id = ?", id).Error
	})
}
