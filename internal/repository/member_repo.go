package repository

import (
	"context"

	"planiftchop/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRepository defines the data access contract for family members.
type MemberRepository interface {
	Create(ctx context.Context, m *model.FamilyMember) error
	ListByUser(ctx context.Context, userID string) ([]model.FamilyMember, error)
	FindByEmail(ctx context.Context, userID, email string) (*model.FamilyMember, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type memberRepo struct{ db *gorm.DB }

func NewMemberRepository(db *gorm.DB) MemberRepository { return &memberRepo{db: db} }

func (r *memberRepo) Create(ctx context.Context, m *model.FamilyMember) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *memberRepo) ListByUser(ctx context.Context, userID string) ([]model.FamilyMember, error) {
	var members []model.FamilyMember
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&members).Error
	return members, err
}

func (r *memberRepo) FindByEmail(ctx context.Context, userID, email string) (*model.FamilyMember, error) {
	var m model.FamilyMember
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND email = ?", userID, email).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *memberRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FamilyMember{}, "id = ?", id).Error
}
