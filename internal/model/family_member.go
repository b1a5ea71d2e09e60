package model

import (
	"time"

	"github.com/google/uuid"
)

// FamilyMember is a household member who receives report emails.
type FamilyMember struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    string    `gorm:"index;not null"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"not null;uniqueIndex:idx_member_email"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
