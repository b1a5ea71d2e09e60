package model

import (
	"time"

	"github.com/google/uuid"
)

// Meal types as stored, in their display order within a day.
const (
	MealBreakfast = "Petit-déjeuner"
	MealBrunch    = "Brunch"
	MealLunch     = "Déjeuner"
	MealSnack     = "Collation"
	MealDinner    = "Dîner"
)

// MealTypeOrder fixes the within-day ordering of meal types. Unknown values
// sort last.
var MealTypeOrder = map[string]int{
	MealBreakfast: 0,
	MealBrunch:    1,
	MealLunch:     2,
	MealSnack:     3,
	MealDinner:    4,
}

// UnknownMealRank is the rank assigned to meal types outside MealTypeOrder.
const UnknownMealRank = 99

// MealTypeRank returns the sort rank of a meal type (unknown → UnknownMealRank).
func MealTypeRank(mealType string) int {
	if rank, ok := MealTypeOrder[mealType]; ok {
		return rank
	}
	return UnknownMealRank
}

// MealPlan schedules a dish on a calendar day. Date is stored as an ISO
// YYYY-MM-DD string so range queries are plain string comparisons, matching
// how the calendar is keyed. DishID carries no FK constraint on purpose —
// deleting a dish must not cascade into the planning history.
type MealPlan struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID          string    `gorm:"index;not null"`
	Date            string    `gorm:"type:varchar(10);index;not null"`
	MealType        string    `gorm:"not null"`
	DishID          uuid.UUID `gorm:"type:uuid;not null;index"`
	ServingsPlanned int       `gorm:"not null;default:1"`
	Prepared        bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time
}
