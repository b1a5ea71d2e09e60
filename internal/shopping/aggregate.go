package shopping

import (
	"errors"
	"fmt"
	"strings"

	"planiftchop/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ErrNoUnpreparedMeals signals that the requested range contains no unprepared
// meal plans. It is informational — callers render "nothing planned", not a
// failure — and must never be conflated with a store error.
var ErrNoUnpreparedMeals = errors.New("aucun repas non préparé planifié pour cette période")

// DefaultCategory buckets ingredient lines whose category was left empty.
const DefaultCategory = "Autres"

// Demand is the aggregated requirement for one ingredient bucket.
type Demand struct {
	// Name keeps the original casing of the first demand line seen.
	Name     string
	Quantity decimal.Decimal
	Unit     string
	// Category is first-seen-wins: dishes that file the same ingredient under
	// different categories do not flip the bucket once it exists.
	Category string
	// Sources lists "<dishName> (x<servings>)" contributions for traceability.
	Sources []string
}

// AggregateDemand walks unprepared meal plans, resolves each against the dish
// snapshot map, multiplies ingredient quantities by planned servings and sums
// them per normalized key.
//
// Plans referencing a dish missing from dishes are skipped without aborting:
// dishes get deleted after being referenced and partial results are expected.
// Ingredient lines with a nil, zero or negative quantity contribute nothing.
func AggregateDemand(plans []model.MealPlan, dishes map[uuid.UUID]*model.Dish) (map[Key]*Demand, error) {
	var unprepared []model.MealPlan
	for _, plan := range plans {
		if !plan.Prepared {
			unprepared = append(unprepared, plan)
		}
	}
	if len(unprepared) == 0 {
		return nil, ErrNoUnpreparedMeals
	}

	demand := make(map[Key]*Demand)
	for _, plan := range unprepared {
		dish, ok := dishes[plan.DishID]
		if !ok || dish == nil {
			log.Debug().
				Str("plan_id", plan.ID.String()).
				Str("dish_id", plan.DishID.String()).
				Msg("shopping: plat supprimé référencé par un plan, ignoré")
			continue
		}

		servings := plan.ServingsPlanned
		if servings <= 0 {
			servings = 1
		}

		for _, ing := range dish.Ingredients {
			if ing.Quantity == nil {
				continue
			}
			required := ing.Quantity.Mul(decimal.NewFromInt(int64(servings)))
			if !required.IsPositive() {
				continue
			}

			key := BuildKey(ing.Name, ing.Unit)
			bucket, exists := demand[key]
			if !exists {
				category := ing.Category
				if category == "" {
					category = DefaultCategory
				}
				bucket = &Demand{
					Name:     strings.TrimSpace(ing.Name),
					Quantity: decimal.Zero,
					Unit:     key.Unit,
					Category: category,
				}
				demand[key] = bucket
			}
			bucket.Quantity = bucket.Quantity.Add(required)
			bucket.Sources = append(bucket.Sources, fmt.Sprintf("%s (x%d)", dish.Name, servings))
		}
	}
	return demand, nil
}
