package dto

type CreateMealPlanRequest struct {
	Date            string `json:"date"             validate:"required,datetime=2006-01-02"`
	MealType        string `json:"meal_type"        validate:"required"`
	DishID          string `json:"dish_id"          validate:"required,uuid"`
	ServingsPlanned int    `json:"servings_planned" validate:"required,min=1"`
}

type SetPreparedRequest struct {
	Prepared *bool `json:"prepared" validate:"required"`
}

type MealPlanFilter struct {
	Start string `form:"start" validate:"omitempty,datetime=2006-01-02"`
	End   string `form:"end"   validate:"omitempty,datetime=2006-01-02"`
}

type MealPlanResponse struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	MealType        string `json:"meal_type"`
	DishID          string `json:"dish_id"`
	DishName        string `json:"dish_name"` // "Plat supprimé" when the dish is gone
	ServingsPlanned int    `json:"servings_planned"`
	Prepared        bool   `json:"prepared"`
}
