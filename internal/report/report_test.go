package report

import (
	"strings"
	"testing"
	"time"

	"planiftchop/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meal(date, mealType, dishName string, servings int, prepared bool) PlannedMeal {
	m := PlannedMeal{
		Plan: model.MealPlan{
			ID:              uuid.New(),
			Date:            date,
			MealType:        mealType,
			ServingsPlanned: servings,
			Prepared:        prepared,
		},
	}
	if dishName != "" {
		m.Dish = &model.Dish{ID: uuid.New(), Name: dishName}
	}
	return m
}

func TestFormatLongDate(t *testing.T) {
	assert.Equal(t, "lundi 31 août 2026", FormatLongDate("2026-08-31"))
	assert.Equal(t, "dimanche 01 février 2026", FormatLongDate("2026-02-01"))
	assert.Equal(t, "pas-une-date", FormatLongDate("pas-une-date"))
}

func TestWeekRange(t *testing.T) {
	// 2026-08-31 is a Monday.
	start, end := WeekRange(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-08-31", start)
	assert.Equal(t, "2026-09-06", end)

	// Sunday belongs to the week that started the previous Monday.
	start, end = WeekRange(time.Date(2026, 9, 6, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-08-31", start)
	assert.Equal(t, "2026-09-06", end)
}

func TestFormatPlanningTextOrdersDaysAndMeals(t *testing.T) {
	meals := []PlannedMeal{
		meal("2026-09-01", model.MealDinner, "Eru", 4, false),
		meal("2026-08-31", model.MealDinner, "Ndolé", 2, false),
		meal("2026-08-31", model.MealBreakfast, "Beignets", 3, true),
	}

	text := FormatPlanningText(meals)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "LUNDI 31 AOÛT 2026", lines[0])
	assert.Equal(t, "- Petit-déjeuner: Beignets - 3 portions (Préparé)", lines[1])
	assert.Equal(t, "- Dîner: Ndolé - 2 portions", lines[2])
	assert.Equal(t, "MARDI 01 SEPTEMBRE 2026", lines[4])
}

func TestFormatPlanningDanglingDish(t *testing.T) {
	text := FormatPlanningText([]PlannedMeal{meal("2026-08-31", model.MealLunch, "", 2, false)})
	assert.Contains(t, text, "Plat supprimé")
}

func TestFormatPlanningEmpty(t *testing.T) {
	assert.Equal(t, NoMealsPlanned, FormatPlanningText(nil))
}

func TestStockStatusThresholds(t *testing.T) {
	assert.Equal(t, StatusOut, StockStatus(decimal.Zero))
	assert.Equal(t, StatusOut, StockStatus(decimal.NewFromInt(-1)))
	assert.Equal(t, StatusLow, StockStatus(decimal.NewFromInt(1)))
	assert.Equal(t, StatusLow, StockStatus(decimal.RequireFromString("0.5")))
	assert.Equal(t, "", StockStatus(decimal.RequireFromString("1.01")))
}

func TestFormatStockTextAnnotatesStatus(t *testing.T) {
	items := []model.StockItem{
		{Name: "riz", Quantity: decimal.NewFromInt(5), Unit: "kg", Category: "Céréales"},
		{Name: "huile", Quantity: decimal.NewFromInt(1), Unit: "L", Category: "Épicerie"},
		{Name: "sel", Quantity: decimal.Zero, Unit: "kg"},
	}

	text := FormatStockText(items)
	assert.Contains(t, text, "- riz: 5 kg\n")
	assert.Contains(t, text, "- huile: 1 L (Stock bas)\n")
	assert.Contains(t, text, "- sel: 0 kg (Épuisé)\n")
	// The empty category lands in AUTRES.
	assert.Contains(t, text, "AUTRES\n")
}

func TestBuildEmailIncludesOnlySelectedSections(t *testing.T) {
	bodies := SectionBodies{
		PlanningText:     "planning-corps",
		StockText:        "stock-corps",
		ShoppingListText: "courses-corps",
		ShoppingListHTML: "<p>courses-corps</p>",
	}
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	email := BuildEmail(bodies, Sections{ShoppingList: true}, now)
	assert.Equal(t, Subject, email.Subject)
	assert.Contains(t, email.Text, "LISTE DE COURSES")
	assert.Contains(t, email.Text, "courses-corps")
	assert.NotContains(t, email.Text, "planning-corps")
	assert.NotContains(t, email.Text, "stock-corps")
	assert.Contains(t, email.HTML, "<h2>Liste de Courses</h2>")
	assert.Contains(t, email.HTML, "&copy; 2026 Planif-Tchop")
}
