package report

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"planiftchop/internal/model"
)

// DeletedDishName is rendered for plans whose dish no longer exists.
const DeletedDishName = "Plat supprimé"

// NoMealsPlanned is the planning section body when the range is empty.
const NoMealsPlanned = "Aucun repas planifié pour cette période."

// PlannedMeal pairs a meal plan with its resolved dish. Dish is nil when the
// reference dangles.
type PlannedMeal struct {
	Plan model.MealPlan
	Dish *model.Dish
}

func (m PlannedMeal) dishName() string {
	if m.Dish == nil {
		return DeletedDishName
	}
	return m.Dish.Name
}

// groupByDate buckets meals per date and orders each day by meal type.
// Returned dates are sorted ascending (ISO strings compare correctly).
func groupByDate(meals []PlannedMeal) ([]string, map[string][]PlannedMeal) {
	byDate := make(map[string][]PlannedMeal)
	for _, m := range meals {
		byDate[m.Plan.Date] = append(byDate[m.Plan.Date], m)
	}
	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
		day := byDate[date]
		sort.SliceStable(day, func(i, j int) bool {
			return model.MealTypeRank(day[i].Plan.MealType) < model.MealTypeRank(day[j].Plan.MealType)
		})
	}
	sort.Strings(dates)
	return dates, byDate
}

// FormatPlanningText renders the planning section as plain text, one block
// per day with the date header uppercased.
func FormatPlanningText(meals []PlannedMeal) string {
	if len(meals) == 0 {
		return NoMealsPlanned
	}
	dates, byDate := groupByDate(meals)

	var b strings.Builder
	for i, date := range dates {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.ToUpper(FormatLongDate(date)))
		b.WriteString("\n")
		for _, m := range byDate[date] {
			prepared := ""
			if m.Plan.Prepared {
				prepared = " (Préparé)"
			}
			fmt.Fprintf(&b, "- %s: %s - %d portions%s\n",
				m.Plan.MealType, m.dishName(), m.Plan.ServingsPlanned, prepared)
		}
	}
	return b.String()
}

// FormatPlanningHTML renders the planning section with a heading per day.
func FormatPlanningHTML(meals []PlannedMeal) string {
	if len(meals) == 0 {
		return "<p>" + NoMealsPlanned + "</p>"
	}
	dates, byDate := groupByDate(meals)

	var b strings.Builder
	for _, date := range dates {
		fmt.Fprintf(&b, "<h3>%s</h3>\n<ul>\n", html.EscapeString(FormatLongDate(date)))
		for _, m := range byDate[date] {
			prepared := ""
			if m.Plan.Prepared {
				prepared = " (Préparé)"
			}
			fmt.Fprintf(&b, "<li><strong>%s:</strong> %s - %d portions%s</li>\n",
				html.EscapeString(m.Plan.MealType), html.EscapeString(m.dishName()),
				m.Plan.ServingsPlanned, prepared)
		}
		b.WriteString("</ul>\n")
	}
	return b.String()
}
