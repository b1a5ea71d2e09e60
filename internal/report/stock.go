package report

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"planiftchop/internal/model"

	"github.com/shopspring/decimal"
)

// LowStockThreshold marks an item "Stock bas" when its quantity is ≤ 1,
// whatever the unit. Unit-agnostic on purpose: the original product applies
// the same constant to 1 kg and 1 teaspoon, and that behavior is preserved
// until per-ingredient thresholds become a requirement.
var LowStockThreshold = decimal.NewFromInt(1)

// NoStock is the stock section body when the pantry is empty.
const NoStock = "Aucun élément en stock."

// Stock status labels.
const (
	StatusOut = "Épuisé"
	StatusLow = "Stock bas"
)

// StockStatus classifies a quantity against the fixed threshold.
// Empty string means the item is fine.
func StockStatus(quantity decimal.Decimal) string {
	switch {
	case quantity.Sign() <= 0:
		return StatusOut
	case quantity.LessThanOrEqual(LowStockThreshold):
		return StatusLow
	default:
		return ""
	}
}

// groupStockByCategory buckets items per category (empty → Autres), sorting
// categories and item names ascending.
func groupStockByCategory(items []model.StockItem) ([]string, map[string][]model.StockItem) {
	byCategory := make(map[string][]model.StockItem)
	for _, item := range items {
		category := item.Category
		if category == "" {
			category = "Autres"
		}
		byCategory[category] = append(byCategory[category], item)
	}
	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
		group := byCategory[category]
		sort.Slice(group, func(i, j int) bool { return group[i].Name < group[j].Name })
	}
	sort.Strings(categories)
	return categories, byCategory
}

// FormatStockText renders the stock section with status annotations.
func FormatStockText(items []model.StockItem) string {
	if len(items) == 0 {
		return NoStock
	}
	categories, byCategory := groupStockByCategory(items)

	var b strings.Builder
	for i, category := range categories {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.ToUpper(category))
		b.WriteString("\n")
		for _, item := range byCategory[category] {
			status := ""
			if s := StockStatus(item.Quantity); s != "" {
				status = " (" + s + ")"
			}
			fmt.Fprintf(&b, "- %s: %s %s%s\n", item.Name, item.Quantity.String(), item.Unit, status)
		}
	}
	return b.String()
}

// FormatStockHTML renders the stock section; out/low statuses carry CSS
// classes styled by the envelope.
func FormatStockHTML(items []model.StockItem) string {
	if len(items) == 0 {
		return "<p>" + NoStock + "</p>"
	}
	categories, byCategory := groupStockByCategory(items)

	var b strings.Builder
	for _, category := range categories {
		fmt.Fprintf(&b, "<h3>%s</h3>\n<ul>\n", html.EscapeString(category))
		for _, item := range byCategory[category] {
			status := ""
			switch StockStatus(item.Quantity) {
			case StatusOut:
				status = ` <span class="status-epuise">(Épuisé)</span>`
			case StatusLow:
				status = ` <span class="status-stock-bas">(Stock bas)</span>`
			}
			fmt.Fprintf(&b, "<li><strong>%s:</strong> %s %s%s</li>\n",
				html.EscapeString(item.Name), item.Quantity.String(), html.EscapeString(item.Unit), status)
		}
		b.WriteString("</ul>\n")
	}
	return b.String()
}
