package shopping

import (
	"planiftchop/internal/model"

	"github.com/shopspring/decimal"
)

// Entry is one line of the derived shopping list.
type Entry struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

// ComputeShoppingList nets aggregated demand against the stock snapshot and
// groups the remaining need by category. Pure function of its two inputs.
//
// Stock rows sharing a normalized key are summed into one logical bucket —
// duplicate pantry rows must never overwrite each other. A demand fully
// covered by stock (needed ≤ 0) is omitted: exactly-zero means satisfied.
// The emitted quantity is rounded to 2 decimals, half away from zero; the
// inclusion decision is taken on the exact value before rounding, so a
// residual need of 0.001 still produces an entry (displayed as 0).
func ComputeShoppingList(demand map[Key]*Demand, stock []model.StockItem) map[string][]Entry {
	onHand := make(map[Key]decimal.Decimal, len(stock))
	for _, item := range stock {
		key := BuildKey(item.Name, item.Unit)
		onHand[key] = onHand[key].Add(item.Quantity)
	}

	toBuy := make(map[string][]Entry)
	for key, d := range demand {
		needed := d.Quantity.Sub(onHand[key])
		if needed.Sign() <= 0 {
			continue
		}
		category := d.Category
		if category == "" {
			category = DefaultCategory
		}
		toBuy[category] = append(toBuy[category], Entry{
			Name:     d.Name,
			Quantity: needed.Round(2),
			Unit:     d.Unit,
		})
	}
	return toBuy
}
