package infra

// xlsx.go — Excel export of the shopping list using tealeg/xlsx.
// One sheet, one row per article with its category, for people who
// reorganize the list in a spreadsheet before going to the market.

import (
	"fmt"
	"io"

	"planiftchop/internal/shopping"

	"github.com/tealeg/xlsx"
)

// WriteShoppingListXLSX renders the grouped shopping list to w as a
// single-sheet .xlsx workbook.
func WriteShoppingListXLSX(w io.Writer, grouped map[string][]shopping.Entry) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Liste de courses")
	if err != nil {
		return fmt.Errorf("xlsx: create sheet: %w", err)
	}

	headers := []string{"Catégorie", "Article", "Quantité", "Unité"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetValue(h)
		style := cell.GetStyle()
		style.Font.Bold = true
		style.ApplyFont = true
	}

	for _, category := range shopping.SortedCategories(grouped) {
		for _, entry := range shopping.SortedEntries(grouped[category]) {
			row := sheet.AddRow()
			row.AddCell().SetValue(category)
			row.AddCell().SetValue(entry.Name)
			qty, _ := entry.Quantity.Float64()
			row.AddCell().SetFloat(qty)
			row.AddCell().SetValue(entry.Unit)
		}
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("xlsx: write workbook: %w", err)
	}
	return nil
}
