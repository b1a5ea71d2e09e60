package infra

// pdf.go — PDF rendering of the shopping list using go-pdf/fpdf.
// Produces an A4 document with one section per category and a row per
// article (name, quantity, unit). Accents are translated through fpdf's
// cp1252 converter so the French labels render correctly with the core
// Helvetica font.

import (
	"fmt"
	"io"
	"time"

	"planiftchop/internal/shopping"

	"github.com/go-pdf/fpdf"
)

// WriteShoppingListPDF renders the grouped shopping list to w.
// start and end are inclusive ISO dates bounding the covered period.
func WriteShoppingListPDF(w io.Writer, grouped map[string][]shopping.Entry, start, end string, now time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Planif-Tchop", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("Liste de courses du %s au %s", start, end)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(grouped) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(contentW, 6, tr(shopping.NothingNeeded), "", "L", false)
		return output(pdf, w)
	}

	col1 := contentW * 0.60 // article
	col2 := contentW * 0.22 // quantity
	col3 := contentW * 0.18 // unit

	for _, category := range shopping.SortedCategories(grouped) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(contentW, 7, tr(category), "", 1, "L", true, 0, "")

		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(col1, 6, "Article", "B", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, tr("Quantité"), "B", 0, "R", false, 0, "")
		pdf.CellFormat(col3, 6, tr("Unité"), "B", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		for _, entry := range shopping.SortedEntries(grouped[category]) {
			pdf.CellFormat(col1, 6, tr(entry.Name), "", 0, "L", false, 0, "")
			pdf.CellFormat(col2, 6, entry.Quantity.String(), "", 0, "R", false, 0, "")
			pdf.CellFormat(col3, 6, "  "+tr(entry.Unit), "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, tr(fmt.Sprintf("Généré le %s", now.Format("02/01/2006 15:04"))), "", 1, "C", false, 0, "")

	return output(pdf, w)
}

func output(pdf *fpdf.Fpdf, w io.Writer) error {
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: write output: %w", err)
	}
	return nil
}
