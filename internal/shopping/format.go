package shopping

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// NothingNeeded is the fixed sentinel rendered when the netted list is empty:
// everything the planned meals require is already covered by stock. It is
// deliberately distinct from ErrNoUnpreparedMeals ("nothing planned").
const NothingNeeded = "Aucun article à acheter : le stock couvre tous les repas planifiés."

// SortedCategories returns the category labels in ascending order.
func SortedCategories(list map[string][]Entry) []string {
	categories := make([]string, 0, len(list))
	for category := range list {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// SortedEntries returns a copy of entries ordered by name ascending
// (byte-wise comparison, the pinned collation).
func SortedEntries(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return sorted
}

// FormatText renders the list as plain text: uppercase category headers and
// "- name: quantity unit" bullets. Byte-for-byte reproducible — no timestamps
// belong in here.
func FormatText(list map[string][]Entry) string {
	if len(list) == 0 {
		return NothingNeeded
	}
	var b strings.Builder
	for _, category := range SortedCategories(list) {
		b.WriteString(strings.ToUpper(category))
		b.WriteString("\n")
		for _, e := range SortedEntries(list[category]) {
			fmt.Fprintf(&b, "- %s: %s %s\n", e.Name, e.Quantity.String(), e.Unit)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// FormatHTML renders the list with a heading per category and items in an
// unordered list, in the same order as FormatText.
func FormatHTML(list map[string][]Entry) string {
	if len(list) == 0 {
		return "<p>" + html.EscapeString(NothingNeeded) + "</p>"
	}
	var b strings.Builder
	for _, category := range SortedCategories(list) {
		fmt.Fprintf(&b, "<h3>%s</h3>\n<ul>\n", html.EscapeString(category))
		for _, e := range SortedEntries(list[category]) {
			fmt.Fprintf(&b, "<li><strong>%s:</strong> %s %s</li>\n",
				html.EscapeString(e.Name), e.Quantity.String(), html.EscapeString(e.Unit))
		}
		b.WriteString("</ul>\n")
	}
	return b.String()
}
