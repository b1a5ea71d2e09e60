// Package shopping implements the shopping-list derivation engine: it
// aggregates ingredient demand across planned meals, nets it against on-hand
// stock, and renders a per-category purchase list.
//
// All functions are pure over their inputs; the surrounding service layer is
// responsible for fetching plans, dishes and stock.
package shopping

import "strings"

// Key identifies one logical ingredient bucket. Names are merged
// case/whitespace-insensitively; units are compared literally after trimming —
// "kg" and "g" never merge (no unit conversion), and neither do "g" and "G"
// (free-text units, see the stock entry form).
type Key struct {
	Name string
	Unit string
}

// NormalizeName trims surrounding whitespace and lowercases. strings.ToLower
// applies Unicode simple case folding, which is locale-independent — accented
// ingredient names ("Égrené") fold the same way on every machine.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// BuildKey composes the normalized name with the trimmed, case-sensitive unit.
func BuildKey(name, unit string) Key {
	return Key{Name: NormalizeName(name), Unit: strings.TrimSpace(unit)}
}
