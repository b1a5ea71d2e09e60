package shopping

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func entry(name, quantity, unit string) Entry {
	return Entry{Name: name, Quantity: decimal.RequireFromString(quantity), Unit: unit}
}

func TestFormatTextSortsCategoriesAndItems(t *testing.T) {
	list := map[string][]Entry{
		"Boissons": {entry("jus", "1", "L")},
		"Légumes":  {entry("tomate", "3", "pcs"), entry("oignon", "2", "pcs")},
		"Autres":   {entry("sel", "0.5", "kg")},
	}

	expected := "AUTRES\n" +
		"- sel: 0.5 kg\n" +
		"\n" +
		"BOISSONS\n" +
		"- jus: 1 L\n" +
		"\n" +
		"LÉGUMES\n" +
		"- oignon: 2 pcs\n" +
		"- tomate: 3 pcs\n"
	assert.Equal(t, expected, FormatText(list))

	// Reproducible: same input, same bytes.
	assert.Equal(t, FormatText(list), FormatText(list))
}

func TestFormatHTML(t *testing.T) {
	list := map[string][]Entry{
		"Céréales": {entry("riz", "1", "kg")},
	}

	expected := "<h3>Céréales</h3>\n<ul>\n<li><strong>riz:</strong> 1 kg</li>\n</ul>\n"
	assert.Equal(t, expected, FormatHTML(list))
}

func TestFormatEmptyListYieldsSentinel(t *testing.T) {
	assert.Equal(t, NothingNeeded, FormatText(nil))
	assert.Equal(t, "<p>"+NothingNeeded+"</p>", FormatHTML(map[string][]Entry{}))
}
