package entity

import (
	"math"
	"strconv"
	"strings"

	"homebar/internal/entity/db"
)

// FormatAmount renders an ingredient amount without trailing zeros.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// FormatIngredientText regenerates the legacy ingredient text from structured
// rows, one "name amount unit" line per row. Rows without an amount keep only
// their name.
func FormatIngredientText(items []DbRecipeIngredient) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}
		if item.Amount == 0 {
			lines = append(lines, name)
			continue
		}
		lines = append(lines, strings.TrimSpace(name+" "+FormatAmount(item.Amount)+" "+item.Unit))
	}
	return strings.Join(lines, "\n")
}

// ParseAmount reads s as a plain number. Anything that is not one ("45ml",
// "a splash", out of range) becomes 0.
func ParseAmount(s string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// BuildIngredientRows turns submitted rows into stored ingredient rows. Rows
// with a blank name are dropped, unparsable amounts become 0 and a missing
// unit becomes ml.
func BuildIngredientRows(names, amounts, units []string) []DbRecipeIngredient {
	rows := make([]DbRecipeIngredient, 0, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		row := DbRecipeIngredient{Position: len(rows), Name: name, Unit: db.DefaultIngredientUnit}
		if i < len(amounts) {
			row.Amount = ParseAmount(amounts[i])
		}
		if i < len(units) {
			if unit := strings.TrimSpace(units[i]); unit != "" {
				row.Unit = unit
			}
		}
		rows = append(rows, row)
	}
	return rows
}
