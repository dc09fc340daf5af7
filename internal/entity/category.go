package entity

import (
	"strings"

	"homebar/internal/entity/db"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeCategory maps user input onto the enumerated inventory categories,
// matching case-insensitively. Unknown or empty input becomes Other.
func NormalizeCategory(raw string) string {
	folder := cases.Fold()
	folded := folder.String(strings.TrimSpace(raw))
	if folded == "" {
		return db.CategoryOther
	}
	for _, category := range db.InventoryCategories {
		if folder.String(category) == folded {
			return category
		}
	}
	return db.CategoryOther
}

// NormalizeRecipeType returns a known recipe type tag, defaulting to classic.
func NormalizeRecipeType(raw string) string {
	switch cases.Lower(language.English).String(strings.TrimSpace(raw)) {
	case db.RecipeTypeSignature:
		return db.RecipeTypeSignature
	default:
		return db.RecipeTypeClassic
	}
}
