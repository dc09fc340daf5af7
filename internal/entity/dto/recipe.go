package dto

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// RecipeIngredient is one structured ingredient line.
type RecipeIngredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Recipe is the DTO representation of a recipe.
type Recipe struct {
	ID           uint               `json:"id"`
	Name         string             `json:"name"`
	Ingredients  string             `json:"ingredients"`
	Instructions string             `json:"instructions"`
	IsGenerated  bool               `json:"is_generated"`
	RecipeType   string             `json:"recipe_type"`
	PhotoURL     string             `json:"photo_url,omitempty"`
	Items        []RecipeIngredient `json:"items"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// RecipeSummary is the short form used in event menus.
type RecipeSummary struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	RecipeType string `json:"recipe_type"`
}

// AmountText carries an ingredient amount exactly as submitted. JSON numbers
// and strings are both accepted; conversion happens when the row is stored.
type AmountText string

// UnmarshalJSON accepts a number, a string or null.
func (a *AmountText) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*a = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*a = AmountText(s)
		return nil
	}
	*a = AmountText(trimmed)
	return nil
}

// UnmarshalParam lets gin bind the raw form value.
func (a *AmountText) UnmarshalParam(param string) error {
	*a = AmountText(param)
	return nil
}

// IngredientInput is one submitted ingredient row.
type IngredientInput struct {
	Name   string     `json:"name"`
	Amount AmountText `json:"amount"`
	Unit   string     `json:"unit"`
}

// RecipeSaveRequest creates a recipe, or edits it when RecipeID is set.
//
// Structured rows come either as the JSON Items array or as the parallel
// ingredient_name / ingredient_amount / ingredient_unit form fields.
type RecipeSaveRequest struct {
	RecipeID     uint   `json:"recipe_id" form:"recipe_id"`
	Name         string `json:"name" form:"name"`
	Ingredients  string `json:"ingredients" form:"ingredients"`
	Instructions string `json:"instructions" form:"instructions"`
	IsGenerated  bool   `json:"is_generated" form:"is_generated"`
	RecipeType   string `json:"recipe_type" form:"recipe_type"`
	EventID      uint   `json:"event_id" form:"event_id"`

	Items []IngredientInput `json:"items" form:"-"`

	ItemNames   []string `json:"-" form:"ingredient_name"`
	ItemAmounts []string `json:"-" form:"ingredient_amount"`
	ItemUnits   []string `json:"-" form:"ingredient_unit"`
}

// IngredientRows returns the submitted rows and whether any structured rows
// were submitted at all. Blank rows are kept; callers decide what to drop.
func (r RecipeSaveRequest) IngredientRows() ([]IngredientInput, bool) {
	if r.Items != nil {
		return r.Items, true
	}
	if len(r.ItemNames) == 0 {
		return nil, false
	}
	rows := make([]IngredientInput, 0, len(r.ItemNames))
	for i, name := range r.ItemNames {
		row := IngredientInput{Name: name}
		if i < len(r.ItemAmounts) {
			row.Amount = AmountText(r.ItemAmounts[i])
		}
		if i < len(r.ItemUnits) {
			row.Unit = r.ItemUnits[i]
		}
		rows = append(rows, row)
	}
	return rows, true
}

// HasName reports whether the request carries a non-blank recipe name.
func (r RecipeSaveRequest) HasName() bool {
	return strings.TrimSpace(r.Name) != ""
}

// RecipePhotoRequest uploads a photo as a data URL or raw base64 payload.
type RecipePhotoRequest struct {
	Image string `json:"image"`
}
