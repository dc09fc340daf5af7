package dto

import "time"

// DateLayout is the wire format for event dates.
const DateLayout = "2006-01-02"

// Event is the DTO representation of an event with its menu.
type Event struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Recipes     []RecipeSummary `json:"recipes"`
	CreatedAt   time.Time       `json:"created_at"`
}

// EventRequest creates an event. An empty or malformed date means today.
type EventRequest struct {
	Name        string `json:"name" form:"name"`
	Date        string `json:"date" form:"date"`
	Description string `json:"description" form:"description"`
}

// EventPatchRequest updates selected fields of an event.
type EventPatchRequest struct {
	Name        *string `json:"name"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
}

// EventRecipeRequest adds a recipe to an event menu.
type EventRecipeRequest struct {
	RecipeID uint `json:"recipe_id" form:"recipe_id"`
}
