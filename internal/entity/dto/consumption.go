package dto

import (
	"time"

	"homebar/internal/entity/common"
)

// Consumption is the DTO representation of a logged drink.
type Consumption struct {
	ID              uint      `json:"id"`
	ParticipantID   uint      `json:"participant_id"`
	ParticipantName string    `json:"participant_name"`
	DrinkName       string    `json:"drink_name"`
	Timestamp       time.Time `json:"timestamp"`
	EventID         *uint     `json:"event_id"`
	RecipeID        *uint     `json:"recipe_id"`
}

// ConsumptionRequest logs a drink.
type ConsumptionRequest struct {
	ParticipantID uint   `json:"participant_id" form:"participant_id"`
	DrinkName     string `json:"drink_name" form:"drink_name"`
	EventID       uint   `json:"event_id" form:"event_id"`
}

// ConsumptionListResponse is a page of the consumption log.
type ConsumptionListResponse struct {
	Consumptions []Consumption `json:"consumptions"`
	Meta         *common.Meta  `json:"meta"`
}
