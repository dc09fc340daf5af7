package dto

import (
	"encoding/json"
	"time"

	"homebar/internal/entity/common"
)

// SuggestionRequest asks for a cocktail from free text.
type SuggestionRequest struct {
	Request string `json:"request" form:"request"`
}

// OmakaseRequest asks for a cocktail matching a mood and the weather.
type OmakaseRequest struct {
	Mood    string `json:"mood" form:"mood"`
	Weather string `json:"weather" form:"weather"`
}

// RecommendationRequest asks for a pick from an event menu.
type RecommendationRequest struct {
	Request string `json:"request" form:"request"`
}

// SuggestionRecord is one entry of the gateway call history.
type SuggestionRecord struct {
	ID         uint            `json:"id"`
	Kind       string          `json:"kind"`
	Provider   string          `json:"provider"`
	Model      string          `json:"model"`
	Request    string          `json:"request"`
	Reply      string          `json:"reply"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	Fallback   bool            `json:"fallback"`
	EventID    *uint           `json:"event_id,omitempty"`
	Error      string          `json:"error,omitempty"`
	DurationMs int64           `json:"duration_ms"`
	CreatedAt  time.Time       `json:"created_at"`
}

// SuggestionHistoryResponse is a page of the suggestion history.
type SuggestionHistoryResponse struct {
	Records []SuggestionRecord `json:"records"`
	Meta    *common.Meta       `json:"meta"`
}
