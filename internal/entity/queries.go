package entity

// ConsumptionQuery filters the consumption log.
type ConsumptionQuery struct {
	BaseParams
	EventID       uint `json:"event_id" form:"event_id"`
	ParticipantID uint `json:"participant_id" form:"participant_id"`
}

// SuggestionRecordQuery filters the suggestion history.
type SuggestionRecordQuery struct {
	BaseParams
	Kind    string `json:"kind" form:"kind"`
	EventID uint   `json:"event_id" form:"event_id"`
}
