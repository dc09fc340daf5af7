package dto

import "time"

// Participant is the DTO representation of a participant.
type Participant struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ParticipantRequest creates or renames a participant.
type ParticipantRequest struct {
	Name string `json:"name" form:"name"`
}
