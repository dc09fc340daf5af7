package db

import (
	"time"

	"gorm.io/datatypes"
)

// SuggestionRecord stores one call to the suggestion gateway.
type SuggestionRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Kind     string         `gorm:"column:kind;type:varchar(32);index;not null" json:"kind"`
	Provider string         `gorm:"column:provider;type:varchar(64)" json:"provider"`
	Model    string         `gorm:"column:model;type:varchar(128)" json:"model"`
	Request  string         `gorm:"column:request;type:text" json:"request"`
	Reply    string         `gorm:"column:reply;type:text" json:"reply"`
	Payload  datatypes.JSON `gorm:"column:payload" json:"payload"`
	Fallback bool           `gorm:"column:fallback;not null;default:false" json:"fallback"`
	EventID  *uint          `gorm:"column:event_id;index" json:"event_id"`

	ErrorMessage string `gorm:"column:error_message;type:text" json:"error_message"`
	DurationMs   int64  `gorm:"column:duration_ms" json:"duration_ms"`
}

// TableName 指定表名
func (SuggestionRecord) TableName() string {
	return "suggestion_records"
}
