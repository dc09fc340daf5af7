package db

import "time"

// Participant 表示参加聚会的朋友。
type Participant struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name string `gorm:"column:name;type:varchar(100);not null" json:"name"`

	Consumptions []Consumption `gorm:"foreignKey:ParticipantID" json:"-"`
}

// TableName 指定表名
func (Participant) TableName() string {
	return "participants"
}
