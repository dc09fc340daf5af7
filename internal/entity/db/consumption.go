package db

import "time"

// Consumption 记录某位参与者喝下的一杯酒。
//
// RecipeID 在创建时按名称精确匹配解析一次，之后配方改名不会重新关联。
type Consumption struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	ParticipantID uint      `gorm:"column:participant_id;not null;index" json:"participant_id"`
	DrinkName     string    `gorm:"column:drink_name;type:varchar(100);not null" json:"drink_name"`
	Timestamp     time.Time `gorm:"column:timestamp;not null" json:"timestamp"`
	EventID       *uint     `gorm:"column:event_id;index" json:"event_id"`
	RecipeID      *uint     `gorm:"column:recipe_id;index" json:"recipe_id"`

	Participant *Participant `gorm:"foreignKey:ParticipantID" json:"participant,omitempty"`
	Event       *Event       `gorm:"foreignKey:EventID" json:"-"`
	Recipe      *Recipe      `gorm:"foreignKey:RecipeID" json:"-"`
}

// TableName 指定表名
func (Consumption) TableName() string {
	return "consumptions"
}
