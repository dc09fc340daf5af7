package db

import (
	"time"

	"gorm.io/datatypes"
)

// DefaultEventName is used when an event is stored without a name.
const DefaultEventName = "weekend gathering"

// Event 表示一次聚会，Recipes 为当晚的酒单。
type Event struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string         `gorm:"column:name;type:varchar(100);not null;default:weekend gathering" json:"name"`
	Date        datatypes.Date `gorm:"column:date;index" json:"date"`
	Description string         `gorm:"column:description;type:text" json:"description"`

	Recipes []Recipe `gorm:"many2many:event_recipes;foreignKey:ID;joinForeignKey:EventID;references:ID;joinReferences:RecipeID" json:"recipes"`
}

// TableName 指定表名
func (Event) TableName() string {
	return "events"
}

// EventRecipe 聚会与配方的关联表。
type EventRecipe struct {
	EventID  uint `gorm:"primaryKey" json:"event_id"`
	RecipeID uint `gorm:"primaryKey" json:"recipe_id"`
}

// TableName 指定表名
func (EventRecipe) TableName() string {
	return "event_recipes"
}
