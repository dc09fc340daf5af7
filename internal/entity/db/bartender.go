package db

import "time"

// DefaultBartenderTitle is the title given to a bartender created without one.
const DefaultBartenderTitle = "Bartender"

// Bartender 表示值班调酒师名单中的一员。
type Bartender struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `gorm:"column:name;type:varchar(50);not null" json:"name"`
	Title    string `gorm:"column:title;type:varchar(50);not null;default:Bartender" json:"title"`
	IsActive bool   `gorm:"column:is_active;not null" json:"is_active"`
	Order    int    `gorm:"column:sort_order;not null;default:0" json:"order"`
}

// TableName 指定表名
func (Bartender) TableName() string {
	return "bartenders"
}
