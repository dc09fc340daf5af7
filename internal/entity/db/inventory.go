package db

import "time"

// 库存分类
const (
	CategoryWhisky  = "Whisky"
	CategoryBrandy  = "Brandy"
	CategoryTequila = "Tequila"
	CategoryGin     = "Gin"
	CategoryRum     = "Rum"
	CategoryVodka   = "Vodka"
	CategoryLiqueur = "Liqueur"
	CategoryMixer   = "Mixer"
	CategoryGarnish = "Garnish"
	CategoryOther   = "Other"
)

// InventoryCategories lists the categories in display order.
var InventoryCategories = []string{
	CategoryWhisky,
	CategoryBrandy,
	CategoryTequila,
	CategoryGin,
	CategoryRum,
	CategoryVodka,
	CategoryLiqueur,
	CategoryMixer,
	CategoryGarnish,
	CategoryOther,
}

// InventoryItem 表示吧台上的一瓶酒或一种辅料。
type InventoryItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Category string `gorm:"column:category;type:varchar(50);not null;index" json:"category"`
	Quantity string `gorm:"column:quantity;type:varchar(50)" json:"quantity"`
}

// TableName 指定表名
func (InventoryItem) TableName() string {
	return "inventory_items"
}
