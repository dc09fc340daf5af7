package db

import "time"

const (
	RecipeTypeClassic   = "classic"
	RecipeTypeSignature = "signature"

	DefaultIngredientUnit = "ml"
)

// Recipe 表示一份鸡尾酒配方。Ingredients 文本在存在结构化配料时由其重新生成。
type Recipe struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name         string `gorm:"column:name;type:varchar(100);not null;index" json:"name"`
	Ingredients  string `gorm:"column:ingredients;type:text" json:"ingredients"`
	Instructions string `gorm:"column:instructions;type:text" json:"instructions"`
	IsGenerated  bool   `gorm:"column:is_generated;not null;default:false" json:"is_generated"`
	RecipeType   string `gorm:"column:recipe_type;type:varchar(20);not null;default:classic" json:"recipe_type"`
	PhotoPath    string `gorm:"column:photo_path;type:varchar(255)" json:"photo_path"`

	Items  []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"items"`
	Events []Event            `gorm:"many2many:event_recipes;foreignKey:ID;joinForeignKey:RecipeID;references:ID;joinReferences:EventID" json:"-"`
}

// TableName 指定表名
func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient 是配方中的一行结构化配料，始终属于一个配方。
type RecipeIngredient struct {
	ID       uint    `gorm:"primarykey" json:"id"`
	RecipeID uint    `gorm:"column:recipe_id;not null;index" json:"recipe_id"`
	Position int     `gorm:"column:position;not null;default:0" json:"position"`
	Name     string  `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Amount   float64 `gorm:"column:amount;not null;default:0" json:"amount"`
	Unit     string  `gorm:"column:unit;type:varchar(20);not null;default:ml" json:"unit"`
}

// TableName 指定表名
func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
