package entity

import (
	"time"

	"gorm.io/datatypes"
)

// ParticipantUpdates 参与者更新字段
type ParticipantUpdates struct {
	Name *string
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u ParticipantUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u ParticipantUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// InventoryUpdates 库存更新字段
type InventoryUpdates struct {
	Name     *string
	Category *string
	Quantity *string
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u InventoryUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.Category != nil {
		updates["category"] = NormalizeCategory(*u.Category)
	}
	if u.Quantity != nil {
		updates["quantity"] = *u.Quantity
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u InventoryUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// RecipeUpdates 配方更新字段。Ingredients 为旧版文本配料，仅在没有结构化配料时生效。
type RecipeUpdates struct {
	Name         *string
	Ingredients  *string
	Instructions *string
	IsGenerated  *bool
	RecipeType   *string
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u RecipeUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.Ingredients != nil {
		updates["ingredients"] = *u.Ingredients
	}
	if u.Instructions != nil {
		updates["instructions"] = *u.Instructions
	}
	if u.IsGenerated != nil {
		updates["is_generated"] = *u.IsGenerated
	}
	if u.RecipeType != nil {
		updates["recipe_type"] = NormalizeRecipeType(*u.RecipeType)
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u RecipeUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// EventUpdates 聚会更新字段
type EventUpdates struct {
	Name        *string
	Date        *time.Time
	Description *string
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u EventUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.Date != nil {
		updates["date"] = datatypes.Date(*u.Date)
	}
	if u.Description != nil {
		updates["description"] = *u.Description
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u EventUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// BartenderUpdates 调酒师更新字段
type BartenderUpdates struct {
	Name     *string
	Title    *string
	IsActive *bool
	Order    *int
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u BartenderUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.Title != nil {
		updates["title"] = *u.Title
	}
	if u.IsActive != nil {
		updates["is_active"] = *u.IsActive
	}
	if u.Order != nil {
		updates["sort_order"] = *u.Order
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u BartenderUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}
