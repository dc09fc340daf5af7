package dto

import "time"

// InventoryItem is the DTO representation of an inventory item.
type InventoryItem struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Quantity  string    `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InventorySaveRequest creates an item, or updates it when ItemID is set.
type InventorySaveRequest struct {
	ItemID   uint   `json:"item_id" form:"item_id"`
	Name     string `json:"name" form:"name"`
	Category string `json:"category" form:"category"`
	Quantity string `json:"quantity" form:"quantity"`
}

// InventoryPatchRequest updates selected fields of an item.
type InventoryPatchRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Quantity *string `json:"quantity"`
}
