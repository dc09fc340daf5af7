package sql

import (
	"context"
	"fmt"

	"homebar/internal/entity"

	"gorm.io/gorm"
)

// CreateInventoryItem inserts a new inventory item.
func (r *GormRepository) CreateInventoryItem(ctx context.Context, item *entity.DbInventoryItem) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if item == nil {
		return fmt.Errorf("inventory item is nil")
	}
	item.Category = entity.NormalizeCategory(item.Category)
	return r.db.WithContext(ctx).Create(item).Error
}

// UpdateInventoryItem updates inventory fields.
func (r *GormRepository) UpdateInventoryItem(ctx context.Context, id uint, updates entity.InventoryUpdates) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if id == 0 {
		return fmt.Errorf("invalid inventory item id")
	}
	if updates.IsEmpty() {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&entity.DbInventoryItem{}).Where("id = ?", id).Updates(updates.ToMap())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetInventoryItem loads an inventory item by ID.
func (r *GormRepository) GetInventoryItem(ctx context.Context, id uint) (*entity.DbInventoryItem, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}

	var item entity.DbInventoryItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListInventoryItems returns the inventory grouped by category.
func (r *GormRepository) ListInventoryItems(ctx context.Context) ([]entity.DbInventoryItem, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}

	var items []entity.DbInventoryItem
	if err := r.db.WithContext(ctx).Order("category ASC, name ASC, id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteInventoryItem removes an inventory item by ID.
func (r *GormRepository) DeleteInventoryItem(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if id == 0 {
		return fmt.Errorf("invalid inventory item id")
	}

	result := r.db.WithContext(ctx).Delete(&entity.DbInventoryItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
