package sql

import (
	"context"
	"fmt"

	"homebar/internal/entity"

	"gorm.io/gorm"
)

// CreateBartender inserts a roster entry.
func (r *GormRepository) CreateBartender(ctx context.Context, bartender *entity.DbBartender) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if bartender == nil {
		return fmt.Errorf("bartender is nil")
	}
	return r.db.WithContext(ctx).Create(bartender).Error
}

// UpdateBartender updates roster fields.
func (r *GormRepository) UpdateBartender(ctx context.Context, id uint, updates entity.BartenderUpdates) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if id == 0 {
		return fmt.Errorf("invalid bartender id")
	}
	if updates.IsEmpty() {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&entity.DbBartender{}).Where("id = ?", id).Updates(updates.ToMap())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListBartenders returns the roster ordered for display.
func (r *GormRepository) ListBartenders(ctx context.Context, includeInactive bool) ([]entity.DbBartender, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}

	query := r.db.WithContext(ctx).Model(&entity.DbBartender{})
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var bartenders []entity.DbBartender
	if err := query.Order("sort_order ASC, id ASC").Find(&bartenders).Error; err != nil {
		return nil, err
	}
	return bartenders, nil
}

// DeleteBartender removes a roster entry.
func (r *GormRepository) DeleteBartender(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if id == 0 {
		return fmt.Errorf("invalid bartender id")
	}

	result := r.db.WithContext(ctx).Delete(&entity.DbBartender{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
