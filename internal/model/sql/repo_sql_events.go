package sql

import (
	"context"
	"fmt"

	"homebar/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func preloadMenu(db *gorm.DB) *gorm.DB {
	return db.Order("recipes.name ASC, recipes.id ASC")
}

// CreateEvent inserts a new event.
func (r *GormRepository) CreateEvent(ctx context.Context, event *entity.DbEvent) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if event == nil {
		return fmt.Errorf("event is nil")
	}
	return r.db.WithContext(ctx).Omit("Recipes").Create(event).Error
}

// UpdateEvent updates event fields.
func (r *GormRepository) UpdateEvent(ctx context.Context, id uint, updates entity.EventUpdates) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if id == 0 {
		return fmt.Errorf("invalid event id")
	}
	if updates.IsEmpty() {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&entity.DbEvent{}).Where("id = ?", id).Updates(updates.ToMap())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetEvent loads an event with its menu.
func (r *GormRepository) GetEvent(ctx context.Context, id uint) (*entity.DbEvent, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}

	var event entity.DbEvent
	if err := r.db.WithContext(ctx).Preload("Recipes", preloadMenu).Preload("Recipes.Items", preloadItems).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// ListEvents returns events, newest date first.
func (r *GormRepository) ListEvents(ctx context.Context) ([]entity.DbEvent, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}

	var events []entity.DbEvent
	if err := r.db.WithContext(ctx).Preload("Recipes", preloadMenu).Order("date DESC, id DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// DeleteEvent removes an event and its menu entries. Logged consumptions stay
// but no longer point at the event.
func (r *GormRepository) DeleteEvent(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if id == 0 {
		return fmt.Errorf("invalid event id")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&entity.DbEventRecipe{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&entity.DbConsumption{}).Where("event_id = ?", id).Update("event_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&entity.DbEvent{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// AddRecipeToEvent puts a recipe on an event's menu. Adding a recipe twice is
// a no-op.
func (r *GormRepository) AddRecipeToEvent(ctx context.Context, eventID, recipeID uint) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event entity.DbEvent
		if err := tx.Select("id").First(&event, eventID).Error; err != nil {
			return err
		}
		var recipe entity.DbRecipe
		if err := tx.Select("id").First(&recipe, recipeID).Error; err != nil {
			return err
		}

		link := entity.DbEventRecipe{EventID: event.ID, RecipeID: recipe.ID}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
	})
}

// RemoveRecipeFromEvent drops a recipe from an event's menu.
func (r *GormRepository) RemoveRecipeFromEvent(ctx context.Context, eventID, recipeID uint) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}

	result := r.db.WithContext(ctx).
		Where("event_id = ? AND recipe_id = ?", eventID, recipeID).
		Delete(&entity.DbEventRecipe{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
