package sql

import (
	"context"
	"errors"
	"fmt"

	"homebar/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Order("recipe_ingredients.position ASC, recipe_ingredients.id ASC")
}

// CreateRecipe inserts a recipe with its ingredient rows. When eventID is set
// and the event exists, the recipe is added to that event's menu in the same
// transaction; an unknown event is ignored.
func (r *GormRepository) CreateRecipe(ctx context.Context, recipe *entity.DbRecipe, eventID uint) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if recipe == nil {
		return fmt.Errorf("recipe is nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Events").Create(recipe).Error; err != nil {
			return err
		}
		if eventID == 0 {
			return nil
		}

		var event entity.DbEvent
		if err := tx.Select("id").First(&event, eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		link := entity.DbEventRecipe{EventID: event.ID, RecipeID: recipe.ID}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
	})
}

// UpdateRecipe updates recipe columns without touching ingredient rows.
func (r *GormRepository) UpdateRecipe(ctx context.Context, id uint, updates entity.RecipeUpdates) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if id == 0 {
		return fmt.Errorf("invalid recipe id")
	}
	if updates.IsEmpty() {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&entity.DbRecipe{}).Where("id = ?", id).Updates(updates.ToMap())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceRecipe updates recipe columns and swaps the whole ingredient set in
// one transaction. Old rows are deleted and the given rows inserted fresh.
func (r *GormRepository) ReplaceRecipe(ctx context.Context, id uint, updates entity.RecipeUpdates, items []entity.DbRecipeIngredient) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if id == 0 {
		return fmt.Errorf("invalid recipe id")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if updates.IsEmpty() {
			var recipe entity.DbRecipe
			if err := tx.Select("id").First(&recipe, id).Error; err != nil {
				return err
			}
		} else {
			result := tx.Model(&entity.DbRecipe{}).Where("id = ?", id).Updates(updates.ToMap())
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		if err := tx.Where("recipe_id = ?", id).Delete(&entity.DbRecipeIngredient{}).Error; err != nil {
			return fmt.Errorf("clear ingredients: %w", err)
		}
		if len(items) == 0 {
			return nil
		}

		rows := make([]entity.DbRecipeIngredient, len(items))
		for i, item := range items {
			item.ID = 0
			item.RecipeID = id
			rows[i] = item
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("insert ingredients: %w", err)
		}
		return nil
	})
}

// GetRecipe loads a recipe with its ordered ingredient rows.
func (r *GormRepository) GetRecipe(ctx context.Context, id uint) (*entity.DbRecipe, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}

	var recipe entity.DbRecipe
	if err := r.db.WithContext(ctx).Preload("Items", preloadItems).First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListRecipes returns all recipes with ingredients, ordered by name.
func (r *GormRepository) ListRecipes(ctx context.Context) ([]entity.DbRecipe, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}

	var recipes []entity.DbRecipe
	if err := r.db.WithContext(ctx).Preload("Items", preloadItems).Order("name ASC, id ASC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// FindRecipesByIDs fetches recipes with ingredients by ids.
func (r *GormRepository) FindRecipesByIDs(ctx context.Context, ids []uint) ([]entity.DbRecipe, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}
	if len(ids) == 0 {
		return []entity.DbRecipe{}, nil
	}

	var recipes []entity.DbRecipe
	if err := r.db.WithContext(ctx).Preload("Items", preloadItems).Where("id IN ?", ids).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// FindRecipeIDByName returns the id of the oldest recipe whose name matches
// exactly, or nil when none does.
func (r *GormRepository) FindRecipeIDByName(ctx context.Context, name string) (*uint, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}
	if name == "" {
		return nil, nil
	}

	var ids []uint
	if err := r.db.WithContext(ctx).Model(&entity.DbRecipe{}).Where("name = ?", name).Order("id ASC").Limit(1).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return &ids[0], nil
}

// SetRecipePhoto stores the storage path of the recipe photo.
func (r *GormRepository) SetRecipePhoto(ctx context.Context, id uint, photoPath string) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}

	result := r.db.WithContext(ctx).Model(&entity.DbRecipe{}).Where("id = ?", id).Update("photo_path", photoPath)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteRecipe removes a recipe, its ingredient rows and its menu entries.
// Consumptions that resolved to the recipe keep their drink name but lose the
// link.
func (r *GormRepository) DeleteRecipe(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if id == 0 {
		return fmt.Errorf("invalid recipe id")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entity.DbRecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entity.DbEventRecipe{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&entity.DbConsumption{}).Where("recipe_id = ?", id).Update("recipe_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&entity.DbRecipe{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
