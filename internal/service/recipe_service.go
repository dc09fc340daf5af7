package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"homebar/internal/entity"
	"homebar/internal/entity/dto"
	"homebar/internal/model"
	"homebar/internal/storage"
	"homebar/internal/utils"

	"github.com/sirupsen/logrus"
)

// RecipeService 配方服务，封装配料规范化、配料整体替换与照片管理
type RecipeService struct {
	repo    model.Repository
	storage storage.Storage
}

// NewRecipeService 创建配方服务实例
func NewRecipeService(repo model.Repository, store storage.Storage) *RecipeService {
	return &RecipeService{repo: repo, storage: store}
}

// Save creates a recipe, or edits it when req.RecipeID is set.
//
// Submitted ingredient rows replace the whole structured set and regenerate
// the legacy text. Without rows the legacy text is only editable while the
// recipe has no structured rows.
func (s *RecipeService) Save(ctx context.Context, req dto.RecipeSaveRequest) (*entity.DbRecipe, error) {
	if !req.HasName() {
		return nil, ErrNoChange
	}
	if req.RecipeID == 0 {
		return s.create(ctx, req)
	}
	return s.edit(ctx, req)
}

func (s *RecipeService) create(ctx context.Context, req dto.RecipeSaveRequest) (*entity.DbRecipe, error) {
	items, submitted := ingredientRows(req)

	recipe := entity.DbRecipe{
		Name:         strings.TrimSpace(req.Name),
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		IsGenerated:  req.IsGenerated,
		RecipeType:   entity.NormalizeRecipeType(req.RecipeType),
	}
	if submitted && len(items) > 0 {
		recipe.Items = items
		recipe.Ingredients = entity.FormatIngredientText(items)
	}

	if err := s.repo.CreateRecipe(ctx, &recipe, req.EventID); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"recipe_id":   recipe.ID,
		"ingredients": len(recipe.Items),
		"event_id":    req.EventID,
	}).Info("recipe_created")
	return s.repo.GetRecipe(ctx, recipe.ID)
}

func (s *RecipeService) edit(ctx context.Context, req dto.RecipeSaveRequest) (*entity.DbRecipe, error) {
	existing, err := s.repo.GetRecipe(ctx, req.RecipeID)
	if err != nil {
		return nil, noChangeIfMissing(err)
	}

	name := strings.TrimSpace(req.Name)
	updates := entity.RecipeUpdates{
		Name:         &name,
		Instructions: &req.Instructions,
	}
	if strings.TrimSpace(req.RecipeType) != "" {
		updates.RecipeType = &req.RecipeType
	}

	items, submitted := ingredientRows(req)
	switch {
	case submitted:
		text := req.Ingredients
		if len(items) > 0 {
			text = entity.FormatIngredientText(items)
		}
		updates.Ingredients = &text
		err = s.repo.ReplaceRecipe(ctx, existing.ID, updates, items)
	case len(existing.Items) == 0:
		updates.Ingredients = &req.Ingredients
		err = s.repo.UpdateRecipe(ctx, existing.ID, updates)
	default:
		err = s.repo.UpdateRecipe(ctx, existing.ID, updates)
	}
	if err != nil {
		return nil, noChangeIfMissing(err)
	}

	logrus.WithFields(logrus.Fields{
		"recipe_id":            existing.ID,
		"ingredients_replaced": submitted,
		"ingredients":          len(items),
	}).Info("recipe_updated")
	return s.repo.GetRecipe(ctx, existing.ID)
}

// ingredientRows converts the submitted rows, reporting whether any rows
// were submitted at all.
func ingredientRows(req dto.RecipeSaveRequest) ([]entity.DbRecipeIngredient, bool) {
	inputs, submitted := req.IngredientRows()
	if !submitted {
		return nil, false
	}
	names := make([]string, len(inputs))
	amounts := make([]string, len(inputs))
	units := make([]string, len(inputs))
	for i, input := range inputs {
		names[i] = input.Name
		amounts[i] = string(input.Amount)
		units[i] = input.Unit
	}
	return entity.BuildIngredientRows(names, amounts, units), true
}

// Delete removes a recipe together with its photo. A missing recipe is a
// no-op.
func (s *RecipeService) Delete(ctx context.Context, id uint) error {
	recipe, err := s.repo.GetRecipe(ctx, id)
	if err != nil {
		return noChangeIfMissing(err)
	}
	if err := s.repo.DeleteRecipe(ctx, id); err != nil {
		return noChangeIfMissing(err)
	}
	s.removeStoredPhoto(ctx, recipe.ID, recipe.PhotoPath)
	logrus.WithField("recipe_id", id).Info("recipe_deleted")
	return nil
}

// SetPhoto stores a new photo for the recipe and drops the previous one.
func (s *RecipeService) SetPhoto(ctx context.Context, id uint, payload string) (*entity.DbRecipe, error) {
	if s.storage == nil {
		return nil, fmt.Errorf("photo storage is not configured")
	}
	data, ext, err := utils.DecodeImagePayload(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	recipe, err := s.repo.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	key, err := s.storage.Save(ctx, data, storage.SaveOptions{
		Category:  storage.CategoryRecipePhotos,
		Extension: ext,
		BaseName:  photoBaseName(recipe.ID, data),
	})
	if err != nil {
		return nil, fmt.Errorf("save photo: %w", err)
	}
	if err := s.repo.SetRecipePhoto(ctx, recipe.ID, key); err != nil {
		if key != recipe.PhotoPath {
			s.removeStoredPhoto(ctx, recipe.ID, key)
		}
		return nil, err
	}
	if recipe.PhotoPath != "" && recipe.PhotoPath != key {
		s.removeStoredPhoto(ctx, recipe.ID, recipe.PhotoPath)
	}

	logrus.WithFields(logrus.Fields{
		"recipe_id": recipe.ID,
		"path":      key,
		"size":      len(data),
	}).Info("recipe_photo_saved")
	recipe.PhotoPath = key
	return recipe, nil
}

// RemovePhoto clears the recipe photo. A recipe without a photo, or a missing
// recipe, is a no-op.
func (s *RecipeService) RemovePhoto(ctx context.Context, id uint) error {
	recipe, err := s.repo.GetRecipe(ctx, id)
	if err != nil {
		return noChangeIfMissing(err)
	}
	if recipe.PhotoPath == "" {
		return ErrNoChange
	}
	if err := s.repo.SetRecipePhoto(ctx, id, ""); err != nil {
		return noChangeIfMissing(err)
	}
	s.removeStoredPhoto(ctx, id, recipe.PhotoPath)
	return nil
}

func (s *RecipeService) removeStoredPhoto(ctx context.Context, recipeID uint, key string) {
	if s.storage == nil || strings.TrimSpace(key) == "" {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"recipe_id": recipeID,
			"path":      key,
		}).Warn("recipe_photo_delete_failed")
	}
}

// photoBaseName 以配方 ID 加内容摘要命名，同一张图重复上传得到相同文件名
func photoBaseName(recipeID uint, data []byte) string {
	sum := md5.Sum(data)
	return fmt.Sprintf("recipe-%d-%s", recipeID, hex.EncodeToString(sum[:])[:12])
}
