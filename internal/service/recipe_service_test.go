package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"homebar/internal/entity"
	"homebar/internal/entity/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func TestRecipeSaveSkipsBlankName(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewRecipeService(repo, nil)

	_, err := svc.Save(context.Background(), dto.RecipeSaveRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrNoChange)

	recipes, err := repo.ListRecipes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestRecipeCreateWithFormRows(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewRecipeService(repo, nil)
	ctx := context.Background()

	recipe, err := svc.Save(ctx, dto.RecipeSaveRequest{
		Name:        " Gin Tonic ",
		Ingredients: "ignored",
		RecipeType:  "Signature",
		ItemNames:   []string{"Gin", ""},
		ItemAmounts: []string{"45", ""},
		ItemUnits:   []string{"ml", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, "Gin Tonic", recipe.Name)
	assert.Equal(t, "signature", recipe.RecipeType)
	require.Len(t, recipe.Items, 1)
	assert.Equal(t, "Gin", recipe.Items[0].Name)
	assert.Equal(t, 45.0, recipe.Items[0].Amount)
	assert.Equal(t, "ml", recipe.Items[0].Unit)
	assert.Equal(t, "Gin 45 ml", recipe.Ingredients)
}

func TestRecipeCreateLegacyTextAndEventMenu(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewRecipeService(repo, nil)
	ctx := context.Background()

	event := entity.DbEvent{Name: "Friday"}
	require.NoError(t, repo.CreateEvent(ctx, &event))

	recipe, err := svc.Save(ctx, dto.RecipeSaveRequest{
		Name:        "Old Fashioned",
		Ingredients: "Bourbon, sugar, bitters",
		EventID:     event.ID,
	})
	require.NoError(t, err)
	assert.Empty(t, recipe.Items)
	assert.Equal(t, "Bourbon, sugar, bitters", recipe.Ingredients)
	assert.Equal(t, "classic", recipe.RecipeType)

	loaded, err := repo.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Recipes, 1)
	assert.Equal(t, recipe.ID, loaded.Recipes[0].ID)
}

func TestRecipeEditReplacesIngredientSet(t *testing.T) {
	repo, db := newTestRepo(t)
	svc := NewRecipeService(repo, nil)
	ctx := context.Background()

	created, err := svc.Save(ctx, dto.RecipeSaveRequest{
		Name: "Daiquiri",
		Items: []dto.IngredientInput{
			{Name: "Rum", Amount: "60", Unit: "ml"},
			{Name: "Lime", Amount: "25", Unit: "ml"},
			{Name: "Syrup", Amount: "15", Unit: "ml"},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Items, 3)

	edited, err := svc.Save(ctx, dto.RecipeSaveRequest{
		RecipeID: created.ID,
		Name:     "Daiquiri",
		Items: []dto.IngredientInput{
			{Name: "Rum", Amount: "50", Unit: "ml"},
			{Name: "Lime", Amount: "a splash", Unit: ""},
		},
	})
	require.NoError(t, err)
	require.Len(t, edited.Items, 2)
	assert.Equal(t, 50.0, edited.Items[0].Amount)
	assert.Equal(t, 0.0, edited.Items[1].Amount)
	assert.Equal(t, "ml", edited.Items[1].Unit)
	assert.Equal(t, "Rum 50 ml\nLime", edited.Ingredients)

	var count int64
	require.NoError(t, db.Model(&entity.DbRecipeIngredient{}).Where("recipe_id = ?", created.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestRecipeEditWithoutRowsKeepsStructuredText(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewRecipeService(repo, nil)
	ctx := context.Background()

	created, err := svc.Save(ctx, dto.RecipeSaveRequest{
		Name:  "Negroni",
		Items: []dto.IngredientInput{{Name: "Gin", Amount: "30", Unit: "ml"}},
	})
	require.NoError(t, err)

	edited, err := svc.Save(ctx, dto.RecipeSaveRequest{
		RecipeID:     created.ID,
		Name:         "Negroni Sbagliato",
		Ingredients:  "free text that must not win",
		Instructions: "Build over ice.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Negroni Sbagliato", edited.Name)
	assert.Equal(t, "Gin 30 ml", edited.Ingredients)
	assert.Equal(t, "Build over ice.", edited.Instructions)
	assert.Len(t, edited.Items, 1)
}

func TestRecipeEditLegacyTextWhenNoRows(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewRecipeService(repo, nil)
	ctx := context.Background()

	created, err := svc.Save(ctx, dto.RecipeSaveRequest{Name: "Sour", Ingredients: "whisky, lemon"})
	require.NoError(t, err)

	edited, err := svc.Save(ctx, dto.RecipeSaveRequest{RecipeID: created.ID, Name: "Sour", Ingredients: "whisky, lemon, egg white"})
	require.NoError(t, err)
	assert.Equal(t, "whisky, lemon, egg white", edited.Ingredients)
	assert.Equal(t, "classic", edited.RecipeType)
}

func TestRecipeEditMissingIsNoChange(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewRecipeService(repo, nil)

	_, err := svc.Save(context.Background(), dto.RecipeSaveRequest{RecipeID: 404, Name: "Ghost"})
	assert.ErrorIs(t, err, ErrNoChange)
}

func TestRecipeDeleteRemovesPhoto(t *testing.T) {
	repo, _ := newTestRepo(t)
	store := newMemStorage()
	svc := NewRecipeService(repo, store)
	ctx := context.Background()

	created, err := svc.Save(ctx, dto.RecipeSaveRequest{Name: "Mojito"})
	require.NoError(t, err)

	withPhoto, err := svc.SetPhoto(ctx, created.ID, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(pngBytes))
	require.NoError(t, err)
	require.True(t, store.has(withPhoto.PhotoPath))

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.False(t, store.has(withPhoto.PhotoPath))

	_, err = repo.GetRecipe(ctx, created.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNoChange)
}

func TestRecipePhotoLifecycle(t *testing.T) {
	repo, _ := newTestRepo(t)
	store := newMemStorage()
	svc := NewRecipeService(repo, store)
	ctx := context.Background()

	created, err := svc.Save(ctx, dto.RecipeSaveRequest{Name: "Spritz"})
	require.NoError(t, err)

	_, err = svc.SetPhoto(ctx, created.ID, "not an image")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SetPhoto(ctx, 999, base64.StdEncoding.EncodeToString(pngBytes))
	assert.True(t, IsNotFound(err))

	first, err := svc.SetPhoto(ctx, created.ID, base64.StdEncoding.EncodeToString(pngBytes))
	require.NoError(t, err)
	assert.Contains(t, first.PhotoPath, "recipes/recipe-")
	assert.Contains(t, first.PhotoPath, ".png")

	other := append(append([]byte{}, pngBytes...), 0x01)
	second, err := svc.SetPhoto(ctx, created.ID, base64.StdEncoding.EncodeToString(other))
	require.NoError(t, err)
	assert.NotEqual(t, first.PhotoPath, second.PhotoPath)
	assert.False(t, store.has(first.PhotoPath), "previous photo is dropped")

	require.NoError(t, svc.RemovePhoto(ctx, created.ID))
	assert.False(t, store.has(second.PhotoPath))
	assert.ErrorIs(t, svc.RemovePhoto(ctx, created.ID), ErrNoChange)

	loaded, err := repo.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.PhotoPath)
}

func TestPhotoBaseName(t *testing.T) {
	// md5("Hello") = 8b1a9953c4611296a827abf8c47804d7
	assert.Equal(t, "recipe-7-8b1a9953c461", photoBaseName(7, []byte("Hello")))
}
