package api

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strings"

	"homebar/internal/entity/converter"
	"homebar/internal/entity/dto"
	"homebar/internal/service"
	"homebar/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (h *HTTPHandler) ListRecipes(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	recipes, err := h.repo.ListRecipes(ctx)
	if err != nil {
		logrus.WithError(err).Error("list_recipes_failed")
		InternalError(c, "failed to load recipes")
		return
	}
	c.JSON(http.StatusOK, converter.RecipesToDTOs(recipes, h.photoURL))
}

func (h *HTTPHandler) GetRecipe(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	recipe, err := h.repo.GetRecipe(ctx, id)
	if err != nil {
		respondReadError(c, err, ErrCodeRecipeNotFound, "load_recipe_failed", logrus.Fields{"recipe_id": id})
		return
	}
	c.JSON(http.StatusOK, converter.RecipeToDTO(recipe, h.photoURL))
}

// SaveRecipe creates a recipe, or edits one when recipe_id is set. Accepts
// JSON with an items array or a form with parallel ingredient_* fields.
func (h *HTTPHandler) SaveRecipe(c *gin.Context) {
	var req dto.RecipeSaveRequest
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}
	h.saveRecipe(c, req)
}

// EditRecipe edits the recipe addressed by the path.
func (h *HTTPHandler) EditRecipe(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RecipeSaveRequest
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}
	req.RecipeID = id
	h.saveRecipe(c, req)
}

func (h *HTTPHandler) saveRecipe(c *gin.Context, req dto.RecipeSaveRequest) {
	if !h.requireRepo(c) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	recipe, err := h.recipeService.Save(ctx, req)
	if err != nil {
		respondWriteError(c, err, "save_recipe_failed", logrus.Fields{"recipe_id": req.RecipeID})
		return
	}

	status := http.StatusOK
	if req.RecipeID == 0 {
		status = http.StatusCreated
	}
	c.JSON(status, converter.RecipeToDTO(recipe, h.photoURL))
}

// DeleteRecipe removes the recipe, its ingredient rows, its menu entries and
// its photo. Consumptions stay and lose their recipe link.
func (h *HTTPHandler) DeleteRecipe(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.recipeService.Delete(ctx, id); err != nil {
		respondWriteError(c, err, "delete_recipe_failed", logrus.Fields{"recipe_id": id})
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadRecipePhoto stores a photo sent as multipart field "photo" or as a
// JSON data URL in "image".
func (h *HTTPHandler) UploadRecipePhoto(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}
	if h.storage == nil {
		ServiceUnavailable(c, "photo storage not configured")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	payload, ok := readPhotoPayload(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	recipe, err := h.recipeService.SetPhoto(ctx, id, payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			BadRequest(c, ErrCodeInvalidPhoto, err.Error())
		case service.IsNotFound(err):
			NotFound(c, ErrCodeRecipeNotFound, "recipe not found")
		default:
			logrus.WithError(err).WithField("recipe_id", id).Error("save_recipe_photo_failed")
			InternalError(c, "failed to save photo")
		}
		return
	}
	c.JSON(http.StatusOK, converter.RecipeToDTO(recipe, h.photoURL))
}

// readPhotoPayload returns the photo as base64 text, writing a 400 on bad
// input.
func readPhotoPayload(c *gin.Context) (string, bool) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		header, err := c.FormFile("photo")
		if err != nil {
			MissingField(c, "photo")
			return "", false
		}
		if header.Size > utils.MaxPhotoBytes {
			BadRequest(c, ErrCodePhotoTooLarge, "photo is too large")
			return "", false
		}
		file, err := header.Open()
		if err != nil {
			BadRequest(c, ErrCodeInvalidPhoto, "failed to read photo")
			return "", false
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, utils.MaxPhotoBytes+1))
		if err != nil {
			BadRequest(c, ErrCodeInvalidPhoto, "failed to read photo")
			return "", false
		}
		if len(data) > utils.MaxPhotoBytes {
			BadRequest(c, ErrCodePhotoTooLarge, "photo is too large")
			return "", false
		}
		return base64.StdEncoding.EncodeToString(data), true
	}

	var req dto.RecipePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return "", false
	}
	if strings.TrimSpace(req.Image) == "" {
		MissingField(c, "image")
		return "", false
	}
	return req.Image, true
}

// DeleteRecipePhoto clears the recipe photo.
func (h *HTTPHandler) DeleteRecipePhoto(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.recipeService.RemovePhoto(ctx, id); err != nil {
		respondWriteError(c, err, "delete_recipe_photo_failed", logrus.Fields{"recipe_id": id})
		return
	}
	logrus.WithField("recipe_id", id).Info("recipe_photo_removed")
	c.Status(http.StatusNoContent)
}
