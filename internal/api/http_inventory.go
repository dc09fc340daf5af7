package api

import (
	"net/http"
	"strings"

	"homebar/internal/entity"
	"homebar/internal/entity/converter"
	"homebar/internal/entity/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.openly.dev/pointy"
)

func (h *HTTPHandler) ListInventory(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	items, err := h.repo.ListInventoryItems(ctx)
	if err != nil {
		logrus.WithError(err).Error("list_inventory_failed")
		InternalError(c, "failed to load inventory")
		return
	}
	c.JSON(http.StatusOK, converter.InventoryItemsToDTOs(items))
}

func (h *HTTPHandler) GetInventoryItem(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	item, err := h.repo.GetInventoryItem(ctx, id)
	if err != nil {
		respondReadError(c, err, ErrCodeInventoryNotFound, "load_inventory_failed", logrus.Fields{"item_id": id})
		return
	}
	c.JSON(http.StatusOK, converter.InventoryItemToDTO(item))
}

// SaveInventoryItem creates an item, or overwrites every field of an
// existing one when item_id is set. An empty name saves nothing.
func (h *HTTPHandler) SaveInventoryItem(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}

	var req dto.InventorySaveRequest
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		NoChange(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if req.ItemID == 0 {
		item := entity.DbInventoryItem{
			Name:     name,
			Category: entity.NormalizeCategory(req.Category),
			Quantity: strings.TrimSpace(req.Quantity),
		}
		if err := h.repo.CreateInventoryItem(ctx, &item); err != nil {
			respondWriteError(c, err, "create_inventory_failed", logrus.Fields{"name": name})
			return
		}
		logrus.WithFields(logrus.Fields{"item_id": item.ID, "category": item.Category}).Info("inventory_created")
		c.JSON(http.StatusCreated, converter.InventoryItemToDTO(&item))
		return
	}

	updates := entity.InventoryUpdates{
		Name:     pointy.String(name),
		Category: pointy.String(req.Category),
		Quantity: pointy.String(strings.TrimSpace(req.Quantity)),
	}
	h.applyInventoryUpdates(c, req.ItemID, updates)
}

// PatchInventoryItem updates only the submitted fields.
func (h *HTTPHandler) PatchInventoryItem(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.InventoryPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	updates := entity.InventoryUpdates{Category: req.Category}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			NoChange(c)
			return
		}
		updates.Name = pointy.String(name)
	}
	if req.Quantity != nil {
		updates.Quantity = pointy.String(strings.TrimSpace(*req.Quantity))
	}
	if updates.IsEmpty() {
		NoChange(c)
		return
	}
	h.applyInventoryUpdates(c, id, updates)
}

func (h *HTTPHandler) applyInventoryUpdates(c *gin.Context, id uint, updates entity.InventoryUpdates) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.UpdateInventoryItem(ctx, id, updates); err != nil {
		respondWriteError(c, err, "update_inventory_failed", logrus.Fields{"item_id": id})
		return
	}
	item, err := h.repo.GetInventoryItem(ctx, id)
	if err != nil {
		respondReadError(c, err, ErrCodeInventoryNotFound, "load_inventory_failed", logrus.Fields{"item_id": id})
		return
	}
	logrus.WithField("item_id", id).Info("inventory_updated")
	c.JSON(http.StatusOK, converter.InventoryItemToDTO(item))
}

func (h *HTTPHandler) DeleteInventoryItem(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.DeleteInventoryItem(ctx, id); err != nil {
		respondWriteError(c, err, "delete_inventory_failed", logrus.Fields{"item_id": id})
		return
	}
	logrus.WithField("item_id", id).Info("inventory_deleted")
	c.Status(http.StatusNoContent)
}
