package api

import (
	"net/http"

	"homebar/internal/entity/converter"
	"homebar/internal/entity/db"
	"homebar/internal/entity/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Overview returns everything the landing page shows in one payload.
func (h *HTTPHandler) Overview(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	participants, err := h.repo.ListParticipants(ctx)
	if err != nil {
		logrus.WithError(err).Error("overview_participants_failed")
		InternalError(c, "failed to load participants")
		return
	}
	items, err := h.repo.ListInventoryItems(ctx)
	if err != nil {
		logrus.WithError(err).Error("overview_inventory_failed")
		InternalError(c, "failed to load inventory")
		return
	}
	recipes, err := h.repo.ListRecipes(ctx)
	if err != nil {
		logrus.WithError(err).Error("overview_recipes_failed")
		InternalError(c, "failed to load recipes")
		return
	}
	events, err := h.repo.ListEvents(ctx)
	if err != nil {
		logrus.WithError(err).Error("overview_events_failed")
		InternalError(c, "failed to load events")
		return
	}
	bartenders, err := h.repo.ListBartenders(ctx, false)
	if err != nil {
		logrus.WithError(err).Error("overview_bartenders_failed")
		InternalError(c, "failed to load bartenders")
		return
	}

	c.JSON(http.StatusOK, dto.Overview{
		Participants: converter.ParticipantsToDTOs(participants),
		Inventory:    converter.InventoryItemsToDTOs(items),
		Recipes:      converter.RecipesToDTOs(recipes, h.photoURL),
		Events:       converter.EventsToDTOs(events),
		Bartenders:   converter.BartendersToDTOs(bartenders),
		Categories:   db.InventoryCategories,
	})
}
