package api

import (
	"net/http"
	"strconv"
	"strings"

	"homebar/internal/entity"
	"homebar/internal/entity/converter"
	"homebar/internal/entity/db"
	"homebar/internal/entity/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.openly.dev/pointy"
)

// ListBartenders returns the active roster, or everyone when all=true.
func (h *HTTPHandler) ListBartenders(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}

	includeInactive, _ := strconv.ParseBool(c.DefaultQuery("all", "false"))

	ctx, cancel := requestContext(c)
	defer cancel()

	bartenders, err := h.repo.ListBartenders(ctx, includeInactive)
	if err != nil {
		logrus.WithError(err).Error("list_bartenders_failed")
		InternalError(c, "failed to load bartenders")
		return
	}
	c.JSON(http.StatusOK, converter.BartendersToDTOs(bartenders))
}

// CreateBartender adds a roster entry. Title defaults to "Bartender" and new
// entries are active unless is_active=false is sent.
func (h *HTTPHandler) CreateBartender(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}

	var req dto.BartenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		NoChange(c)
		return
	}

	bartender := entity.DbBartender{
		Name:     strings.TrimSpace(*req.Name),
		Title:    db.DefaultBartenderTitle,
		IsActive: pointy.BoolValue(req.IsActive, true),
		Order:    pointy.IntValue(req.Order, 0),
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		bartender.Title = strings.TrimSpace(*req.Title)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.CreateBartender(ctx, &bartender); err != nil {
		respondWriteError(c, err, "create_bartender_failed", logrus.Fields{"name": bartender.Name})
		return
	}
	logrus.WithField("bartender_id", bartender.ID).Info("bartender_created")
	c.JSON(http.StatusCreated, converter.BartenderToDTO(&bartender))
}

// UpdateBartender applies the submitted fields.
func (h *HTTPHandler) UpdateBartender(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.BartenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	updates := entity.BartenderUpdates{IsActive: req.IsActive, Order: req.Order}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			NoChange(c)
			return
		}
		updates.Name = pointy.String(name)
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			title = db.DefaultBartenderTitle
		}
		updates.Title = pointy.String(title)
	}
	if updates.IsEmpty() {
		NoChange(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.UpdateBartender(ctx, id, updates); err != nil {
		respondWriteError(c, err, "update_bartender_failed", logrus.Fields{"bartender_id": id})
		return
	}
	logrus.WithField("bartender_id", id).Info("bartender_updated")
	c.Status(http.StatusNoContent)
}

func (h *HTTPHandler) DeleteBartender(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.DeleteBartender(ctx, id); err != nil {
		respondWriteError(c, err, "delete_bartender_failed", logrus.Fields{"bartender_id": id})
		return
	}
	logrus.WithField("bartender_id", id).Info("bartender_deleted")
	c.Status(http.StatusNoContent)
}
