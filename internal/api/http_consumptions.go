package api

import (
	"net/http"

	"homebar/internal/entity"
	"homebar/internal/entity/converter"
	"homebar/internal/entity/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ListConsumptions returns a page of the drink log, newest first, filtered
// by event_id and participant_id.
func (h *HTTPHandler) ListConsumptions(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}

	var query entity.ConsumptionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		InvalidPayload(c)
		return
	}
	query.Normalize()

	ctx, cancel := requestContext(c)
	defer cancel()

	consumptions, meta, err := h.repo.ListConsumptions(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("list_consumptions_failed")
		InternalError(c, "failed to load consumptions")
		return
	}
	c.JSON(http.StatusOK, dto.ConsumptionListResponse{
		Consumptions: converter.ConsumptionsToDTOs(consumptions),
		Meta:         meta,
	})
}

// LogConsumption records a drink. A missing participant or drink name, or an
// unknown participant, records nothing.
func (h *HTTPHandler) LogConsumption(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}

	var req dto.ConsumptionRequest
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	consumption, err := h.consumptionService.LogDrink(ctx, req)
	if err != nil {
		respondWriteError(c, err, "log_consumption_failed", logrus.Fields{"participant_id": req.ParticipantID})
		return
	}
	c.JSON(http.StatusCreated, converter.ConsumptionToDTO(consumption))
}

func (h *HTTPHandler) DeleteConsumption(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.DeleteConsumption(ctx, id); err != nil {
		respondWriteError(c, err, "delete_consumption_failed", logrus.Fields{"consumption_id": id})
		return
	}
	logrus.WithField("consumption_id", id).Info("consumption_deleted")
	c.Status(http.StatusNoContent)
}
