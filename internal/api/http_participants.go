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

func (h *HTTPHandler) ListParticipants(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	participants, err := h.repo.ListParticipants(ctx)
	if err != nil {
		logrus.WithError(err).Error("list_participants_failed")
		InternalError(c, "failed to load participants")
		return
	}
	c.JSON(http.StatusOK, converter.ParticipantsToDTOs(participants))
}

// CreateParticipant adds a participant. An empty name creates nothing.
func (h *HTTPHandler) CreateParticipant(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}

	var req dto.ParticipantRequest
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

	participant := entity.DbParticipant{Name: name}
	if err := h.repo.CreateParticipant(ctx, &participant); err != nil {
		respondWriteError(c, err, "create_participant_failed", logrus.Fields{"name": name})
		return
	}
	logrus.WithField("participant_id", participant.ID).Info("participant_created")
	c.JSON(http.StatusCreated, converter.ParticipantToDTO(&participant))
}

// UpdateParticipant renames a participant. Earlier consumptions keep
// pointing at the same row, so statistics pick up the new name.
func (h *HTTPHandler) UpdateParticipant(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ParticipantRequest
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

	if err := h.repo.UpdateParticipant(ctx, id, entity.ParticipantUpdates{Name: pointy.String(name)}); err != nil {
		respondWriteError(c, err, "update_participant_failed", logrus.Fields{"participant_id": id})
		return
	}
	participant, err := h.repo.GetParticipant(ctx, id)
	if err != nil {
		respondReadError(c, err, ErrCodeParticipantNotFound, "load_participant_failed", logrus.Fields{"participant_id": id})
		return
	}
	c.JSON(http.StatusOK, converter.ParticipantToDTO(participant))
}

// DeleteParticipant removes a participant and their consumption log.
func (h *HTTPHandler) DeleteParticipant(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.DeleteParticipant(ctx, id); err != nil {
		respondWriteError(c, err, "delete_participant_failed", logrus.Fields{"participant_id": id})
		return
	}
	logrus.WithField("participant_id", id).Info("participant_deleted")
	c.Status(http.StatusNoContent)
}
