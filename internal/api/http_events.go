package api

import (
	"net/http"
	"strings"
	"time"

	"homebar/internal/entity"
	"homebar/internal/entity/converter"
	"homebar/internal/entity/db"
	"homebar/internal/entity/dto"
	"homebar/internal/llm"
	"homebar/internal/service"
	"homebar/internal/stats"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.openly.dev/pointy"
	"gorm.io/datatypes"
)

type eventStatsResponse struct {
	Event  dto.Event     `json:"event"`
	Stats  stats.Summary `json:"stats"`
	Digest string        `json:"digest"`
}

type eventSummaryResponse struct {
	eventStatsResponse
	Suggestion llm.Response `json:"suggestion"`
}

// parseEventDate reads a YYYY-MM-DD date. Empty or malformed input means
// today.
func parseEventDate(raw string) time.Time {
	if parsed, err := time.ParseInLocation(dto.DateLayout, strings.TrimSpace(raw), time.Local); err == nil {
		return parsed
	}
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func (h *HTTPHandler) ListEvents(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	events, err := h.repo.ListEvents(ctx)
	if err != nil {
		logrus.WithError(err).Error("list_events_failed")
		InternalError(c, "failed to load events")
		return
	}
	c.JSON(http.StatusOK, converter.EventsToDTOs(events))
}

// CreateEvent adds an event. A blank name falls back to the default name.
func (h *HTTPHandler) CreateEvent(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}

	var req dto.EventRequest
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = db.DefaultEventName
	}
	event := entity.DbEvent{
		Name:        name,
		Date:        datatypes.Date(parseEventDate(req.Date)),
		Description: strings.TrimSpace(req.Description),
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.CreateEvent(ctx, &event); err != nil {
		respondWriteError(c, err, "create_event_failed", logrus.Fields{"name": name})
		return
	}
	logrus.WithFields(logrus.Fields{"event_id": event.ID, "date": time.Time(event.Date).Format(dto.DateLayout)}).Info("event_created")
	c.JSON(http.StatusCreated, converter.EventToDTO(&event))
}

func (h *HTTPHandler) GetEvent(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	event, err := h.repo.GetEvent(ctx, id)
	if err != nil {
		respondReadError(c, err, ErrCodeEventNotFound, "load_event_failed", logrus.Fields{"event_id": id})
		return
	}
	c.JSON(http.StatusOK, converter.EventToDTO(event))
}

// UpdateEvent applies the submitted fields. A malformed date is rejected
// rather than silently reset to today.
func (h *HTTPHandler) UpdateEvent(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.EventPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	var updates entity.EventUpdates
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			NoChange(c)
			return
		}
		updates.Name = pointy.String(name)
	}
	if req.Date != nil {
		date, err := time.ParseInLocation(dto.DateLayout, strings.TrimSpace(*req.Date), time.Local)
		if err != nil {
			BadRequest(c, ErrCodeInvalidRequest, "date must be YYYY-MM-DD")
			return
		}
		updates.Date = &date
	}
	if req.Description != nil {
		updates.Description = pointy.String(strings.TrimSpace(*req.Description))
	}
	if updates.IsEmpty() {
		NoChange(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.UpdateEvent(ctx, id, updates); err != nil {
		respondWriteError(c, err, "update_event_failed", logrus.Fields{"event_id": id})
		return
	}
	event, err := h.repo.GetEvent(ctx, id)
	if err != nil {
		respondReadError(c, err, ErrCodeEventNotFound, "load_event_failed", logrus.Fields{"event_id": id})
		return
	}
	logrus.WithField("event_id", id).Info("event_updated")
	c.JSON(http.StatusOK, converter.EventToDTO(event))
}

// DeleteEvent removes the event and its menu. Consumptions stay, unlinked.
func (h *HTTPHandler) DeleteEvent(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.DeleteEvent(ctx, id); err != nil {
		respondWriteError(c, err, "delete_event_failed", logrus.Fields{"event_id": id})
		return
	}
	logrus.WithField("event_id", id).Info("event_deleted")
	c.Status(http.StatusNoContent)
}

// AddEventRecipe puts a recipe on the menu. A missing event or recipe is a
// no-op.
func (h *HTTPHandler) AddEventRecipe(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.EventRecipeRequest
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if req.RecipeID == 0 {
		NoChange(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.AddRecipeToEvent(ctx, id, req.RecipeID); err != nil {
		respondWriteError(c, err, "add_event_recipe_failed", logrus.Fields{"event_id": id, "recipe_id": req.RecipeID})
		return
	}
	event, err := h.repo.GetEvent(ctx, id)
	if err != nil {
		respondReadError(c, err, ErrCodeEventNotFound, "load_event_failed", logrus.Fields{"event_id": id})
		return
	}
	logrus.WithFields(logrus.Fields{"event_id": id, "recipe_id": req.RecipeID}).Info("event_recipe_added")
	c.JSON(http.StatusOK, converter.EventToDTO(event))
}

// RemoveEventRecipe drops a recipe from the menu. A missing link is a no-op.
func (h *HTTPHandler) RemoveEventRecipe(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	recipeID, ok := parseIDParam(c, "recipe_id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.RemoveRecipeFromEvent(ctx, id, recipeID); err != nil {
		respondWriteError(c, err, "remove_event_recipe_failed", logrus.Fields{"event_id": id, "recipe_id": recipeID})
		return
	}
	logrus.WithFields(logrus.Fields{"event_id": id, "recipe_id": recipeID}).Info("event_recipe_removed")
	c.Status(http.StatusNoContent)
}

// EventStats returns the aggregated drinking statistics of an event.
func (h *HTTPHandler) EventStats(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	result, err := h.statsService.EventStats(ctx, id)
	if err != nil {
		respondReadError(c, err, ErrCodeEventNotFound, "event_stats_failed", logrus.Fields{"event_id": id})
		return
	}
	c.JSON(http.StatusOK, makeEventStats(result))
}

// EventSummary writes a narrative recap of the event through the gateway.
// Gateway failures still answer 200 with the error inside the suggestion.
func (h *HTTPHandler) EventSummary(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, result, err := h.suggestionService.Summarize(c.Request.Context(), id)
	if err != nil {
		respondReadError(c, err, ErrCodeEventNotFound, "event_summary_failed", logrus.Fields{"event_id": id})
		return
	}
	c.JSON(http.StatusOK, eventSummaryResponse{
		eventStatsResponse: makeEventStats(result),
		Suggestion:         resp,
	})
}

// EventRecommendation asks the gateway to pick a drink from the event menu.
func (h *HTTPHandler) EventRecommendation(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RecommendationRequest
	if err := c.ShouldBind(&req); err != nil && c.Request.ContentLength > 0 {
		InvalidPayload(c)
		return
	}

	resp, err := h.suggestionService.Recommend(c.Request.Context(), id, strings.TrimSpace(req.Request))
	if err != nil {
		respondReadError(c, err, ErrCodeEventNotFound, "event_recommendation_failed", logrus.Fields{"event_id": id})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func makeEventStats(result *service.EventStats) eventStatsResponse {
	return eventStatsResponse{
		Event:  converter.EventToDTO(result.Event),
		Stats:  result.Summary,
		Digest: result.Digest(),
	}
}
