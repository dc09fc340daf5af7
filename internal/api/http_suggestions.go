package api

import (
	"net/http"
	"strings"

	"homebar/internal/entity"
	"homebar/internal/entity/converter"
	"homebar/internal/entity/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Suggest answers a free-text cocktail request. Gateway failures still
// answer 200 with the error inside the response.
func (h *HTTPHandler) Suggest(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}

	var req dto.SuggestionRequest
	if err := c.ShouldBind(&req); err != nil {
		InvalidPayload(c)
		return
	}
	request := strings.TrimSpace(req.Request)
	if request == "" {
		MissingField(c, "request")
		return
	}

	resp, err := h.suggestionService.Suggest(c.Request.Context(), request)
	if err != nil {
		logrus.WithError(err).Error("suggestion_context_failed")
		InternalError(c, "failed to prepare suggestion")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Omakase picks a cocktail for the mood and the weather. Both are optional.
func (h *HTTPHandler) Omakase(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}

	var req dto.OmakaseRequest
	if err := c.ShouldBind(&req); err != nil && c.Request.ContentLength > 0 {
		InvalidPayload(c)
		return
	}

	resp, err := h.suggestionService.Omakase(c.Request.Context(), strings.TrimSpace(req.Mood), strings.TrimSpace(req.Weather))
	if err != nil {
		logrus.WithError(err).Error("omakase_context_failed")
		InternalError(c, "failed to prepare suggestion")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SuggestionHistory lists earlier gateway calls, newest first.
func (h *HTTPHandler) SuggestionHistory(c *gin.Context) {
	if !h.requireRepo(c) {
		return
	}

	var query entity.SuggestionRecordQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		InvalidPayload(c)
		return
	}
	query.Normalize()

	ctx, cancel := requestContext(c)
	defer cancel()

	records, meta, err := h.repo.ListSuggestionRecords(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("list_suggestions_failed")
		InternalError(c, "failed to load suggestion history")
		return
	}
	c.JSON(http.StatusOK, dto.SuggestionHistoryResponse{
		Records: converter.SuggestionRecordsToDTOs(records),
		Meta:    meta,
	})
}
