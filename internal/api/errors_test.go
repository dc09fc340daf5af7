package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"homebar/internal/config"
	"homebar/internal/entity/dto"
	"homebar/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMissingFieldCarriesFieldName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	MissingField(c, "request")

	requireStatus(t, w, http.StatusBadRequest)
	resp := decode[APIError](t, w)
	assert.Equal(t, ErrCodeMissingField, resp.Code)
	assert.Equal(t, map[string]any{"field": "request"}, resp.Details)
}

func TestRespondWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "skipped form", err: service.ErrNoChange, wantStatus: http.StatusNoContent},
		{name: "missing row", err: fmt.Errorf("delete consumption: %w", gorm.ErrRecordNotFound), wantStatus: http.StatusNoContent},
		{name: "bad photo", err: fmt.Errorf("%w: not an image", service.ErrInvalidInput), wantStatus: http.StatusBadRequest, wantCode: ErrCodeInvalidRequest},
		{name: "database down", err: errors.New("disk full"), wantStatus: http.StatusInternalServerError, wantCode: ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondWriteError(c, tt.err, "save_failed", nil)
			c.Writer.WriteHeaderNow()

			requireStatus(t, w, tt.wantStatus)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode[APIError](t, w).Code)
			}
		})
	}
}

func TestRespondReadError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondReadError(c, fmt.Errorf("load event: %w", gorm.ErrRecordNotFound), ErrCodeEventNotFound, "load_event_failed", nil)
	requireStatus(t, w, http.StatusNotFound)
	assert.Equal(t, ErrCodeEventNotFound, decode[APIError](t, w).Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	respondReadError(c, errors.New("connection refused"), ErrCodeEventNotFound, "load_event_failed", nil)
	requireStatus(t, w, http.StatusInternalServerError)
	assert.Equal(t, ErrCodeInternalError, decode[APIError](t, w).Code)
}

func TestErrorPathsOverHTTP(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
		wantCode   string
	}{
		{name: "missing event", method: http.MethodGet, path: "/api/events/999", wantStatus: http.StatusNotFound, wantCode: ErrCodeEventNotFound},
		{name: "missing event stats", method: http.MethodGet, path: "/api/events/999/stats", wantStatus: http.StatusNotFound, wantCode: ErrCodeEventNotFound},
		{name: "missing recipe", method: http.MethodGet, path: "/api/recipes/999", wantStatus: http.StatusNotFound, wantCode: ErrCodeRecipeNotFound},
		{name: "missing inventory item", method: http.MethodGet, path: "/api/inventory/999", wantStatus: http.StatusNotFound, wantCode: ErrCodeInventoryNotFound},
		{name: "non numeric id", method: http.MethodGet, path: "/api/events/abc", wantStatus: http.StatusBadRequest, wantCode: ErrCodeInvalidRequest},
		{name: "participant without name", method: http.MethodPost, path: "/api/participants", body: dto.ParticipantRequest{Name: "  "}, wantStatus: http.StatusNoContent},
		{name: "menu link without recipe", method: http.MethodPost, path: "/api/events/1/recipes", body: dto.EventRecipeRequest{}, wantStatus: http.StatusNoContent},
		{name: "delete missing consumption", method: http.MethodDelete, path: "/api/consumptions/999", wantStatus: http.StatusNoContent},
		{name: "unlink missing menu row", method: http.MethodDelete, path: "/api/events/999/recipes/999", wantStatus: http.StatusNoContent},
		{name: "blank suggestion", method: http.MethodPost, path: "/api/suggestions", body: dto.SuggestionRequest{}, wantStatus: http.StatusBadRequest, wantCode: ErrCodeMissingField},
		{name: "login while auth is off", method: http.MethodPost, path: "/api/auth/login", body: dto.AuthLoginRequest{Password: "x"}, wantStatus: http.StatusBadRequest, wantCode: ErrCodeAuthDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(t, tt.method, tt.path, tt.body, "")
			requireStatus(t, w, tt.wantStatus)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode[APIError](t, w).Code)
			} else {
				assert.Empty(t, w.Body.String())
			}
		})
	}
}

func TestOwnerErrorPaths(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) {
		cfg.OwnerPassword = "letmein"
	})

	w := srv.do(t, http.MethodPost, "/api/events", dto.EventRequest{Name: "Spring Party"}, "")
	requireStatus(t, w, http.StatusUnauthorized)
	assert.Equal(t, ErrCodeUnauthorized, decode[APIError](t, w).Code)

	w = srv.do(t, http.MethodPost, "/api/auth/login", dto.AuthLoginRequest{}, "")
	requireStatus(t, w, http.StatusBadRequest)
	resp := decode[APIError](t, w)
	assert.Equal(t, ErrCodeMissingField, resp.Code)
	require.NotNil(t, resp.Details)

	w = srv.do(t, http.MethodPost, "/api/auth/login", dto.AuthLoginRequest{Password: "nope"}, "")
	requireStatus(t, w, http.StatusUnauthorized)
	assert.Equal(t, ErrCodeInvalidCredentials, decode[APIError](t, w).Code)
}
