package api

import (
	"errors"
	"net/http"
	"strings"

	"homebar/internal/auth"
	"homebar/internal/entity/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Login exchanges the owner password for a token.
func (h *HTTPHandler) Login(c *gin.Context) {
	if !h.owner.Enabled() {
		BadRequest(c, ErrCodeAuthDisabled, "owner login is disabled")
		return
	}

	var req dto.AuthLoginRequest
	if err := c.ShouldBind(&req); err != nil {
		MissingField(c, "password")
		return
	}

	password := strings.TrimSpace(req.Password)
	if password == "" {
		MissingField(c, "password")
		return
	}

	token, expiresAt, err := h.owner.Login(password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			logrus.WithField("client_ip", c.ClientIP()).Warn("owner_login_failed")
			ErrorResponse(c, http.StatusUnauthorized, ErrCodeInvalidCredentials, "invalid password")
			return
		}
		logrus.WithError(err).Error("owner_token_failed")
		InternalError(c, "failed to create session")
		return
	}

	logrus.WithField("client_ip", c.ClientIP()).Info("owner_logged_in")
	c.JSON(http.StatusOK, dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// AuthStatus reports whether owner auth is on and whether the caller's token
// is valid. It never rejects the request.
func (h *HTTPHandler) AuthStatus(c *gin.Context) {
	if !h.owner.Enabled() {
		c.JSON(http.StatusOK, dto.AuthStatusResponse{Enabled: false, Authenticated: true})
		return
	}

	status := dto.AuthStatusResponse{Enabled: true}
	if token, problem := bearerToken(c); problem == "" {
		if _, err := h.owner.Authenticate(token); err == nil {
			status.Authenticated = true
		}
	}
	c.JSON(http.StatusOK, status)
}
