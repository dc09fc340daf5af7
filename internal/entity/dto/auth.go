package dto

import "time"

// AuthStatusResponse reports whether owner auth is enabled and whether the
// caller presented a valid token.
type AuthStatusResponse struct {
	Enabled       bool `json:"enabled"`
	Authenticated bool `json:"authenticated"`
}

// AuthLoginRequest is the login request payload.
type AuthLoginRequest struct {
	Password string `json:"password" form:"password" binding:"required"`
}

// AuthResponse is returned after a successful login.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
