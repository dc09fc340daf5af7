package auth

import (
	"errors"
	"strings"
	"time"

	"homebar/internal/config"
)

// ErrInvalidCredentials is returned for a wrong owner password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Owner guards mutations behind a single owner password. A zero-value hash
// means the guard is disabled and every request is treated as the owner.
type Owner struct {
	manager      *Manager
	passwordHash string
}

// NewOwner builds the guard from configuration. A plain OWNER_PASSWORD is
// hashed once at startup; OWNER_PASSWORD_HASH wins when both are set.
func NewOwner(cfg config.Config) (*Owner, error) {
	manager, err := NewManager(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTExpirationMinutes)*time.Minute)
	if err != nil {
		return nil, err
	}

	hash := strings.TrimSpace(cfg.OwnerPasswordHash)
	if hash == "" && strings.TrimSpace(cfg.OwnerPassword) != "" {
		hash, err = HashPassword(cfg.OwnerPassword)
		if err != nil {
			return nil, err
		}
	}
	return &Owner{manager: manager, passwordHash: hash}, nil
}

// Enabled reports whether a password is required.
func (o *Owner) Enabled() bool {
	return o != nil && o.passwordHash != ""
}

// Login checks the password and issues an owner token.
func (o *Owner) Login(password string) (string, time.Time, error) {
	if !o.Enabled() {
		return "", time.Time{}, errors.New("owner login is disabled")
	}
	if err := VerifyPassword(o.passwordHash, password); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}
	return o.manager.GenerateToken(RoleOwner, RoleOwner)
}

// Authenticate validates an owner token.
func (o *Owner) Authenticate(token string) (*Claims, error) {
	if o == nil {
		return nil, errors.New("owner guard is nil")
	}
	claims, err := o.manager.ParseToken(strings.TrimSpace(token))
	if err != nil {
		return nil, err
	}
	if claims.Role != RoleOwner {
		return nil, errors.New("token is not an owner token")
	}
	return claims, nil
}
