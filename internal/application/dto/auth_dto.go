package dto

import (
	"net/http"
	"strings"
	"time"

	"github.com/hapkiduki/shipping-console/internal/domain/entity"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Bind implements render.Binder.
func (req *LoginRequest) Bind(_ *http.Request) error {
	req.Username = strings.TrimSpace(req.Username)
	return nil
}

// RecoverPasswordRequest is the body of POST /auth/recover-password.
type RecoverPasswordRequest struct {
	Email string `json:"email"`
}

// Bind implements render.Binder.
func (req *RecoverPasswordRequest) Bind(_ *http.Request) error {
	req.Email = strings.TrimSpace(req.Email)
	return nil
}

// LoginResponse carries the bearer token and the operator profile.
type LoginResponse struct {
	Token     string      `json:"token"`
	TokenType string      `json:"token_type"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      entity.User `json:"user"`
}

// ToLoginResponse converts a session.
func ToLoginResponse(s *entity.Session) LoginResponse {
	return LoginResponse{
		Token:     s.Token,
		TokenType: "Bearer",
		ExpiresAt: s.ExpiresAt,
		User:      s.User,
	}
}

// MessageResponse is a payload carrying only a message.
type MessageResponse struct {
	Message string `json:"message"`
}
