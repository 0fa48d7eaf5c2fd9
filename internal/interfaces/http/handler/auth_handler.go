package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hapkiduki/shipping-console/internal/application/dto"
	"github.com/hapkiduki/shipping-console/internal/application/port"
	"github.com/hapkiduki/shipping-console/internal/application/service"
	"github.com/hapkiduki/shipping-console/internal/interfaces/http/middleware"
	"github.com/hapkiduki/shipping-console/pkg/validation"
)

// AuthHandler serves the login, logout and session endpoints.
type AuthHandler struct {
	auth      *service.AuthService
	validator *validation.Validator
	logger    port.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth *service.AuthService, validator *validation.Validator, logger port.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, validator: validator, logger: logger}
}

// PublicRoutes mounts the endpoints that need no session.
func (h *AuthHandler) PublicRoutes(r chi.Router) {
	r.Post("/login", h.Login)
	r.Post("/recover-password", h.RecoverPassword)
}

// ProtectedRoutes mounts the endpoints that need a session.
func (h *AuthHandler) ProtectedRoutes(r chi.Router) {
	r.Post("/logout", h.Logout)
	r.Get("/validate", h.Validate)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !bind(w, r, h.validator, &req) {
		return
	}

	session, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusOK, dto.ToLoginResponse(session))
}

// RecoverPassword handles POST /auth/recover-password.
func (h *AuthHandler) RecoverPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.RecoverPasswordRequest
	if !bind(w, r, h.validator, &req) {
		return
	}

	if err := h.auth.RecoverPassword(r.Context(), req.Email); err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusOK, dto.MessageResponse{
		Message: "If the address is registered, recovery instructions have been sent",
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context(), owner(r)); err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	respond(w, r, http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// Validate handles GET /auth/validate and returns the operator profile.
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handleError(w, r, h.logger, service.ErrUnauthorized)
		return
	}
	respond(w, r, http.StatusOK, session.User)
}
