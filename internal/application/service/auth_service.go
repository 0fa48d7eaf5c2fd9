package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/hapkiduki/shipping-console/internal/application/port"
	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/hapkiduki/shipping-console/internal/domain/repository"
	"github.com/hapkiduki/shipping-console/pkg/validation"
)

// AuthConfig holds the operator credentials and session lifetime.
type AuthConfig struct {
	Username   string
	Password   string
	SessionTTL time.Duration
}

// AuthService issues and validates console sessions.
type AuthService struct {
	sessions  repository.SessionRepository
	drafts    repository.DraftRepository
	validator *validation.Validator
	logger    port.Logger
	cfg       AuthConfig
	now       func() time.Time
}

// NewAuthService creates an AuthService.
func NewAuthService(
	sessions repository.SessionRepository,
	drafts repository.DraftRepository,
	validator *validation.Validator,
	logger port.Logger,
	cfg AuthConfig,
) *AuthService {
	return &AuthService{
		sessions:  sessions,
		drafts:    drafts,
		validator: validator,
		logger:    logger,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Login checks the credentials and opens a session.
//
// Returns:
//   - *entity.Session: the new session with its bearer token
//   - error: ErrInvalidCredentials if the credentials don't match
func (s *AuthService) Login(ctx context.Context, username, password string) (*entity.Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Password)) == 1
	if !userOK || !passOK {
		s.logger.WithContext(ctx).Warn("Login failed", "username", username)
		return nil, ErrInvalidCredentials
	}

	session := entity.NewSession(s.operator(username), s.cfg.SessionTTL)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.WithContext(ctx).Info("User logged in", "username", username, "expires_at", session.ExpiresAt)
	return session, nil
}

// Logout closes the session and discards every draft it owns.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	removed, err := s.drafts.DeleteByOwner(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to delete drafts: %w", err)
	}

	s.logger.WithContext(ctx).Info("User logged out", "drafts_discarded", removed)
	return nil
}

// Validate returns the session for token.
//
// Returns:
//   - error: ErrUnauthorized if the token is empty, unknown or expired
func (s *AuthService) Validate(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	if session.IsExpired(s.now()) {
		if err := s.Logout(ctx, token); err != nil {
			s.logger.WithContext(ctx).Warn("Failed to close expired session", "error", err)
		}
		return nil, ErrUnauthorized
	}
	return session, nil
}

// RecoverPassword accepts a recovery request for a syntactically valid email.
// No mail is sent.
//
// Returns:
//   - error: *validation.Error if email is missing or malformed
func (s *AuthService) RecoverPassword(ctx context.Context, email string) error {
	if err := s.validator.Var("email", email, "required,email"); err != nil {
		return err
	}
	s.logger.WithContext(ctx).Info("Password recovery requested", "email", email)
	return nil
}

// CleanupExpired removes expired sessions and the drafts they own.
//
// Returns:
//   - int: number of sessions removed
func (s *AuthService) CleanupExpired(ctx context.Context) (int, error) {
	tokens, err := s.sessions.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	for _, token := range tokens {
		if _, err := s.drafts.DeleteByOwner(ctx, token); err != nil {
			return len(tokens), fmt.Errorf("failed to delete drafts: %w", err)
		}
	}
	if len(tokens) > 0 {
		s.logger.Info("Expired sessions removed", "count", len(tokens))
	}
	return len(tokens), nil
}

// RunCleanup calls CleanupExpired every interval until ctx is done.
func (s *AuthService) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.CleanupExpired(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("Session cleanup failed", "error", err)
			}
		}
	}
}

func (s *AuthService) operator(username string) entity.User {
	return entity.User{
		ID:          "1",
		Username:    username,
		Email:       username + "@shipping-console.local",
		FirstName:   "Console",
		LastName:    "Administrator",
		Role:        "admin",
		Permissions: []string{"shipments:write", "business_units:write", "customers:write"},
	}
}
