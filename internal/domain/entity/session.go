package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the console operator profile returned on login.
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	LastLogin   time.Time `json:"last_login"`
}

// Session is an authenticated console session. It is created on login,
// carried explicitly through the request context and deleted on logout.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewSession creates a session for user with a random token valid for ttl.
func NewSession(user User, ttl time.Duration) *Session {
	now := time.Now().UTC()
	user.LastLogin = now
	return &Session{
		Token:     uuid.NewString(),
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired reports whether the session is no longer valid at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
