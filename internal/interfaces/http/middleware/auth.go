package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/hapkiduki/shipping-console/pkg/logger"
)

type sessionKey struct{}

// SessionValidator resolves a bearer token to a session.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (*entity.Session, error)
}

// SessionFromContext returns the session stored by Authenticate.
func SessionFromContext(ctx context.Context) (*entity.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*entity.Session)
	return s, ok && s != nil
}

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session *entity.Session) context.Context {
	ctx = context.WithValue(ctx, sessionKey{}, session)
	return context.WithValue(ctx, logger.UsernameKey, session.User.Username)
}

// Authenticate rejects requests without a valid "Authorization: Bearer"
// session token and stores the session in the request context.
func Authenticate(sessions SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				w.Header().Set("WWW-Authenticate", `Bearer realm="shipping-console"`)
				writeJSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
				return
			}

			session, err := sessions.Validate(r.Context(), token)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="shipping-console", error="invalid_token"`)
				writeJSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired session")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
