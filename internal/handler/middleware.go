package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/boddenberg/donor-bfa-go/internal/service"

	"go.uber.org/zap"
)

type contextKey string

const sessionKey contextKey = "session"

type sessionMode int

const (
	sessionRequired sessionMode = iota
	sessionOptional
	sessionLenient
)

// SessionAuthMiddleware resolves the Bearer token to a session and rejects
// the request without one.
func SessionAuthMiddleware(sessions *service.SessionService, logger *zap.Logger) func(http.Handler) http.Handler {
	return sessionMiddleware(sessions, logger, sessionRequired)
}

// OptionalSessionMiddleware attaches the session when a token is present.
// A malformed or expired token is still rejected.
func OptionalSessionMiddleware(sessions *service.SessionService, logger *zap.Logger) func(http.Handler) http.Handler {
	return sessionMiddleware(sessions, logger, sessionOptional)
}

// LenientSessionMiddleware attaches the session when the token resolves and
// otherwise lets the request through anonymously. Used by login and signup,
// where a client may still hold a token from a session that has ended.
func LenientSessionMiddleware(sessions *service.SessionService, logger *zap.Logger) func(http.Handler) http.Handler {
	return sessionMiddleware(sessions, logger, sessionLenient)
}

func sessionMiddleware(sessions *service.SessionService, logger *zap.Logger, mode sessionMode) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				if mode != sessionRequired {
					next.ServeHTTP(w, r)
					return
				}
				logger.Warn("auth: missing token",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				if mode == sessionLenient {
					next.ServeHTTP(w, r)
					return
				}
				logger.Warn("auth: invalid token format",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				writeError(w, http.StatusUnauthorized, "invalid authorization header")
				return
			}

			sess, err := sessions.Authenticate(parts[1])
			if err != nil {
				if mode == sessionLenient {
					logger.Debug("auth: ignoring stale token", zap.String("path", r.URL.Path), zap.Error(err))
					next.ServeHTTP(w, r)
					return
				}
				logger.Warn("auth: invalid or expired token",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
					zap.Error(err),
				)
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the authenticated session, or nil.
func SessionFromContext(ctx context.Context) *service.Session {
	s, _ := ctx.Value(sessionKey).(*service.Session)
	return s
}
