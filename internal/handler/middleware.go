package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/GoArmGo/BlogApp/internal/usecase"
)

type contextKey string

const identityKey contextKey = "identity"

// RequestLogger is the middleware that logs every HTTP request.
func RequestLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap the ResponseWriter to capture the status code.
			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.statusCode,
				"duration_ms", duration.Milliseconds(),
			)
		})
	}
}

// responseWriter intercepts the response status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// WithIdentity resolves the session cookie to a user once per request and
// puts the result in the request context. A missing, expired or invalid
// session resolves to nil (anonymous); it is never an error.
func WithIdentity(sessions usecase.SessionUseCase, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r)

			identity, err := sessions.CurrentIdentity(r.Context(), token)
			if err != nil {
				logger.Error("failed to resolve session identity", "error", err)
				identity = nil
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the user resolved by WithIdentity, or nil for
// an anonymous request.
func IdentityFromContext(ctx context.Context) *domain.User {
	identity, _ := ctx.Value(identityKey).(*domain.User)
	return identity
}

// RequireAuth redirects anonymous requests to the login page.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IdentityFromContext(r.Context()) == nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
