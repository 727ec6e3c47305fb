package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HeaderUserID    = "X-User-ID"
	HeaderUserRole  = "X-User-Role"
	HeaderRequestID = "X-Request-ID"

	RoleAdmin = "admin"
)

// Identity is the caller as asserted by the upstream gateway.
type Identity struct {
	UserID int
	Role   string
}

func (i Identity) IsAdmin() bool {
	return strings.EqualFold(i.Role, RoleAdmin)
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// IdentityMiddleware reads the gateway identity headers. Requests without a
// valid user id pass through anonymously.
func IdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if userID, err := strconv.Atoi(raw); err == nil && userID > 0 {
			r = r.WithContext(WithIdentity(r.Context(), Identity{
				UserID: userID,
				Role:   strings.TrimSpace(r.Header.Get(HeaderUserRole)),
			}))
		}
		next.ServeHTTP(w, r)
	})
}

func RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFrom(r.Context()); !ok {
			writeMessage(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next(w, r)
	}
}

func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return RequireUser(func(w http.ResponseWriter, r *http.Request) {
		if id, _ := IdentityFrom(r.Context()); !id.IsAdmin() {
			writeMessage(w, http.StatusForbidden, "admin access required")
			return
		}
		next(w, r)
	})
}

// LoggingMiddleware tags every request with an id and logs its outcome.
func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(HeaderRequestID, requestID)

			m := httpsnoop.CaptureMetrics(next, w, r)
			fields := []zap.Field{
				zap.String("request_id", requestID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", m.Code),
				zap.Duration("duration", m.Duration),
			}
			if m.Code >= http.StatusInternalServerError {
				logger.Error("request", fields...)
				return
			}
			logger.Info("request", fields...)
		})
	}
}
