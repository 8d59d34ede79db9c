package session

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ubuzima-backend/internal/database"
)

// CookieName is the session identifier cookie issued to each visitor.
const CookieName = "ubuzima_session"

const cookieLifetime = 30 * 24 * time.Hour

type contextKey struct{}

// FromContext returns the session id attached by Middleware. The zero UUID
// means the request carries no session, e.g. during non-interactive use;
// callers must skip per-session writes rather than fail.
func FromContext(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(contextKey{}).(uuid.UUID)
	return id
}

func WithSession(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// Middleware issues an opaque session cookie on first contact and makes sure
// a matching session record exists before the handler runs. Concurrent
// requests from the same session are not serialized; all per-session state is
// append-only, so the worst case is interleaved history order.
func Middleware(db *gorm.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.Nil
			if cookie, err := r.Cookie(CookieName); err == nil {
				if parsed, err := uuid.Parse(cookie.Value); err == nil {
					id = parsed
				}
			}

			if id == uuid.Nil {
				id = uuid.New()
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    id.String(),
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(cookieLifetime),
				})
			}

			if err := database.EnsureSession(db, id); err != nil {
				slog.Error("error ensuring session record", "session_id", id, "error", err)
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), id)))
		})
	}
}
