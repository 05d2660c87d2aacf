package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"fanfic-blog-service/internal/custom_errors"
	"fanfic-blog-service/internal/logger"
	"fanfic-blog-service/internal/model"
	user_repository "fanfic-blog-service/internal/repository/user"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const userKey contextKey = "user"

// RequireUser resolves the caller from the X-User-ID header set by the
// authenticating gateway and stores the loaded user in the request
// context. The service trusts this identity; credentials are verified
// upstream.
func RequireUser(users user_repository.Repository, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("X-User-ID")
			if raw == "" {
				http.Error(w, "unauthenticated", http.StatusUnauthorized)
				return
			}

			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				http.Error(w, "unauthenticated", http.StatusUnauthorized)
				return
			}

			user, err := users.GetByID(r.Context(), id)
			if err != nil {
				if errors.Is(err, custom_errors.ErrUserNotFound) {
					http.Error(w, "unauthenticated", http.StatusUnauthorized)
					return
				}
				log.Error("Failed to resolve caller identity",
					slog.Int64("userID", id),
					slog.String("error", err.Error()))
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromCtx returns the authenticated user, or nil outside a
// RequireUser-protected route.
func UserFromCtx(ctx context.Context) *model.User {
	user, _ := ctx.Value(userKey).(*model.User)
	return user
}
