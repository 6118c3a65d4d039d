package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/dto"
	"task-manager-service/internal/my_errors"
)

type AuthService interface {
	ValidateToken(ctx context.Context, token string) (*domain.UserInfo, error)
}

type contextKey string

const callerKey contextKey = "caller"

// CallerFromContext returns the authenticated caller, if any.
func CallerFromContext(ctx context.Context) (*domain.UserInfo, bool) {
	user, ok := ctx.Value(callerKey).(*domain.UserInfo)
	return user, ok
}

// AuthMiddleware resolves the bearer token to a caller identity and puts
// it into the request context.
func AuthMiddleware(authService AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, http.StatusUnauthorized, dto.ErrCodeAuthRequired, "missing authorization header")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				respondError(w, http.StatusUnauthorized, dto.ErrCodeAuthRequired, "invalid authorization header format")
				return
			}

			user, err := authService.ValidateToken(r.Context(), parts[1])
			if err != nil {
				code := dto.ErrCodeAuthRequired
				if errors.Is(err, my_errors.ErrSessionExpired) {
					code = dto.ErrCodeSessionExpired
				}
				respondError(w, http.StatusUnauthorized, code, "invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), callerKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	errResp := dto.ErrorResponse{Error: dto.ErrorDetail{Code: code, Message: message}}
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}
