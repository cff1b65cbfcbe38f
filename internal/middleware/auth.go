package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/yourusername/todo-backend/internal/auth"
	"github.com/yourusername/todo-backend/internal/logger"
	"github.com/yourusername/todo-backend/internal/models"
	"github.com/yourusername/todo-backend/internal/storage"
)

type contextKey string

const userKey contextKey = "current_user"

type AuthMiddleware struct {
	tokens *auth.TokenManager
	users  storage.UserStore
	log    *logger.Logger
}

func NewAuthMiddleware(tokens *auth.TokenManager, users storage.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		users:  users,
		log:    logger.New("auth-middleware"),
	}
}

// RequireAuth resolves the caller's identity before the handler runs. Every
// failure mode (missing header, bad signature, malformed token, missing id
// claim, deleted user) surfaces as the same 401.
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			unauthorized(w, "Missing or invalid Authorization header")
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			m.log.Debug("token rejected: %v", err)
			unauthorized(w, "Invalid or expired token")
			return
		}

		user, err := m.users.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			m.log.Error("failed to resolve user %d: %v", claims.UserID, err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
			return
		}
		if user == nil {
			unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}

func unauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
