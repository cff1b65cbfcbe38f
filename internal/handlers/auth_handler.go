package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yourusername/todo-backend/internal/auth"
	"github.com/yourusername/todo-backend/internal/logger"
	"github.com/yourusername/todo-backend/internal/models"
	"github.com/yourusername/todo-backend/internal/storage"
	"github.com/yourusername/todo-backend/internal/validation"
)

type AuthHandler struct {
	users  storage.UserStore
	tokens *auth.TokenManager
	log    *logger.Logger
}

func NewAuthHandler(users storage.UserStore, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{
		users:  users,
		tokens: tokens,
		log:    logger.New("auth-handler"),
	}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.ValidateSignup(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.log.Error("failed to hash password: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	user, err := h.users.CreateUser(r.Context(), req.Name, req.Email, passwordHash)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			respondError(w, http.StatusBadRequest, "You are already registered. Please login.")
			return
		}
		h.log.Error("failed to create user: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.log.Info("user %d registered", user.ID)
	respondJSON(w, http.StatusOK, models.SignupResponse{
		Success: true,
		Detail:  "Your account is successfully registered.",
		UserID:  user.ID,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// A malformed email or password can never match an account; fail with the
	// same message as bad credentials before touching storage.
	if err := validation.ValidateLogin(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid email or password.")
		return
	}

	user, err := h.users.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		h.log.Error("failed to look up user: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	// Same message whether the email is unknown or the password is wrong,
	// to avoid account enumeration.
	if user == nil {
		respondError(w, http.StatusBadRequest, "Invalid email or password.")
		return
	}
	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid email or password.")
		return
	}

	token, err := h.tokens.GenerateToken(user.ID)
	if err != nil {
		h.log.Error("failed to generate token: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, models.LoginResponse{Success: true, Token: token})
}
