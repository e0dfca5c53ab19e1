package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quizly-app/quizly-api/internal/auth"
	"github.com/quizly-app/quizly-api/internal/config"
)

type Handler struct {
	service UserService
}

func NewHandler(s UserService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		config.Detail(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.service.Register(r.Context(), req); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			config.Detail(w, http.StatusBadRequest, "username already taken")
			return
		}
		log.WithError(err).Error("Failed to register user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.Detail(w, http.StatusCreated, "User created successfully!")
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		config.Detail(w, http.StatusBadRequest, err.Error())
		return
	}

	u, tokens, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			config.Detail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.WithError(err).Error("Failed to log user in")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetAccessCookie(w, tokens.AccessToken)
	auth.SetRefreshCookie(w, tokens.RefreshToken)

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"detail": "Login successfully!",
		"user":   u,
	})
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	cookie, err := r.Cookie(auth.RefreshTokenCookie)
	if err != nil || cookie.Value == "" {
		config.Detail(w, http.StatusUnauthorized, "Refresh token not found")
		return
	}

	access, err := h.service.Refresh(r.Context(), cookie.Value)
	if err != nil {
		if errors.Is(err, ErrInvalidRefreshToken) {
			config.Detail(w, http.StatusUnauthorized, "Invalid or expired refresh token")
			return
		}
		log.WithError(err).Error("Failed to refresh access token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetAccessCookie(w, access)

	config.JSON(w, http.StatusOK, map[string]string{
		"detail": "Token refreshed",
		"access": access,
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.service.GetByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to fetch authenticated user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, u)
}
