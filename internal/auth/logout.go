package auth

import (
	"net/http"

	"github.com/quizly-app/quizly-api/internal/config"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ClearAuthCookies(w)

	config.Detail(w, http.StatusOK, "Log-Out successfully! All Tokens will be deleted. Refresh token is now invalid.")
}
