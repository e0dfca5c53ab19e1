package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quizly-app/quizly-api/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/", h.CreateQuiz)
	r.Get("/", h.ListQuizzes)
	r.Get("/{id}", h.GetQuiz)
	r.Patch("/{id}", h.UpdateQuiz)
	r.Delete("/{id}", h.DeleteQuiz)
	return r
}
