package quiz

import (
	"github.com/quizly-app/quizly-api/internal/pipeline"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Handler *Handler
}

func NewQuizContainer(db *gorm.DB, generator pipeline.Service) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, generator)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
	}
}
