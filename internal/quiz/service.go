package quiz

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/quizly-app/quizly-api/internal/config"
	"github.com/quizly-app/quizly-api/internal/pipeline"
	"gorm.io/datatypes"
)

var ErrQuizNotFound = errors.New("quiz not found")

type QuizService interface {
	CreateFromURL(ctx context.Context, userID uuid.UUID, url string) (*Quiz, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Quiz, error)
	GetByID(ctx context.Context, userID, quizID uuid.UUID) (*Quiz, error)
	Update(ctx context.Context, userID, quizID uuid.UUID, req UpdateQuizRequest) (*Quiz, error)
	Delete(ctx context.Context, userID, quizID uuid.UUID) error
}

type quizService struct {
	repo      QuizRepository
	generator pipeline.Service
}

func NewService(repo QuizRepository, generator pipeline.Service) QuizService {
	return &quizService{
		repo:      repo,
		generator: generator,
	}
}

// CreateFromURL runs the generation pipeline for the video URL and persists
// the resulting quiz with the caller as owner. Pipeline failures propagate
// untouched so the handler can surface their message.
func (s *quizService) CreateFromURL(ctx context.Context, userID uuid.UUID, url string) (*Quiz, error) {
	log := config.WithContext(ctx)

	payload, err := s.generator.Generate(ctx, url)
	if err != nil {
		return nil, err
	}

	quiz := &Quiz{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       payload.Title,
		Description: payload.Description,
		VideoURL:    url,
	}

	questions := make([]*Question, 0, len(payload.Questions))
	for i, q := range payload.Questions {
		options, err := json.Marshal(q.Options)
		if err != nil {
			log.WithError(err).Error("Failed to encode question options")
			return nil, err
		}
		questions = append(questions, &Question{
			ID:         uuid.New(),
			QuizID:     quiz.ID,
			Question:   q.Question,
			Options:    datatypes.JSON(options),
			Answer:     q.Answer,
			OrderIndex: i,
		})
	}

	if err := s.repo.Create(quiz, questions); err != nil {
		log.WithError(err).Error("Failed to persist generated quiz")
		return nil, err
	}

	quiz.Questions = make([]Question, len(questions))
	for i, q := range questions {
		quiz.Questions[i] = *q
	}

	log.WithField("quiz_id", quiz.ID).Info("Quiz created successfully")
	return quiz, nil
}

func (s *quizService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Quiz, error) {
	log := config.WithContext(ctx)

	quizzes, err := s.repo.ListByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list quizzes by user")
		return nil, err
	}
	return quizzes, nil
}

func (s *quizService) GetByID(ctx context.Context, userID, quizID uuid.UUID) (*Quiz, error) {
	log := config.WithContext(ctx)

	quiz, err := s.repo.GetByIDAndUser(quizID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to find quiz by ID")
		return nil, err
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}
	return quiz, nil
}

func (s *quizService) Update(ctx context.Context, userID, quizID uuid.UUID, req UpdateQuizRequest) (*Quiz, error) {
	log := config.WithContext(ctx)

	quiz, err := s.GetByID(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		quiz.Title = *req.Title
	}
	if req.Description != nil {
		quiz.Description = *req.Description
	}

	if err := s.repo.Save(quiz); err != nil {
		log.WithError(err).Error("Failed to update quiz")
		return nil, err
	}

	log.WithField("quiz_id", quiz.ID).Info("Quiz updated successfully")
	return quiz, nil
}

func (s *quizService) Delete(ctx context.Context, userID, quizID uuid.UUID) error {
	log := config.WithContext(ctx)

	deleted, err := s.repo.Delete(quizID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to delete quiz")
		return err
	}
	if !deleted {
		return ErrQuizNotFound
	}

	log.WithField("quiz_id", quizID).Info("Quiz deleted successfully")
	return nil
}
