package pipeline

import (
	"context"

	"github.com/quizly-app/quizly-api/internal/config"
)

// Service runs the full generation pipeline:
// fetch -> transcribe -> prompt -> generate -> normalize.
type Service interface {
	Generate(ctx context.Context, url string) (*GeneratedQuiz, error)
}

type service struct {
	fetcher     MediaFetcher
	transcriber Transcriber
	generator   TextGenerator
}

func NewService(fetcher MediaFetcher, transcriber Transcriber, generator TextGenerator) Service {
	return &service{
		fetcher:     fetcher,
		transcriber: transcriber,
		generator:   generator,
	}
}

// Generate runs the stages strictly in sequence with no retries and no
// fallback content; the first failure propagates to the caller as-is.
func (s *service) Generate(ctx context.Context, url string) (*GeneratedQuiz, error) {
	log := config.WithContext(ctx)

	audioFile, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	transcript, err := s.transcriber.Transcribe(ctx, audioFile)
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(transcript)

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	quiz, err := ParseQuiz(raw)
	if err != nil {
		return nil, err
	}

	log.WithField("question_count", len(quiz.Questions)).Info("Quiz generated successfully")
	return quiz, nil
}
