package container

import (
	"context"
	"log"
	"os"

	"github.com/quizly-app/quizly-api/internal/auth"
	"github.com/quizly-app/quizly-api/internal/config"
	"github.com/quizly-app/quizly-api/internal/pipeline"
	"github.com/quizly-app/quizly-api/internal/quiz"
	"github.com/quizly-app/quizly-api/internal/user"
)

type Container struct {
	UserContainer     *user.UserContainer
	QuizContainer     *quiz.QuizContainer
	PipelineContainer *pipeline.PipelineContainer
}

func New() *Container {
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("failed to load environment: %v", err)
	}
	config.Init()
	auth.Init()

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(&user.User{}, &quiz.Quiz{}, &quiz.Question{}); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	pipelineContainer, err := pipeline.NewPipelineContainer(ctx)
	if err != nil {
		log.Fatalf("failed to build generation pipeline: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	quizContainer := quiz.NewQuizContainer(config.DB, pipelineContainer.Service)

	return &Container{
		UserContainer:     userContainer,
		QuizContainer:     quizContainer,
		PipelineContainer: pipelineContainer,
	}
}
