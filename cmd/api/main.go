package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/quizly-app/quizly-api/internal/config"
	"github.com/quizly-app/quizly-api/internal/container"
	"github.com/quizly-app/quizly-api/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler: c.UserContainer.Handler,
		QuizHandler: c.QuizContainer.Handler,
	})

	// Inside Lambda the API Gateway proxy drives the router; everywhere else
	// a plain HTTP server does.
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(r)
		lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return adapter.ProxyWithContext(ctx, req)
		})
		return
	}

	addr := ":" + config.Getenv("PORT", "8080")
	config.Logger().Infof("Listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		config.Logger().WithError(err).Fatal("Server stopped")
	}
}
