package pipeline

import (
	"context"
	"os"

	"github.com/quizly-app/quizly-api/internal/config"
	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-flash"

// TextGenerator sends a prompt to a hosted text-generation model and returns
// the raw response text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider fails fast with a configuration error when no API key is
// present, before any network call is possible.
func NewGeminiProvider(ctx context.Context) (TextGenerator, error) {
	if os.Getenv("GEMINI_API_KEY") == "" {
		return nil, newError(KindConfiguration, "GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, newError(KindConfiguration, "creating Gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(
		ctx,
		geminiModel,
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return "", newError(KindAI, "generating content: %w", err)
	}

	raw := result.Text()
	if raw == "" {
		return "", newError(KindAI, "empty response from model")
	}

	log.Debugf("Raw Gemini response:\n%s", raw)
	return raw, nil
}
