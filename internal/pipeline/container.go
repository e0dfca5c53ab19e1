package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/quizly-app/quizly-api/internal/config"
)

type PipelineContainer struct {
	Service Service
}

// NewPipelineContainer wires the pipeline stages from the environment. The
// transcriber is constructed once here and injected, so model paths are
// validated at startup instead of on the first request.
func NewPipelineContainer(ctx context.Context) (*PipelineContainer, error) {
	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		return nil, err
	}

	audioDir := config.Getenv("AUDIO_TEMP_DIR", filepath.Join(os.TempDir(), "quizly_audio"))
	fetcher := NewYtDlpFetcher(config.Getenv("YTDLP_BINARY", "yt-dlp"), audioDir)

	var transcriber Transcriber
	switch config.Getenv("TRANSCRIBER_PROVIDER", "whisper_cpp") {
	case "openai":
		transcriber, err = NewOpenAITranscriber(os.Getenv("OPENAI_API_KEY"))
	default:
		transcriber, err = NewWhisperCppTranscriber(
			os.Getenv("WHISPER_CPP_BINARY"),
			os.Getenv("WHISPER_CPP_MODEL"),
		)
	}
	if err != nil {
		return nil, err
	}

	service := NewService(fetcher, WithCleanup(transcriber), provider)

	return &PipelineContainer{Service: service}, nil
}
