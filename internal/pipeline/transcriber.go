package pipeline

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/quizly-app/quizly-api/internal/config"
	openai "github.com/sashabaranov/go-openai"
)

// Transcriber converts an audio file into plain text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// whisperCppTranscriber runs a local whisper.cpp binary. Binary and model
// paths are resolved once at construction; each call spawns its own process
// and shares no state, so sequential and concurrent calls are both safe.
type whisperCppTranscriber struct {
	binaryPath string
	modelPath  string
}

func NewWhisperCppTranscriber(binaryPath, modelPath string) (Transcriber, error) {
	if binaryPath == "" || modelPath == "" {
		return nil, newError(KindConfiguration, "WHISPER_CPP_BINARY and WHISPER_CPP_MODEL must be set")
	}
	if _, err := os.Stat(modelPath); err != nil {
		return nil, newError(KindConfiguration, "whisper model not found at %s: %w", modelPath, err)
	}
	return &whisperCppTranscriber{
		binaryPath: binaryPath,
		modelPath:  modelPath,
	}, nil
}

func (t *whisperCppTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	log := config.WithContext(ctx)

	outputStem := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	args := []string{
		"-m", t.modelPath,
		"-f", audioPath,
		"-np",
		"-otxt",
		"-of", outputStem,
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, t.binaryPath, args...)
	cmd.Stderr = &stderr

	log.WithField("audio_file", audioPath).Debug("Running whisper.cpp transcription")

	if err := cmd.Run(); err != nil {
		return "", newError(KindTranscription, "whisper.cpp failed: %v: %s", err, strings.TrimSpace(stderr.String()))
	}

	outputFile := outputStem + ".txt"
	defer os.Remove(outputFile)

	output, err := os.ReadFile(outputFile)
	if err != nil {
		return "", newError(KindTranscription, "reading whisper output: %w", err)
	}

	return strings.TrimSpace(string(output)), nil
}

// openAITranscriber sends the audio file to the hosted Whisper API.
type openAITranscriber struct {
	client *openai.Client
}

func NewOpenAITranscriber(apiKey string) (Transcriber, error) {
	if apiKey == "" {
		return nil, newError(KindConfiguration, "OPENAI_API_KEY is not set")
	}
	return &openAITranscriber{client: openai.NewClient(apiKey)}, nil
}

func (t *openAITranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
	})
	if err != nil {
		return "", newError(KindTranscription, "whisper api transcription failed: %w", err)
	}
	return resp.Text, nil
}

// cleanupTranscriber deletes the input audio file after transcription,
// whether the inner transcriber succeeded or not.
type cleanupTranscriber struct {
	inner Transcriber
}

func WithCleanup(inner Transcriber) Transcriber {
	return &cleanupTranscriber{inner: inner}
}

func (t *cleanupTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	defer func() {
		if err := os.Remove(audioPath); err != nil && !os.IsNotExist(err) {
			config.WithContext(ctx).WithError(err).Warnf("Failed to remove audio file %s", audioPath)
		}
	}()

	return t.inner.Transcribe(ctx, audioPath)
}
