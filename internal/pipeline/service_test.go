package pipeline

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingFetcher struct {
	calls []string
	path  string
	err   error
	order *[]string
}

func (f *recordingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.calls = append(f.calls, url)
	*f.order = append(*f.order, "fetch")
	return f.path, f.err
}

type recordingTranscriber struct {
	calls []string
	text  string
	err   error
	order *[]string
}

func (t *recordingTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	t.calls = append(t.calls, audioPath)
	*t.order = append(*t.order, "transcribe")
	return t.text, t.err
}

type recordingGenerator struct {
	calls []string
	raw   string
	err   error
	order *[]string
}

func (g *recordingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls = append(g.calls, prompt)
	*g.order = append(*g.order, "generate")
	return g.raw, g.err
}

func TestGenerateHappyPath(t *testing.T) {
	var order []string
	fetcher := &recordingFetcher{path: "/tmp/abc.m4a", order: &order}
	transcriber := &recordingTranscriber{text: "hello world", order: &order}
	generator := &recordingGenerator{
		raw:   `{"title":"T","questions":[{"question_title":"Q1","question_options":["A","B","C","D"],"answer":"A"}]}`,
		order: &order,
	}

	svc := NewService(fetcher, transcriber, generator)
	quiz, err := svc.Generate(context.Background(), "https://example.com/watch?v=abc")
	require.NoError(t, err)

	assert.Equal(t, []string{"fetch", "transcribe", "generate"}, order)
	assert.Equal(t, []string{"https://example.com/watch?v=abc"}, fetcher.calls)
	assert.Equal(t, []string{"/tmp/abc.m4a"}, transcriber.calls)

	require.Len(t, generator.calls, 1)
	assert.Contains(t, generator.calls[0], "hello world")

	assert.Equal(t, "T", quiz.Title)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, GeneratedQuestion{
		Question: "Q1",
		Options:  []string{"A", "B", "C", "D"},
		Answer:   "A",
	}, quiz.Questions[0])
}

func TestGenerateStageFailures(t *testing.T) {
	t.Run("DownloadFailure", func(t *testing.T) {
		var order []string
		fetcher := &recordingFetcher{err: newError(KindDownload, "no playable stream"), order: &order}
		transcriber := &recordingTranscriber{order: &order}
		generator := &recordingGenerator{order: &order}

		svc := NewService(fetcher, transcriber, generator)
		_, err := svc.Generate(context.Background(), "https://example.com/bad")

		require.Error(t, err)
		assert.Equal(t, KindDownload, KindOf(err))
		assert.Empty(t, transcriber.calls, "later stages must not run")
		assert.Empty(t, generator.calls)
	})

	t.Run("TranscriptionFailure", func(t *testing.T) {
		var order []string
		fetcher := &recordingFetcher{path: "/tmp/abc.m4a", order: &order}
		transcriber := &recordingTranscriber{err: newError(KindTranscription, "decode error"), order: &order}
		generator := &recordingGenerator{order: &order}

		svc := NewService(fetcher, transcriber, generator)
		_, err := svc.Generate(context.Background(), "https://example.com/watch?v=abc")

		require.Error(t, err)
		assert.Equal(t, KindTranscription, KindOf(err))
		assert.Empty(t, generator.calls)
	})

	t.Run("AIFailure", func(t *testing.T) {
		var order []string
		fetcher := &recordingFetcher{path: "/tmp/abc.m4a", order: &order}
		transcriber := &recordingTranscriber{text: "hello world", order: &order}
		generator := &recordingGenerator{err: newError(KindAI, "model unavailable"), order: &order}

		svc := NewService(fetcher, transcriber, generator)
		_, err := svc.Generate(context.Background(), "https://example.com/watch?v=abc")

		require.Error(t, err)
		assert.Equal(t, KindAI, KindOf(err))
	})

	t.Run("MalformedResponse", func(t *testing.T) {
		var order []string
		fetcher := &recordingFetcher{path: "/tmp/abc.m4a", order: &order}
		transcriber := &recordingTranscriber{text: "hello world", order: &order}
		generator := &recordingGenerator{raw: "not json at all", order: &order}

		svc := NewService(fetcher, transcriber, generator)
		_, err := svc.Generate(context.Background(), "https://example.com/watch?v=abc")

		require.Error(t, err)
		assert.Equal(t, KindMalformedResponse, KindOf(err))
	})
}

func TestNewGeminiProviderMissingKey(t *testing.T) {
	orig, had := os.LookupEnv("GEMINI_API_KEY")
	os.Unsetenv("GEMINI_API_KEY")
	defer func() {
		if had {
			os.Setenv("GEMINI_API_KEY", orig)
		}
	}()

	_, err := NewGeminiProvider(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindConfiguration, KindOf(err))
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
