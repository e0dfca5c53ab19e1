package pipeline

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/quizly-app/quizly-api/internal/config"
)

// MediaFetcher downloads the best available audio track of a video and
// returns the path of the resulting file.
type MediaFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type ytDlpFetcher struct {
	binaryPath string
	outputDir  string
}

func NewYtDlpFetcher(binaryPath, outputDir string) MediaFetcher {
	return &ytDlpFetcher{
		binaryPath: binaryPath,
		outputDir:  outputDir,
	}
}

func (f *ytDlpFetcher) Fetch(ctx context.Context, url string) (string, error) {
	log := config.WithContext(ctx)

	if err := os.MkdirAll(f.outputDir, 0o755); err != nil {
		return "", newError(KindDownload, "creating audio directory: %w", err)
	}

	// The video id is the filename stem, so repeated downloads of the same
	// video overwrite instead of piling up.
	outputTemplate := filepath.Join(f.outputDir, "%(id)s.%(ext)s")

	args := []string{
		"-f", "bestaudio/best",
		"-o", outputTemplate,
		"--no-playlist",
		"--no-warnings",
		"--no-progress",
		"--quiet",
		"--print", "after_move:filepath",
		url,
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, f.binaryPath, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.WithField("url", url).Debug("Downloading audio with yt-dlp")

	if err := cmd.Run(); err != nil {
		return "", newError(KindDownload, "yt-dlp failed: %v: %s", err, strings.TrimSpace(stderr.String()))
	}

	audioFile := strings.TrimSpace(stdout.String())
	if audioFile == "" {
		return "", newError(KindDownload, "yt-dlp produced no output file for %s", url)
	}

	log.WithField("audio_file", audioFile).Debug("Audio downloaded")
	return audioFile, nil
}
