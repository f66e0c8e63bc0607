package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FetchTranscript downloads a video's auto-generated subtitles and
// returns their raw contents. A scratch directory is created per call
// and always removed afterward, even on error.
func (e *Extractor) FetchTranscript(ctx context.Context, videoURL string) (string, error) {
	dir, err := os.MkdirTemp("", "ytwatch-transcript-*")
	if err != nil {
		return "", fmt.Errorf("%w: failed to create scratch dir: %v", ErrUnavailable, err)
	}
	defer os.RemoveAll(dir)

	cmd := e.baseCommand().
		SkipDownload().
		WriteAutoSubs().
		SubFormat("json3").
		SubLangs("en.*").
		Output(filepath.Join(dir, "%(id)s.%(ext)s"))

	if _, err := cmd.Run(ctx, videoURL); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnavailable, videoURL, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read scratch dir: %v", ErrUnavailable, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return "", fmt.Errorf("%w: failed to read subtitle file: %v", ErrMalformed, err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("%w: %s: no subtitle track available", ErrNoData, videoURL)
}
