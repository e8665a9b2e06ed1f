package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// errCaptionMissing means discovery reported captions but no caption
// file exists in the working directory.
var errCaptionMissing = errors.New("caption file missing after discovery")

// useCaptions locates the caption artifact by filename convention,
// normalizes it to prose and persists the normalized text as
// subtitles.txt. Returns the normalized transcript text.
func (p *implPipeline) useCaptions(ctx context.Context, workDir string) (string, error) {
	captionPath, err := findFile(workDir, "video", ".vtt")
	if err != nil {
		return "", fmt.Errorf("%w: %v", errCaptionMissing, err)
	}

	raw, err := os.ReadFile(captionPath)
	if err != nil {
		return "", fmt.Errorf("read caption file: %w", err)
	}

	p.logger.Info(ctx, "Normalizing captions: %s", captionPath)
	text := p.normalizer.Normalize(string(raw))

	subtitlesPath := filepath.Join(workDir, subtitlesName)
	if err := os.WriteFile(subtitlesPath, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("write normalized captions: %w", err)
	}

	return text, nil
}

// transcribeAudio downloads the source audio, runs speech-to-text and
// cleans up transient media. Transcribed text is already plain prose,
// so it skips caption normalization.
func (p *implPipeline) transcribeAudio(ctx context.Context, url string) (string, string, error) {
	workDir, err := p.downloader.FetchAudio(ctx, url, p.cfg.Paths.Downloads)
	if err != nil {
		return "", "", fmt.Errorf("fetch audio: %w", err)
	}

	audioPath := filepath.Join(workDir, "video.wav")
	transcriptPath, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return workDir, "", fmt.Errorf("transcribe: %w", err)
	}

	p.deleteMediaFiles(ctx, workDir)

	data, err := os.ReadFile(transcriptPath)
	if err != nil {
		return workDir, "", fmt.Errorf("read transcript: %w", err)
	}

	return workDir, string(data), nil
}

// findFile returns the first file in dir whose name starts with prefix
// and ends with suffix.
func findFile(dir, prefix, suffix string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read directory %s: %w", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, suffix) {
			return filepath.Join(dir, name), nil
		}
	}

	return "", fmt.Errorf("no file matching %s*%s in %s", prefix, suffix, dir)
}
