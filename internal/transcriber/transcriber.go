// Package transcriber wraps the whisper.cpp binary for speech-to-text.
package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dcastel/transcript-flow/internal/config"
	"github.com/dcastel/transcript-flow/internal/logger"
	"github.com/dcastel/transcript-flow/pkg/executor"
)

// transcriptName is the raw transcript artifact written next to the
// audio file. Transcribed text is already plain prose, one segment per
// line, so it skips caption normalization downstream.
const transcriptName = "subtitles.txt"

type implTranscriber struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transcriber backed by the configured whisper binary.
func New(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

// Transcribe runs whisper on the audio file and writes the transcript
// as subtitles.txt in the audio file's directory.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("audio file missing: %w", err)
	}

	workDir := filepath.Dir(audioPath)
	outputPrefix := filepath.Join(workDir, "subtitles")

	t.logger.Info(ctx, "Starting transcription with %d threads: %s", t.cfg.Threads, audioPath)

	// -m: model path
	// -f: input audio file
	// -otxt: plain text output
	// -l: force language (prevents hallucination)
	// -t: number of threads
	// -bo: best of 5 for better accuracy
	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-l", t.cfg.Language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"-bo", "5",
		"--output-file", outputPrefix,
	}
	if t.cfg.VADFilter {
		args = append(args, "--vad")
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	transcriptPath := filepath.Join(workDir, transcriptName)
	if _, err := os.Stat(transcriptPath); err != nil {
		return "", fmt.Errorf("whisper finished but transcript missing: %w", err)
	}

	t.logger.Info(ctx, "Transcription completed: %s", transcriptPath)
	return transcriptPath, nil
}
