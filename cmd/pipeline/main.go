package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dcastel/transcript-flow/internal/config"
	"github.com/dcastel/transcript-flow/internal/downloader"
	"github.com/dcastel/transcript-flow/internal/logger"
	"github.com/dcastel/transcript-flow/internal/orchestrator"
	"github.com/dcastel/transcript-flow/internal/pipeline"
	"github.com/dcastel/transcript-flow/internal/rewriter"
	"github.com/dcastel/transcript-flow/internal/transcriber"
	"github.com/dcastel/transcript-flow/internal/watcher"
	"github.com/dcastel/transcript-flow/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	urlFile := flag.String("urls", "", "URL list file for a one-shot run; omit to watch the input directory")
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcript Acquisition Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Batch size: %d", cfg.Batch.Size)
	log.Info(ctx, "Rewrite model: %s", cfg.Gemini.Model)
	log.Info(ctx, "Configuration loaded successfully")

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	exec := executor.New()
	dl := downloader.New(exec, cfg.Batch.AllowPlaylist, log)
	tr := transcriber.New(cfg.Whisper, exec, log)
	chat := rewriter.NewGeminiChat(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	rw := rewriter.New(chat, cfg.Gemini.ContextWindow, log)
	pipe := pipeline.New(cfg, dl, tr, rw, log)
	orch := orchestrator.New(pipe, cfg.Batch.Size, cfg.Performance.MaxConcurrent, log)

	if *urlFile != "" {
		results, err := orch.Run(ctx, *urlFile)
		if err != nil {
			log.Error(ctx, "Run failed: %v", err)
			os.Exit(1)
		}
		reportResults(ctx, log, results)
		return
	}

	runWatchMode(ctx, cfg, orch, log)
}

// runWatchMode blocks watching the input directory for URL list files
// until interrupted.
func runWatchMode(ctx context.Context, cfg *config.Config, orch orchestrator.Orchestrator, log logger.Logger) {
	handler := func(ctx context.Context, filePath string) error {
		results, err := orch.Run(ctx, filePath)
		if err != nil {
			return err
		}
		reportResults(ctx, log, results)
		return nil
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Downloads: %s", cfg.Paths.Downloads)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Pipeline stopped")
}

// reportResults logs the per-source outcome of a run.
func reportResults(ctx context.Context, log logger.Logger, results []pipeline.Result) {
	success := 0
	for _, res := range results {
		if res.Failed() {
			log.Warn(ctx, "FAILED  %s (%s): %v", res.URL, res.Reason, res.Err)
			continue
		}
		success++
		log.Info(ctx, "OK      %s -> %s", res.URL, res.TranscriptPath)
	}
	log.Info(ctx, "Run complete: %d/%d sources succeeded", success, len(results))
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Downloads,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
