package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dcastel/transcript-flow/internal/logger"
)

type implWatcher struct {
	inputDir string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
}

// Start begins monitoring the input directory for URL list files. Lists
// are handled one at a time; the handler itself decides how much
// concurrency to apply across the sources inside a list.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started. Monitoring: %s", w.inputDir)
	w.logger.Info(ctx, "Drop a .txt file with one URL per line to start a run")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if event.Op&fsnotify.Create == fsnotify.Create {
				if !w.isURLList(event.Name) {
					w.logger.Debug(ctx, "Ignoring non-list file: %s", event.Name)
					continue
				}

				w.logger.Info(ctx, "New URL list detected: %s", event.Name)

				// Small delay to ensure file is fully written
				time.Sleep(500 * time.Millisecond)

				if err := w.handler(ctx, event.Name); err != nil {
					w.logger.Error(ctx, "Failed to process %s: %v", event.Name, err)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isURLList checks if the file looks like a URL list
func (w *implWatcher) isURLList(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".txt"
}
