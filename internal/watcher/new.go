package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/dcastel/transcript-flow/internal/logger"
)

// New creates a Watcher that triggers the handler for every URL list
// file dropped into inputDir.
func New(inputDir string, handler EventHandler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inputDir: inputDir,
		handler:  handler,
		logger:   log,
		watcher:  watcher,
	}, nil
}
