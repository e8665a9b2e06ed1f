package downloader

import (
	"github.com/dcastel/transcript-flow/internal/logger"
	"github.com/dcastel/transcript-flow/pkg/executor"
)

type implDownloader struct {
	executor      executor.Executor
	allowPlaylist bool
	logger        logger.Logger
}

// New creates a Downloader backed by the yt-dlp binary.
func New(exec executor.Executor, allowPlaylist bool, log logger.Logger) Downloader {
	return &implDownloader{
		executor:      exec,
		allowPlaylist: allowPlaylist,
		logger:        log,
	}
}
