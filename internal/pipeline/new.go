package pipeline

import (
	"github.com/dcastel/transcript-flow/internal/caption"
	"github.com/dcastel/transcript-flow/internal/config"
	"github.com/dcastel/transcript-flow/internal/downloader"
	"github.com/dcastel/transcript-flow/internal/logger"
	"github.com/dcastel/transcript-flow/internal/rewriter"
	"github.com/dcastel/transcript-flow/internal/transcriber"
)

type implPipeline struct {
	cfg         *config.Config
	downloader  downloader.Downloader
	transcriber transcriber.Transcriber
	rewriter    rewriter.Rewriter
	normalizer  caption.Normalizer
	logger      logger.Logger
}

// New creates a Pipeline instance with its collaborators injected.
func New(cfg *config.Config, dl downloader.Downloader, tr transcriber.Transcriber, rw rewriter.Rewriter, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		downloader:  dl,
		transcriber: tr,
		rewriter:    rw,
		normalizer:  caption.Normalizer{KeepAnnotations: cfg.Caption.KeepAnnotations},
		logger:      log,
	}
}
