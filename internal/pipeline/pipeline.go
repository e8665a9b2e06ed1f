package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dcastel/transcript-flow/internal/downloader"
	"github.com/dcastel/transcript-flow/internal/export"
	"github.com/dcastel/transcript-flow/internal/metadata"
	"github.com/dcastel/transcript-flow/internal/paginate"
	"github.com/dcastel/transcript-flow/internal/rewriter"
)

const (
	metadataName   = "video.info.json"
	subtitlesName  = "subtitles.txt"
	transcriptName = "transcript.txt"
	promptName     = "transcript.prompt.md"
)

// Process runs one source through the full pipeline. Every failure is
// converted into a typed Result; nothing escapes to abort siblings.
func (p *implPipeline) Process(ctx context.Context, url string) Result {
	startTime := time.Now()
	res := Result{URL: url}

	p.logger.Info(ctx, "Starting source: %s", url)

	// CAPTIONS_CHECK: a caption track is preferred over transcribing.
	workDir, err := p.downloader.FetchCaptions(ctx, url, p.cfg.Paths.Downloads)

	var text string
	switch {
	case err == nil:
		res.WorkDir = workDir
		res.UsedCaptions = true
		text, err = p.useCaptions(ctx, workDir)
		if err != nil {
			return p.fail(ctx, res, reasonForCaptionErr(err), err)
		}

	case errors.Is(err, downloader.ErrNoCaptions):
		p.logger.Info(ctx, "No captions for %s, transcribing audio", url)
		workDir, text, err = p.transcribeAudio(ctx, url)
		res.WorkDir = workDir
		if err != nil {
			return p.fail(ctx, res, ReasonIOFailure, err)
		}

	default:
		return p.fail(ctx, res, ReasonIOFailure, err)
	}

	// PAGINATE: build the metadata header, prepend it to the
	// instructions once and to every page.
	header, err := metadata.ExtractFile(filepath.Join(workDir, metadataName))
	if err != nil {
		return p.fail(ctx, res, reasonForMetadataErr(err), err)
	}

	instructions, err := p.readInstructions()
	if err != nil {
		return p.fail(ctx, res, ReasonIOFailure, err)
	}
	instructions += header

	pages := paginate.Paginate(text, p.cfg.Paginate.ChunkSize, p.cfg.Paginate.Overlap)
	for i := range pages {
		pages[i] = header + pages[i]
	}
	p.logger.Info(ctx, "Paginated transcript into %d pages", len(pages))

	// REWRITE: all-or-nothing; no fallback to the unrewritten text.
	outputs, err := p.rewriter.Rewrite(ctx, pages, instructions)
	if err != nil {
		return p.fail(ctx, res, reasonForRewriteErr(err), err)
	}

	// PERSIST
	transcriptPath := filepath.Join(workDir, transcriptName)
	if err := os.WriteFile(transcriptPath, []byte(strings.Join(outputs, "")), 0644); err != nil {
		return p.fail(ctx, res, ReasonIOFailure, fmt.Errorf("write transcript: %w", err))
	}
	res.TranscriptPath = transcriptPath

	if p.cfg.Export.Docx {
		docxPath := filepath.Join(workDir, "transcript.docx")
		if err := export.WriteTranscript(filepath.Base(workDir), strings.Join(outputs, ""), docxPath); err != nil {
			p.logger.Warn(ctx, "Failed to export DOCX for %s: %v", url, err)
		}
	}

	p.logger.Info(ctx, "Source done in %s: %s", time.Since(startTime), transcriptPath)
	return res
}

// readInstructions loads the rewriting prompt from the prompts dir.
func (p *implPipeline) readInstructions() (string, error) {
	path := filepath.Join(p.cfg.Paths.Prompts, promptName)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read instructions: %w", err)
	}
	return string(data), nil
}

func (p *implPipeline) fail(ctx context.Context, res Result, reason Reason, err error) Result {
	res.Reason = reason
	res.Err = err
	p.logger.Error(ctx, "Source failed (%s): %s: %v", reason, res.URL, err)
	return res
}

func reasonForMetadataErr(err error) Reason {
	switch {
	case errors.Is(err, metadata.ErrNotFound):
		return ReasonNotFound
	case errors.Is(err, metadata.ErrInvalidFormat):
		return ReasonInvalidFormat
	default:
		return ReasonIOFailure
	}
}

func reasonForRewriteErr(err error) Reason {
	if errors.Is(err, rewriter.ErrNoOutput) {
		return ReasonNoRewriteOutput
	}
	return ReasonServiceUnavailable
}

func reasonForCaptionErr(err error) Reason {
	if errors.Is(err, errCaptionMissing) {
		return ReasonInconsistentState
	}
	return ReasonIOFailure
}
