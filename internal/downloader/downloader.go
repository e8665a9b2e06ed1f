package downloader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNoCaptions means the source exists but carries no caption track.
// It is an expected outcome, not a download failure.
var ErrNoCaptions = errors.New("source has no captions")

// FetchCaptions downloads caption sidecars (manual or auto-generated)
// and the metadata document without touching the media itself.
func (d *implDownloader) FetchCaptions(ctx context.Context, url, targetDir string) (string, error) {
	workDir, err := d.resolveWorkDir(ctx, url, targetDir)
	if err != nil {
		return "", err
	}

	d.logger.Info(ctx, "Fetching captions for %s into %s", url, workDir)

	args := []string{
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-format", "vtt",
		"--write-info-json",
		"--restrict-filenames",
		"-o", filepath.Join(workDir, "video.%(ext)s"),
	}
	args = d.appendPlaylistFlag(args)
	args = append(args, url)

	if _, err := d.executor.Execute(ctx, "yt-dlp", args...); err != nil {
		return "", fmt.Errorf("yt-dlp fetch captions: %w", err)
	}

	// yt-dlp reports success even when the source has no caption track,
	// so the artifact itself is the signal.
	matches, err := filepath.Glob(filepath.Join(workDir, "video*.vtt"))
	if err != nil {
		return "", fmt.Errorf("scan caption files: %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoCaptions, url)
	}

	return workDir, nil
}

// FetchAudio downloads the best audio stream, converts it to WAV and
// writes the metadata document alongside it.
func (d *implDownloader) FetchAudio(ctx context.Context, url, targetDir string) (string, error) {
	workDir, err := d.resolveWorkDir(ctx, url, targetDir)
	if err != nil {
		return "", err
	}

	d.logger.Info(ctx, "Fetching audio for %s into %s", url, workDir)

	args := []string{
		"-f", "bestaudio/best",
		"--extract-audio",
		"--audio-format", "wav",
		"--audio-quality", "192",
		"--write-info-json",
		"--restrict-filenames",
		"-o", filepath.Join(workDir, "video.%(ext)s"),
	}
	args = d.appendPlaylistFlag(args)
	args = append(args, url)

	if _, err := d.executor.Execute(ctx, "yt-dlp", args...); err != nil {
		return "", fmt.Errorf("yt-dlp fetch audio: %w", err)
	}

	return workDir, nil
}

// resolveWorkDir asks yt-dlp for the source's sanitized title and
// derives the per-source working directory from it, so the caption and
// audio paths for the same source land in the same place.
func (d *implDownloader) resolveWorkDir(ctx context.Context, url, targetDir string) (string, error) {
	args := []string{
		"--skip-download",
		"--restrict-filenames",
		"--print", "title",
	}
	args = d.appendPlaylistFlag(args)
	args = append(args, url)

	out, err := d.executor.Execute(ctx, "yt-dlp", args...)
	if err != nil {
		return "", fmt.Errorf("yt-dlp resolve title: %w", err)
	}

	title := strings.TrimSpace(out)
	if title == "" {
		return "", fmt.Errorf("yt-dlp returned empty title for %s", url)
	}
	// Playlists print one title per line; the first names the directory.
	if idx := strings.IndexByte(title, '\n'); idx >= 0 {
		title = title[:idx]
	}

	return filepath.Join(targetDir, title), nil
}

func (d *implDownloader) appendPlaylistFlag(args []string) []string {
	if !d.allowPlaylist {
		return append(args, "--no-playlist")
	}
	return args
}
