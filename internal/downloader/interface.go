package downloader

import "context"

// Downloader acquires remote media artifacts into a per-source working
// directory. Implementations wrap yt-dlp; the pipeline only depends on
// the filename conventions inside the returned directory.
type Downloader interface {
	// FetchCaptions downloads the caption sidecar and metadata document
	// for url into a working directory under targetDir and returns that
	// directory. Returns ErrNoCaptions when the source has no captions.
	FetchCaptions(ctx context.Context, url, targetDir string) (string, error)

	// FetchAudio downloads the source's audio as video.wav plus the
	// metadata document and returns the working directory.
	FetchAudio(ctx context.Context, url, targetDir string) (string, error)
}
