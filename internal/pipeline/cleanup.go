package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// deleteMediaFiles removes transient media artifacts ("video.*") from
// the working directory once transcription has succeeded. The metadata
// document and caption files are never deleted. The step is idempotent:
// files that are already gone are not errors, and any removal failure
// is logged rather than propagated.
func (p *implPipeline) deleteMediaFiles(ctx context.Context, dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		p.logger.Warn(ctx, "Media cleanup skipped, cannot read %s: %v", dir, err)
		return
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasPrefix(name, "video") {
			continue
		}
		if name == metadataName || strings.HasSuffix(name, ".vtt") {
			continue
		}

		path := filepath.Join(dir, name)
		if err := os.Remove(path); err != nil {
			if !os.IsNotExist(err) {
				p.logger.Warn(ctx, "Failed to delete %s: %v", path, err)
			}
			continue
		}
		p.logger.Info(ctx, "Deleted %s", path)
	}
}
