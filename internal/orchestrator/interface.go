package orchestrator

import (
	"context"

	"github.com/dcastel/transcript-flow/internal/pipeline"
)

// Orchestrator drives the source pipeline over a URL list, batch by
// batch, isolating failures per source.
type Orchestrator interface {
	Run(ctx context.Context, urlFile string) ([]pipeline.Result, error)
}
