package orchestrator

import (
	"github.com/dcastel/transcript-flow/internal/logger"
	"github.com/dcastel/transcript-flow/internal/pipeline"
)

type implOrchestrator struct {
	pipeline      pipeline.Pipeline
	batchSize     int
	maxConcurrent int
	logger        logger.Logger
}

// New creates an Orchestrator. maxConcurrent bounds how many sources
// run at once within a batch; 1 keeps processing strictly sequential.
func New(p pipeline.Pipeline, batchSize, maxConcurrent int, log logger.Logger) Orchestrator {
	if batchSize <= 0 {
		batchSize = 10
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &implOrchestrator{
		pipeline:      p,
		batchSize:     batchSize,
		maxConcurrent: maxConcurrent,
		logger:        log,
	}
}
