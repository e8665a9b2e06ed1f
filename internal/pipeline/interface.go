package pipeline

import "context"

// Pipeline processes one media source end to end: caption discovery or
// transcription, normalization, pagination, LLM rewriting and
// persistence of the final transcript.
type Pipeline interface {
	Process(ctx context.Context, url string) Result
}
