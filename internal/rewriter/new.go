package rewriter

import (
	"github.com/dcastel/transcript-flow/internal/logger"
)

type implRewriter struct {
	chat          Chat
	contextWindow int
	logger        logger.Logger
}

// New creates a Rewriter that drives pages through the given chat
// collaborator one at a time. contextWindow is the approximate token
// budget of the underlying model, used to warn about oversized pages.
func New(chat Chat, contextWindow int, log logger.Logger) Rewriter {
	return &implRewriter{
		chat:          chat,
		contextWindow: contextWindow,
		logger:        log,
	}
}
