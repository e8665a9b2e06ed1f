package rewriter

import "context"

// Chat is the LLM collaborator: one system-plus-user exchange returning
// a single text response.
type Chat interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Rewriter sends ordered transcript pages through the chat collaborator
// and returns the rewritten pages in the same order. The contract is
// all-or-nothing: a failure on any page discards the whole result.
type Rewriter interface {
	Rewrite(ctx context.Context, pages []string, instructions string) ([]string, error)
}
