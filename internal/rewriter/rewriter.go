package rewriter

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrServiceUnavailable means the chat backend could not be reached
	// or refused the request.
	ErrServiceUnavailable = errors.New("rewrite service unavailable")
	// ErrNoOutput means the backend answered but produced no text.
	ErrNoOutput = errors.New("rewrite produced no output")
)

// charsPerToken is the rough character-to-token ratio used for the
// context window warning.
const charsPerToken = 4

// Rewrite sends each page, in order, as the user turn of a chat call
// with the fixed instructions as the system turn. Pages are processed
// strictly sequentially; the backend may hold session state that later
// pages depend on. Any single-page failure aborts the whole run and no
// partial results are returned.
func (r *implRewriter) Rewrite(ctx context.Context, pages []string, instructions string) ([]string, error) {
	if len(pages) == 0 {
		return nil, nil
	}

	outputs := make([]string, 0, len(pages))

	for i, page := range pages {
		if r.contextWindow > 0 && len(instructions)+len(page) > r.contextWindow*charsPerToken {
			r.logger.Warn(ctx, "Page %d/%d may exceed the model context window (%d chars)",
				i+1, len(pages), len(instructions)+len(page))
		}

		r.logger.Debug(ctx, "Rewriting page %d/%d", i+1, len(pages))

		text, err := r.chat.Complete(ctx, instructions, page)
		if err != nil {
			return nil, fmt.Errorf("rewrite page %d/%d: %w", i+1, len(pages), err)
		}
		if text == "" {
			return nil, fmt.Errorf("rewrite page %d/%d: %w", i+1, len(pages), ErrNoOutput)
		}

		outputs = append(outputs, text)
	}

	return outputs, nil
}
