package rewriter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/dcastel/transcript-flow/internal/logger"
)

type implGeminiChat struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// NewGeminiChat creates a Chat backed by the Gemini API, rotating
// through the supplied API keys when one is rate limited.
func NewGeminiChat(apiKeys []string, model string, log logger.Logger) Chat {
	return &implGeminiChat{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}

// Complete sends one system+user exchange to Gemini and returns the
// response text. Rotates API keys on 429 / quota errors.
func (g *implGeminiChat) Complete(ctx context.Context, system, user string) (string, error) {
	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		key, keyNum := g.takeKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey()
			continue
		}

		cfg := &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: system}},
			},
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(user), cfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", keyNum+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", ErrNoOutput
	}

	return "", fmt.Errorf("%w: all API keys exhausted: %v", ErrServiceUnavailable, lastErr)
}

// takeKey returns the current key and its index. One Chat instance is
// shared by every concurrent source, so key state is lock-guarded.
func (g *implGeminiChat) takeKey() (string, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.apiKeys[g.currentKey], g.currentKey
}

func (g *implGeminiChat) rotateKey() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}
