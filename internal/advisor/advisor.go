package advisor

import "context"

// Advisor produces free-form text for a prompt.
// Implementations may call an LLM or return canned results (for tests).
type Advisor interface {
	// GenerateText returns the model's plain-text completion for prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
