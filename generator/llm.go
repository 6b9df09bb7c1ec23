package generator

import (
	"context"
	"time"
)

// LLMClient is the text generation capability used for every section.
// Implementations may block on network I/O; the caller waits for each call
// before building the next prompt.
type LLMClient interface {
	Generate(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error)
}

// LLMSettings carries the provider configuration shared by implementations.
type LLMSettings struct {
	Provider   string
	Model      string
	APIKey     string
	BaseURL    string
	MaxRetries int
	Timeout    time.Duration
}
