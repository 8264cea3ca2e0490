package ai

import (
	"context"
)

// ChatAI is the single text-completion operation the core depends on.
// Drivers wrap a concrete inference endpoint; callers never see the
// underlying client errors untranslated.
type ChatAI interface {
	Complete(ctx context.Context, system, user string, opts CompleteOptions) (string, error)
}

type CompleteOptions struct {
	MaxTokens   int
	Temperature float32
}

// EmbeddingAI turns text into vectors for the knowledge index.
type EmbeddingAI interface {
	EmbeddingForQuery(ctx context.Context, content []string) (EmbeddingResult, error)
}

type EmbeddingResult struct {
	Model string
	Data  [][]float32
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
