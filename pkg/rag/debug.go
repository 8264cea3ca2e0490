package rag

import (
	"context"
	"log/slog"

	"github.com/pkoukk/tiktoken-go"

	"github.com/consulta-ai/consulta-ai/pkg/types"
)

// DebugPrompt materializes everything GenerateSQL would send to the
// model without calling it, for inspecting retrieval and prompt
// assembly.
type DebugPrompt struct {
	Question         string `json:"question"`
	Contextual       bool   `json:"contextual"`
	ContextRetrieved string `json:"context_retrieved"`
	Conversation     string `json:"conversation"`
	FullPrompt       string `json:"full_prompt"`
	EstimatedTokens  int    `json:"estimated_tokens"`
}

func (e *Engine) BuildDebugPrompt(ctx context.Context, question string, turns []types.ConversationTurn) DebugPrompt {
	prompt := e.assemblePrompt(ctx, question, turns)
	full := prompt.System + "\n\n" + prompt.User

	return DebugPrompt{
		Question:         question,
		Contextual:       prompt.Contextual,
		ContextRetrieved: prompt.DBContext,
		Conversation:     prompt.Conversation,
		FullPrompt:       full,
		EstimatedTokens:  estimateTokens(full),
	}
}

func estimateTokens(text string) int {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		slog.Debug("tiktoken encoding unavailable", slog.String("error", err.Error()))
		return 0
	}
	return len(enc.Encode(text, nil, nil))
}
