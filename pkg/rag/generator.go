package rag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/consulta-ai/consulta-ai/pkg/ai"
	"github.com/consulta-ai/consulta-ai/pkg/types"
)

var ErrNoSQL = fmt.Errorf("no sql generated")

type assembledPrompt struct {
	Contextual   bool
	DBContext    string
	Conversation string
	System       string
	User         string
}

// assemblePrompt runs detection, retrieval and history rendering, and
// composes the two messages sent to the model. Shared by GenerateSQL and
// the debug endpoint.
func (e *Engine) assemblePrompt(ctx context.Context, question string, turns []types.ConversationTurn) assembledPrompt {
	prompt := assembledPrompt{
		Contextual: IsContextual(question),
		System:     ai.PROMPT_GENERATE_SQL_SYSTEM,
	}

	depth := e.cfg.HistoryDepth
	if prompt.Contextual {
		prompt.System += ai.PROMPT_GENERATE_SQL_CONTEXTUAL_HINT
		depth = e.cfg.ContextualHistoryDepth
		if len(turns) == 0 {
			// best effort from here on, the generator will answer
			// without the context the question refers to
			slog.Warn("question flagged contextual but no history supplied", slog.String("question", question))
		}
	}

	prompt.DBContext = e.Retrieve(ctx, question)
	prompt.Conversation = RenderConversation(turns, depth, e.cfg.AnswerExcerptLimit)

	var b strings.Builder
	fmt.Fprintf(&b, "CONTEXT:\n%s\n\n", prompt.DBContext)
	if prompt.Conversation != "" {
		fmt.Fprintf(&b, "CONVERSATION HISTORY:\n%s\n\n", prompt.Conversation)
	}
	fmt.Fprintf(&b, "USER QUESTION:\n%s\n\nSQL QUERY:\n", question)
	prompt.User = b.String()

	return prompt
}

// GenerateSQL turns a natural-language question into a single SQL
// statement. Any failure is logged and surfaced as an error the caller
// maps to a user-facing clarification request; nothing lower-level
// escapes this boundary. The output is not validated as SQL, execution
// is where syntax errors surface.
func (e *Engine) GenerateSQL(ctx context.Context, question string, turns []types.ConversationTurn) (string, error) {
	prompt := e.assemblePrompt(ctx, question, turns)

	callCtx, cancel := context.WithTimeout(ctx, e.cfg.callTimeout())
	defer cancel()

	raw, err := e.chat.Complete(callCtx, prompt.System, prompt.User, ai.CompleteOptions{
		MaxTokens:   e.cfg.SQLMaxTokens,
		Temperature: 0, // SQL generation is a precision task, keep decoding deterministic
	})
	if err != nil {
		slog.Error("sql generation failed", slog.String("question", question), slog.String("error", err.Error()))
		return "", err
	}

	sql := StripSQLFences(raw)
	if sql == "" {
		slog.Error("sql generation returned empty completion", slog.String("question", question))
		return "", ErrNoSQL
	}

	slog.Info("sql generated", slog.String("question", question), slog.String("sql", sql), slog.Bool("contextual", prompt.Contextual))
	return sql, nil
}

// StripSQLFences removes markdown code fences the model tends to wrap
// SQL in despite being told not to.
func StripSQLFences(raw string) string {
	sql := strings.ReplaceAll(raw, "```sql", "")
	sql = strings.ReplaceAll(sql, "```", "")
	return strings.TrimSpace(sql)
}
