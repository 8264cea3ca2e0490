package rag

import (
	"fmt"
	"strings"

	"github.com/consulta-ai/consulta-ai/pkg/types"
)

// RenderConversation formats the last limit turns for the prompt. Prior
// answers are hard-truncated to excerptLimit runes so one verbose answer
// cannot blow up the prompt. Empty history renders to an empty string.
func RenderConversation(turns []types.ConversationTurn, limit, excerptLimit int) string {
	if len(turns) == 0 || limit <= 0 {
		return ""
	}

	if len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}

	var b strings.Builder
	for i, turn := range turns {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "User: %s\n", strings.TrimSpace(turn.Question))
		if turn.SQL != "" {
			fmt.Fprintf(&b, "SQL: %s\n", strings.TrimSpace(turn.SQL))
		}
		if turn.Answer != "" {
			fmt.Fprintf(&b, "Answer: %s\n", TruncateAnswer(turn.Answer, excerptLimit))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// TruncateAnswer cuts answer to at most limit runes plus an ellipsis
// marker.
func TruncateAnswer(answer string, limit int) string {
	answer = strings.TrimSpace(answer)
	if limit <= 0 {
		return answer
	}

	runes := []rune(answer)
	if len(runes) <= limit {
		return answer
	}
	return string(runes[:limit]) + "..."
}
