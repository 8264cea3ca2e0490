package rag_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consulta-ai/consulta-ai/pkg/rag"
	"github.com/consulta-ai/consulta-ai/pkg/types"
)

func TestRenderConversation(t *testing.T) {
	turns := []types.ConversationTurn{
		{Question: "¿Cuántos clientes hay?", SQL: "SELECT COUNT(*) FROM clientes", Answer: "Hay 120 clientes."},
		{Question: "¿y cuántos son de Madrid?", SQL: "SELECT COUNT(*) FROM clientes WHERE ciudad = 'Madrid'", Answer: "De ellos, 34 son de Madrid."},
	}

	rendered := rag.RenderConversation(turns, 5, 180)
	assert.Contains(t, rendered, "User: ¿Cuántos clientes hay?")
	assert.Contains(t, rendered, "SQL: SELECT COUNT(*) FROM clientes WHERE ciudad = 'Madrid'")
	assert.Contains(t, rendered, "Answer: Hay 120 clientes.")

	assert.Empty(t, rag.RenderConversation(nil, 5, 180))
}

func TestRenderConversationWindow(t *testing.T) {
	var turns []types.ConversationTurn
	for i := 0; i < 9; i++ {
		turns = append(turns, types.ConversationTurn{
			Question: "pregunta " + strings.Repeat("x", i+1),
			Answer:   "respuesta",
		})
	}

	rendered := rag.RenderConversation(turns, 5, 180)
	// only the last five turns survive
	assert.NotContains(t, rendered, "pregunta xxxx\n")
	assert.Contains(t, rendered, "pregunta "+strings.Repeat("x", 5))
	assert.Contains(t, rendered, "pregunta "+strings.Repeat("x", 9))
	require.Equal(t, 5, strings.Count(rendered, "User: "))
}

func TestTruncateAnswer(t *testing.T) {
	long := strings.Repeat("á", 200)
	truncated := rag.TruncateAnswer(long, 180)
	assert.Equal(t, 183, len([]rune(truncated)))
	assert.True(t, strings.HasSuffix(truncated, "..."))

	short := "respuesta corta"
	assert.Equal(t, short, rag.TruncateAnswer(short, 180))
}
