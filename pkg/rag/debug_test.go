package rag_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consulta-ai/consulta-ai/pkg/types"
)

func TestBuildDebugPrompt(t *testing.T) {
	chat := &fakeChat{reply: "SELECT 1"}
	engine := newTestEngine(&memoryFragmentStore{}, chat)

	history := []types.ConversationTurn{
		{Question: "¿Cuántos usuarios hay?", SQL: "SELECT COUNT(*) FROM usuarios", Answer: "Hay 120 usuarios."},
	}
	prompt := engine.BuildDebugPrompt(context.Background(), "¿y cuántas son mujeres?", history)

	assert.True(t, prompt.Contextual)
	assert.Contains(t, prompt.Conversation, "SQL: SELECT COUNT(*) FROM usuarios")
	assert.Contains(t, prompt.FullPrompt, "USER QUESTION:\n¿y cuántas son mujeres?")

	// inspection only, the model is never called
	assert.Zero(t, chat.calls)
}
