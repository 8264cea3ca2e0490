package rag_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consulta-ai/consulta-ai/pkg/rag"
	"github.com/consulta-ai/consulta-ai/pkg/types"
)

func TestRenderContext(t *testing.T) {
	matches := []types.FragmentMatch{
		{Kind: types.FRAGMENT_KIND_SCHEMA, Content: "CREATE TABLE usuarios (id INT)"},
		{Kind: types.FRAGMENT_KIND_DOCUMENTATION, Content: "La tabla usuarios contiene los clientes activos."},
		{Kind: types.FRAGMENT_KIND_EXAMPLE, Content: "Question: ¿Cuántos usuarios hay?\nSQL: SELECT COUNT(*) FROM usuarios"},
	}

	rendered := rag.RenderContext(matches)
	assert.Equal(t,
		"Table Schema:\nCREATE TABLE usuarios (id INT)\n\n"+
			"Documentation:\nLa tabla usuarios contiene los clientes activos.\n\n"+
			"Example:\nQuestion: ¿Cuántos usuarios hay?\nSQL: SELECT COUNT(*) FROM usuarios",
		rendered)

	assert.Empty(t, rag.RenderContext(nil))
}

func TestRetrieve(t *testing.T) {
	store := &memoryFragmentStore{}
	knowledge := rag.NewKnowledgeStore(store, &fakeEmbedder{})

	ctx := context.Background()
	_, ok := knowledge.AddSchema(ctx, "CREATE TABLE ventas (id INT, total DECIMAL)")
	assert.True(t, ok)

	engine := newTestEngine(store, &fakeChat{})
	rendered := engine.Retrieve(ctx, "¿cuánto se vendió?")
	assert.Contains(t, rendered, "Table Schema:\nCREATE TABLE ventas")
}

func TestRetrieveDegradesToEmpty(t *testing.T) {
	knowledge := rag.NewKnowledgeStore(&memoryFragmentStore{}, &fakeEmbedder{fail: true})
	matches := knowledge.Search(context.Background(), "¿cuántos usuarios hay?", 5)
	assert.Empty(t, matches)
}
