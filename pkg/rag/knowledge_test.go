package rag_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consulta-ai/consulta-ai/pkg/rag"
	"github.com/consulta-ai/consulta-ai/pkg/types"
)

func TestKnowledgeAddExample(t *testing.T) {
	store := &memoryFragmentStore{}
	knowledge := rag.NewKnowledgeStore(store, &fakeEmbedder{})

	ctx := context.Background()
	id, ok := knowledge.AddExample(ctx, "¿Cuántos usuarios hay?", "SELECT COUNT(*) FROM usuarios")
	require.True(t, ok)
	require.NotEmpty(t, id)

	require.Len(t, store.fragments, 1)
	fragment := store.fragments[0]
	assert.Equal(t, types.FRAGMENT_KIND_EXAMPLE, fragment.Kind)
	assert.Equal(t, "Question: ¿Cuántos usuarios hay?\nSQL: SELECT COUNT(*) FROM usuarios", fragment.Content)
	assert.Equal(t, "SELECT COUNT(*) FROM usuarios", fragment.SQL)
}

func TestKnowledgeAddFailures(t *testing.T) {
	ctx := context.Background()

	knowledge := rag.NewKnowledgeStore(&memoryFragmentStore{}, &fakeEmbedder{})
	_, ok := knowledge.AddDocumentation(ctx, "")
	assert.False(t, ok)

	knowledge = rag.NewKnowledgeStore(&memoryFragmentStore{}, &fakeEmbedder{fail: true})
	_, ok = knowledge.AddSchema(ctx, "CREATE TABLE usuarios (id INT)")
	assert.False(t, ok)

	knowledge = rag.NewKnowledgeStore(&memoryFragmentStore{createErr: fmt.Errorf("index down")}, &fakeEmbedder{})
	_, ok = knowledge.AddSchema(ctx, "CREATE TABLE usuarios (id INT)")
	assert.False(t, ok)
}

func TestKnowledgeRemoveAndReset(t *testing.T) {
	store := &memoryFragmentStore{}
	knowledge := rag.NewKnowledgeStore(store, &fakeEmbedder{})

	ctx := context.Background()
	id, ok := knowledge.AddDocumentation(ctx, "nota uno")
	require.True(t, ok)
	_, ok = knowledge.AddDocumentation(ctx, "nota dos")
	require.True(t, ok)
	assert.Equal(t, int64(2), knowledge.Count(ctx))
	assert.Len(t, knowledge.ListAll(ctx, types.FRAGMENT_KIND_DOCUMENTATION), 2)
	assert.Empty(t, knowledge.ListAll(ctx, types.FRAGMENT_KIND_SCHEMA))

	assert.True(t, knowledge.Remove(ctx, id))
	// unknown ids remove silently
	assert.True(t, knowledge.Remove(ctx, "no-such-id"))
	assert.Equal(t, int64(1), knowledge.Count(ctx))

	require.NoError(t, knowledge.Reset(ctx))
	assert.Zero(t, knowledge.Count(ctx))
	assert.Empty(t, knowledge.ListAll(ctx, ""))
}
