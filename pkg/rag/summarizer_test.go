package rag_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consulta-ai/consulta-ai/pkg/types"
)

func TestSummarizeEmptyResults(t *testing.T) {
	chat := &fakeChat{reply: "no debería llamarse"}
	engine := newTestEngine(&memoryFragmentStore{}, chat)

	answer := engine.Summarize(context.Background(), "¿Cuántos usuarios hay?", "SELECT * FROM usuarios WHERE 1=0", types.ResultSet{}, nil)
	assert.Equal(t, "No se encontraron resultados para tu consulta. Parece que no hay datos que coincidan con lo que buscas.", answer)
	assert.Zero(t, chat.calls)
}

func TestSummarize(t *testing.T) {
	chat := &fakeChat{reply: "Actualmente hay 2,977 usuarios registrados en el sistema."}
	engine := newTestEngine(&memoryFragmentStore{}, chat)

	results := types.ResultSet{
		Columns: []string{"COUNT(*)"},
		Rows:    [][]any{{int64(2977)}},
	}
	answer := engine.Summarize(context.Background(), "¿Cuántos usuarios hay?", "SELECT COUNT(*) FROM usuarios", results, nil)
	assert.Equal(t, "Actualmente hay 2,977 usuarios registrados en el sistema.", answer)

	// positional aggregate gets relabeled before reaching the model
	assert.Contains(t, chat.lastUser, "count: 2977")
	assert.NotContains(t, chat.lastUser, "COUNT(*):")
	assert.InDelta(t, 0.3, chat.lastOpts.Temperature, 0.001)
	assert.Equal(t, 500, chat.lastOpts.MaxTokens)
}

func TestSummarizeTruncationNote(t *testing.T) {
	chat := &fakeChat{reply: "Se encontraron muchos pedidos."}
	engine := newTestEngine(&memoryFragmentStore{}, chat)

	results := types.ResultSet{Columns: []string{"id"}}
	for i := 0; i < 120; i++ {
		results.Rows = append(results.Rows, []any{int64(i)})
	}

	engine.Summarize(context.Background(), "dame la lista de pedidos", "SELECT id FROM pedidos", results, nil)
	assert.Contains(t, chat.lastUser, "encontró 120 resultados en total, pero solo se muestran los primeros 50")
}

func TestSummarizeFallbacks(t *testing.T) {
	ctx := context.Background()
	failing := &fakeChat{err: fmt.Errorf("model unavailable")}
	engine := newTestEngine(&memoryFragmentStore{}, failing)

	count := types.ResultSet{Columns: []string{"COUNT(*)"}, Rows: [][]any{{int64(12977)}}}
	answer := engine.Summarize(ctx, "¿Cuántos usuarios hay?", "SELECT COUNT(*) FROM usuarios", count, nil)
	assert.Equal(t, "Según los datos, hay 12.977 registros que cumplen con tu consulta.", answer)

	named := types.ResultSet{Columns: []string{"nombre"}, Rows: [][]any{{"María"}}}
	answer = engine.Summarize(ctx, "¿quién es el mejor cliente?", "SELECT nombre FROM clientes LIMIT 1", named, nil)
	assert.Equal(t, "Encontré que el resultado es: María", answer)

	positional := types.ResultSet{Columns: []string{"MAX(total)"}, Rows: [][]any{{int64(450)}}}
	answer = engine.Summarize(ctx, "¿cuál fue la venta más alta?", "SELECT MAX(total) FROM ventas", positional, nil)
	assert.Equal(t, "El valor encontrado es: 450", answer)

	multi := types.ResultSet{
		Columns: []string{"id", "nombre"},
		Rows:    [][]any{{int64(1), "Ana"}, {int64(2), "Luis"}, {int64(3), "Eva"}},
	}
	answer = engine.Summarize(ctx, "lista de clientes", "SELECT id, nombre FROM clientes", multi, nil)
	assert.Equal(t, "Se encontraron 3 resultados para tu consulta.", answer)
}

func TestSummarizeFallbackOnEmptyCompletion(t *testing.T) {
	engine := newTestEngine(&memoryFragmentStore{}, &fakeChat{reply: "   "})

	count := types.ResultSet{Columns: []string{"COUNT(*)"}, Rows: [][]any{{int64(12)}}}
	answer := engine.Summarize(context.Background(), "¿cuántos pedidos hay?", "SELECT COUNT(*) FROM pedidos", count, nil)
	require.NotEmpty(t, answer)
	assert.Equal(t, "Según los datos, hay 12 registros que cumplen con tu consulta.", answer)
}
