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

type fakeIntrospector struct {
	tables  []string
	ddl     map[string]string
	listErr error
}

func (f *fakeIntrospector) ListTables(ctx context.Context) ([]string, error) {
	return f.tables, f.listErr
}

func (f *fakeIntrospector) TableDDL(ctx context.Context, name string) (string, error) {
	ddl, ok := f.ddl[name]
	if !ok {
		return "", fmt.Errorf("table %s not found", name)
	}
	return ddl, nil
}

func TestTrainerRun(t *testing.T) {
	store := &memoryFragmentStore{}
	knowledge := rag.NewKnowledgeStore(store, &fakeEmbedder{})
	trainer := rag.NewTrainer(knowledge, &fakeIntrospector{
		tables: []string{"usuarios", "pedidos"},
		ddl: map[string]string{
			"usuarios": "CREATE TABLE usuarios (id INT)",
			"pedidos":  "CREATE TABLE pedidos (id INT)",
		},
	})

	stats := trainer.Run(context.Background(), rag.TrainingContent{
		Documentation: []string{"La tabla usuarios contiene los clientes registrados."},
		Examples: []rag.TrainingExample{
			{Question: "¿Cuántos usuarios hay?", SQL: "SELECT COUNT(*) FROM usuarios"},
		},
	})

	assert.Equal(t, 2, stats.TablesTrained)
	assert.Equal(t, 1, stats.DocsTrained)
	assert.Equal(t, 1, stats.QueriesTrained)
	assert.Zero(t, stats.Errors)
	assert.Len(t, store.fragments, 4)

	counts, err := store.CountByKind(context.Background())
	require.NoError(t, err)
	index := make(map[types.FragmentKind]int64)
	for _, c := range counts {
		index[c.Kind] = c.Total
	}
	assert.Equal(t, int64(2), index[types.FRAGMENT_KIND_SCHEMA])
	assert.Equal(t, int64(1), index[types.FRAGMENT_KIND_DOCUMENTATION])
	assert.Equal(t, int64(1), index[types.FRAGMENT_KIND_EXAMPLE])
}

func TestTrainerIsolatesFailures(t *testing.T) {
	store := &memoryFragmentStore{}
	knowledge := rag.NewKnowledgeStore(store, &fakeEmbedder{})
	trainer := rag.NewTrainer(knowledge, &fakeIntrospector{
		ddl: map[string]string{
			"usuarios": "CREATE TABLE usuarios (id INT)",
		},
	})

	// one table with missing ddl does not abort the rest of the batch
	stats := trainer.Run(context.Background(), rag.TrainingContent{
		Tables:        []string{"usuarios", "desconocida"},
		Documentation: []string{"nota de negocio"},
	})

	assert.Equal(t, 1, stats.TablesTrained)
	assert.Equal(t, 1, stats.DocsTrained)
	assert.Equal(t, 1, stats.Errors)
}

func TestTrainerWithoutIntrospector(t *testing.T) {
	knowledge := rag.NewKnowledgeStore(&memoryFragmentStore{}, &fakeEmbedder{})
	trainer := rag.NewTrainer(knowledge, nil)

	stats := trainer.Run(context.Background(), rag.TrainingContent{
		Tables: []string{"usuarios"},
	})
	assert.Zero(t, stats.TablesTrained)
	assert.Zero(t, stats.Errors)
}
