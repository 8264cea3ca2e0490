package rag_test

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"

	"github.com/consulta-ai/consulta-ai/pkg/ai"
	"github.com/consulta-ai/consulta-ai/pkg/i18n"
	"github.com/consulta-ai/consulta-ai/pkg/rag"
	"github.com/consulta-ai/consulta-ai/pkg/types"
)

type fakeEmbedder struct {
	fail bool
}

func (f *fakeEmbedder) EmbeddingForQuery(ctx context.Context, content []string) (ai.EmbeddingResult, error) {
	if f.fail {
		return ai.EmbeddingResult{}, fmt.Errorf("embedding backend down")
	}
	data := make([][]float32, len(content))
	for i := range content {
		data[i] = []float32{0.1, 0.2, 0.3}
	}
	return ai.EmbeddingResult{Model: "test-embedding", Data: data}, nil
}

type fakeChat struct {
	reply string
	err   error

	calls      int
	lastSystem string
	lastUser   string
	lastOpts   ai.CompleteOptions
}

func (f *fakeChat) Complete(ctx context.Context, system, user string, opts ai.CompleteOptions) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastUser = user
	f.lastOpts = opts
	return f.reply, f.err
}

type memoryFragmentStore struct {
	fragments []types.Fragment
	createErr error
}

func (m *memoryFragmentStore) Create(ctx context.Context, data types.Fragment) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.fragments = append(m.fragments, data)
	return nil
}

func (m *memoryFragmentStore) Query(ctx context.Context, embedding pgvector.Vector, limit uint64) ([]types.FragmentMatch, error) {
	var matches []types.FragmentMatch
	for _, fragment := range m.fragments {
		if uint64(len(matches)) >= limit {
			break
		}
		matches = append(matches, types.FragmentMatch{
			ID:      fragment.ID,
			Kind:    fragment.Kind,
			Content: fragment.Content,
			Cos:     0.9,
		})
	}
	return matches, nil
}

func (m *memoryFragmentStore) ListAll(ctx context.Context, opts types.GetFragmentsOptions) ([]types.Fragment, error) {
	if opts.Kind == "" && opts.ID == "" {
		return m.fragments, nil
	}
	var filtered []types.Fragment
	for _, fragment := range m.fragments {
		if opts.Kind != "" && fragment.Kind != opts.Kind {
			continue
		}
		if opts.ID != "" && fragment.ID != opts.ID {
			continue
		}
		filtered = append(filtered, fragment)
	}
	return filtered, nil
}

func (m *memoryFragmentStore) Delete(ctx context.Context, id string) error {
	for i, fragment := range m.fragments {
		if fragment.ID == id {
			m.fragments = append(m.fragments[:i], m.fragments[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memoryFragmentStore) DeleteAll(ctx context.Context) error {
	m.fragments = nil
	return nil
}

func (m *memoryFragmentStore) Total(ctx context.Context) (int64, error) {
	return int64(len(m.fragments)), nil
}

func (m *memoryFragmentStore) CountByKind(ctx context.Context) ([]types.KindCount, error) {
	index := make(map[types.FragmentKind]int64)
	for _, fragment := range m.fragments {
		index[fragment.Kind]++
	}
	var counts []types.KindCount
	for kind, total := range index {
		counts = append(counts, types.KindCount{Kind: kind, Total: total})
	}
	return counts, nil
}

func newTestEngine(store *memoryFragmentStore, chat *fakeChat) *rag.Engine {
	knowledge := rag.NewKnowledgeStore(store, &fakeEmbedder{})
	return rag.NewEngine(knowledge, chat, i18n.NewLocalizer("en", "es"), rag.Config{})
}
