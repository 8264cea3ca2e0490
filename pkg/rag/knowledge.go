package rag

import (
	"context"
	"log/slog"

	"github.com/pgvector/pgvector-go"

	"github.com/consulta-ai/consulta-ai/app/store"
	"github.com/consulta-ai/consulta-ai/pkg/ai"
	"github.com/consulta-ai/consulta-ai/pkg/types"
	"github.com/consulta-ai/consulta-ai/pkg/utils"
)

// KnowledgeStore embeds and persists trained fragments. Lower-layer I/O
// failures are absorbed here: searches degrade to "no context" and never
// abort the question pipeline.
type KnowledgeStore struct {
	fragments store.FragmentStore
	embedder  ai.EmbeddingAI
}

func NewKnowledgeStore(fragments store.FragmentStore, embedder ai.EmbeddingAI) *KnowledgeStore {
	return &KnowledgeStore{
		fragments: fragments,
		embedder:  embedder,
	}
}

// AddSchema trains one table DDL.
func (s *KnowledgeStore) AddSchema(ctx context.Context, ddl string) (string, bool) {
	return s.add(ctx, types.Fragment{
		Kind:    types.FRAGMENT_KIND_SCHEMA,
		Content: ddl,
	})
}

// AddDocumentation trains one free-text business note.
func (s *KnowledgeStore) AddDocumentation(ctx context.Context, doc string) (string, bool) {
	return s.add(ctx, types.Fragment{
		Kind:    types.FRAGMENT_KIND_DOCUMENTATION,
		Content: doc,
	})
}

// AddExample trains one question/SQL pair. The embedded content encodes
// both halves in a fixed template so the pair stays reconstructible.
func (s *KnowledgeStore) AddExample(ctx context.Context, question, sql string) (string, bool) {
	return s.add(ctx, types.Fragment{
		Kind:     types.FRAGMENT_KIND_EXAMPLE,
		Content:  types.ExampleContent(question, sql),
		Question: question,
		SQL:      sql,
	})
}

func (s *KnowledgeStore) add(ctx context.Context, fragment types.Fragment) (string, bool) {
	if fragment.Content == "" {
		slog.Warn("refusing to train empty fragment", slog.String("kind", string(fragment.Kind)))
		return "", false
	}

	embedding, err := s.embedder.EmbeddingForQuery(ctx, []string{fragment.Content})
	if err != nil || len(embedding.Data) == 0 {
		slog.Error("failed to embed fragment", slog.String("kind", string(fragment.Kind)), slog.Any("error", err))
		return "", false
	}

	fragment.ID = utils.GenFragmentID()
	fragment.Embedding = pgvector.NewVector(embedding.Data[0])

	if err = s.fragments.Create(ctx, fragment); err != nil {
		slog.Error("failed to persist fragment", slog.String("kind", string(fragment.Kind)), slog.String("error", err.Error()))
		return "", false
	}

	return fragment.ID, true
}

// Search returns up to topN fragments ranked by cosine similarity.
// An unreachable index or failed embedding yields an empty result, not
// an error.
func (s *KnowledgeStore) Search(ctx context.Context, question string, topN int) []types.FragmentMatch {
	embedding, err := s.embedder.EmbeddingForQuery(ctx, []string{question})
	if err != nil || len(embedding.Data) == 0 {
		slog.Error("failed to embed question for retrieval", slog.Any("error", err))
		return nil
	}

	matches, err := s.fragments.Query(ctx, pgvector.NewVector(embedding.Data[0]), uint64(topN))
	if err != nil {
		slog.Error("fragment similarity query failed", slog.String("error", err.Error()))
		return nil
	}
	return matches
}

// ListAll enumerates trained fragments for administrative inspection,
// optionally restricted to one kind.
func (s *KnowledgeStore) ListAll(ctx context.Context, kind types.FragmentKind) []types.Fragment {
	fragments, err := s.fragments.ListAll(ctx, types.GetFragmentsOptions{Kind: kind})
	if err != nil {
		slog.Error("failed to list fragments", slog.String("error", err.Error()))
		return nil
	}
	return fragments
}

// Remove deletes by id; removing an unknown id succeeds silently.
func (s *KnowledgeStore) Remove(ctx context.Context, id string) bool {
	if err := s.fragments.Delete(ctx, id); err != nil {
		slog.Error("failed to remove fragment", slog.String("id", id), slog.String("error", err.Error()))
		return false
	}
	return true
}

func (s *KnowledgeStore) Count(ctx context.Context) int64 {
	total, err := s.fragments.Total(ctx)
	if err != nil {
		slog.Error("failed to count fragments", slog.String("error", err.Error()))
		return 0
	}
	return total
}

// CountByKind reports one total per fragment kind.
func (s *KnowledgeStore) CountByKind(ctx context.Context) []types.KindCount {
	counts, err := s.fragments.CountByKind(ctx)
	if err != nil {
		slog.Error("failed to count fragments by kind", slog.String("error", err.Error()))
		return nil
	}
	return counts
}

// Reset wipes the whole index. Retraining is a deliberate
// wipe-and-reload: fragment ids are opaque, so there is no key to diff
// against.
func (s *KnowledgeStore) Reset(ctx context.Context) error {
	return s.fragments.DeleteAll(ctx)
}
