package store

import (
	"context"

	"github.com/pgvector/pgvector-go"

	"github.com/consulta-ai/consulta-ai/pkg/types"
)

// FragmentStore persists trained knowledge fragments in the vector index.
// Fragments are immutable once created; retraining is delete + re-add.
type FragmentStore interface {
	Create(ctx context.Context, data types.Fragment) error
	// Query ranks fragments by cosine similarity against the given
	// question embedding.
	Query(ctx context.Context, embedding pgvector.Vector, limit uint64) ([]types.FragmentMatch, error)
	ListAll(ctx context.Context, opts types.GetFragmentsOptions) ([]types.Fragment, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Total(ctx context.Context) (int64, error)
	CountByKind(ctx context.Context) ([]types.KindCount, error)
}
