package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pgvector/pgvector-go"

	"github.com/consulta-ai/consulta-ai/pkg/types"
)

type FragmentStore struct {
	CommonFields
}

func NewFragmentStore(provider SqlProviderAchieve) *FragmentStore {
	repo := &FragmentStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_FRAGMENTS)
	repo.SetAllColumns("id", "kind", "content", "question", "sql", "embedding", "created_at")
	return repo
}

// Create persists one trained fragment. Fragments are never updated in
// place.
func (s *FragmentStore) Create(ctx context.Context, data types.Fragment) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}

	query := sq.Insert(s.GetTable()).
		Columns("id", "kind", "content", "question", "sql", "embedding", "created_at").
		Values(data.ID, data.Kind, data.Content, data.Question, data.SQL, data.Embedding, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// Query ranks fragments against the question embedding.
// pgvector distance operators:
// <-> - L2 distance
// <#> - (negative) inner product
// <=> - cosine distance
func (s *FragmentStore) Query(ctx context.Context, embedding pgvector.Vector, limit uint64) ([]types.FragmentMatch, error) {
	cosColumn, vectorArgs, _ := sq.Expr("1 - (embedding <=> ?) as cos", embedding).ToSql()
	query := sq.Select("id", "kind", "content", "question", "sql", cosColumn).
		From(s.GetTable()).
		OrderBy("cos DESC").
		Limit(limit)

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	args = append(vectorArgs, args...)

	var res []types.FragmentMatch
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *FragmentStore) ListAll(ctx context.Context, opts types.GetFragmentsOptions) ([]types.Fragment, error) {
	query := sq.Select("id", "kind", "content", "question", "sql", "created_at").
		From(s.GetTable()).
		OrderBy("created_at ASC")
	opts.Apply(&query)

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Fragment
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// Delete removes a fragment by id. Deleting an unknown id is a no-op.
func (s *FragmentStore) Delete(ctx context.Context, id string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *FragmentStore) DeleteAll(ctx context.Context) error {
	query := sq.Delete(s.GetTable())

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *FragmentStore) Total(ctx context.Context) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable())

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var total int64
	if err = s.GetReplica(ctx).Get(&total, queryString, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *FragmentStore) CountByKind(ctx context.Context) ([]types.KindCount, error) {
	query := sq.Select("kind", "COUNT(*) as total").From(s.GetTable()).GroupBy("kind")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.KindCount
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}
