package sqlstore_test

import (
	"context"
	"os"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consulta-ai/consulta-ai/app/store/sqlstore"
	"github.com/consulta-ai/consulta-ai/pkg/testutils"
	"github.com/consulta-ai/consulta-ai/pkg/types"
	"github.com/consulta-ai/consulta-ai/pkg/utils"
)

type dsnConfig string

func (c dsnConfig) FormatDSN() string {
	return string(c)
}

func setupProvider(t *testing.T) *sqlstore.Provider {
	t.Helper()
	testutils.LoadEnv()

	dsn := os.Getenv("CONSULTA_TEST_VECTOR_DSN")
	if dsn == "" {
		t.Skip("CONSULTA_TEST_VECTOR_DSN not set")
	}

	provider := sqlstore.MustSetup(dsnConfig(dsn))
	require.NoError(t, provider.Install())
	return provider
}

func testVector() pgvector.Vector {
	data := make([]float32, 1536)
	data[0] = 0.42
	return pgvector.NewVector(data)
}

func TestFragmentStoreRoundTrip(t *testing.T) {
	provider := setupProvider(t)
	defer provider.Close()

	ctx := context.Background()
	store := provider.FragmentStore()

	fragment := types.Fragment{
		ID:        utils.GenFragmentID(),
		Kind:      types.FRAGMENT_KIND_EXAMPLE,
		Content:   types.ExampleContent("¿Cuántos usuarios hay?", "SELECT COUNT(*) FROM usuarios"),
		Question:  "¿Cuántos usuarios hay?",
		SQL:       "SELECT COUNT(*) FROM usuarios",
		Embedding: testVector(),
	}
	require.NoError(t, store.Create(ctx, fragment))
	defer store.Delete(ctx, fragment.ID)

	matches, err := store.Query(ctx, testVector(), 5)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, fragment.ID, matches[0].ID)
	assert.InDelta(t, 1.0, matches[0].Cos, 0.001)

	total, err := store.Total(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, total, int64(1))

	counts, err := store.CountByKind(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, counts)

	require.NoError(t, store.Delete(ctx, fragment.ID))
	// deleting twice is a no-op
	require.NoError(t, store.Delete(ctx, fragment.ID))
}
