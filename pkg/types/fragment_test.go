package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consulta-ai/consulta-ai/pkg/types"
)

func TestFragmentKindValid(t *testing.T) {
	assert.True(t, types.FRAGMENT_KIND_SCHEMA.Valid())
	assert.True(t, types.FRAGMENT_KIND_DOCUMENTATION.Valid())
	assert.True(t, types.FRAGMENT_KIND_EXAMPLE.Valid())
	assert.False(t, types.FragmentKind("ddl").Valid())
	assert.False(t, types.FragmentKind("").Valid())
}

func TestExampleContent(t *testing.T) {
	content := types.ExampleContent(" ¿Cuántos usuarios hay? ", "SELECT COUNT(*) FROM usuarios\n")
	assert.Equal(t, "Question: ¿Cuántos usuarios hay?\nSQL: SELECT COUNT(*) FROM usuarios", content)
}

func TestResultSet(t *testing.T) {
	rs := types.ResultSet{
		Columns: []string{"id", "nombre"},
		Rows:    [][]any{{1, "Ana"}, {2, "Luis"}, {3, "Eva"}},
	}

	assert.False(t, rs.Empty())
	assert.True(t, types.ResultSet{}.Empty())

	assert.Equal(t, map[string]any{"id": 2, "nombre": "Luis"}, rs.Record(1))

	head := rs.Head(2)
	assert.Len(t, head.Rows, 2)
	assert.Equal(t, rs.Columns, head.Columns)
	assert.Len(t, rs.Head(10).Rows, 3)
}
