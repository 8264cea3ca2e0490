package types

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/pgvector/pgvector-go"
)

type FragmentKind string

const (
	FRAGMENT_KIND_SCHEMA        = FragmentKind("schema")
	FRAGMENT_KIND_DOCUMENTATION = FragmentKind("documentation")
	FRAGMENT_KIND_EXAMPLE       = FragmentKind("example")
)

func (k FragmentKind) Valid() bool {
	switch k {
	case FRAGMENT_KIND_SCHEMA, FRAGMENT_KIND_DOCUMENTATION, FRAGMENT_KIND_EXAMPLE:
		return true
	}
	return false
}

// Fragment is one unit of trained knowledge in the vector index.
// Content is the embedded text; for example fragments Question and SQL
// keep the original pair so it can be displayed without re-parsing.
type Fragment struct {
	ID        string          `json:"id" db:"id"`
	Kind      FragmentKind    `json:"kind" db:"kind"`
	Content   string          `json:"content" db:"content"`
	Question  string          `json:"question" db:"question"`
	SQL       string          `json:"sql" db:"sql"`
	Embedding pgvector.Vector `json:"-" db:"embedding"`
	CreatedAt int64           `json:"created_at" db:"created_at"`
}

// ExampleContent renders the embedded text of an example fragment.
// The template is fixed so a stored example is always reconstructible.
func ExampleContent(question, sql string) string {
	return fmt.Sprintf("Question: %s\nSQL: %s", strings.TrimSpace(question), strings.TrimSpace(sql))
}

// FragmentMatch is one similarity-search hit.
type FragmentMatch struct {
	ID       string       `json:"id" db:"id"`
	Kind     FragmentKind `json:"kind" db:"kind"`
	Content  string       `json:"content" db:"content"`
	Question string       `json:"question" db:"question"`
	SQL      string       `json:"sql" db:"sql"`
	Cos      float32      `json:"cos" db:"cos"`
}

// KindCount is one row of the per-kind training summary.
type KindCount struct {
	Kind  FragmentKind `json:"kind" db:"kind"`
	Total int64        `json:"total" db:"total"`
}

type GetFragmentsOptions struct {
	ID   string
	Kind FragmentKind
}

func (opts GetFragmentsOptions) Apply(query *sq.SelectBuilder) {
	if opts.ID != "" {
		*query = query.Where(sq.Eq{"id": opts.ID})
	}
	if opts.Kind != "" {
		*query = query.Where(sq.Eq{"kind": opts.Kind})
	}
}
