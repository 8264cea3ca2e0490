package rag

import (
	"context"
	"log/slog"
)

// TrainingContent is the material loaded during a bulk training run.
// Tables restricts schema training to the named tables; when empty,
// every table the introspector reports is trained.
type TrainingContent struct {
	Tables        []string          `toml:"tables"`
	Documentation []string          `toml:"documentation"`
	Examples      []TrainingExample `toml:"examples"`
}

type TrainingExample struct {
	Question string `toml:"question"`
	SQL      string `toml:"sql"`
}

// SchemaIntrospector supplies table DDL for schema training, usually
// backed by the target database.
type SchemaIntrospector interface {
	ListTables(ctx context.Context) ([]string, error)
	TableDDL(ctx context.Context, name string) (string, error)
}

// TrainingStats tallies a bulk run. One failing item never aborts the
// batch; it just lands in Errors.
type TrainingStats struct {
	TablesTrained  int `json:"tables_trained"`
	DocsTrained    int `json:"docs_trained"`
	QueriesTrained int `json:"queries_trained"`
	Errors         int `json:"errors"`
}

// Trainer bulk-loads schema, documentation and example fragments into
// the knowledge store.
type Trainer struct {
	knowledge    *KnowledgeStore
	introspector SchemaIntrospector
}

func NewTrainer(knowledge *KnowledgeStore, introspector SchemaIntrospector) *Trainer {
	return &Trainer{
		knowledge:    knowledge,
		introspector: introspector,
	}
}

// Run executes all three phases best-effort and reports the tally.
func (t *Trainer) Run(ctx context.Context, content TrainingContent) TrainingStats {
	var stats TrainingStats
	t.trainSchema(ctx, content.Tables, &stats)
	t.trainDocumentation(ctx, content.Documentation, &stats)
	t.trainExamples(ctx, content.Examples, &stats)

	slog.Info("training finished",
		slog.Int("tables", stats.TablesTrained),
		slog.Int("documentation", stats.DocsTrained),
		slog.Int("examples", stats.QueriesTrained),
		slog.Int("errors", stats.Errors))
	return stats
}

func (t *Trainer) trainSchema(ctx context.Context, tables []string, stats *TrainingStats) {
	if t.introspector == nil {
		return
	}

	if len(tables) == 0 {
		all, err := t.introspector.ListTables(ctx)
		if err != nil {
			slog.Error("failed to list tables for schema training", slog.String("error", err.Error()))
			stats.Errors++
			return
		}
		tables = all
	}

	for _, name := range tables {
		ddl, err := t.introspector.TableDDL(ctx, name)
		if err != nil {
			slog.Error("failed to fetch table ddl", slog.String("table", name), slog.String("error", err.Error()))
			stats.Errors++
			continue
		}

		if _, ok := t.knowledge.AddSchema(ctx, ddl); ok {
			stats.TablesTrained++
		} else {
			stats.Errors++
		}
	}
}

func (t *Trainer) trainDocumentation(ctx context.Context, docs []string, stats *TrainingStats) {
	for _, doc := range docs {
		if _, ok := t.knowledge.AddDocumentation(ctx, doc); ok {
			stats.DocsTrained++
		} else {
			stats.Errors++
		}
	}
}

func (t *Trainer) trainExamples(ctx context.Context, examples []TrainingExample, stats *TrainingStats) {
	for _, example := range examples {
		if _, ok := t.knowledge.AddExample(ctx, example.Question, example.SQL); ok {
			stats.QueriesTrained++
		} else {
			stats.Errors++
		}
	}
}
