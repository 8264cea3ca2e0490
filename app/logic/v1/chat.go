package v1

import (
	"context"

	"github.com/consulta-ai/consulta-ai/app/core"
	"github.com/consulta-ai/consulta-ai/pkg/i18n"
	"github.com/consulta-ai/consulta-ai/pkg/rag"
	"github.com/consulta-ai/consulta-ai/pkg/types"
)

// rawResultLimit caps how many records are echoed back to the client
// alongside the generated answer.
const rawResultLimit = 10

type ChatLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewChatLogic(ctx context.Context, core *core.Core) *ChatLogic {
	return &ChatLogic{
		ctx:  ctx,
		core: core,
	}
}

type ChatResult struct {
	Answer     string           `json:"answer"`
	SQL        string           `json:"sql,omitempty"`
	RawResults []map[string]any `json:"raw_results,omitempty"`
}

// Ask runs the full question pipeline: generate SQL from the retrieved
// context, execute it against the datasource and summarize the result.
// Generation and execution failures are answered in natural language
// rather than surfaced as transport errors.
func (l *ChatLogic) Ask(question string, history []types.ConversationTurn) (ChatResult, error) {
	lang := rag.DetectLang(question)

	timer := l.core.Metrics().ApiResponseTimer("chat.ask")
	defer timer.ObserveDuration()

	genTimer := l.core.Metrics().ModelRequestTimer("sql_generation")
	sql, err := l.core.Engine().GenerateSQL(l.ctx, question, history)
	genTimer.ObserveDuration()
	if err != nil {
		l.core.Metrics().PipelineErrorInc("generation")
		return ChatResult{
			Answer: l.core.Localizer().Get(lang, i18n.MESSAGE_CHAT_CANNOT_GENERATE),
		}, nil
	}

	if err := CheckSQLAllowed(sql); err != nil {
		return ChatResult{}, err
	}

	results, err := l.core.Datasource().RunQuery(l.ctx, sql)
	if err != nil {
		l.core.Metrics().PipelineErrorInc("execution")
		return ChatResult{
			Answer: l.core.Localizer().GetWithData(lang, i18n.MESSAGE_CHAT_EXECUTION_FAILED, map[string]any{
				"Error": err.Error(),
			}),
			SQL: sql,
		}, nil
	}

	sumTimer := l.core.Metrics().ModelRequestTimer("summary")
	answer := l.core.Engine().Summarize(l.ctx, question, sql, results, history)
	sumTimer.ObserveDuration()

	return ChatResult{
		Answer:     answer,
		SQL:        sql,
		RawResults: recordsOf(results, rawResultLimit),
	}, nil
}

// DebugPrompt assembles the exact prompt Ask would send to the model
// without invoking it.
func (l *ChatLogic) DebugPrompt(question string, history []types.ConversationTurn) rag.DebugPrompt {
	return l.core.Engine().BuildDebugPrompt(l.ctx, question, history)
}

func recordsOf(results types.ResultSet, limit int) []map[string]any {
	if results.Empty() {
		return nil
	}
	head := results.Head(limit)
	records := make([]map[string]any, 0, len(head.Rows))
	for i := range head.Rows {
		records = append(records, head.Record(i))
	}
	return records
}
