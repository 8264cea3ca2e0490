package rag

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/consulta-ai/consulta-ai/pkg/ai"
	"github.com/consulta-ai/consulta-ai/pkg/i18n"
	"github.com/consulta-ai/consulta-ai/pkg/types"
)

var countAggregateRe = regexp.MustCompile(`(?i)\bcount\s*\(`)

// Summarize renders query results as a conversational answer. It always
// returns a non-empty string: empty results short-circuit to a fixed
// sentence without touching the model, and a failed model call falls
// back to a templated answer derived from the rows themselves.
func (e *Engine) Summarize(ctx context.Context, question, sql string, results types.ResultSet, turns []types.ConversationTurn) string {
	lang := DetectLang(question)

	if results.Empty() {
		return e.localizer.Get(lang, i18n.MESSAGE_SUMMARY_NO_RESULTS)
	}

	total := len(results.Rows)
	truncated := total > e.cfg.SummaryRowLimit
	capped := normalizeCountResult(results.Head(e.cfg.SummaryRowLimit), sql)

	var b strings.Builder
	fmt.Fprintf(&b, "Contexto:\n- Pregunta del usuario: %q\n- Consulta SQL ejecutada: %s\n- Resultados obtenidos: %s\n\n", question, sql, renderRecords(capped))

	if conversation := RenderConversation(turns, e.cfg.HistoryDepth, e.cfg.AnswerExcerptLimit); conversation != "" {
		fmt.Fprintf(&b, "Conversación anterior:\n%s\n\n", conversation)
	}

	b.WriteString(ai.PROMPT_SUMMARY_INSTRUCTIONS)
	b.WriteString("\n\nGenera una respuesta natural y completa, en el idioma de la pregunta del usuario.")

	if truncated {
		// disclose the cap so the generated answer can mention it
		// instead of silently misleading
		fmt.Fprintf(&b, "\n\nNota: La consulta encontró %d resultados en total, pero solo se muestran los primeros %d.", total, e.cfg.SummaryRowLimit)
	}

	callCtx, cancel := context.WithTimeout(ctx, e.cfg.callTimeout())
	defer cancel()

	summary, err := e.chat.Complete(callCtx, ai.PROMPT_SUMMARY_SYSTEM, b.String(), ai.CompleteOptions{
		MaxTokens:   e.cfg.SummaryMaxTokens,
		Temperature: e.cfg.SummaryTemperature,
	})
	if err != nil || strings.TrimSpace(summary) == "" {
		slog.Error("summary generation failed, using templated fallback", slog.String("question", question), slog.Any("error", err))
		return e.fallbackSummary(lang, sql, results)
	}

	return strings.TrimSpace(summary)
}

// fallbackSummary never depends on the model and always produces a
// non-empty sentence for non-empty rows.
func (e *Engine) fallbackSummary(lang, sql string, results types.ResultSet) string {
	if len(results.Rows) == 1 && len(results.Rows[0]) == 1 {
		value := formatValue(lang, results.Rows[0][0])
		data := map[string]interface{}{"Value": value}

		if countAggregateRe.MatchString(sql) {
			return e.localizer.GetWithData(lang, i18n.MESSAGE_SUMMARY_COUNT_RESULT, data)
		}
		if len(results.Columns) == 1 && isNamedColumn(results.Columns[0]) {
			return e.localizer.GetWithData(lang, i18n.MESSAGE_SUMMARY_SINGLE_FIELD, data)
		}
		return e.localizer.GetWithData(lang, i18n.MESSAGE_SUMMARY_SINGLE_VALUE, data)
	}

	return e.localizer.GetWithData(lang, i18n.MESSAGE_SUMMARY_ROW_TOTAL, map[string]interface{}{
		"Total": len(results.Rows),
	})
}

// normalizeCountResult relabels a lone positional value as a named count
// field when the SQL aggregates, so the model phrases a sentence instead
// of echoing a bare tuple.
func normalizeCountResult(results types.ResultSet, sql string) types.ResultSet {
	if len(results.Columns) != 1 || !countAggregateRe.MatchString(sql) {
		return results
	}
	if isNamedColumn(results.Columns[0]) {
		return results
	}
	return types.ResultSet{Columns: []string{"count"}, Rows: results.Rows}
}

// isNamedColumn distinguishes a real alias from a positional label like
// "COUNT(*)" or "?column?".
func isNamedColumn(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}

func renderRecords(results types.ResultSet) string {
	var b strings.Builder
	b.WriteString("[")
	for i := range results.Rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("{")
		for j, col := range results.Columns {
			if j > 0 {
				b.WriteString(", ")
			}
			if j < len(results.Rows[i]) {
				fmt.Fprintf(&b, "%s: %v", col, results.Rows[i][j])
			}
		}
		b.WriteString("}")
	}
	b.WriteString("]")
	return b.String()
}

// DetectLang maps the question's language onto a supported locale.
// Anything that is not clearly English answers in Spanish, the service's
// primary audience.
func DetectLang(question string) string {
	info := whatlanggo.Detect(question)
	if info.Lang == whatlanggo.Eng && info.IsReliable() {
		return "en"
	}
	return i18n.DEFAULT_LANG
}

// formatValue renders numbers with locale-aware grouping ("2,977"
// instead of "2977").
func formatValue(lang string, value any) string {
	tag := language.Spanish
	if lang == "en" {
		tag = language.English
	}
	p := message.NewPrinter(tag)

	switch v := value.(type) {
	case int:
		return p.Sprintf("%d", v)
	case int32:
		return p.Sprintf("%d", v)
	case int64:
		return p.Sprintf("%d", v)
	case uint64:
		return p.Sprintf("%d", v)
	case float32:
		return p.Sprintf("%v", v)
	case float64:
		return p.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", value)
	}
}
