package rag

import (
	"time"

	"github.com/consulta-ai/consulta-ai/pkg/ai"
	"github.com/consulta-ai/consulta-ai/pkg/i18n"
)

// Config carries the tunables of the question pipeline. Zero values are
// replaced with the defaults the service ships with.
type Config struct {
	// fragments retrieved per question
	TopN int `toml:"top_n"`
	// conversation turns rendered into the prompt
	HistoryDepth int `toml:"history_depth"`
	// turns rendered when the question refers to prior ones
	ContextualHistoryDepth int `toml:"contextual_history_depth"`
	// character budget for prior answers inside the prompt
	AnswerExcerptLimit int `toml:"answer_excerpt_limit"`
	// rows handed to the model when summarizing
	SummaryRowLimit int `toml:"summary_row_limit"`

	SQLMaxTokens       int     `toml:"sql_max_tokens"`
	SummaryMaxTokens   int     `toml:"summary_max_tokens"`
	SummaryTemperature float32 `toml:"summary_temperature"`

	// upper bound for a single model or vector-search call
	CallTimeoutSeconds int `toml:"call_timeout_seconds"`
}

func (c Config) withDefaults() Config {
	if c.TopN <= 0 {
		c.TopN = 5
	}
	if c.HistoryDepth <= 0 {
		c.HistoryDepth = 5
	}
	if c.ContextualHistoryDepth <= 0 {
		c.ContextualHistoryDepth = 7
	}
	if c.AnswerExcerptLimit <= 0 {
		c.AnswerExcerptLimit = 180
	}
	if c.SummaryRowLimit <= 0 {
		c.SummaryRowLimit = 50
	}
	if c.SQLMaxTokens <= 0 {
		c.SQLMaxTokens = 250
	}
	if c.SummaryMaxTokens <= 0 {
		c.SummaryMaxTokens = 500
	}
	if c.SummaryTemperature <= 0 {
		c.SummaryTemperature = 0.3
	}
	if c.CallTimeoutSeconds <= 0 {
		c.CallTimeoutSeconds = 60
	}
	return c
}

func (c Config) callTimeout() time.Duration {
	return time.Duration(c.CallTimeoutSeconds) * time.Second
}

// Engine is the retrieval-augmented SQL generation core. One long-lived
// instance per process, constructed at startup and handed to request
// handlers; it holds no per-request state.
type Engine struct {
	knowledge *KnowledgeStore
	chat      ai.ChatAI
	localizer i18n.Localizer
	cfg       Config
}

func NewEngine(knowledge *KnowledgeStore, chat ai.ChatAI, localizer i18n.Localizer, cfg Config) *Engine {
	return &Engine{
		knowledge: knowledge,
		chat:      chat,
		localizer: localizer,
		cfg:       cfg.withDefaults(),
	}
}

func (e *Engine) Knowledge() *KnowledgeStore {
	return e.knowledge
}
