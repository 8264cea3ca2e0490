package srv

import (
	"github.com/consulta-ai/consulta-ai/pkg/ai"
	"github.com/consulta-ai/consulta-ai/pkg/ai/openai"
)

// AIDriver is what the core needs from a model provider: one completion
// operation and one embedding operation.
type AIDriver interface {
	ai.ChatAI
	ai.EmbeddingAI
}

type AIConfig struct {
	Token          string `toml:"token"`
	Endpoint       string `toml:"endpoint"`
	ChatModel      string `toml:"chat_model"`
	EmbeddingModel string `toml:"embedding_model"`
}

func SetupAI(cfg AIConfig) AIDriver {
	return openai.New(cfg.Token, cfg.Endpoint, openai.ModelName{
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: cfg.EmbeddingModel,
	})
}
