package openai

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/samber/lo"
	openai "github.com/sashabaranov/go-openai"

	"github.com/consulta-ai/consulta-ai/pkg/ai"
)

const NAME = "openai"

type ModelName struct {
	ChatModel      string `toml:"chat_model"`
	EmbeddingModel string `toml:"embedding_model"`
}

type Driver struct {
	client *openai.Client
	model  ModelName
}

func New(token, endpoint string, model ModelName) *Driver {
	cfg := openai.DefaultConfig(token)
	if endpoint != "" {
		cfg.BaseURL = endpoint
	}

	if model.ChatModel == "" {
		model.ChatModel = openai.GPT4oMini
	}
	if model.EmbeddingModel == "" {
		model.EmbeddingModel = string(openai.SmallEmbedding3)
	}

	return &Driver{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (s *Driver) Complete(ctx context.Context, system, user string, opts ai.CompleteOptions) (string, error) {
	slog.Debug("Complete", slog.String("driver", NAME), slog.String("model", s.model.ChatModel))

	// go-openai omits a zero temperature from the request body and the
	// endpoint then falls back to its own default, so greedy decoding
	// has to be requested with the smallest non-zero value.
	temperature := opts.Temperature
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model.ChatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   opts.MaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai.Complete: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai.Complete: empty choices, model %s", s.model.ChatModel)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (s *Driver) EmbeddingForQuery(ctx context.Context, content []string) (ai.EmbeddingResult, error) {
	slog.Debug("Embedding", slog.String("driver", NAME), slog.String("model", s.model.EmbeddingModel))

	resp, err := s.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(s.model.EmbeddingModel),
		Input: content,
	})
	if err != nil {
		return ai.EmbeddingResult{}, fmt.Errorf("openai.EmbeddingForQuery: %w", err)
	}

	return ai.EmbeddingResult{
		Model: s.model.EmbeddingModel,
		Data: lo.Map(resp.Data, func(item openai.Embedding, _ int) []float32 {
			return item.Embedding
		}),
	}, nil
}
