// Package llm is a thin pass-through client to a hosted chat-completion
// service. It holds no state beyond the configured generation parameters.
package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/volunteen/notify-server/config"
)

// Client defines the completion operation consumed by the chatbot service.
type Client interface {
	GenerateCompletion(ctx context.Context, systemMessage, userText string) (string, error)
}

type client struct {
	model       llms.Model
	maxTokens   int
	temperature float64
}

func NewClient(cfg *config.Config) (Client, error) {
	model, err := openai.New(
		openai.WithToken(cfg.OpenAI.APIKey),
		openai.WithModel(cfg.OpenAI.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize completion client: %w", err)
	}

	return &client{
		model:       model,
		maxTokens:   cfg.OpenAI.MaxTokens,
		temperature: cfg.OpenAI.Temperature,
	}, nil
}

// GenerateCompletion forwards the system/user pair as a two-message
// exchange and returns the single resulting text.
func (c *client) GenerateCompletion(ctx context.Context, systemMessage, userText string) (string, error) {
	content := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemMessage),
		llms.TextParts(llms.ChatMessageTypeHuman, userText),
	}

	resp, err := c.model.GenerateContent(ctx, content,
		llms.WithMaxTokens(c.maxTokens),
		llms.WithTemperature(c.temperature),
	)
	if err != nil {
		return "", fmt.Errorf("completion call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion service returned no choices")
	}
	return resp.Choices[0].Content, nil
}
