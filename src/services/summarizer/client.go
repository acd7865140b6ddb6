package summarizer

import (
	"context"
	"errors"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

const defaultBaseURL = "https://openrouter.ai/api/v1"

// Client calls an OpenAI-compatible chat completion API (OpenRouter) to
// compose a synthesis from pooled round responses.
type Client struct {
	api          *openai.Client
	systemPrompt string
}

// NewClientFromEnv reads OPENROUTER_API_KEY (and optionally
// OPENROUTER_BASE_URL) from the environment.
func NewClientFromEnv(systemPrompt string) *Client {
	cfg := openai.DefaultConfig(os.Getenv("OPENROUTER_API_KEY"))
	cfg.BaseURL = os.Getenv("OPENROUTER_BASE_URL")
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{
		api:          openai.NewClientWithConfig(cfg),
		systemPrompt: systemPrompt,
	}
}

// Summarize sends the prompt to the given model and returns the
// completion text.
func (c *Client) Summarize(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion from model")
	}
	return resp.Choices[0].Message.Content, nil
}
