package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"ubuzima-backend/internal/textutil"
)

const (
	// DefaultBaseURL points at Groq's OpenAI-compatible completion API.
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama-3.3-70b-versatile"
)

// Client issues chat completions against an OpenAI-compatible endpoint.
type Client struct {
	client openai.Client
	model  string
}

func NewClient(baseURL, apiKey, model string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		client: openai.NewClient(option.WithBaseURL(baseURL), option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// Complete sends exactly one completion request. A non-empty systemPrompt is
// sent as the system instruction alongside the raw text as the user turn.
// The reply is returned with markdown formatting stripped. Transport and API
// failures surface as errors; the orchestrator owns the fallback messaging.
func (c *Client) Complete(ctx context.Context, text, systemPrompt string) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(text))

	res, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: messages,
		Model:    c.model,
	})
	if err != nil {
		slog.Error("chat completion failed", "model", c.model, "error", err)
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(res.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return textutil.SanitizeMarkdown(res.Choices[0].Message.Content), nil
}
