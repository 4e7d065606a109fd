package llm

import (
	"context"
	"errors"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"chisa-farm-backend/internal/apierr"
)

// Gateway is the chat-completions surface the handlers depend on. Tests
// substitute a counting fake.
type Gateway interface {
	Complete(ctx context.Context, messages []openai.ChatCompletionMessage, model string) (*openai.ChatCompletionResponse, error)
}

// Fixed generation parameters; every feature shares them.
const (
	maxTokens      = 1500
	temperature    = 0.7
	requestTimeout = 60 * time.Second
)

// Client talks to Groq's OpenAI-compatible chat completions endpoint. One
// attempt per call; retrying is left to the user.
type Client struct {
	api    *openai.Client
	apiKey string
}

func NewClient(apiKey, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: requestTimeout}
	return &Client{api: openai.NewClientWithConfig(cfg), apiKey: apiKey}
}

func (c *Client) Complete(ctx context.Context, messages []openai.ChatCompletionMessage, model string) (*openai.ChatCompletionResponse, error) {
	if c.apiKey == "" {
		return nil, apierr.Configuration("Groq API Key is not configured.")
	}
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, classify(err)
	}
	return &resp, nil
}

// classify maps transport and HTTP-status failures into the user-facing
// taxonomy, keeping the original status for propagation.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apierr.FromUpstreamStatus(apiErr.HTTPStatusCode, apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return apierr.FromUpstreamStatus(reqErr.HTTPStatusCode, "")
	}
	return apierr.Transport("Could not reach the AI provider. Please try again.", err)
}

// TextMessages builds the standard system + user turn pair.
func TextMessages(system, user string) []openai.ChatCompletionMessage {
	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system},
		{Role: openai.ChatMessageRoleUser, Content: user},
	}
}

// ImageMessages builds a system turn followed by an image-only user turn.
// No text accompanies the image.
func ImageMessages(system, imageURL string) []openai.ChatCompletionMessage {
	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system},
		{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{
					Type:     openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{URL: imageURL},
				},
			},
		},
	}
}
