// Package llm wraps the official openai-go SDK for the live polish path.
// All four supported vendors speak the OpenAI chat-completions shape.
package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"go-resume-backend/internal/domain"
)

// Client implements domain.ChatClient. One synchronous call per invocation,
// no streaming, no retries.
type Client struct {
	Timeout time.Duration
}

func NewClient(timeout time.Duration) *Client {
	return &Client{Timeout: timeout}
}

func (c *Client) Complete(ctx context.Context, p domain.ProviderConfig, systemPrompt, userText string) (string, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(p.APIKey),
		// trailing slash keeps the vendor path prefix when the SDK resolves
		// the relative chat/completions path
		option.WithBaseURL(strings.TrimRight(p.BaseURL, "/") + "/"),
		option.WithMaxRetries(0),
	}
	if c.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(c.Timeout))
	}
	client := openai.NewClient(opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.ModelID),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userText),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", domain.ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// Detail extracts the upstream error body message when one exists, falling
// back to the raw error text.
func Detail(err error) string {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
