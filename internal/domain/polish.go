package domain

import (
	"context"
	"errors"
)

// PolishRequest is one client-initiated "polish my text" invocation.
// Never persisted.
type PolishRequest struct {
	Text     string     `json:"text"`
	Prompt   string     `json:"prompt,omitempty"`
	Provider ProviderID `json:"provider,omitempty"`
}

// ErrEmptyCompletion marks a well-formed upstream response that carried no
// completion choices. Mapped to 502 by the usecase.
var ErrEmptyCompletion = errors.New("no completion choices in provider response")

// ChatClient issues a single chat-completion call against a live provider.
// Implementations must not retry; cancellation and deadlines come in via ctx.
type ChatClient interface {
	Complete(ctx context.Context, provider ProviderConfig, systemPrompt, userText string) (string, error)
}

type PolishUsecase interface {
	// Polish runs validate -> resolve -> mock/live -> result. Failures are
	// returned as *apperror.AppError carrying the client-facing status code.
	Polish(ctx context.Context, req *PolishRequest) (string, error)
}
