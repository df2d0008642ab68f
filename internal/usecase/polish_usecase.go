package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-resume-backend/internal/domain"
	"go-resume-backend/internal/metrics"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/llm"
)

type polishUsecase struct {
	registry     domain.ProviderRegistry
	chat         domain.ChatClient
	systemPrompt string
	mockDelay    time.Duration
}

// NewPolishUsecase creates the polish workflow: validate, resolve the
// provider, then either return the mock notice or make one upstream call.
func NewPolishUsecase(registry domain.ProviderRegistry, chat domain.ChatClient, systemPrompt string, mockDelay time.Duration) domain.PolishUsecase {
	return &polishUsecase{
		registry:     registry,
		chat:         chat,
		systemPrompt: systemPrompt,
		mockDelay:    mockDelay,
	}
}

func (uc *polishUsecase) Polish(ctx context.Context, req *domain.PolishRequest) (string, error) {
	providerID := req.Provider
	if providerID == "" {
		providerID = domain.DefaultProvider
	}

	if req.Text == "" {
		metrics.PolishTotal.WithLabelValues(string(providerID), metrics.OutcomeBadRequest).Inc()
		return "", apperror.BadRequest("Text content is required")
	}
	metrics.InputChars.Observe(float64(len([]rune(req.Text))))

	provider, err := uc.registry.Resolve(providerID)
	if err != nil {
		metrics.PolishTotal.WithLabelValues(string(providerID), metrics.OutcomeBadRequest).Inc()
		return "", apperror.BadRequest(err.Error())
	}

	systemPrompt := req.Prompt
	if systemPrompt == "" {
		systemPrompt = uc.systemPrompt
	}

	start := time.Now()
	switch provider.Mode() {
	case domain.ModeMock:
		// Degraded fallback so the UI stays functional without credentials.
		// The artificial delay mirrors real upstream latency.
		if err := sleepContext(ctx, uc.mockDelay); err != nil {
			return "", err
		}
		metrics.PolishTotal.WithLabelValues(string(providerID), metrics.OutcomeMock).Inc()
		metrics.PolishDuration.WithLabelValues(string(providerID)).Observe(time.Since(start).Seconds())
		return fmt.Sprintf("[%s Mock] 正在优化您的简历... 请在后端配置 %s 的 API Key。当前使用的是模拟响应。", providerID, providerID), nil

	default: // domain.ModeLive
		polished, err := uc.chat.Complete(ctx, provider, systemPrompt, req.Text)
		if err != nil {
			if errors.Is(err, domain.ErrEmptyCompletion) {
				metrics.PolishTotal.WithLabelValues(string(providerID), metrics.OutcomeInvalidResponse).Inc()
				return "", apperror.BadGateway("Invalid response from AI provider")
			}
			metrics.PolishTotal.WithLabelValues(string(providerID), metrics.OutcomeUpstreamError).Inc()
			return "", apperror.New(http.StatusInternalServerError, "Failed to process AI request", err).WithDetail(llm.Detail(err))
		}
		metrics.PolishTotal.WithLabelValues(string(providerID), metrics.OutcomeSuccess).Inc()
		metrics.PolishDuration.WithLabelValues(string(providerID)).Observe(time.Since(start).Seconds())
		return polished, nil
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
