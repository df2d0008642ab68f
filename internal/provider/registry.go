// Package provider holds the static registry of upstream AI vendors.
package provider

import (
	"go-resume-backend/config"
	"go-resume-backend/internal/domain"
)

// Base URLs of the OpenAI-compatible chat-completion endpoints. The client
// appends the /chat/completions path.
const (
	doubaoBaseURL   = "https://ark.cn-beijing.volces.com/api/v3"
	openaiBaseURL   = "https://api.openai.com/v1"
	deepseekBaseURL = "https://api.deepseek.com"
	moonshotBaseURL = "https://api.moonshot.cn/v1"
)

// Registry is an immutable provider table built once from configuration.
// Configuration changes require a process restart.
type Registry struct {
	providers map[domain.ProviderID]domain.ProviderConfig
	order     []domain.ProviderID
}

func NewRegistry(cfg *config.Config) *Registry {
	entries := []domain.ProviderConfig{
		{ID: domain.ProviderDoubao, BaseURL: doubaoBaseURL, APIKey: cfg.Doubao.APIKey, ModelID: cfg.Doubao.ModelID},
		{ID: domain.ProviderOpenAI, BaseURL: openaiBaseURL, APIKey: cfg.OpenAI.APIKey, ModelID: cfg.OpenAI.ModelID},
		{ID: domain.ProviderDeepSeek, BaseURL: deepseekBaseURL, APIKey: cfg.DeepSeek.APIKey, ModelID: cfg.DeepSeek.ModelID},
		{ID: domain.ProviderMoonshot, BaseURL: moonshotBaseURL, APIKey: cfg.Moonshot.APIKey, ModelID: cfg.Moonshot.ModelID},
	}

	r := &Registry{providers: make(map[domain.ProviderID]domain.ProviderConfig, len(entries))}
	for _, p := range entries {
		r.providers[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

// Resolve returns the configuration for id, or an UnknownProviderError.
func (r *Registry) Resolve(id domain.ProviderID) (domain.ProviderConfig, error) {
	p, ok := r.providers[id]
	if !ok {
		return domain.ProviderConfig{}, &domain.UnknownProviderError{ID: id}
	}
	return p, nil
}

// List returns the providers in registration order.
func (r *Registry) List() []domain.ProviderConfig {
	out := make([]domain.ProviderConfig, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.providers[id])
	}
	return out
}
