package domain

import "fmt"

// ProviderID identifies one of the supported upstream AI vendors.
type ProviderID string

const (
	ProviderDoubao   ProviderID = "doubao"
	ProviderOpenAI   ProviderID = "openai"
	ProviderDeepSeek ProviderID = "deepseek"
	ProviderMoonshot ProviderID = "moonshot"
)

// DefaultProvider is used when a polish request names no provider.
const DefaultProvider = ProviderDoubao

// ProviderMode is the resolution outcome for a provider: Live when a
// credential is configured, Mock otherwise. Modeling this explicitly keeps
// the polish state machine exhaustive instead of scattering nil-checks.
type ProviderMode string

const (
	ModeLive ProviderMode = "live"
	ModeMock ProviderMode = "mock"
)

// ProviderConfig is the static upstream configuration for one vendor.
// Fixed at process start; BaseURL and ModelID are always present,
// APIKey may be empty.
type ProviderConfig struct {
	ID      ProviderID
	BaseURL string
	APIKey  string
	ModelID string
}

func (p ProviderConfig) Mode() ProviderMode {
	if p.APIKey == "" {
		return ModeMock
	}
	return ModeLive
}

// ProviderRegistry resolves provider identifiers to upstream configuration.
type ProviderRegistry interface {
	Resolve(id ProviderID) (ProviderConfig, error)
	List() []ProviderConfig
}

// UnknownProviderError is returned when an identifier is not one of the
// known providers. Its message is surfaced verbatim to the client.
type UnknownProviderError struct {
	ID ProviderID
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("Unknown provider: %s", e.ID)
}
