package client

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"go-resume-backend/internal/domain"
)

// ErrNoSuggestion is returned by Apply when no polish result is held.
var ErrNoSuggestion = errors.New("no polish suggestion to apply")

// Hooks receive the outcome of a polish request. A request that was
// canceled, or superseded by a newer Start, settles silently.
type Hooks struct {
	OnResult func(polished string)
	OnError  func(err error)
}

// Orchestrator drives polish requests on behalf of an editor: at most
// one request is in flight, starting a new one aborts the previous,
// and the latest suggestion is held until the caller applies it.
type Orchestrator struct {
	client *Client

	// FallbackText supplies the text to polish when Start is given an
	// empty selection, typically the whole document. Nil means empty
	// selections are a no-op.
	FallbackText func() string

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	inFlight   bool

	lastText     string
	lastPrompt   string
	lastProvider domain.ProviderID
	suggestion   string
	hasResult    bool
}

// NewOrchestrator wraps a Client.
func NewOrchestrator(c *Client) *Orchestrator {
	return &Orchestrator{client: c}
}

// Start polishes text with the given provider, canceling any request
// still in flight. Hooks fire at most once, and never for a request
// that was canceled or superseded.
func (o *Orchestrator) Start(text string, provider domain.ProviderID, hooks Hooks) {
	o.StartWithPrompt(text, "", provider, hooks)
}

// StartWithPrompt is Start with a caller-supplied system prompt.
func (o *Orchestrator) StartWithPrompt(text, prompt string, provider domain.ProviderID, hooks Hooks) {
	if strings.TrimSpace(text) == "" {
		if o.FallbackText == nil {
			return
		}
		text = o.FallbackText()
		if strings.TrimSpace(text) == "" {
			return
		}
	}

	o.mu.Lock()
	if o.cancel != nil {
		o.cancel()
	}
	o.generation++
	gen := o.generation
	ctx, cancel := context.WithCancel(context.Background())
	o.cancel = cancel
	o.inFlight = true
	o.lastText = text
	o.lastPrompt = prompt
	o.lastProvider = provider
	o.hasResult = false
	o.mu.Unlock()

	go o.run(ctx, gen, text, prompt, provider, hooks)
}

func (o *Orchestrator) run(ctx context.Context, gen uint64, text, prompt string, provider domain.ProviderID, hooks Hooks) {
	polished, err := o.client.Polish(ctx, text, prompt, provider)

	o.mu.Lock()
	if gen != o.generation {
		// a newer request owns the slot; drop this settlement
		o.mu.Unlock()
		return
	}
	o.inFlight = false
	o.cancel = nil
	if err == nil {
		o.suggestion = polished
		o.hasResult = true
	}
	o.mu.Unlock()

	if ctx.Err() != nil {
		return
	}
	if err != nil {
		if hooks.OnError != nil {
			hooks.OnError(err)
		}
		return
	}
	if hooks.OnResult != nil {
		hooks.OnResult(polished)
	}
}

// Cancel aborts the in-flight request, if any. Its hooks will not fire.
func (o *Orchestrator) Cancel() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
	o.generation++
	o.inFlight = false
}

// Retry repeats the last request unchanged. No-op if nothing has been
// started yet.
func (o *Orchestrator) Retry(hooks Hooks) {
	o.mu.Lock()
	text, prompt, provider := o.lastText, o.lastPrompt, o.lastProvider
	o.mu.Unlock()
	if text == "" {
		return
	}
	o.StartWithPrompt(text, prompt, provider, hooks)
}

// Suggestion returns the latest polished text, if a request has
// settled successfully since the last Start.
func (o *Orchestrator) Suggestion() (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.suggestion, o.hasResult
}

// InFlight reports whether a polish request is currently running.
func (o *Orchestrator) InFlight() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.inFlight
}

// Apply writes the held suggestion into the given section's content.
// Applying is always explicit; a settled suggestion is never written
// back on its own.
func (o *Orchestrator) Apply(ctx context.Context, resumeID, sectionID string) error {
	o.mu.Lock()
	suggestion, ok := o.suggestion, o.hasResult
	o.mu.Unlock()
	if !ok {
		return ErrNoSuggestion
	}

	content, err := json.Marshal(suggestion)
	if err != nil {
		return err
	}
	return o.client.UpdateSectionContent(ctx, resumeID, sectionID, content)
}
