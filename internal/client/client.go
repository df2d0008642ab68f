package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-resume-backend/internal/domain"
)

// DefaultTimeout mirrors the proxy's own upstream timeout so the client
// never gives up before the server has had a chance to answer.
const DefaultTimeout = 60 * time.Second

// Client talks to the resume backend's HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the given base URL, e.g. "http://localhost:3001".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying transport, mostly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// APIError is a non-2xx answer from the backend, carrying the wire
// error message and optional details.
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api: %d %s (%s)", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

type polishResponse struct {
	Success      bool   `json:"success"`
	PolishedText string `json:"polishedText"`
	Error        string `json:"error"`
	Details      string `json:"details"`
}

// Polish sends text to POST /api/polish and returns the rewritten version.
func (c *Client) Polish(ctx context.Context, text, prompt string, provider domain.ProviderID) (string, error) {
	body := domain.PolishRequest{Text: text, Prompt: prompt, Provider: provider}

	var out polishResponse
	status, err := c.doJSON(ctx, http.MethodPost, "/api/polish", body, &out)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", &APIError{StatusCode: status, Message: out.Error, Details: out.Details}
	}
	return out.PolishedText, nil
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Health reports whether the backend answers its health probe.
func (c *Client) Health(ctx context.Context) error {
	var out healthResponse
	status, err := c.doJSON(ctx, http.MethodGet, "/api/health", nil, &out)
	if err != nil {
		return err
	}
	if status != http.StatusOK || out.Status != "ok" {
		return &APIError{StatusCode: status, Message: "health check failed"}
	}
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

// UpdateSectionContent replaces a section's content wholesale via
// PUT /api/resumes/:id/sections/:sectionId.
func (c *Client) UpdateSectionContent(ctx context.Context, resumeID, sectionID string, content json.RawMessage) error {
	path := fmt.Sprintf("/api/resumes/%s/sections/%s", resumeID, sectionID)
	body := map[string]json.RawMessage{"content": content}

	var out envelope
	status, err := c.doJSON(ctx, http.MethodPut, path, body, &out)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return &APIError{StatusCode: status, Message: out.Message, Details: string(out.Error)}
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) (int, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if len(raw) > 0 && out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}
