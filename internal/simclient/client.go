// Package simclient talks to the remote tax-benefit microsimulation engine.
package simclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rgehrsitz/marriagecalc/internal/country"
	"github.com/rgehrsitz/marriagecalc/internal/logging"
	"github.com/rgehrsitz/marriagecalc/internal/situation"
)

// DefaultBaseURL is the public PolicyEngine API
const DefaultBaseURL = "https://api.policyengine.org"

// RequestIDHeader carries a per-call id so engine logs can be correlated
const RequestIDHeader = "X-Request-ID"

// RemoteError is returned when the engine answers with a non-2xx status or
// with an error envelope
type RemoteError struct {
	StatusCode int    // 0 for envelope errors
	Body       string // raw response body for HTTP errors
	Message    string // engine message for envelope errors
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
	}
	return e.Message
}

// Client posts situations to {BaseURL}{profile.APIPath}. It makes exactly one
// request per call, never retries and sets no timeout of its own; the
// caller's context owns cancellation.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     logging.Logger
}

// New creates a client. An empty baseURL selects DefaultBaseURL.
func New(baseURL string, logger logging.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
		Logger:     logging.OrNop(logger),
	}
}

type request struct {
	Household *situation.Situation `json:"household"`
}

// Calculate sends one situation and returns the unwrapped result tree
func (c *Client) Calculate(ctx context.Context, p country.Profile, s *situation.Situation) (situation.Result, error) {
	body, err := json.Marshal(request{Household: s})
	if err != nil {
		return nil, fmt.Errorf("failed to encode situation: %w", err)
	}

	endpoint := c.BaseURL + p.APIPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, reqID)

	log := logging.OrNop(c.Logger)
	log.Debugf("POST %s request=%s bytes=%d", endpoint, reqID, len(body))

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calculation request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read calculation response: %w", err)
	}
	log.Debugf("response request=%s status=%d bytes=%d", reqID, resp.StatusCode, len(raw))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	return unwrap(raw)
}

// unwrap accepts {status, message}, {status, result}, a bare {result} or a
// bare result object
func unwrap(raw []byte) (situation.Result, error) {
	var envelope map[string]any
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode calculation response: %w", err)
	}

	if status, _ := envelope["status"].(string); status == "error" {
		msg, _ := envelope["message"].(string)
		if msg == "" {
			msg = "Calculation error"
		}
		return nil, &RemoteError{Message: msg}
	}

	if result, ok := envelope["result"].(map[string]any); ok {
		return situation.Result(result), nil
	}
	return situation.Result(envelope), nil
}
