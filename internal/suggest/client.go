// Package suggest turns a free-text wish ("something like Blade Runner")
// into concrete catalog suggestions by calling a hosted text-generation
// endpoint, salvaging structured data from its output, and enriching the
// results against the local catalog and cover-art providers.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// HuggingFace router, Responses API shape
	routerURL = "https://router.huggingface.co/v1/responses"

	requestTimeout = 60 * time.Second
)

var (
	ErrNotConfigured = errors.New("text-generation token is not configured")
	ErrModelWarmup   = errors.New("the model is warming up; retry shortly")
	ErrUpstream      = errors.New("text-generation service error")
)

// Client calls the hosted text-generation endpoint.
type Client struct {
	token      string
	model      string
	endpoint   string
	httpClient *http.Client
}

func NewClient(token, model string) *Client {
	return &Client{
		token:    token,
		model:    model,
		endpoint: routerURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Configured reports whether an API token is present.
func (c *Client) Configured() bool {
	return c.token != ""
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// Generate posts instructions+input and returns the model's raw output text.
// The response body is treated as untrusted: any of several shapes the
// Responses API can produce is accepted.
func (c *Client) Generate(ctx context.Context, instructions, input string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	payload, err := json.Marshal(map[string]string{
		"model":        c.model,
		"instructions": instructions,
		"input":        input,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var data any
	// tolerate non-JSON error bodies
	_ = json.Unmarshal(body, &data)

	if resp.StatusCode == http.StatusServiceUnavailable {
		return "", ErrModelWarmup
	}
	if resp.StatusCode != http.StatusOK {
		if msg := upstreamMessage(data); msg != "" {
			return "", fmt.Errorf("%w: %s", ErrUpstream, msg)
		}
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	return ExtractOutputText(data), nil
}

// upstreamMessage digs a human-readable message out of an error body.
func upstreamMessage(data any) string {
	obj, ok := data.(map[string]any)
	if !ok {
		return ""
	}
	if errObj, ok := obj["error"].(map[string]any); ok {
		if msg, ok := errObj["message"].(string); ok {
			return msg
		}
	}
	if msg, ok := obj["error"].(string); ok {
		return msg
	}
	if msg, ok := obj["message"].(string); ok {
		return msg
	}
	return ""
}
