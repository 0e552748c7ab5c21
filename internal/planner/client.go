// Package planner is the HTTP client for the evacuation-planning backend.
// It models the service at its request/response boundary only: retries,
// auth and transport tuning belong to the deployment, not this client.
package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// historyLimit caps the conversation history sent with each chat request.
const historyLimit = 5

// Client talks to the planning backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SendMessage posts a chat message and returns the assistant's reply.
// History beyond the most recent turns is dropped client-side. Callers
// should degrade to FallbackMessage on error rather than surfacing it.
func (c *Client) SendMessage(ctx context.Context, req ChatRequest) (string, error) {
	if n := len(req.ConversationHistory); n > historyLimit {
		req.ConversationHistory = req.ConversationHistory[n-historyLimit:]
	}
	if req.Context.Timestamp == "" {
		req.Context.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	var resp ChatResponse
	if err := c.post(ctx, "/api/chat", req, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

// Plan requests an evacuation plan for a borough.
func (c *Client) Plan(ctx context.Context, req PlanRequest) (*PlanResult, error) {
	var result PlanResult
	if err := c.post(ctx, "/api/plan", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s: %s", path, decodeError(resp))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError extracts the backend's detail string when present, falling
// back to the HTTP status.
func decodeError(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil {
		var e apiError
		if json.Unmarshal(data, &e) == nil && e.Detail != "" {
			return e.Detail
		}
	}
	return resp.Status
}
