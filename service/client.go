package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultBaseURL   = "https://nfctron-frontend-seating-case-study-2024.vercel.app"
	defaultUserAgent = "event-seating-cli/1.0"
)

// Client wraps HTTP access to the seating API. Requests are made exactly
// once: a failed load or submission is reported to the caller, never retried
// here.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// APIError is returned when the API responds with a non-2xx status.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	if e == nil {
		return "seating api error"
	}
	if e.Body != "" {
		return fmt.Sprintf("seating api error: %s: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("seating api error: %s", e.Status)
}

// IsUnauthorized reports whether the error represents a 401 or 403 from the
// API, typically a rejected login.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// NewClient creates a new API client. If httpClient is nil, a default client
// is used. SEATING_API_BASE overrides the target deployment.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	baseURL := defaultBaseURL
	if env := strings.TrimSpace(os.Getenv("SEATING_API_BASE")); env != "" {
		baseURL = strings.TrimRight(env, "/")
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  defaultUserAgent,
	}
}

func (c *Client) do(ctx context.Context, method string, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 8<<10))
		return &APIError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Endpoint:   endpoint,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response from %s: %w", endpoint, err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *Client) postJSON(ctx context.Context, endpoint string, body any, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out)
}
