package notepm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kzhmr/notepm-mcp-server/internal/notepm/config"
)

const requestTimeout = 30 * time.Second

// Client is a NotePM API client
type Client struct {
	httpClient *http.Client
	cfg        *config.Config
}

// NewClient creates a new NotePM API client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		cfg: cfg,
	}
}

// Search calls the page search API and returns the response as a JSON
// string. Page bodies longer than the configured threshold are
// truncated to bound the response size.
func (c *Client) Search(ctx context.Context, params SearchParams) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}

	body, err := c.get(ctx, c.cfg.APIBase+"?"+params.Encode())
	if err != nil {
		return "", err
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return "", &InvalidResponseError{Err: err}
	}

	// Truncation only applies to object responses; any other valid
	// JSON passes through as-is.
	if obj, ok := data.(map[string]any); ok {
		TruncateBodies(obj, c.cfg.MaxBodyLength)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// GetPageDetail calls the page detail API and returns the upstream
// response text unchanged. Detail responses are never truncated; the
// caller asked for the full content of one page.
func (c *Client) GetPageDetail(ctx context.Context, params DetailParams) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}

	body, err := c.get(ctx, c.cfg.APIBase+"/"+url.PathEscape(params.PageCode))
	if err != nil {
		return "", err
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return "", &InvalidResponseError{Err: err}
	}

	return string(body), nil
}

// get performs a single authenticated GET request and returns the
// response body on a 2xx status
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.APIToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
