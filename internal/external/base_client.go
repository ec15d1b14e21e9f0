package external

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrProviderDisabled is returned by clients whose provider is switched off
// or has no API key.
var ErrProviderDisabled = errors.New("provider disabled")

type BaseClient struct {
	baseURL string
	client  *http.Client
	headers map[string]string
	query   url.Values // added to every request
	enabled bool
}

func NewBaseClient(baseURL string, timeout time.Duration) *BaseClient {
	return &BaseClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		headers: map[string]string{"Accept": "application/json"},
		query:   url.Values{},
		enabled: true,
	}
}

func (c *BaseClient) SetHeader(key, value string) {
	c.headers[key] = value
}

func (c *BaseClient) SetQueryParam(key, value string) {
	c.query.Set(key, value)
}

func (c *BaseClient) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *BaseClient) Enabled() bool {
	return c.enabled
}

// Get fetches baseURL+endpoint with params and returns the body of a 2xx response.
func (c *BaseClient) Get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if !c.enabled {
		return nil, ErrProviderDisabled
	}

	q := url.Values{}
	for k, v := range c.query {
		q[k] = v
	}
	for k, v := range params {
		q[k] = v
	}
	target := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API returned status code: %d, response: %s", resp.StatusCode, truncate(body, 200))
	}
	return body, nil
}

func (c *BaseClient) getJSON(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	body, err := c.Get(ctx, endpoint, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response from %s: %w", endpoint, err)
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
