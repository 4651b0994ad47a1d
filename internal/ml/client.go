package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"cardioguard/internal/survey"
)

// RiskResult is the prediction service's verdict for one submission.
type RiskResult struct {
	RiskLevel   string   `json:"risk_level"`
	Probability float64  `json:"probability"`
	Factors     []string `json:"factors"`
}

type Client interface {
	Predict(ctx context.Context, payload *survey.Payload) (*RiskResult, error)
	HealthCheck(ctx context.Context) error
	Close() error
}

// APIError reports a non-200 response from the prediction service, keeping
// the raw body for server-side logging.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed with status code: %d", e.StatusCode)
}

// httpClient implements Client over plain HTTP. Single attempt, fail fast;
// retry policy belongs to the caller.
type httpClient struct {
	endpoint string
	client   *http.Client
}

// NewHTTPClient creates a prediction client for the given endpoint URL.
func NewHTTPClient(endpoint string) (Client, error) {
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("invalid prediction endpoint: %w", err)
	}
	return &httpClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Predict sends the mapped payload to the prediction service and returns
// the parsed result.
func (c *httpClient) Predict(ctx context.Context, payload *survey.Payload) (*RiskResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode prediction payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build prediction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var result RiskResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("invalid response from prediction service: %w", err)
	}

	return &result, nil
}

// HealthCheck verifies the prediction service is reachable. The service
// exposes no dedicated health route, so any HTTP response from its host
// counts as healthy.
func (c *httpClient) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	base, err := url.Parse(c.endpoint)
	if err != nil {
		return fmt.Errorf("invalid prediction endpoint: %w", err)
	}
	base.Path = "/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base.String(), nil)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	resp.Body.Close()

	return nil
}

func (c *httpClient) Close() error {
	c.client.CloseIdleConnections()
	return nil
}
