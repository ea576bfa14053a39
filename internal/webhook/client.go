package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"portfolio-cache/internal/config"
	"portfolio-cache/internal/interfaces"
)

// Ensure HTTPClient implements interfaces.WebhookProviderClient
var _ interfaces.WebhookProviderClient = (*HTTPClient)(nil)

const clientRequestTimeout = 15 * time.Second

// HTTPClient is the JSON client for the push-notification provider's
// subscription API.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPClient creates the subscription API client.
func NewHTTPClient(cfg *config.WebhookConfig, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: clientRequestTimeout},
		logger:     logger,
	}
}

type subscription struct {
	ID         string   `json:"id"`
	URL        string   `json:"url"`
	Addresses  []string `json:"addresses,omitempty"`
	SigningKey string   `json:"signingKey,omitempty"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook provider request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook provider returned status %d: %s", resp.StatusCode, string(payload))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// CreateSubscription registers a subscription delivering to url.
func (c *HTTPClient) CreateSubscription(ctx context.Context, deliveryURL string, addresses []string) (string, error) {
	var created subscription
	payload := subscription{URL: deliveryURL, Addresses: addresses}
	if err := c.do(ctx, http.MethodPost, "/v1/subscriptions", payload, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

// UpdateSubscription adds and removes addresses on a subscription.
func (c *HTTPClient) UpdateSubscription(ctx context.Context, id string, add, remove []string) error {
	payload := map[string][]string{"add": add, "remove": remove}
	return c.do(ctx, http.MethodPatch, "/v1/subscriptions/"+id+"/addresses", payload, nil)
}

// ListAddresses returns the addresses currently on a subscription.
func (c *HTTPClient) ListAddresses(ctx context.Context, id string) ([]string, error) {
	var sub subscription
	if err := c.do(ctx, http.MethodGet, "/v1/subscriptions/"+id, nil, &sub); err != nil {
		return nil, err
	}
	return sub.Addresses, nil
}

// GetSigningKey returns the subscription's HMAC signing key.
func (c *HTTPClient) GetSigningKey(ctx context.Context, id string) (string, error) {
	var sub subscription
	if err := c.do(ctx, http.MethodGet, "/v1/subscriptions/"+id+"/signing-key", nil, &sub); err != nil {
		return "", err
	}
	return sub.SigningKey, nil
}

// FindSubscription returns the id of the subscription delivering to url, or
// "" when none exists.
func (c *HTTPClient) FindSubscription(ctx context.Context, deliveryURL string) (string, error) {
	var subs []subscription
	path := "/v1/subscriptions?url=" + url.QueryEscape(deliveryURL)
	if err := c.do(ctx, http.MethodGet, path, nil, &subs); err != nil {
		return "", err
	}
	for _, sub := range subs {
		if sub.URL == deliveryURL {
			return sub.ID, nil
		}
	}
	return "", nil
}
