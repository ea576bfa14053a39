package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"portfolio-cache/internal/config"
	"portfolio-cache/internal/interfaces"
	"portfolio-cache/internal/models"
)

// Ensure HTTPProviderClient implements interfaces.ProviderClient
var _ interfaces.ProviderClient = (*HTTPProviderClient)(nil)

const providerRequestTimeout = 15 * time.Second

// HTTPProviderClient is a thin JSON client for one upstream data provider's
// balance API. A client without a configured base URL reports unsupported.
type HTTPProviderClient struct {
	name       string
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPProviderClient creates a client for the named provider endpoint.
func NewHTTPProviderClient(name string, cfg config.ProviderConfig, logger *zap.Logger) *HTTPProviderClient {
	return &HTTPProviderClient{
		name:       name,
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: providerRequestTimeout},
		logger:     logger,
	}
}

// GetBalances fetches native, token and NFT balances for an address.
func (c *HTTPProviderClient) GetBalances(ctx context.Context, chain string, chainID int64, address, network string) (*models.Balances, error) {
	url := fmt.Sprintf("%s/v1/%s/%d/addresses/%s/balances?network=%s",
		c.baseURL, chain, chainID, address, network)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", c.name, err)
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", c.name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%s returned status %d: %s", c.name, resp.StatusCode, string(body))
	}

	var balances models.Balances
	if err := json.NewDecoder(resp.Body).Decode(&balances); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", c.name, err)
	}

	return &balances, nil
}

// IsSupported reports whether the client has an endpoint configured.
func (c *HTTPProviderClient) IsSupported() bool {
	return c.baseURL != ""
}

// BuildClients creates a client per known provider from configuration.
func BuildClients(cfg *config.Config, logger *zap.Logger) map[string]interfaces.ProviderClient {
	return map[string]interfaces.ProviderClient{
		"alchemy": NewHTTPProviderClient("alchemy", cfg.Providers.Alchemy, logger),
		"moralis": NewHTTPProviderClient("moralis", cfg.Providers.Moralis, logger),
		"ankr":    NewHTTPProviderClient("ankr", cfg.Providers.Ankr, logger),
	}
}
