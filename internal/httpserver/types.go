package httpserver

import (
	"context"

	"portfolio-cache/internal/portfolio"
)

// PortfolioAPI is the surface of the tiered portfolio service the handlers
// need.
type PortfolioAPI interface {
	GetPortfolio(ctx context.Context, chain, address, provider string) (*portfolio.Result, error)
	InvalidateAddressCache(ctx context.Context, chain, address string) (int, error)
}

// WebhookAPI verifies inbound notification signatures.
type WebhookAPI interface {
	VerifySignature(ctx context.Context, chain string, body []byte, header string) bool
}

// Publisher delivers events onto the bus.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any)
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Error   string `json:"error"`
}

// InvalidateResponse reports how many fast-cache keys an invalidation
// removed.
type InvalidateResponse struct {
	Success     bool `json:"success"`
	RemovedKeys int  `json:"removed_keys"`
}

// WebhookResponse acknowledges an accepted notification.
type WebhookResponse struct {
	Success  bool `json:"success"`
	Accepted int  `json:"accepted"`
}

// webhookPayload is the notification body: one or more addresses that saw
// on-chain activity.
type webhookPayload struct {
	Addresses []string `json:"addresses"`
	Address   string   `json:"address"`
}

func (p *webhookPayload) addresses() []string {
	if len(p.Addresses) > 0 {
		return p.Addresses
	}
	if p.Address != "" {
		return []string{p.Address}
	}
	return nil
}
