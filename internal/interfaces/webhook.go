package interfaces

import "context"

//go:generate mockgen -package=mock -source=webhook.go -destination=mock/webhook.go

// WebhookProviderClient is the external push-notification provider's
// subscription API.
type WebhookProviderClient interface {
	// CreateSubscription registers a new subscription delivering address
	// activity to url and returns its id.
	CreateSubscription(ctx context.Context, url string, addresses []string) (string, error)
	// UpdateSubscription adds and removes addresses on an existing
	// subscription.
	UpdateSubscription(ctx context.Context, id string, add, remove []string) error
	// ListAddresses returns the addresses currently on the subscription.
	ListAddresses(ctx context.Context, id string) ([]string, error)
	// GetSigningKey returns the HMAC signing key for the subscription.
	GetSigningKey(ctx context.Context, id string) (string, error)
	// FindSubscription returns the id of an existing subscription delivering
	// to url, or "" when none exists.
	FindSubscription(ctx context.Context, url string) (string, error)
}
