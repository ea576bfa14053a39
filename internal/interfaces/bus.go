package interfaces

import "context"

//go:generate mockgen -package=mock -source=bus.go -destination=mock/bus.go

// Handler consumes one event. A non-nil error is logged by the dispatcher
// and never reaches the publisher or sibling handlers.
type Handler func(ctx context.Context, payload any) error

// Bus is the in-process publish/subscribe used to decouple live fetches from
// cache writes, durable mirroring and webhook reconciliation. Delivery is
// synchronous per handler, in subscription order.
type Bus interface {
	Subscribe(topic string, handler Handler)
	Publish(ctx context.Context, topic string, payload any)
}
