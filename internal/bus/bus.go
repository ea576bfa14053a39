// Package bus is the in-process publish/subscribe used to decouple a live
// balance fetch from the cache write, the durable mirror and webhook
// reconciliation.
package bus

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"portfolio-cache/internal/interfaces"
	"portfolio-cache/internal/metrics"
)

// Ensure Bus implements interfaces.Bus
var _ interfaces.Bus = (*Bus)(nil)

// Bus is a topic registry with synchronous per-handler dispatch. Handlers are
// independent: one handler failing or panicking never prevents siblings from
// running and never reaches the publisher.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]interfaces.Handler
	logger   *zap.Logger
}

// New creates an event bus.
func New(logger *zap.Logger) *Bus {
	return &Bus{
		handlers: make(map[string][]interfaces.Handler),
		logger:   logger,
	}
}

// Subscribe registers a handler for a topic. Intended to be called at
// startup; handlers run in subscription order.
func (b *Bus) Subscribe(topic string, handler interfaces.Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], handler)
}

// Publish delivers payload to every handler subscribed to topic, in order.
// Each handler's error or panic is caught and logged here.
func (b *Bus) Publish(ctx context.Context, topic string, payload any) {
	b.mu.RLock()
	handlers := b.handlers[topic]
	b.mu.RUnlock()

	metrics.RecordEventPublished(topic)

	for _, handler := range handlers {
		b.dispatch(ctx, topic, handler, payload)
	}
}

func (b *Bus) dispatch(ctx context.Context, topic string, handler interfaces.Handler, payload any) {
	defer func() {
		if r := recover(); r != nil {
			metrics.RecordEventHandlerError(topic)
			b.logger.Error("Event handler panicked",
				zap.String("topic", topic),
				zap.Any("panic", r))
		}
	}()

	if err := handler(ctx, payload); err != nil {
		metrics.RecordEventHandlerError(topic)
		b.logger.Error("Event handler failed",
			zap.String("topic", topic),
			zap.Error(err))
	}
}
