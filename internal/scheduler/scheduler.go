// Package scheduler runs the periodic webhook reconciliation sweep. The
// event-driven throttle covers busy chains; the sweep guarantees idle chains
// still converge.
package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sweeper is invoked once per chain per tick.
type Sweeper interface {
	ReconcileChain(ctx context.Context, chain string)
}

// Scheduler drives a Sweeper over a fixed chain set at a fixed interval.
type Scheduler struct {
	sweeper  Sweeper
	chains   func() []string
	interval time.Duration
	logger   *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a sweep scheduler. chains is evaluated on every tick so
// late-registered chains are picked up.
func New(sweeper Sweeper, chains func() []string, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		chains:   chains,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the sweep loop. Calling Start on a running scheduler is a
// no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, s.done)
	s.logger.Info("Reconciliation sweep started", zap.Duration("interval", s.interval))
}

// Stop cancels the loop and waits for the in-flight sweep to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.logger.Info("Reconciliation sweep stopped")
}

func (s *Scheduler) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	for _, chain := range s.chains() {
		if ctx.Err() != nil {
			return
		}
		s.sweeper.ReconcileChain(ctx, chain)
	}
}
