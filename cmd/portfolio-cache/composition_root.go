package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"portfolio-cache/internal/bus"
	"portfolio-cache/internal/cache"
	"portfolio-cache/internal/cachekey"
	"portfolio-cache/internal/chains"
	"portfolio-cache/internal/config"
	"portfolio-cache/internal/httpserver"
	"portfolio-cache/internal/interfaces"
	"portfolio-cache/internal/portfolio"
	"portfolio-cache/internal/providers"
	"portfolio-cache/internal/registry"
	"portfolio-cache/internal/scheduler"
	"portfolio-cache/internal/store/mongo"
	"portfolio-cache/internal/webhook"
)

// CompositionRoot holds all application dependencies and provides a
// centralized place for dependency injection and service initialization.
type CompositionRoot struct {
	Config *config.Config
	Logger *zap.Logger

	FastCache interfaces.FastCache
	Store     interfaces.PortfolioStore
	Bus       *bus.Bus
	Registry  *registry.Registry

	Portfolio *portfolio.Service
	Webhooks  *webhook.Service
	Listeners *portfolio.Listeners
	Scheduler *scheduler.Scheduler

	HTTPServer    *httpserver.Server
	MetricsServer *httpserver.MetricsServer
}

// NewCompositionRoot creates and wires all application dependencies.
//
// Initialization order:
// 1. Logger (needed by all other components)
// 2. Configuration
// 3. Fast cache and durable store
// 4. Event bus and chain registry
// 5. Services (portfolio, webhook) and pipeline listeners
// 6. HTTP and metrics servers
func NewCompositionRoot() (*CompositionRoot, error) {
	root := &CompositionRoot{}

	if err := root.initLogger(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := root.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := root.initStorage(); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	root.initRegistry()

	root.initServices()

	root.initServers()

	return root, nil
}

// initLogger initializes the application logger.
func (r *CompositionRoot) initLogger() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	r.Logger = logger
	return nil
}

// loadConfig loads the application configuration.
func (r *CompositionRoot) loadConfig() error {
	configPath := os.Getenv("PORTFOLIO_CONFIG_FILE")
	if configPath == "" {
		configPath = "/app/portfolio_config.yaml"
	}

	cfg, err := config.LoadConfig(configPath, r.Logger)
	if err != nil {
		return err
	}

	r.Config = cfg
	return nil
}

// initStorage initializes the fast cache and the durable store. Connection
// endpoints from the environment override the config file.
func (r *CompositionRoot) initStorage() error {
	r.Config.Redis.URL = ResolveRedisURL(r.Config.Redis.URL, r.Logger)
	r.Config.Mongo.URI = ResolveMongoURI(r.Config.Mongo.URI, r.Logger)

	fast, err := cache.New(r.Config, r.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize fast cache: %w", err)
	}
	r.FastCache = fast

	store, err := mongo.New(&r.Config.Mongo, r.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize durable store: %w", err)
	}
	r.Store = store

	return nil
}

// initRegistry installs the balance service factories. One EVM factory covers
// the whole family; Solana gets its own.
func (r *CompositionRoot) initRegistry() {
	r.Registry = registry.New(r.Logger)

	clients := providers.BuildClients(r.Config, r.Logger)
	defaultProvider := r.Config.Providers.Default

	r.Registry.Register(func(chain string) interfaces.BalanceService {
		return providers.NewEVMService(chain, defaultProvider, clients, r.Logger)
	},
		chains.Ethereum, chains.Polygon, chains.BSC, chains.Arbitrum,
		chains.Optimism, chains.Base, chains.Avalanche,
		chains.Sepolia, chains.Amoy,
	)

	r.Registry.Register(func(chain string) interfaces.BalanceService {
		return providers.NewSolanaService(defaultProvider, clients, r.Logger)
	}, chains.Solana)
}

// initServices wires the bus, the tiered portfolio service, the webhook
// reconciler and the pipeline listeners.
func (r *CompositionRoot) initServices() {
	r.Bus = bus.New(r.Logger)
	codec := cachekey.NewCodec(r.Logger)

	r.Portfolio = portfolio.NewService(
		r.FastCache,
		r.Store,
		r.Registry,
		codec,
		r.Bus,
		r.Config,
		r.Logger,
	)

	webhookClient := webhook.NewHTTPClient(&r.Config.Webhook, r.Logger)
	r.Webhooks = webhook.New(webhookClient, r.FastCache, r.Store, r.Config, r.Logger)

	r.Listeners = portfolio.NewListeners(
		r.Portfolio,
		r.FastCache,
		r.Store,
		r.Bus,
		r.Webhooks,
		codec,
		r.Config,
		r.Logger,
	)
	r.Listeners.Register()

	if r.Config.Reconcile.SweepEnabled {
		r.Scheduler = scheduler.New(
			r.Webhooks,
			r.Registry.Chains,
			r.Config.Reconcile.SweepInterval,
			r.Logger,
		)
	} else {
		r.Logger.Info("Reconciliation sweep disabled")
	}
}

// initServers initializes the HTTP API and metrics servers.
func (r *CompositionRoot) initServers() {
	r.HTTPServer = httpserver.NewServer(r.Portfolio, r.Webhooks, r.Bus, r.Logger)
	r.MetricsServer = httpserver.NewMetricsServer(r.Logger)
}

// Cleanup releases all resources.
func (r *CompositionRoot) Cleanup() error {
	var errors []error

	if r.Logger != nil {
		if err := r.Logger.Sync(); err != nil {
			errors = append(errors, fmt.Errorf("failed to sync logger: %w", err))
		}
	}

	if r.FastCache != nil {
		if closer, ok := r.FastCache.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				errors = append(errors, fmt.Errorf("failed to close fast cache: %w", err))
			}
		}
	}

	if r.Store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.Store.Close(ctx); err != nil {
			errors = append(errors, fmt.Errorf("failed to close durable store: %w", err))
		}
	}

	if len(errors) > 0 {
		return errors[0]
	}

	return nil
}
