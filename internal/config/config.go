package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds the HTTP listener addresses.
type ServerConfig struct {
	Listen        string `yaml:"listen"`
	MetricsListen string `yaml:"metrics_listen"`
}

// RedisConfig holds the remote fast-cache connection settings. An empty URL
// selects the in-process backing store instead.
type RedisConfig struct {
	URL              string        `yaml:"url"`
	ConnectTimeout   time.Duration `yaml:"connect_timeout"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	SendTimeout      time.Duration `yaml:"send_timeout"`
	PoolSize         int           `yaml:"pool_size"`
	ReconnectBackoff time.Duration `yaml:"reconnect_backoff"`
}

// MemoryConfig holds the in-process fast-cache settings.
type MemoryConfig struct {
	SizeMB     int           `yaml:"size_mb"`
	DefaultTTL time.Duration `yaml:"default_ttl"`
}

// MongoConfig holds the durable-store connection settings.
type MongoConfig struct {
	URI      string `yaml:"uri" validate:"required"`
	Database string `yaml:"database"`
}

// CacheConfig holds key-addressing and TTL policy.
type CacheConfig struct {
	Prefix        string        `yaml:"prefix"`
	FreshTTL      time.Duration `yaml:"fresh_ttl"`
	DurableTTL    time.Duration `yaml:"durable_ttl"`
	LockTTL       time.Duration `yaml:"lock_ttl"`
	SigningKeyTTL time.Duration `yaml:"signing_key_ttl"`
}

// ReconcileConfig controls webhook-address reconciliation cadence.
type ReconcileConfig struct {
	Throttle      time.Duration `yaml:"throttle"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
	SweepEnabled  bool          `yaml:"sweep_enabled"`
}

// ProviderConfig is one upstream data provider's endpoint.
type ProviderConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

// ProvidersConfig holds the provider endpoints and the default selection.
type ProvidersConfig struct {
	Default string         `yaml:"default"`
	Alchemy ProviderConfig `yaml:"alchemy"`
	Moralis ProviderConfig `yaml:"moralis"`
	Ankr    ProviderConfig `yaml:"ankr"`
}

// WebhookConfig holds the push-notification provider settings.
type WebhookConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKey      string `yaml:"api_key"`
	CallbackURL string `yaml:"callback_url"`
}

// Config is the root configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Redis     RedisConfig     `yaml:"redis"`
	Memory    MemoryConfig    `yaml:"memory"`
	Mongo     MongoConfig     `yaml:"mongo"`
	Cache     CacheConfig     `yaml:"cache"`
	Reconcile ReconcileConfig `yaml:"reconcile"`
	Providers ProvidersConfig `yaml:"providers"`
	Webhook   WebhookConfig   `yaml:"webhook"`
}

// LoadConfig loads configuration from a YAML file, applies defaults and
// validates it.
func LoadConfig(configPath string, logger *zap.Logger) (*Config, error) {
	logger.Info("Loading configuration", zap.String("path", configPath))

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var config Config
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode YAML config: %w", err)
	}

	config.applyDefaults()

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyDefaults sets default values for missing configuration.
func (c *Config) applyDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.MetricsListen == "" {
		c.Server.MetricsListen = ":9090"
	}
	if c.Redis.ConnectTimeout == 0 {
		c.Redis.ConnectTimeout = 5 * time.Second
	}
	if c.Redis.ReadTimeout == 0 {
		c.Redis.ReadTimeout = 3 * time.Second
	}
	if c.Redis.SendTimeout == 0 {
		c.Redis.SendTimeout = 3 * time.Second
	}
	if c.Redis.PoolSize == 0 {
		c.Redis.PoolSize = 10
	}
	if c.Redis.ReconnectBackoff == 0 {
		c.Redis.ReconnectBackoff = 5 * time.Second
	}
	if c.Memory.SizeMB == 0 {
		c.Memory.SizeMB = 64
	}
	// The in-process store keeps entries for less time than Redis would.
	if c.Memory.DefaultTTL == 0 {
		c.Memory.DefaultTTL = 2 * time.Minute
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "portfolio"
	}
	if c.Cache.Prefix == "" {
		c.Cache.Prefix = "portfolio"
	}
	if c.Cache.FreshTTL == 0 {
		c.Cache.FreshTTL = 10 * time.Minute
	}
	if c.Cache.DurableTTL == 0 {
		c.Cache.DurableTTL = 24 * time.Hour
	}
	if c.Cache.LockTTL == 0 {
		c.Cache.LockTTL = 30 * time.Second
	}
	if c.Cache.SigningKeyTTL == 0 {
		c.Cache.SigningKeyTTL = time.Hour
	}
	if c.Reconcile.Throttle == 0 {
		c.Reconcile.Throttle = 5 * time.Minute
	}
	if c.Reconcile.SweepInterval == 0 {
		c.Reconcile.SweepInterval = 10 * time.Minute
	}
	if c.Providers.Default == "" {
		c.Providers.Default = "alchemy"
	}
}

// ProviderEndpoint returns the endpoint config for a known provider name.
func (c *Config) ProviderEndpoint(provider string) (ProviderConfig, bool) {
	switch provider {
	case "alchemy":
		return c.Providers.Alchemy, true
	case "moralis":
		return c.Providers.Moralis, true
	case "ankr":
		return c.Providers.Ankr, true
	default:
		return ProviderConfig{}, false
	}
}
