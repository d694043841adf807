// Package config loads process configuration from the environment
package config

import (
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/skilltree-api/internal/errors"
)

// Store selects the build repository backend
type Store string

// Supported stores
const (
	StoreRedis  Store = "redis"
	StoreSQLite Store = "sqlite"
	StoreMemory Store = "memory"
)

// Config is the server configuration. Every field can be set through its
// SKILLTREE_ environment variable; command line flags override them.
type Config struct {
	GRPCPort int `env:"SKILLTREE_GRPC_PORT" envDefault:"50051"`

	Store      Store         `env:"SKILLTREE_STORE" envDefault:"memory"`
	RedisAddrs []string      `env:"SKILLTREE_REDIS_ADDR" envDefault:"localhost:6379" envSeparator:","`
	RedisTLS   bool          `env:"SKILLTREE_REDIS_TLS"`
	SQLitePath string        `env:"SKILLTREE_SQLITE_PATH" envDefault:"skilltree.db"`
	BuildTTL   time.Duration `env:"SKILLTREE_BUILD_TTL" envDefault:"720h"`

	// SessionIdleTTL drops untouched sessions from memory; it may not
	// outlive the stored build
	SessionIdleTTL time.Duration `env:"SKILLTREE_SESSION_IDLE_TTL" envDefault:"30m"`

	ShareBaseURL string `env:"SKILLTREE_SHARE_BASE_URL" envDefault:"http://localhost:3000"`
	// CatalogPath loads a YAML catalog from disk instead of the embedded one
	CatalogPath string `env:"SKILLTREE_CATALOG_PATH"`

	// MetricsAddr serves /metrics when set, e.g. ":9090"
	MetricsAddr string `env:"SKILLTREE_METRICS_ADDR"`
	LogLevel    string `env:"SKILLTREE_LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the process environment
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the configuration from the given variables only
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field ranges and cross field requirements
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPCPort < 1 || c.GRPCPort > 65535 {
		vb.Fieldf("GRPCPort", "must be between 1 and 65535, got %d", c.GRPCPort)
	}

	switch c.Store {
	case StoreRedis:
		if len(c.RedisAddrs) == 0 || strings.TrimSpace(c.RedisAddrs[0]) == "" {
			vb.RequiredField("RedisAddrs")
		}
	case StoreSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			vb.RequiredField("SQLitePath")
		}
	case StoreMemory:
	default:
		vb.Fieldf("Store", "must be one of redis, sqlite, memory, got %q", c.Store)
	}

	if c.BuildTTL < 0 {
		vb.Fieldf("BuildTTL", "must not be negative, got %s", c.BuildTTL)
	}
	if c.SessionIdleTTL <= 0 {
		vb.Fieldf("SessionIdleTTL", "must be positive, got %s", c.SessionIdleTTL)
	} else if c.BuildTTL > 0 && c.SessionIdleTTL > c.BuildTTL {
		vb.Fieldf("SessionIdleTTL", "must not exceed BuildTTL %s, got %s", c.BuildTTL, c.SessionIdleTTL)
	}

	if u, err := url.Parse(c.ShareBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		vb.Fieldf("ShareBaseURL", "must be an absolute URL, got %q", c.ShareBaseURL)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		vb.Fieldf("LogLevel", "must be one of debug, info, warn, error, got %q", c.LogLevel)
	}

	return vb.Build()
}
