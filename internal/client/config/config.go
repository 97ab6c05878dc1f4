package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config holds runtime settings for the Arkania admin console.
type Config struct {
	APIBaseURL          string        `validate:"required,url"`
	RequestTimeout      time.Duration `validate:"gt=0"`
	TokenExpiryBuffer   time.Duration `validate:"gt=0"`
	ExpiryCheckInterval time.Duration `validate:"gt=0"`

	StoreBackend string `validate:"oneof=sqlite redis"`
	StorePath    string `validate:"required_if=StoreBackend sqlite"`
	RedisAddr    string `validate:"required_if=StoreBackend redis"`
	RedisDB      int    `validate:"gte=0"`
	KeyPrefix    string `validate:"required"`

	LogLevel string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.TokenExpiryBuffer = 5 * time.Minute
	c.ExpiryCheckInterval = time.Minute
	c.StoreBackend = BackendSQLite
	c.StorePath = "arkania.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisDB = 0
	c.KeyPrefix = "arkania"
	c.LogLevel = "info"
}

// Validate reports the first inconsistent setting.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (and .env), JSON (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
