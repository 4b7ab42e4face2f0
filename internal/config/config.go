// Package config loads card-forge settings from the environment
package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/card-forge/internal/errors"
)

// Config is the runtime configuration of every command
type Config struct {
	GRPCPort int `env:"CARDFORGE_GRPC_PORT" envDefault:"50051"`

	GeminiAPIKey  string `env:"CARDFORGE_GEMINI_API_KEY"`
	GeminiModel   string `env:"CARDFORGE_GEMINI_MODEL"    envDefault:"gemini-2.0-flash"`
	GeminiBaseURL string `env:"CARDFORGE_GEMINI_BASE_URL"`

	HordeAPIKey       string        `env:"CARDFORGE_HORDE_API_KEY"       envDefault:"0000000000"`
	HordeBaseURL      string        `env:"CARDFORGE_HORDE_BASE_URL"`
	HordePollInterval time.Duration `env:"CARDFORGE_HORDE_POLL_INTERVAL" envDefault:"3s"`
	HordeMaxPolls     int           `env:"CARDFORGE_HORDE_MAX_POLLS"     envDefault:"30"`

	HTTPTimeout time.Duration `env:"CARDFORGE_HTTP_TIMEOUT" envDefault:"60s"`

	// RedisAddr enables the image cache when set
	RedisAddr     string        `env:"CARDFORGE_REDIS_ADDR"`
	ImageCacheTTL time.Duration `env:"CARDFORGE_IMAGE_CACHE_TTL" envDefault:"24h"`

	FallbackDelay     time.Duration `env:"CARDFORGE_FALLBACK_DELAY"     envDefault:"0s"`
	GenerationTimeout time.Duration `env:"CARDFORGE_GENERATION_TIMEOUT" envDefault:"5m"`

	// OTelEndpoint enables trace export when set
	OTelEndpoint string `env:"CARDFORGE_OTEL_ENDPOINT"`

	// Seed makes every random choice reproducible; zero uses the default roller
	Seed uint64 `env:"CARDFORGE_SEED" envDefault:"0"`
}

// Load reads an optional .env file, then parses the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}
	return Parse()
}

// Parse reads the configuration from the environment only
func Parse() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	errors.ValidatePositiveDuration("horde_poll_interval", c.HordePollInterval, vb)
	errors.ValidatePositiveDuration("http_timeout", c.HTTPTimeout, vb)
	errors.ValidatePositiveDuration("image_cache_ttl", c.ImageCacheTTL, vb)
	if c.HordeMaxPolls < 1 {
		vb.InvalidField("horde_max_polls", "must be at least 1")
	}
	if c.FallbackDelay < 0 {
		vb.InvalidField("fallback_delay", "must not be negative")
	}
	if c.GenerationTimeout < 0 {
		vb.InvalidField("generation_timeout", "must not be negative")
	}

	return vb.Build()
}

// TextGenerationEnabled reports whether a Gemini key is configured
func (c *Config) TextGenerationEnabled() bool {
	return c.GeminiAPIKey != ""
}

// ImageCacheEnabled reports whether a Redis address is configured
func (c *Config) ImageCacheEnabled() bool {
	return c.RedisAddr != ""
}
