package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ServerPort string `envconfig:"PORT" default:"5000"`

	// Database configuration
	DBHost     string `envconfig:"DB_HOST"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`
	DBSSLMode  string `envconfig:"DB_SSL_MODE" default:"require"`

	// Anthropic configuration
	AnthropicAPIKey  string `envconfig:"ANTHROPIC_API_KEY"`
	AnthropicBaseURL string `envconfig:"ANTHROPIC_BASE_URL"`

	// Redis backs the chat rate limiter; empty disables it
	RedisURL           string `envconfig:"REDIS_URL"`
	RateLimitPerMinute int    `envconfig:"RATE_LIMIT_PER_MINUTE" default:"30"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`
	// TrustedProxies lists the proxy IPs or CIDRs allowed to set X-Forwarded-For.
	// Empty means the client IP is always the connection's remote address.
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`
	LogLevel           string   `envconfig:"LOG_LEVEL" default:"info"`
	SecretsDir         string   `envconfig:"SECRETS_DIR" default:"/run/secrets"`
}

// LoadConfig reads an optional .env file, the process environment and the
// secrets directory, in that order, and validates the result.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	// Sensitive values may be mounted as Docker secrets instead
	if cfg.AnthropicAPIKey == "" {
		cfg.AnthropicAPIKey = readSecret(cfg.SecretsDir, "anthropic_api_key")
	}
	if cfg.DBPassword == "" {
		cfg.DBPassword = readSecret(cfg.SecretsDir, "db_password")
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// DSN returns the lib/pq connection string for the recipe database
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, quoteDSNValue(c.DBPassword), c.DBName, c.DBSSLMode)
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// RateLimitEnabled reports whether the chat endpoint should be rate limited
func (c *Config) RateLimitEnabled() bool {
	return c.RedisURL != "" && c.RateLimitPerMinute > 0
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(dir, name string) string {
	if dir == "" {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func quoteDSNValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
