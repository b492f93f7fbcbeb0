package config

import (
	"fmt"
	"net"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in a configuration
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

// ValidateConfig checks that every required value is present
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	required := []struct {
		field string
		value string
		hint  string
	}{
		{"ANTHROPIC_API_KEY", cfg.AnthropicAPIKey, "environment variable or anthropic_api_key secret is required"},
		{"DB_HOST", cfg.DBHost, "environment variable is required"},
		{"DB_NAME", cfg.DBName, "environment variable is required"},
		{"DB_USER", cfg.DBUser, "environment variable is required"},
		{"DB_PASSWORD", cfg.DBPassword, "environment variable or db_password secret is required"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, ValidationError{Field: r.field, Message: r.hint})
		}
	}

	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{Field: "PORT", Message: "must not be empty"})
	}
	if cfg.RateLimitPerMinute < 0 {
		errs = append(errs, ValidationError{Field: "RATE_LIMIT_PER_MINUTE", Message: "must not be negative"})
	}

	for _, proxy := range cfg.TrustedProxies {
		if !validProxy(proxy) {
			errs = append(errs, ValidationError{Field: "TRUSTED_PROXIES", Message: fmt.Sprintf("%q is not an IP address or CIDR", proxy)})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validProxy(proxy string) bool {
	if strings.Contains(proxy, "/") {
		_, _, err := net.ParseCIDR(proxy)
		return err == nil
	}
	return net.ParseIP(proxy) != nil
}
