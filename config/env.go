package config

import (
	"os"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment from ENV. Anything
// other than "development" or "test" is production.
func GetEnvironment() Environment {
	switch env := os.Getenv("ENV"); env {
	case "development":
		return Development
	case "test":
		return Test
	default:
		return Production
	}
}

// IsDevelopment returns true if the current environment is development
func IsDevelopment() bool {
	return GetEnvironment() == Development
}

// IsProduction returns true if the current environment is production
func IsProduction() bool {
	return GetEnvironment() == Production
}
