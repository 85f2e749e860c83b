package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Version is the API version reported by the health endpoint.
const Version = "1.0.0"

// Default values
const (
	DefaultPort           = "8000"
	DefaultTimeoutSeconds = 10
	DefaultRequestsPerSec = 2
	DefaultLogLevel       = "info"
)

// Config holds the application configuration
type Config struct {
	Port           string
	KRXBaseURL     string // empty selects the public gateway
	HTTPTimeout    time.Duration
	RequestsPerSec int
	AllowedOrigin  string // CORS origin, empty means allow-all
	LogLevel       string
}

// New creates a new Config with values from environment variables or defaults
func New() (*Config, error) {
	timeoutStr := getEnvOrDefault("HTTP_TIMEOUT_SECONDS", strconv.Itoa(DefaultTimeoutSeconds))
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS value %q", timeoutStr)
	}

	rpsStr := getEnvOrDefault("KRX_RPS", strconv.Itoa(DefaultRequestsPerSec))
	rps, err := strconv.Atoi(rpsStr)
	if err != nil || rps <= 0 {
		return nil, fmt.Errorf("invalid KRX_RPS value %q", rpsStr)
	}

	return &Config{
		Port:           getEnvOrDefault("PORT", DefaultPort),
		KRXBaseURL:     os.Getenv("KRX_BASE_URL"),
		HTTPTimeout:    time.Duration(timeout) * time.Second,
		RequestsPerSec: rps,
		AllowedOrigin:  os.Getenv("ALLOWED_ORIGIN"),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", DefaultLogLevel),
	}, nil
}

// getEnvOrDefault returns the value of the environment variable or the default value
func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
