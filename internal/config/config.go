// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port        string
	FrontendURL string
	DBPath      string
	Assistant   AssistantConfig
	SMS         SMSConfig
}

// AssistantConfig controls the optional AI study counsellor. The
// assistant is disabled when APIKey is empty.
type AssistantConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// SMSConfig controls the outbound SMS gateway. Delivery is disabled
// when APIKey is empty, which is the normal state for USSD-only or
// local development deployments.
type SMSConfig struct {
	Username string
	APIKey   string
	SenderID string
	BaseURL  string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	askTimeout := getEnvInt("ASSISTANT_TIMEOUT_SECONDS", 10)
	if askTimeout <= 0 {
		askTimeout = 10
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", ""),
		DBPath:      getEnv("DB_PATH", "./data/pathways.db"),
		Assistant: AssistantConfig{
			BaseURL: getEnv("ASSISTANT_BASE_URL", ""),
			APIKey:  getEnv("ASSISTANT_API_KEY", ""),
			Model:   getEnv("ASSISTANT_MODEL", "gpt-4o-mini"),
			Timeout: time.Duration(askTimeout) * time.Second,
		},
		SMS: SMSConfig{
			Username: getEnv("SMS_USERNAME", "sandbox"),
			APIKey:   getEnv("SMS_API_KEY", ""),
			SenderID: getEnv("SMS_SENDER_ID", ""),
			BaseURL:  getEnv("SMS_BASE_URL", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.Assistant.APIKey != "" && c.Assistant.Model == "" {
		return fmt.Errorf("ASSISTANT_MODEL cannot be empty when the assistant is enabled")
	}
	if c.SMS.APIKey != "" && c.SMS.Username == "" {
		return fmt.Errorf("SMS_USERNAME cannot be empty when SMS delivery is enabled")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
