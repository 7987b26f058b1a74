package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates all service configuration.
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	upstream, err := loadUpstreamConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Upstream: upstream}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

// loadServerConfig resolves the listen address from PORT.
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow passing ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// UpstreamConfig describes the chat-completion service the relay talks to.
type UpstreamConfig struct {
	BaseURL string
	Model   string
	// APIKey seeds the credential store at startup; it can be replaced
	// at runtime through the credential endpoint.
	APIKey  string
	Timeout time.Duration
}

func loadUpstreamConfig() (UpstreamConfig, error) {
	timeoutSeconds := 60
	if override, err := parseOptionalIntEnv("UPSTREAM_TIMEOUT"); err != nil {
		return UpstreamConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return UpstreamConfig{}, fmt.Errorf("invalid UPSTREAM_TIMEOUT value: %d", *override)
		}
		timeoutSeconds = *override
	}

	return UpstreamConfig{
		BaseURL: strings.TrimRight(getEnvOrDefault("UPSTREAM_BASE_URL", "https://api.openai.com/v1"), "/"),
		Model:   getEnvOrDefault("UPSTREAM_MODEL", "gpt-4o-mini"),
		APIKey:  strings.TrimSpace(os.Getenv("UPSTREAM_API_KEY")),
		Timeout: time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
