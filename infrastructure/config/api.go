// Package config resolves where the backend lives.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"TUI_yt_companion/infrastructure/logger"
)

const (
	DefaultTimeout       = 30 * time.Second
	DefaultRetryAttempts = 3
	DefaultOrigin        = "http://localhost"
	DefaultEnvironment   = "development"

	dockerBaseURL = "http://localhost:53124"
	localBaseURL  = "http://localhost:5001"
	backendPort   = "5001"
)

// Environment variable names. The REACT_APP_ variants are accepted so an
// existing frontend .env keeps working.
const (
	EnvAPIBaseURL        = "API_BASE_URL"
	EnvAPIBaseURLLegacy  = "REACT_APP_API_BASE_URL"
	EnvEnvironment       = "APP_ENVIRONMENT"
	EnvEnvironmentLegacy = "REACT_APP_ENVIRONMENT"
	EnvOrigin            = "APP_ORIGIN"
	EnvDocker            = "DOCKER"
)

// Lookup reads a variable; os.LookupEnv in production, a map in tests.
type Lookup func(key string) (string, bool)

type ApiConfig struct {
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts int
	Environment   string

	origin       *url.URL
	dockerMarker bool
}

// Load resolves the base URL in this order: explicit override, Docker
// heuristic, localhost heuristic, same-host production fallback on port 5001.
func Load(lookup Lookup) (*ApiConfig, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	environment := firstNonEmpty(lookup, EnvEnvironment, EnvEnvironmentLegacy)
	if environment == "" {
		environment = DefaultEnvironment
	}

	originRaw := firstNonEmpty(lookup, EnvOrigin)
	if originRaw == "" {
		originRaw = DefaultOrigin
	}
	origin, err := url.Parse(originRaw)
	if err != nil || origin.Scheme == "" || origin.Hostname() == "" {
		return nil, fmt.Errorf("invalid %s %q: expected scheme://host", EnvOrigin, originRaw)
	}

	cfg := &ApiConfig{
		Timeout:       DefaultTimeout,
		RetryAttempts: DefaultRetryAttempts,
		Environment:   environment,
		origin:        origin,
	}
	docker, _ := lookup(EnvDocker)
	cfg.dockerMarker = strings.EqualFold(strings.TrimSpace(docker), "true")

	baseURL := firstNonEmpty(lookup, EnvAPIBaseURL, EnvAPIBaseURLLegacy)
	if baseURL == "" {
		switch {
		case cfg.IsDocker():
			baseURL = dockerBaseURL
		case origin.Hostname() == "localhost" || origin.Hostname() == "127.0.0.1":
			baseURL = localBaseURL
		default:
			baseURL = fmt.Sprintf("%s://%s:%s", origin.Scheme, origin.Hostname(), backendPort)
		}
	}

	cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	return cfg, nil
}

// IsDocker is a heuristic: explicit docker environment, a client host named
// "frontend" (the compose service name), or DOCKER=true.
func (c *ApiConfig) IsDocker() bool {
	return c.Environment == "docker" || c.Host() == "frontend" || c.dockerMarker
}

// Host is the client host the heuristics were evaluated against.
func (c *ApiConfig) Host() string {
	if c.origin == nil {
		return ""
	}
	return c.origin.Hostname()
}

// FullURL joins endpoint onto the base URL, adding the leading slash if missing.
func (c *ApiConfig) FullURL(endpoint string) string {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return c.BaseURL + endpoint
}

func (c *ApiConfig) Debug(log logger.Logger) {
	log.Info("API configuration",
		"base_url", c.BaseURL,
		"timeout", c.Timeout.String(),
		"retry_attempts", c.RetryAttempts,
		"environment", c.Environment,
		"hostname", c.Host(),
		"is_docker", c.IsDocker(),
	)
}

func firstNonEmpty(lookup Lookup, keys ...string) string {
	for _, key := range keys {
		if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
