package config

import (
	"bytes"
	"testing"
	"time"

	"TUI_yt_companion/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadBaseURLResolution(t *testing.T) {
	tests := []struct {
		name     string
		vars     map[string]string
		expected string
	}{
		{
			name:     "defaults to localhost backend",
			vars:     map[string]string{},
			expected: "http://localhost:5001",
		},
		{
			name:     "explicit override wins over everything",
			vars:     map[string]string{EnvAPIBaseURL: "https://api.example.com/", EnvEnvironment: "docker"},
			expected: "https://api.example.com",
		},
		{
			name:     "legacy override is honoured",
			vars:     map[string]string{EnvAPIBaseURLLegacy: "http://backend:9000"},
			expected: "http://backend:9000",
		},
		{
			name:     "docker environment",
			vars:     map[string]string{EnvEnvironment: "docker"},
			expected: "http://localhost:53124",
		},
		{
			name:     "legacy docker environment",
			vars:     map[string]string{EnvEnvironmentLegacy: "docker"},
			expected: "http://localhost:53124",
		},
		{
			name:     "frontend host means docker",
			vars:     map[string]string{EnvOrigin: "http://frontend:3000"},
			expected: "http://localhost:53124",
		},
		{
			name:     "docker marker",
			vars:     map[string]string{EnvDocker: "true", EnvOrigin: "https://videos.example.com"},
			expected: "http://localhost:53124",
		},
		{
			name:     "loopback address",
			vars:     map[string]string{EnvOrigin: "http://127.0.0.1:3000"},
			expected: "http://localhost:5001",
		},
		{
			name:     "production fallback keeps scheme and host",
			vars:     map[string]string{EnvOrigin: "https://videos.example.com:8443"},
			expected: "https://videos.example.com:5001",
		},
		{
			name:     "blank override is ignored",
			vars:     map[string]string{EnvAPIBaseURL: "   "},
			expected: "http://localhost:5001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(env(tt.vars))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.BaseURL)
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(env(nil))
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "localhost", cfg.Host())
	assert.False(t, cfg.IsDocker())
}

func TestLoadRejectsBadOrigin(t *testing.T) {
	_, err := Load(env(map[string]string{EnvOrigin: "not a url"}))
	assert.Error(t, err)
}

func TestFullURL(t *testing.T) {
	cfg, err := Load(env(map[string]string{EnvAPIBaseURL: "http://localhost:5001/"}))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5001/video_info", cfg.FullURL("/video_info"))
	assert.Equal(t, "http://localhost:5001/transcribe", cfg.FullURL("transcribe"))
	assert.Equal(t, "http://localhost:5001/", cfg.FullURL(""))
}

func TestDebugLogsConfiguration(t *testing.T) {
	var buf bytes.Buffer
	cfg, err := Load(env(map[string]string{EnvEnvironment: "docker"}))
	require.NoError(t, err)

	cfg.Debug(logger.NewWriterLogger(&buf))

	out := buf.String()
	assert.Contains(t, out, `"base_url":"http://localhost:53124"`)
	assert.Contains(t, out, `"is_docker":true`)
	assert.Contains(t, out, `"environment":"docker"`)
}
