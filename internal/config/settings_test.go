package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "gemini", s.Capability)
	assert.Equal(t, "gemini-2.5-flash", s.Model)
	assert.Equal(t, 20, s.MaxUploadMB)
	assert.Equal(t, int64(20<<20), s.MaxUploadBytes())
	assert.Equal(t, time.Duration(0), s.RequestTimeout())
	assert.Equal(t, "0.0.0.0:8080", s.Server.Addr())
	assert.Equal(t, time.Duration(0), s.Server.WriteTimeout(), "responses wait on the remote call")
	assert.NoError(t, s.Validate())
}

func TestParseSettings(t *testing.T) {
	t.Setenv("ATP_TEST_BASE_URL", "https://proxy.example.com")

	tests := []struct {
		name          string
		yaml          string
		check         func(t *testing.T, s *Settings)
		errorContains string
	}{
		{
			name: "full file",
			yaml: `
capability: openai
model: whisper-1
base_url: ${ATP_TEST_BASE_URL}
request_timeout_sec: 90
max_upload_mb: 50
server:
  host: 127.0.0.1
  port: 9090
  environment: production
  write_timeout_sec: 120
log:
  development: true
  level: debug
`,
			check: func(t *testing.T, s *Settings) {
				assert.Equal(t, "openai", s.Capability)
				assert.Equal(t, "whisper-1", s.Model)
				assert.Equal(t, "https://proxy.example.com", s.BaseURL)
				assert.Equal(t, 90*time.Second, s.RequestTimeout())
				assert.Equal(t, "127.0.0.1:9090", s.Server.Addr())
				assert.Equal(t, 2*time.Minute, s.Server.WriteTimeout())
				assert.True(t, s.Log.Development)
				assert.Equal(t, "debug", s.Log.Level)
			},
		},
		{
			name: "openai default model",
			yaml: "capability: openai\n",
			check: func(t *testing.T, s *Settings) {
				assert.Equal(t, "whisper-1", s.Model)
			},
		},
		{
			name:          "unknown capability",
			yaml:          "capability: whisper_cpp\n",
			errorContains: "Capability",
		},
		{
			name:          "bad port",
			yaml:          "server:\n  port: 70000\n",
			errorContains: "Port",
		},
		{
			name:          "bad log level",
			yaml:          "log:\n  level: verbose\n",
			errorContains: "Level",
		},
		{
			name:          "negative timeout",
			yaml:          "request_timeout_sec: -1\n",
			errorContains: "RequestTimeoutSec",
		},
		{
			name:          "not yaml",
			yaml:          "capability: [unclosed\n",
			errorContains: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseSettings([]byte(tt.yaml))
			if tt.errorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_upload_mb: 5\n"), 0644))

	t.Run("explicit path", func(t *testing.T) {
		s, err := LoadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, 5, s.MaxUploadMB)
		assert.Equal(t, path, s.Path)
	})

	t.Run("path from environment", func(t *testing.T) {
		t.Setenv(SettingsPathVar, path)
		s, err := LoadSettings("")
		require.NoError(t, err)
		assert.Equal(t, 5, s.MaxUploadMB)
	})

	t.Run("explicit missing file", func(t *testing.T) {
		_, err := LoadSettings(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("default path missing", func(t *testing.T) {
		t.Setenv(SettingsPathVar, "")
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { os.Chdir(wd) })

		s, err := LoadSettings("")
		require.NoError(t, err)
		assert.Equal(t, DefaultMaxUpload, s.MaxUploadMB)
		assert.Empty(t, s.Path)
	})
}
