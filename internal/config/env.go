package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	GeminiKeyVar   = "GEMINI_API_KEY"
	FallbackKeyVar = "API_KEY"
	OpenAIKeyVar   = "OPENAI_API_KEY"
)

// APIKeys holds all API keys loaded from environment
type APIKeys struct {
	OpenAI string
	Gemini string

	// GeminiSource is the variable the Gemini key was read from
	GeminiSource string
}

// LoadEnv loads environment variables from the first .env file found.
// Variables already set in the process environment win.
func LoadEnv(out io.Writer) error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			if out != nil {
				fmt.Fprintf(out, "✅ Loaded environment variables from %s\n", envPath)
			}
			break
		}
	}

	return nil
}

// GetAPIKeys retrieves and validates API keys from environment variables.
// Empty keys are allowed here; the capability that needs one reports it.
func GetAPIKeys() (*APIKeys, error) {
	apiKeys := &APIKeys{
		OpenAI:       strings.TrimSpace(os.Getenv(OpenAIKeyVar)),
		Gemini:       strings.TrimSpace(os.Getenv(GeminiKeyVar)),
		GeminiSource: GeminiKeyVar,
	}
	if apiKeys.Gemini == "" {
		if fallback := strings.TrimSpace(os.Getenv(FallbackKeyVar)); fallback != "" {
			apiKeys.Gemini = fallback
			apiKeys.GeminiSource = FallbackKeyVar
		}
	}

	if apiKeys.OpenAI != "" {
		if err := ValidateAPIKey(apiKeys.OpenAI, "OpenAI"); err != nil {
			return nil, fmt.Errorf("invalid %s format: %w", OpenAIKeyVar, err)
		}
	}
	if apiKeys.Gemini != "" {
		if err := ValidateAPIKey(apiKeys.Gemini, "Gemini"); err != nil {
			return nil, fmt.Errorf("invalid %s format: %w", apiKeys.GeminiSource, err)
		}
	}

	return apiKeys, nil
}

// For returns the key a capability authenticates with and the variable
// name to mention when it is missing.
func (k *APIKeys) For(capability string) (key, variable string) {
	switch capability {
	case "openai":
		return k.OpenAI, OpenAIKeyVar
	default:
		return k.Gemini, k.GeminiSource
	}
}

// Available lists the providers that have a key configured
func (k *APIKeys) Available() []string {
	var available []string
	if k.Gemini != "" {
		available = append(available, "Gemini")
	}
	if k.OpenAI != "" {
		available = append(available, "OpenAI")
	}
	return available
}

// MaskKey hides everything but the first and last four characters
func MaskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}

// GetProjectRoot finds the project root directory by looking for go.mod
func GetProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find project root (go.mod not found)")
}

// InitializeConfig loads .env, API keys and the settings file.
// This is the main entry point for configuration loading.
func InitializeConfig(settingsPath string, out io.Writer) (*APIKeys, *Settings, error) {
	if err := LoadEnv(out); err != nil {
		return nil, nil, fmt.Errorf("failed to load environment: %w", err)
	}

	apiKeys, err := GetAPIKeys()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get API keys: %w", err)
	}

	settings, err := LoadSettings(settingsPath)
	if err != nil {
		return nil, nil, err
	}

	return apiKeys, settings, nil
}
