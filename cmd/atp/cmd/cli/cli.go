// Package cli holds the state shared by every atp subcommand.
package cli

import (
	"fmt"
	"io"

	"audio-transcript/internal/app"
	"audio-transcript/internal/app/logging"
	"audio-transcript/internal/config"
)

var (
	// ConfigPath is bound to --config
	ConfigPath string
	// Verbose is bound to --verbose
	Verbose bool
	// Version is set at build time with -ldflags "-X audio-transcript/cmd/atp/cmd/cli.Version=..."
	Version = "v0.1.0"
)

// Load reads .env, the API keys and the settings file, then builds the logger.
// Status lines go to out.
func Load(out io.Writer) (app.Options, error) {
	keys, settings, err := config.InitializeConfig(ConfigPath, out)
	if err != nil {
		return app.Options{}, err
	}

	level := settings.Log.Level
	if Verbose {
		level = "debug"
	}
	logger, err := logging.NewLogger(settings.Log.Development || Verbose, level)
	if err != nil {
		return app.Options{}, fmt.Errorf("failed to create logger: %w", err)
	}

	return app.Options{
		Settings: settings,
		Keys:     keys,
		Logger:   logger,
		Version:  Version,
	}, nil
}

// Override replaces the capability and model from command-line flags.
// Switching capability without a model picks that capability's default model.
func Override(settings *config.Settings, capability, model string) error {
	if capability != "" && capability != settings.Capability {
		settings.Capability = capability
		if model == "" {
			model = config.DefaultModel
			if capability == "openai" {
				model = config.DefaultOpenAIModel
			}
		}
	}
	if model != "" {
		settings.Model = model
	}
	return settings.Validate()
}
