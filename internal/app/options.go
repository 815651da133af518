package app

import (
	"go.uber.org/zap"

	"audio-transcript/internal/config"
)

// Options carries everything the injectors need from the command line
type Options struct {
	Settings *config.Settings
	Keys     *config.APIKeys
	Logger   *zap.Logger
	Version  string
}

func (o Options) settings() *config.Settings {
	if o.Settings == nil {
		return config.DefaultSettings()
	}
	return o.Settings
}

func (o Options) keys() *config.APIKeys {
	if o.Keys == nil {
		return &config.APIKeys{GeminiSource: config.GeminiKeyVar}
	}
	return o.Keys
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Credential returns the key of the configured capability and the variable
// it is read from
func (o Options) Credential() (key, variable string) {
	return o.keys().For(o.settings().Capability)
}
