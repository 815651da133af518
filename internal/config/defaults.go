package config

import "time"

// Default settings
const (
	DefaultSettingsPath = "config/atp.yaml"
	SettingsPathVar     = "ATP_CONFIG"

	DefaultCapability  = "gemini"
	DefaultModel       = "gemini-2.5-flash"
	DefaultOpenAIModel = "whisper-1"
	DefaultMaxUpload   = 20

	// Network defaults
	DefaultHost        = "0.0.0.0"
	DefaultHTTPPort    = 8080
	DefaultEnvironment = "development"

	// No default write deadline: a response waits on the remote call
	DefaultReadTimeout = 60 * time.Second

	DefaultLogLevel = "info"
)
