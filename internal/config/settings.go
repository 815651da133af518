package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Settings is the YAML settings file
type Settings struct {
	Capability        string         `yaml:"capability" validate:"required,oneof=gemini openai"`
	Model             string         `yaml:"model"`
	BaseURL           string         `yaml:"base_url" validate:"omitempty,url"`
	RequestTimeoutSec int            `yaml:"request_timeout_sec" validate:"min=0,max=1800"`
	MaxUploadMB       int            `yaml:"max_upload_mb" validate:"min=1,max=2048"`
	Server            ServerSettings `yaml:"server"`
	Log               LogSettings    `yaml:"log"`

	// Path is where the settings were read from, empty for defaults
	Path string `yaml:"-"`
}

// ServerSettings configures the HTTP API
type ServerSettings struct {
	Host            string `yaml:"host" validate:"required"`
	Port            int    `yaml:"port" validate:"min=1,max=65535"`
	Environment     string `yaml:"environment" validate:"oneof=development production test"`
	ReadTimeoutSec  int    `yaml:"read_timeout_sec" validate:"min=0"`
	WriteTimeoutSec int    `yaml:"write_timeout_sec" validate:"min=0"`
}

// LogSettings configures zap
type LogSettings struct {
	Development bool   `yaml:"development"`
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
}

// DefaultSettings returns the settings used when no file exists
func DefaultSettings() *Settings {
	s := &Settings{}
	s.setDefaults()
	return s
}

// LoadSettings reads a YAML settings file. An empty path means $ATP_CONFIG
// or config/atp.yaml, and a missing default file yields the defaults.
func LoadSettings(path string) (*Settings, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(SettingsPathVar)
		explicit = path != ""
	}
	if path == "" {
		path = DefaultSettingsPath
		if root, err := GetProjectRoot(); err == nil {
			if _, err := os.Stat(path); os.IsNotExist(err) {
				path = filepath.Join(root, DefaultSettingsPath)
			}
		}
	}
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	settings, err := ParseSettings(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	settings.Path = path
	return settings, nil
}

// ParseSettings parses YAML, expanding ${VAR} references before decoding
func ParseSettings(data []byte) (*Settings, error) {
	var settings Settings
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &settings); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	settings.setDefaults()

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &settings, nil
}

func (s *Settings) setDefaults() {
	if s.Capability == "" {
		s.Capability = DefaultCapability
	}
	if s.Model == "" {
		s.Model = DefaultModel
		if s.Capability == "openai" {
			s.Model = DefaultOpenAIModel
		}
	}
	if s.MaxUploadMB == 0 {
		s.MaxUploadMB = DefaultMaxUpload
	}
	if s.Server.Host == "" {
		s.Server.Host = DefaultHost
	}
	if s.Server.Port == 0 {
		s.Server.Port = DefaultHTTPPort
	}
	if s.Server.Environment == "" {
		s.Server.Environment = DefaultEnvironment
	}
	if s.Server.ReadTimeoutSec == 0 {
		s.Server.ReadTimeoutSec = int(DefaultReadTimeout / time.Second)
	}
	if s.Log.Level == "" {
		s.Log.Level = DefaultLogLevel
	}
}

// Validate checks struct tags and the timeout range
func (s *Settings) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(s); err != nil {
		return err
	}
	return ValidateTimeout(s.RequestTimeout(), "request")
}

// RequestTimeout is zero when no local timeout is configured
func (s *Settings) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSec) * time.Second
}

// MaxUploadBytes converts the upload limit to bytes
func (s *Settings) MaxUploadBytes() int64 {
	return int64(s.MaxUploadMB) << 20
}

// Addr is the listen address of the HTTP API
func (s *ServerSettings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ReadTimeout for http.Server
func (s *ServerSettings) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSec) * time.Second
}

// WriteTimeout for http.Server
func (s *ServerSettings) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSec) * time.Second
}
