package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ahudio-admin-server/pkg/logger"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration settings
type Config struct {
	Server struct {
		Port       int    `json:"port" yaml:"port"`
		Host       string `json:"host" yaml:"host"`
		ForceHTTPS bool   `json:"force_https" yaml:"force_https" split_words:"true"`
	} `json:"server" yaml:"server"`
	Database struct {
		DSN string `json:"dsn" yaml:"dsn"`
	} `json:"database" yaml:"database"`
	JWT  JWTConfig `json:"jwt" yaml:"jwt"`
	Vapi struct {
		Endpoint   string `json:"endpoint" yaml:"endpoint"`
		Credential string `json:"credential" yaml:"credential"`
	} `json:"vapi" yaml:"vapi"`
	Auth struct {
		BootstrapUsername string `json:"bootstrap_username" yaml:"bootstrap_username" split_words:"true"`
	} `json:"auth" yaml:"auth"`
	Upload struct {
		MaxBytes int64 `json:"max_bytes" yaml:"max_bytes" split_words:"true"`
	} `json:"upload" yaml:"upload"`
	Logging struct {
		Level string `json:"level" yaml:"level"`
		Path  string `json:"path" yaml:"path"`
	} `json:"logging" yaml:"logging"`
}

// JWTConfig holds the token signing settings
type JWTConfig struct {
	SigningKey string        `json:"signing_key" yaml:"signing_key" split_words:"true"`
	TokenTTL   time.Duration `json:"token_ttl" yaml:"token_ttl" split_words:"true"`
}

// UnmarshalJSON accepts token_ttl as a duration string ("45m") or as nanoseconds
func (j *JWTConfig) UnmarshalJSON(data []byte) error {
	var raw struct {
		SigningKey string          `json:"signing_key"`
		TokenTTL   json.RawMessage `json:"token_ttl"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	ttl, err := parseJSONDuration(raw.TokenTTL)
	if err != nil {
		return fmt.Errorf("invalid token_ttl: %w", err)
	}
	j.SigningKey = raw.SigningKey
	j.TokenTTL = ttl
	return nil
}

func parseJSONDuration(data json.RawMessage) (time.Duration, error) {
	if len(data) == 0 || string(data) == "null" {
		return 0, nil
	}
	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return 0, err
		}
		return time.ParseDuration(text)
	}
	var nanos int64
	if err := json.Unmarshal(data, &nanos); err != nil {
		return 0, err
	}
	return time.Duration(nanos), nil
}

// LoadConfig loads configuration from a JSON or YAML file.
// The format is picked from the file extension; anything other than .yaml/.yml is read as JSON.
func LoadConfig(path string) (*Config, error) {
	// Validate path to prevent directory traversal
	cleanPath := filepath.Clean(path)
	if !filepath.IsAbs(cleanPath) {
		return nil, fmt.Errorf("config path must be absolute")
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("config file error: %w", err)
	}
	if !fileInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("config path is not a regular file")
	}

	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.Warn("Failed to close config file", zap.Error(closeErr))
		}
	}()

	var config Config
	switch strings.ToLower(filepath.Ext(cleanPath)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return nil, fmt.Errorf("failed to decode yaml config: %w", err)
		}
	default:
		if err := json.NewDecoder(file).Decode(&config); err != nil {
			return nil, fmt.Errorf("failed to decode json config: %w", err)
		}
	}

	return &config, nil
}

// ApplyEnv overrides configuration values from AHUDIO_* environment variables,
// e.g. AHUDIO_VAPI_CREDENTIAL or AHUDIO_JWT_TOKEN_TTL=45m.
func ApplyEnv(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	groups := []struct {
		prefix string
		spec   interface{}
	}{
		{"AHUDIO_SERVER", &cfg.Server},
		{"AHUDIO_DATABASE", &cfg.Database},
		{"AHUDIO_JWT", &cfg.JWT},
		{"AHUDIO_VAPI", &cfg.Vapi},
		{"AHUDIO_AUTH", &cfg.Auth},
		{"AHUDIO_UPLOAD", &cfg.Upload},
		{"AHUDIO_LOGGING", &cfg.Logging},
	}
	for _, g := range groups {
		if err := envconfig.Process(g.prefix, g.spec); err != nil {
			return fmt.Errorf("failed to apply %s environment: %w", g.prefix, err)
		}
	}
	return nil
}

// Validate reports the first setting that would leave the server unusable
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return errors.New("invalid server port")
	}
	if c.Database.DSN == "" {
		return errors.New("database dsn is required")
	}
	if c.JWT.SigningKey == "" {
		return errors.New("jwt signing key is required")
	}
	if c.JWT.TokenTTL <= 0 {
		return errors.New("jwt token ttl must be positive")
	}
	if c.Vapi.Endpoint == "" {
		return errors.New("vapi endpoint is required")
	}
	if c.Auth.BootstrapUsername == "" {
		return errors.New("bootstrap username is required")
	}
	if c.Upload.MaxBytes <= 0 {
		return errors.New("upload size ceiling must be positive")
	}
	return nil
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	config := &Config{}
	config.Server.Port = 8000
	config.Server.Host = "0.0.0.0"
	config.Database.DSN = "file:data.db?cache=shared&mode=rwc"
	config.JWT.SigningKey = "your-secret-key-change-this-in-production" // This should be changed in production
	config.JWT.TokenTTL = 30 * time.Minute
	config.Vapi.Endpoint = "https://api.vapi.ai"
	config.Auth.BootstrapUsername = "admin"
	config.Upload.MaxBytes = 1 << 20
	config.Logging.Level = "info"
	config.Logging.Path = "server.log"
	return config
}
