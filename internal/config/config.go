// Package config loads runtime settings for the keywordform binaries with
// viper. Every key has a default, so a config file is optional; environment
// variables use the KEYWORDFORM_ prefix (service.base_url →
// KEYWORDFORM_SERVICE_BASE_URL).
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/goliatone/go-keywordform/internal/logging"
)

// EnvPrefix is the environment variable prefix.
const EnvPrefix = "KEYWORDFORM"

// Config is the full runtime configuration shared by the CLI and the server.
type Config struct {
	Service       ServiceConfig  `mapstructure:"service"`
	Server        ServerConfig   `mapstructure:"server"`
	Logger        logging.Config `mapstructure:"logger"`
	Locale        string         `mapstructure:"locale"`
	LocationsFile string         `mapstructure:"locations_file"`
}

// ServiceConfig addresses the keyword research service. ValidateContract
// checks every search response against the bundled OpenAPI document.
type ServiceConfig struct {
	BaseURL          string        `mapstructure:"base_url"`
	Timeout          time.Duration `mapstructure:"timeout"`
	UserAgent        string        `mapstructure:"user_agent"`
	ValidateContract bool          `mapstructure:"validate_contract"`
}

// ServerConfig controls the HTML server. SessionTTL is how long an idle
// browser session keeps its submission state.
type ServerConfig struct {
	Addr       string        `mapstructure:"addr"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// Load reads path (when non-empty) on top of the defaults and environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings the binaries cannot run without.
func (c *Config) Validate() error {
	base := strings.TrimSpace(c.Service.BaseURL)
	if base == "" {
		return errors.New("service.base_url is required")
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("service.base_url %q is not an absolute URL", base)
	}
	if c.Service.Timeout <= 0 {
		return errors.New("service.timeout must be positive")
	}
	if c.Server.SessionTTL <= 0 {
		return errors.New("server.session_ttl must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service.base_url", "http://localhost:8000")
	v.SetDefault("service.timeout", 90*time.Second)
	v.SetDefault("service.user_agent", "go-keywordform")
	v.SetDefault("service.validate_contract", false)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.session_ttl", 30*time.Minute)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stderr")
	v.SetDefault("logger.time_format", "")
	v.SetDefault("locale", "en-US")
	v.SetDefault("locations_file", "")
}
