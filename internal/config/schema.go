package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config is the top-level bookctl configuration.
type Config struct {
	API APIConfig `mapstructure:"api"`
	UI  UIConfig  `mapstructure:"ui"`
	Log LogConfig `mapstructure:"log"`
}

// APIConfig holds the book service connection settings.
type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// UIConfig holds settings for the interactive interface.
type UIConfig struct {
	NotifyTimeout time.Duration `mapstructure:"notify_timeout"`
	NoColor       bool          `mapstructure:"no_color"`
}

// LogConfig controls the log file. The terminal is left to the UI.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	File   string `mapstructure:"file" yaml:"file"`
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Validate checks the settings that would otherwise fail late.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url %q is not an absolute URL", c.API.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url scheme must be http or https, got %q", u.Scheme)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	if c.UI.NotifyTimeout < 0 {
		return fmt.Errorf("ui.notify_timeout must not be negative, got %s", c.UI.NotifyTimeout)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// EffectiveUserAgent returns the configured User-Agent or a default
// carrying version.
func (a *APIConfig) EffectiveUserAgent(version string) string {
	if a.UserAgent != "" {
		return a.UserAgent
	}
	return "bookctl/" + version
}
