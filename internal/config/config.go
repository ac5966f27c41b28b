package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the file nor the environment set a key.
const (
	DefaultBaseURL       = "http://localhost:8000"
	DefaultTimeout       = "10s"
	DefaultNotifyTimeout = "4s"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bookctl", "config.yml")
}

// Path returns the config file in use: BOOKCTL_CONFIG or the default.
func Path() string {
	if p := os.Getenv("BOOKCTL_CONFIG"); p != "" {
		return p
	}
	return DefaultPath()
}

// Load reads the config from disk (or env). A missing file is not an
// error; defaults apply.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", DefaultBaseURL)
	v.SetDefault("api.timeout", DefaultTimeout)
	v.SetDefault("api.user_agent", "")
	v.SetDefault("ui.notify_timeout", DefaultNotifyTimeout)
	v.SetDefault("ui.no_color", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", defaultLogFile())
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("BOOKCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(Path())

	if err := v.ReadInConfig(); err != nil {
		// Not finding the config file is fine; defaults cover everything.
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Log.File = ExpandHome(cfg.Log.File)
	return &cfg, nil
}

// Save writes the config to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Encode(f, cfg)
}

// fileConfig is the on-disk shape; durations are written as text.
type fileConfig struct {
	API struct {
		BaseURL   string `yaml:"base_url"`
		Timeout   string `yaml:"timeout"`
		UserAgent string `yaml:"user_agent,omitempty"`
	} `yaml:"api"`
	UI struct {
		NotifyTimeout string `yaml:"notify_timeout"`
		NoColor       bool   `yaml:"no_color,omitempty"`
	} `yaml:"ui"`
	Log LogConfig `yaml:"log"`
}

// Encode writes cfg as YAML.
func Encode(w io.Writer, cfg *Config) error {
	var fc fileConfig
	fc.API.BaseURL = cfg.API.BaseURL
	fc.API.Timeout = cfg.API.Timeout.String()
	fc.API.UserAgent = cfg.API.UserAgent
	fc.UI.NotifyTimeout = cfg.UI.NotifyTimeout.String()
	fc.UI.NoColor = cfg.UI.NoColor
	fc.Log = cfg.Log

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fc); err != nil {
		return err
	}
	return enc.Close()
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func defaultLogFile() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "bookctl", "bookctl.log")
}
