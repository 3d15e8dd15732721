package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the CLI's file/env configuration. Everything has a working
// default so a config file is optional.
type Config struct {
	BridgeURL string         `mapstructure:"bridge_url"`
	UserAgent string         `mapstructure:"user_agent"`
	Database  DatabaseConfig `mapstructure:"database"`
	Secrets   SecretsConfig  `mapstructure:"secrets"`
	Output    OutputConfig   `mapstructure:"output"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type SecretsConfig struct {
	Name string `mapstructure:"name"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

func NewDefault() *Config {
	return &Config{
		BridgeURL: "https://beta-bridge.simplefin.org/simplefin",
		UserAgent: "sfin-go/1.0",
		Database:  DatabaseConfig{Path: ""},
		Secrets:   SecretsConfig{Name: "sfin-access-credentials"},
		Output:    OutputConfig{Format: "table"},
	}
}

// Load reads the config file at path, or the default location
// (~/.config/sfin/config.toml) when path is empty. SFIN_* environment
// variables override file values; a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SFIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := NewDefault()
	v.SetDefault("bridge_url", defaults.BridgeURL)
	v.SetDefault("user_agent", defaults.UserAgent)
	v.SetDefault("database.path", defaults.Database.Path)
	v.SetDefault("secrets.name", defaults.Secrets.Name)
	v.SetDefault("output.format", defaults.Output.Format)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		configDir, err := os.UserConfigDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(configDir, "sfin"))
		}
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DatabasePath resolves the snapshot database location, defaulting to
// ~/.local/share under the user's home when unset.
func (c *Config) DatabasePath() (string, error) {
	if c.Database.Path != "" {
		return c.Database.Path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "sfin", "sfin.db"), nil
}
