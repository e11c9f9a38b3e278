// Package config loads simgroup defaults from .simgroup.yaml and SIMGROUP_*
// environment variables. Command-line flags override both.
package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the config file base name looked up in the working directory.
const FileName = ".simgroup"

// EnvPrefix prefixes environment overrides, e.g. SIMGROUP_GROUP_BY.
const EnvPrefix = "SIMGROUP"

// Config represents the simgroup configuration.
type Config struct {
	DB    string      `json:"db" mapstructure:"db"`
	Group GroupConfig `json:"group" mapstructure:"group"`
	Log   LogConfig   `json:"log" mapstructure:"log"`
}

// GroupConfig holds defaults for the group command.
type GroupConfig struct {
	By          string `json:"by" mapstructure:"by"`
	Sort        bool   `json:"sort" mapstructure:"sort"`
	OnlyStarted bool   `json:"only_started" mapstructure:"only_started"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	Level string `json:"level" mapstructure:"level"`
}

// ValidLogLevels defines the allowed log levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Group: GroupConfig{Sort: true},
		Log:   LogConfig{Level: "info"},
	}
}

// Load reads .simgroup.yaml from dir, if present, and applies environment
// overrides. A missing file is not an error.
func Load(dir string) (*Config, error) {
	v := newViper()
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return unmarshal(v)
}

// LoadFile reads an explicit config file. Unlike Load, a missing file is an
// error.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("db", def.DB)
	v.SetDefault("group.by", def.Group.By)
	v.SetDefault("group.sort", def.Group.Sort)
	v.SetDefault("group.only_started", def.Group.OnlyStarted)
	v.SetDefault("log.level", def.Log.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	for _, l := range ValidLogLevels {
		if strings.EqualFold(c.Log.Level, l) {
			return nil
		}
	}
	return &ConfigError{Field: "log.level", Message: "must be one of " + strings.Join(ValidLogLevels, ", ")}
}

// SlogLevel converts the configured log level to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
