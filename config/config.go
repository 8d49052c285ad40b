// Package config loads CLI settings from flags, environment and an optional
// config file.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const EnvPrefix = "STOCKBOARD"

// Config is the resolved CLI configuration.
type Config struct {
	LogLevel    string `mapstructure:"log-level"`
	Seed        string `mapstructure:"seed"`
	SeedFile    string `mapstructure:"seed-file"`
	Locale      string `mapstructure:"locale"`
	Currency    string `mapstructure:"currency"`
	ChartWidth  int    `mapstructure:"chart-width"`
	ChartHeight int    `mapstructure:"chart-height"`
}

// Defaults applied before flags, environment and file.
var Defaults = map[string]any{
	"log-level":    "info",
	"seed":         "demo",
	"seed-file":    "",
	"locale":       "fr-FR",
	"currency":     "€",
	"chart-width":  720,
	"chart-height": 300,
}

// NewViper returns a viper instance reading STOCKBOARD_* variables, with
// "-" and "." in keys mapped to "_" (log-level → STOCKBOARD_LOG_LEVEL).
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	for k, val := range Defaults {
		v.SetDefault(k, val)
	}
	return v
}

// Load reads the file named by the "config" key, if any, and decodes the
// settings.
func Load(v *viper.Viper) (*Config, error) {
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if _, err := language.Parse(cfg.Locale); err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", cfg.Locale, err)
	}
	return &cfg, nil
}

// Language returns the parsed locale, or French when it does not parse.
func (c Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.French
	}
	return tag
}

// Level maps the configured log level to a slog level; unknown names mean
// info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// NewLogger builds the text logger used by the CLI.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
