package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "DOC2WIKI"

type Config struct {
	// Repository roots
	Source string // Documentation repository containing memory/
	Wiki   string // Wiki repository receiving the converted pages

	// Logging
	LogLevel  string
	LogFormat string

	// Preview server
	Addr string
}

// Load reads configuration from .env files, DOC2WIKI_* environment
// variables and an optional .doc2wiki.yaml in the home or working directory.
// Environment wins over the file, the file over defaults.
func Load() Config {
	for _, f := range []string{".env", ".env.local"} {
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(home)
		v.SetDefault("source", DefaultSource(home))
		v.SetDefault("wiki", DefaultWiki(home))
	}
	v.AddConfigPath(".")
	v.SetConfigName(".doc2wiki")
	v.SetConfigType("yaml")
	_ = v.ReadInConfig()

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("addr", ":8091")

	return Config{
		Source:    v.GetString("source"),
		Wiki:      v.GetString("wiki"),
		LogLevel:  strings.ToLower(v.GetString("log_level")),
		LogFormat: strings.ToLower(v.GetString("log_format")),
		Addr:      v.GetString("addr"),
	}
}

// DefaultSource is the documentation checkout under home.
func DefaultSource(home string) string {
	return filepath.Join(home, "p", "mindforger", "git", "mindforger-documentation")
}

// DefaultWiki is the wiki checkout under home.
func DefaultWiki(home string) string {
	return filepath.Join(home, "p", "mindforger", "git", "mindforger.wiki")
}

func (c Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("%s_SOURCE is required", EnvPrefix)
	}
	if c.Wiki == "" {
		return fmt.Errorf("%s_WIKI is required", EnvPrefix)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %q", c.LogFormat)
	}
	return nil
}

// Level maps LogLevel to a slog level.
func (c Config) Level() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level: %q", c.LogLevel)
}
