// Package config loads interpreter-wide settings: log level, color output,
// and the recognized image-extension set ForEach enumerates (spec §4.5).
// Adapted from the teacher's cmd/bento viper/yaml wiring and pkg/kombu's
// config-directory resolution, generalized from bento's per-file settings
// store to a single YAML document.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/graphixlang/interpreter/internal/ast"
	"github.com/graphixlang/interpreter/internal/logx"
)

// Config holds the interpreter's ambient settings.
type Config struct {
	LogLevel   logx.Level
	Color      bool
	Extensions []string
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() Config {
	return Config{
		LogLevel:   logx.LevelInfo,
		Color:      true,
		Extensions: append([]string(nil), ast.RecognizedExtensions...),
	}
}

// Load reads ~/.graphixlang/config.yaml (if present) and applies
// GRAPHIXLANG_-prefixed environment variable overrides on top of it, via
// viper, the same library the teacher's cmd/bento root command uses for
// config loading.
func Load() (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.SetEnvPrefix("GRAPHIXLANG")
	v.AutomaticEnv()

	v.SetDefault("log_level", string(cfg.LogLevel))
	v.SetDefault("color", cfg.Color)
	v.SetDefault("extensions", cfg.Extensions)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return cfg, err
		}
	}

	cfg.LogLevel = logx.Level(strings.ToLower(v.GetString("log_level")))
	cfg.Color = v.GetBool("color")
	if exts := v.GetStringSlice("extensions"); len(exts) > 0 {
		cfg.Extensions = exts
	}
	return cfg, nil
}

// configDir returns ~/.graphixlang, creating nothing (Load tolerates a
// missing directory or file).
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".graphixlang"), nil
}
