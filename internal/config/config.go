// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all questionsep configuration.
type Config struct {
	Server ServerConfig `yaml:"server" toml:"server"`
	Limits LimitsConfig `yaml:"limits" toml:"limits"`
	Log    LogConfig    `yaml:"log" toml:"log"`
}

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name string `yaml:"name" toml:"name"`
	// HTTPAddr switches the server to streamable HTTP when set; stdio otherwise.
	HTTPAddr string `yaml:"http_addr" toml:"http_addr"`
}

// LimitsConfig holds the input policy enforced in front of the engine.
type LimitsConfig struct {
	MaxInputChars       int `yaml:"max_input_chars" toml:"max_input_chars"`
	DefaultMaxQuestions int `yaml:"default_max_questions" toml:"default_max_questions"`
	BatchConcurrency    int `yaml:"batch_concurrency" toml:"batch_concurrency"`
}

type LogConfig struct {
	Level    string `yaml:"level" toml:"level"`
	Encoding string `yaml:"encoding" toml:"encoding"` // "json" or "console"
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Name: "questionsep",
		},
		Limits: LimitsConfig{
			MaxInputChars:       5000,
			DefaultMaxQuestions: 20,
			BatchConcurrency:    4,
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
		},
	}
}

// Load builds the configuration from defaults, then the file at path (if
// path is non-empty), then QUESTIONSEP_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	var result *multierror.Error
	if err := applyEnv(&cfg); err != nil {
		result = multierror.Append(result, err)
	}
	if err := cfg.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadFile decodes path over cfg, picking the decoder by file extension.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q: use .yaml, .yml or .toml", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides cfg from QUESTIONSEP_* variables. Integer variables that
// do not parse are reported rather than ignored.
func applyEnv(cfg *Config) error {
	var result *multierror.Error
	setInt := func(key string, dst *int) {
		if err := getenvInt(key, dst); err != nil {
			result = multierror.Append(result, err)
		}
	}

	cfg.Server.Name = getenv("QUESTIONSEP_SERVER_NAME", cfg.Server.Name)
	cfg.Server.HTTPAddr = getenv("QUESTIONSEP_HTTP_ADDR", cfg.Server.HTTPAddr)
	setInt("QUESTIONSEP_MAX_INPUT_CHARS", &cfg.Limits.MaxInputChars)
	setInt("QUESTIONSEP_DEFAULT_MAX_QUESTIONS", &cfg.Limits.DefaultMaxQuestions)
	setInt("QUESTIONSEP_BATCH_CONCURRENCY", &cfg.Limits.BatchConcurrency)
	cfg.Log.Level = getenv("QUESTIONSEP_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Encoding = getenv("QUESTIONSEP_LOG_ENCODING", cfg.Log.Encoding)

	return result.ErrorOrNil()
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.Server.Name == "" {
		result = multierror.Append(result, fmt.Errorf("server.name must not be empty"))
	}
	if c.Limits.MaxInputChars <= 0 {
		result = multierror.Append(result, fmt.Errorf("limits.max_input_chars must be positive, got %d", c.Limits.MaxInputChars))
	}
	if c.Limits.DefaultMaxQuestions <= 0 {
		result = multierror.Append(result, fmt.Errorf("limits.default_max_questions must be positive, got %d", c.Limits.DefaultMaxQuestions))
	}
	if c.Limits.BatchConcurrency <= 0 {
		result = multierror.Append(result, fmt.Errorf("limits.batch_concurrency must be positive, got %d", c.Limits.BatchConcurrency))
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		result = multierror.Append(result, fmt.Errorf("log.encoding must be json or console, got %q", c.Log.Encoding))
	}

	return result.ErrorOrNil()
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getenvInt stores the integer value of key in dst when key is set.
func getenvInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
