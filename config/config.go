// Package config reads run settings from an optional YAML file, a .env file
// and MINIMAX_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "minimax.yaml"

const (
	EnvVocabulary = "MINIMAX_VOCABULARY"
	EnvLogLevel   = "MINIMAX_LOG_LEVEL"
	EnvDB         = "MINIMAX_DB"
	EnvAddr       = "MINIMAX_ADDR"
	EnvSoft       = "MINIMAX_SOFT"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Vocabulary     string   `yaml:"vocabulary"` // Empty for the embedded list
	LogLevel       string   `yaml:"log_level"`
	Soft           bool     `yaml:"soft"`
	Openers        []string `yaml:"openers"`
	MaxGuesses     int      `yaml:"max_guesses"`
	HeuristicDepth int      `yaml:"heuristic_depth"`
	DB             string   `yaml:"db"` // Empty disables the results store
	Addr           string   `yaml:"addr"`
}

func Default() Config {
	return Config{
		LogLevel:       "warn",
		Soft:           true,
		Openers:        []string{"crate", "bogus"},
		MaxGuesses:     6,
		HeuristicDepth: 4,
		Addr:           ":8080",
	}
}

// Load starts from Default, applies the YAML file at path if it exists, then
// .env and the process environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	_ = godotenv.Load() // .env is optional
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvVocabulary); ok {
		c.Vocabulary = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvDB); ok {
		c.DB = v
	}
	if v, ok := os.LookupEnv(EnvAddr); ok {
		c.Addr = v
	}
	if v, ok := os.LookupEnv(EnvSoft); ok {
		soft, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSoft, v, ErrInvalidConfig)
		}
		c.Soft = soft
	}
	return nil
}

func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, ErrInvalidConfig)
	}
	if c.MaxGuesses < 1 {
		return fmt.Errorf("max_guesses %d: %w", c.MaxGuesses, ErrInvalidConfig)
	}
	if c.HeuristicDepth < 0 {
		return fmt.Errorf("heuristic_depth %d: %w", c.HeuristicDepth, ErrInvalidConfig)
	}
	return nil
}

// Level is the parsed log level; Validate has already rejected bad values.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}
