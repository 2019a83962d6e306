// Package config resolves the dashboard configuration from .env, the YAML
// config file and MINDSET_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/mindset/internal/coach"
	"github.com/abhisek/mindset/internal/llm"
	"github.com/abhisek/mindset/internal/mindset"
)

const (
	configDir  = "mindset"
	configFile = "config.yaml"
)

// Config is the top-level structure of config.yaml.
type Config struct {
	Variant mindset.Variant `yaml:"variant" env:"VARIANT"`

	// QuoteDelay is the pause between greeting the user and showing a quote.
	QuoteDelay time.Duration `yaml:"quote_delay" env:"QUOTE_DELAY"`

	// ProcessingDelay is how long the "processing" spinners run.
	ProcessingDelay time.Duration `yaml:"processing_delay" env:"PROCESSING_DELAY"`

	// Quotes replaces the variant's built-in quote set when non-empty.
	Quotes []string `yaml:"quotes,omitempty" env:"QUOTES" envSeparator:"|"`

	// LogFile receives structured logs. Empty discards them.
	LogFile  string `yaml:"log_file,omitempty" env:"LOG_FILE"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`

	Coach coach.Config `yaml:"coach" envPrefix:"COACH_"`
	LLM   llm.Config   `yaml:"llm"`
}

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{
		Variant:         mindset.VariantChallenge,
		QuoteDelay:      500 * time.Millisecond,
		ProcessingDelay: time.Second,
		LogLevel:        "info",
		Coach:           coach.DefaultConfig(),
		LLM:             llm.DefaultConfig(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/mindset/config.yaml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, configDir, configFile), nil
}

// Load resolves the configuration:
//
//  1. .env in the working directory, if present
//  2. defaults
//  3. the YAML file at path, or DefaultPath if path is empty and it exists
//  4. MINDSET_* environment variables
//
// An explicit path that does not exist is an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: llm.EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Validate normalizes the variant and rejects negative delays.
func (c *Config) Validate() error {
	v, err := mindset.ParseVariant(string(c.Variant))
	if err != nil {
		return err
	}
	c.Variant = v

	if c.QuoteDelay < 0 {
		return fmt.Errorf("quote_delay must not be negative, got %s", c.QuoteDelay)
	}
	if c.ProcessingDelay < 0 {
		return fmt.Errorf("processing_delay must not be negative, got %s", c.ProcessingDelay)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// QuoteSet returns the configured quotes, or the variant's built-in set.
func (c *Config) QuoteSet() []string {
	if len(c.Quotes) > 0 {
		return c.Quotes
	}
	return c.Variant.Quotes()
}

// Marshal renders the configuration as YAML with API keys redacted.
func (c *Config) Marshal() ([]byte, error) {
	out := *c
	out.LLM = c.LLM.Redacted()
	data, err := yaml.Marshal(&out)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}
