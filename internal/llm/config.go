package llm

import (
	"fmt"
	"os"
	"time"
)

// EnvPrefix is prepended to every environment variable the dashboard reads.
const EnvPrefix = "MINDSET_"

// Config selects and configures the coach's LLM provider. It is the `llm`
// section of the config file; MINDSET_* variables override it.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter" or
	// "mock". Empty leaves the coach off unless Discover finds a key.
	Provider string `yaml:"provider" env:"LLM_PROVIDER"`

	Anthropic  AnthropicConfig  `yaml:"anthropic" envPrefix:"ANTHROPIC_"`
	OpenAI     OpenAIConfig     `yaml:"openai" envPrefix:"OPENAI_"`
	Gemini     GeminiConfig     `yaml:"gemini" envPrefix:"GEMINI_"`
	OpenRouter OpenRouterConfig `yaml:"openrouter" envPrefix:"OPENROUTER_"`
	Retry      RetryConfig      `yaml:"retry" envPrefix:"LLM_RETRY_"`

	// Timeout bounds one coach request, retries included. Zero disables it.
	Timeout time.Duration `yaml:"timeout" env:"LLM_TIMEOUT"`
}

type AnthropicConfig struct {
	APIKey string `yaml:"api_key" env:"API_KEY"`
	Model  string `yaml:"model" env:"MODEL"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key" env:"API_KEY"`
	Model   string `yaml:"model" env:"MODEL"`
	BaseURL string `yaml:"base_url" env:"BASE_URL"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key" env:"API_KEY"`
	Model  string `yaml:"model" env:"MODEL"`
}

// OpenRouterConfig configures OpenRouter. Models are OpenRouter slugs such as
// "google/gemini-2.0-flash-exp" and are passed through unchanged.
type OpenRouterConfig struct {
	APIKey  string `yaml:"api_key" env:"API_KEY"`
	Model   string `yaml:"model" env:"MODEL"`
	BaseURL string `yaml:"base_url" env:"BASE_URL"`
}

// RetryConfig configures exponential backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts" env:"MAX_ATTEMPTS"`
	InitialWait time.Duration `yaml:"initial_wait" env:"INITIAL_WAIT"`
	MaxWait     time.Duration `yaml:"max_wait" env:"MAX_WAIT"`
	Multiplier  float64       `yaml:"multiplier" env:"MULTIPLIER"`
}

// DefaultConfig returns the defaults. No provider is selected.
func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

// Configured reports whether a provider has been selected.
func (c Config) Configured() bool {
	return c.Provider != ""
}

// Discover selects the first hosted provider whose standard API key variable
// (GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY) is
// set, unless a provider is already selected. Models and other settings on c
// are kept. It reports whether a provider is selected afterwards.
func (c *Config) Discover() bool {
	if c.Configured() {
		return true
	}
	for _, b := range backends {
		if k := os.Getenv(b.keyEnv); k != "" {
			c.Provider = b.name
			*b.key(c) = k
			return true
		}
	}
	return false
}

// Validate checks that the selected provider exists and has an API key.
func (c Config) Validate() error {
	if c.Provider == mockBackend {
		return nil
	}
	b, ok := findBackend(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if *b.key(&c) == "" {
		return fmt.Errorf("%s%s is required for the %s provider", EnvPrefix, b.keyEnv, b.name)
	}
	return nil
}

// Redacted returns a copy of c with every API key masked.
func (c Config) Redacted() Config {
	for _, b := range backends {
		k := b.key(&c)
		*k = redact(*k)
	}
	return c
}

func redact(key string) string {
	switch {
	case key == "":
		return ""
	case len(key) <= 8:
		return "****"
	}
	return key[:4] + "****"
}
