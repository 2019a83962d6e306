package coach

// Config holds reflection generation settings.
type Config struct {
	// Enabled turns the coach on when a provider is available.
	Enabled bool `yaml:"enabled" env:"ENABLED"`

	MaxTokens      int     `yaml:"max_tokens" env:"MAX_TOKENS"`
	RecapMaxTokens int     `yaml:"recap_max_tokens" env:"RECAP_MAX_TOKENS"`
	Temperature    float64 `yaml:"temperature" env:"TEMPERATURE"`
}

// DefaultConfig returns sensible defaults for reflection generation.
func DefaultConfig() Config {
	return Config{
		Enabled:        true,
		MaxTokens:      512,
		RecapMaxTokens: 256,
		Temperature:    0.7,
	}
}
