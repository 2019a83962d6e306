package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhisek/mindset/internal/store"
)

const mockBackend = "mock"

// backend describes a hosted provider: how Discover finds its key and how
// NewProvider opens it.
type backend struct {
	name   string
	keyEnv string
	key    func(*Config) *string
	open   func(context.Context, Config) (Provider, error)
}

// backends are listed in discovery order.
var backends = []backend{
	{
		name:   "gemini",
		keyEnv: "GEMINI_API_KEY",
		key:    func(c *Config) *string { return &c.Gemini.APIKey },
		open: func(ctx context.Context, c Config) (Provider, error) {
			return NewGeminiProvider(ctx, c.Gemini)
		},
	},
	{
		name:   "openai",
		keyEnv: "OPENAI_API_KEY",
		key:    func(c *Config) *string { return &c.OpenAI.APIKey },
		open: func(_ context.Context, c Config) (Provider, error) {
			return NewOpenAIProvider(c.OpenAI)
		},
	},
	{
		name:   "anthropic",
		keyEnv: "ANTHROPIC_API_KEY",
		key:    func(c *Config) *string { return &c.Anthropic.APIKey },
		open: func(_ context.Context, c Config) (Provider, error) {
			return NewAnthropicProvider(c.Anthropic)
		},
	},
	{
		name:   "openrouter",
		keyEnv: "OPENROUTER_API_KEY",
		key:    func(c *Config) *string { return &c.OpenRouter.APIKey },
		open: func(_ context.Context, c Config) (Provider, error) {
			return NewOpenRouterProvider(c.OpenRouter)
		},
	},
}

func findBackend(name string) (backend, bool) {
	for _, b := range backends {
		if b.name == name {
			return b, true
		}
	}
	return backend{}, false
}

// NewProvider opens the configured provider and wraps it:
// caller → timeout → retry → logging → provider. The "mock" provider
// answers offline with schema-shaped placeholders. events and logger may be
// nil.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, logger *slog.Logger) (Provider, error) {
	var base Provider
	if cfg.Provider == mockBackend {
		base = NewSyntheticProvider()
	} else {
		b, ok := findBackend(cfg.Provider)
		if !ok {
			return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
		}
		p, err := b.open(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("initializing %s provider: %w", b.name, err)
		}
		base = p
	}

	p := WithRetry(WithLogging(base, cfg.Provider, events, logger), cfg.Retry)
	if cfg.Timeout > 0 {
		p = &timeoutProvider{Provider: p, timeout: cfg.Timeout}
	}
	return p, nil
}

type timeoutProvider struct {
	Provider
	timeout time.Duration
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.Provider.Generate(ctx, req)
}
