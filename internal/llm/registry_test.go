package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	p, err := NewProvider(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())

	_, wrapped := p.(*timeoutProvider)
	assert.True(t, wrapped)

	resp, err := p.Generate(context.Background(), Request{Schema: nudgeSchema})
	require.NoError(t, err)
	assert.NoError(t, validateResponse(nudgeSchema, resp.Content))
}

func TestNewProvider_NoTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	cfg.Timeout = 0

	p, err := NewProvider(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	_, isRetry := p.(*RetryProvider)
	assert.True(t, isRetry)
}

func TestNewProvider_Unknown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "llamas"

	_, err := NewProvider(context.Background(), cfg, nil, nil)
	assert.ErrorContains(t, err, "unknown LLM provider")
}

func TestNewProvider_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"

	_, err := NewProvider(context.Background(), cfg, nil, nil)
	assert.ErrorContains(t, err, "initializing anthropic provider")
}

func TestNewProvider_ResolvesAliases(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OpenAI.APIKey = "sk-test"
	cfg.OpenRouter.APIKey = "or-test"

	cfg.Provider = "openai"
	p, err := NewProvider(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", p.ModelID())

	cfg.Provider = "openrouter"
	p, err = NewProvider(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "google/gemini-2.0-flash-exp", p.ModelID())
}

type deadlineRecorder struct {
	MockProvider
	deadline time.Time
}

func (d *deadlineRecorder) Generate(ctx context.Context, req Request) (*Response, error) {
	d.deadline, _ = ctx.Deadline()
	return d.MockProvider.Generate(ctx, req)
}

func TestTimeoutProvider_SetsDeadline(t *testing.T) {
	rec := &deadlineRecorder{MockProvider: MockProvider{synthesize: true}}
	p := &timeoutProvider{Provider: rec, timeout: time.Minute}

	_, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), rec.deadline, 5*time.Second)
}
