package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/mindset/internal/mindset"
	"github.com/abhisek/mindset/internal/quotes"
)

// isolate points the default config location at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, mindset.VariantChallenge, cfg.Variant)
	assert.Equal(t, 500*time.Millisecond, cfg.QuoteDelay)
	assert.Equal(t, time.Second, cfg.ProcessingDelay)
	assert.True(t, cfg.Coach.Enabled)
	assert.Equal(t, quotes.Challenge, cfg.QuoteSet())
}

func TestLoad_DefaultPathFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "mindset", "config.yaml"), `
variant: tracker
quote_delay: 50ms
llm:
  provider: openai
  openai:
    model: gpt-4o
  timeout: 10s
`)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, mindset.VariantTracker, cfg.Variant)
	assert.Equal(t, 50*time.Millisecond, cfg.QuoteDelay)
	assert.Equal(t, time.Second, cfg.ProcessingDelay, "unset keys keep defaults")
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o", cfg.LLM.OpenAI.Model)
	assert.Equal(t, "claude-haiku", cfg.LLM.Anthropic.Model)
	assert.Equal(t, 10*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, quotes.Tracker, cfg.QuoteSet())
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "variant: tracker\nprocessing_delay: 2s\n")

	t.Setenv("MINDSET_VARIANT", "challenge")
	t.Setenv("MINDSET_PROCESSING_DELAY", "0s")
	t.Setenv("MINDSET_QUOTES", "Keep going, always.|Small steps count.")
	t.Setenv("MINDSET_COACH_ENABLED", "false")
	t.Setenv("MINDSET_ANTHROPIC_API_KEY", "sk-ant-test")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, mindset.VariantChallenge, cfg.Variant)
	assert.Equal(t, time.Duration(0), cfg.ProcessingDelay)
	assert.Equal(t, []string{"Keep going, always.", "Small steps count."}, cfg.QuoteSet())
	assert.False(t, cfg.Coach.Enabled)
	assert.Equal(t, "sk-ant-test", cfg.LLM.Anthropic.APIKey)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown variant", "variant: pirate\n"},
		{"negative delay", "quote_delay: -1s\n"},
		{"bad log level", "log_level: loud\n"},
		{"malformed yaml", "variant: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), "c.yaml")
			writeFile(t, path, tt.yaml)

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestMarshal_RedactsKeys(t *testing.T) {
	cfg := Default()
	cfg.LLM.Provider = "anthropic"
	cfg.LLM.Anthropic.APIKey = "sk-ant-supersecret"

	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "supersecret")

	var back Config
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, "sk-a****", back.LLM.Anthropic.APIKey)
	assert.Equal(t, 500*time.Millisecond, back.QuoteDelay)
	assert.Equal(t, "sk-ant-supersecret", cfg.LLM.Anthropic.APIKey)
}

func TestNewLogger(t *testing.T) {
	cfg := Default()

	logger, closer, err := cfg.NewLogger()
	require.NoError(t, err)
	logger.Info("dropped")
	require.NoError(t, closer.Close())

	cfg.LogFile = filepath.Join(t.TempDir(), "mindset.log")
	logger, closer, err = cfg.NewLogger()
	require.NoError(t, err)
	logger.Info("session started", "variant", "tracker")
	logger.Debug("hidden at info level")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session started")
	assert.Contains(t, string(data), "variant=tracker")
	assert.NotContains(t, string(data), "hidden")
}
