package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nudgeSchema mirrors the shape of the coach's reflection schema.
var nudgeSchema = &Schema{
	Name: "test_nudge",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{"type": "string"},
			"tone":     map[string]any{"type": "string", "enum": []any{"warm", "direct"}},
			"steps": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 1,
				"maxItems": 3,
			},
			"score": map[string]any{"type": "integer"},
			"done":  map[string]any{"type": "boolean"},
		},
		"required":             []any{"headline", "tone", "steps"},
		"additionalProperties": false,
	},
}

func TestFinish_ValidatesAgainstSchema(t *testing.T) {
	req := Request{Schema: nudgeSchema}

	resp, err := finish(req, json.RawMessage(`{"headline":"Try again","tone":"warm","steps":["a"]}`), "m", Usage{InputTokens: 3, OutputTokens: 4}, StopEnd)
	require.NoError(t, err)
	assert.Equal(t, 7, resp.Usage.TotalTokens)
	assert.Equal(t, "m", resp.Model)

	_, err = finish(req, json.RawMessage(`{"headline":"x","tone":"loud","steps":["a"]}`), "m", Usage{}, StopEnd)
	var invalid *ErrInvalidResponse
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, string(invalid.Content), "loud")

	_, err = finish(req, json.RawMessage(`{"headline":`), "m", Usage{}, StopEnd)
	assert.ErrorAs(t, err, &invalid)
}

func TestFinish_TruncatedStructuredResponse(t *testing.T) {
	_, err := finish(Request{Schema: nudgeSchema}, json.RawMessage(`{"headline":"cut`), "m", Usage{}, StopMaxTokens)
	var maxTok *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &maxTok)

	resp, err := finish(Request{}, json.RawMessage(`plain text, cut`), "m", Usage{TotalTokens: 9}, StopMaxTokens)
	require.NoError(t, err)
	assert.Equal(t, StopMaxTokens, resp.StopReason)
	assert.Equal(t, 9, resp.Usage.TotalTokens)
}

func TestStatusError(t *testing.T) {
	cause := errors.New("boom")

	h := http.Header{}
	h.Set("Retry-After", "7")
	var rl *ErrRateLimit
	require.ErrorAs(t, statusError(http.StatusTooManyRequests, h, cause), &rl)
	assert.Equal(t, 7*time.Second, rl.RetryAfter)
	assert.ErrorIs(t, rl, cause)

	require.ErrorAs(t, statusError(http.StatusTooManyRequests, nil, cause), &rl)
	assert.Zero(t, rl.RetryAfter)
	assert.Equal(t, "rate limited: boom", rl.Error())

	var unavailable *ErrProviderUnavailable
	assert.ErrorAs(t, statusError(http.StatusBadGateway, nil, cause), &unavailable)
}

func TestResolveModel(t *testing.T) {
	assert.Equal(t, "gpt-4o-mini", resolveModel("gpt-mini", openaiAliases))
	assert.Equal(t, "gpt-4.1", resolveModel("gpt-4.1", openaiAliases))
}

func TestPurpose(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "unknown", PurposeFrom(ctx))
	assert.Equal(t, "recap", PurposeFrom(WithPurpose(ctx, "recap")))
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	require.NotNil(t, c)
	assert.InDelta(t, 0.75, c.Cost(1_000_000, 1_000_000), 1e-9)

	dated := LookupCost("gpt-4o-mini-2024-07-18")
	require.NotNil(t, dated)
	assert.Equal(t, *c, *dated)

	sonnet := LookupCost("claude-sonnet-4-5-20250929")
	require.NotNil(t, sonnet)
	assert.Equal(t, 15.0, sonnet.OutputPerMTok)

	assert.Nil(t, LookupCost("mock"))
	assert.Nil(t, LookupCost("gpt-4omni"))
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(nudgeSchema.Definition)

	assert.Equal(t, "OBJECT", string(s.Type))
	assert.ElementsMatch(t, []string{"headline", "tone", "steps"}, s.Required)
	require.Contains(t, s.Properties, "steps")
	assert.Equal(t, "ARRAY", string(s.Properties["steps"].Type))
	assert.Equal(t, "STRING", string(s.Properties["steps"].Items.Type))
	assert.Equal(t, []string{"warm", "direct"}, s.Properties["tone"].Enum)
	assert.Equal(t, "INTEGER", string(s.Properties["score"].Type))
}
