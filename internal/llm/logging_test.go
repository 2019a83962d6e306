package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindset/internal/store"
)

func TestLogging_RecordsRequests(t *testing.T) {
	st, err := store.OpenMemory(uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"summary":"ok"}`), Usage: Usage{InputTokens: 40, OutputTokens: 12}},
		MockResponse{Err: errors.New("boom")},
	)
	p := WithLogging(mock, "mock", st.EventRepo(), nil)
	ctx := WithPurpose(context.Background(), "recap")

	_, err = p.Generate(ctx, Request{
		System:   "Be kind.",
		Messages: []Message{{Role: RoleUser, Content: "I finished the quiz."}},
		Schema:   nudgeSchema,
	})
	require.NoError(t, err)
	_, err = p.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "again"}}})
	require.Error(t, err)

	events, err := st.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	ok := events[0]
	assert.Equal(t, "mock", ok.Provider)
	assert.Equal(t, "mock", ok.Model)
	assert.Equal(t, "recap", ok.Purpose)
	assert.True(t, ok.Success)
	assert.Equal(t, 40, ok.InputTokens)
	assert.Equal(t, 12, ok.OutputTokens)
	assert.Contains(t, ok.RequestBody, "[system]\nBe kind.")
	assert.Contains(t, ok.RequestBody, "[user]\nI finished the quiz.")
	assert.Contains(t, ok.RequestBody, "[schema: test_nudge]")
	assert.JSONEq(t, `{"summary":"ok"}`, ok.ResponseBody)

	failed := events[1]
	assert.False(t, failed.Success)
	assert.Equal(t, "boom", failed.ErrorMessage)
	assert.Empty(t, failed.ResponseBody)
}

func TestLogging_NilRepo(t *testing.T) {
	p := WithLogging(NewSyntheticProvider(), "mock", nil, nil)
	_, err := p.Generate(context.Background(), Request{})
	assert.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())
}
