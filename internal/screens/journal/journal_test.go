package journal

import (
	"context"
	"encoding/json"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindset/internal/coach"
	"github.com/abhisek/mindset/internal/llm"
	"github.com/abhisek/mindset/internal/mindset"
	"github.com/abhisek/mindset/internal/screen"
	"github.com/abhisek/mindset/internal/screen/screentest"
	"github.com/abhisek/mindset/internal/session"
	"github.com/abhisek/mindset/internal/store"
)

func newEnv(t *testing.T) *screen.Env {
	t.Helper()
	st, err := store.OpenMemory(uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	env := screentest.NewEnv(mindset.VariantTracker)
	env.State = session.New("journal-test", session.WithRecorder(store.SessionRecorder(st.JournalRepo())))
	env.Journal = st.JournalRepo()
	env.Events = st.EventRepo()
	return env
}

func run(t *testing.T, j *JournalScreen) {
	t.Helper()
	for _, msg := range screentest.Drain(j.Init()) {
		j.Update(msg)
	}
	require.True(t, j.loaded)
}

func TestListsHandlerEvents(t *testing.T) {
	env := newEnv(t)
	require.NoError(t, session.SubmitName(env.State, "Ada"))
	require.NoError(t, session.AddSkill(env.State, "Go", 70))

	j := New(env)
	run(t, j)

	require.Len(t, j.entries, 2)
	assert.Equal(t, string(session.EventNameSubmitted), j.entries[0].Kind)
	view := screentest.View(j, 100, 40)
	assert.Contains(t, view, "Session events (2)")
	assert.Contains(t, view, "Go (70)")
	assert.NotContains(t, view, "Recap", "no coach, no recap section")
}

func TestNoJournal(t *testing.T) {
	env := screentest.NewEnv(mindset.VariantChallenge)
	j := New(env)
	run(t, j)

	assert.Contains(t, screentest.View(j, 100, 40), "not available")
}

func TestRecapRecordsUsage(t *testing.T) {
	env := newEnv(t)
	require.NoError(t, session.SubmitName(env.State, "Ada"))

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary": "You introduced yourself and got started."}`),
		Usage:   llm.Usage{InputTokens: 1000, OutputTokens: 100},
	})
	provider := llm.WithLogging(mock, "mock", env.Events, nil)
	env.Coach = coach.NewService(provider, coach.DefaultConfig())

	j := New(env)
	run(t, j)
	assert.Contains(t, screentest.View(j, 100, 40), "Press r")

	_, cmd := j.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	require.NotNil(t, cmd)
	assert.True(t, j.recapping)

	var reload []tea.Msg
	for _, msg := range screentest.Drain(cmd) {
		_, next := j.Update(msg)
		if next != nil {
			for _, m := range screentest.Drain(next) {
				reload = append(reload, m)
				j.Update(m)
			}
		}
	}
	require.NotEmpty(t, reload)

	assert.False(t, j.recapping)
	assert.Equal(t, "You introduced yourself and got started.", j.recap)
	require.Len(t, j.calls, 1)
	assert.Equal(t, "recap", j.calls[0].Purpose)

	view := screentest.View(j, 100, 40)
	assert.Contains(t, view, "You introduced yourself")
	assert.Contains(t, view, "1 calls")
}

func TestRecapWithNoEvents(t *testing.T) {
	env := newEnv(t)
	env.Coach = coach.NewService(llm.NewMockProvider(), coach.DefaultConfig())

	j := New(env)
	run(t, j)
	_, cmd := j.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	for _, msg := range screentest.Drain(cmd) {
		j.Update(msg)
	}
	assert.Contains(t, screentest.View(j, 100, 40), "Nothing to recap yet")
}

func TestSummarize(t *testing.T) {
	calls := []store.LLMRequestEvent{
		{LLMRequestEventData: store.LLMRequestEventData{Model: "gpt-4o-mini", InputTokens: 1_000_000, OutputTokens: 1_000_000, Success: true}},
		{LLMRequestEventData: store.LLMRequestEventData{Model: "unknown-model", InputTokens: 10, OutputTokens: 5}},
	}
	u := Summarize(calls)

	assert.Equal(t, 2, u.Calls)
	assert.Equal(t, 1, u.Failed)
	assert.Equal(t, 1_000_010, u.InputTokens)
	assert.InDelta(t, 0.75, u.CostUSD, 1e-9)
}

func TestQueryFailureShown(t *testing.T) {
	env := newEnv(t)
	j := New(env)
	j.Update(loadedMsg{err: context.Canceled})
	assert.Contains(t, screentest.View(j, 100, 40), "Could not read the journal")
}
