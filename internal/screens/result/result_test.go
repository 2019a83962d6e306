package result

import (
	"encoding/json"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindset/internal/coach"
	"github.com/abhisek/mindset/internal/llm"
	"github.com/abhisek/mindset/internal/mindset"
	"github.com/abhisek/mindset/internal/router"
	"github.com/abhisek/mindset/internal/screen/screentest"
)

func scored(responses map[string]string) mindset.Result {
	return mindset.Challenge.Score(responses)
}

func TestViewWithoutCoach(t *testing.T) {
	env := screentest.NewEnv(mindset.VariantChallenge)
	r := New(env, mindset.Challenge, scored(map[string]string{
		"q1": "Yes", "q2": "Yes", "q3": "Yes", "q4": "Yes", "q5": "No",
	}))

	assert.Nil(t, r.Init())
	view := screentest.View(r, 100, 40)
	assert.Contains(t, view, "Your Growth Mindset Score: 4/5")
	assert.Contains(t, view, "STRONG")
	assert.Contains(t, view, "Amazing!")
	assert.NotContains(t, view, "You answered")
}

func TestViewIncompleteHint(t *testing.T) {
	env := screentest.NewEnv(mindset.VariantChallenge)
	r := New(env, mindset.Challenge, scored(map[string]string{"q1": "No"}))

	view := screentest.View(r, 100, 40)
	assert.Contains(t, view, "0/5")
	assert.Contains(t, view, "You answered 1 of 5 questions.")
	assert.Contains(t, view, "Time to focus on personal growth")
}

func runReflection(t *testing.T, r *ResultScreen) {
	t.Helper()
	cmd := r.Init()
	require.NotNil(t, cmd)
	assert.True(t, r.loading)

	for _, msg := range screentest.Drain(cmd) {
		r.Update(msg)
	}
	assert.False(t, r.loading)
}

func TestCoachReflectionShown(t *testing.T) {
	env := screentest.NewEnv(mindset.VariantChallenge)
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"headline": "Setbacks are lessons",
		"encouragement": "You keep going when it is hard.",
		"next_steps": ["Ask for feedback on one thing this week"]
	}`)})
	env.Coach = coach.NewService(mock, coach.DefaultConfig())

	r := New(env, mindset.Challenge, scored(map[string]string{"q4": "Yes"}))
	runReflection(t, r)

	view := screentest.View(r, 100, 50)
	assert.Contains(t, view, "Setbacks are lessons")
	assert.Contains(t, view, "Ask for feedback")
	assert.Equal(t, 1, mock.CallCount())
}

func TestCoachFailureIsANote(t *testing.T) {
	env := screentest.NewEnv(mindset.VariantChallenge)
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	env.Coach = coach.NewService(mock, coach.DefaultConfig())

	r := New(env, mindset.Challenge, scored(nil))
	runReflection(t, r)

	assert.Error(t, r.coachErr)
	assert.Contains(t, screentest.View(r, 100, 40), "coach is unavailable")
	assert.Contains(t, screentest.View(r, 100, 40), "0/5")
}

func TestEnterPops(t *testing.T) {
	env := screentest.NewEnv(mindset.VariantChallenge)
	r := New(env, mindset.Challenge, scored(nil))

	_, cmd := r.Update(screentest.Key(tea.KeyEnter))
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}
