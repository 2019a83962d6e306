package coach

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindset/internal/llm"
	"github.com/abhisek/mindset/internal/mindset"
	"github.com/abhisek/mindset/internal/session"
)

func validReflectionJSON() json.RawMessage {
	return json.RawMessage(`{
		"headline": "You already treat setbacks as information",
		"encouragement": "You said you learn from criticism. That habit compounds.",
		"next_steps": ["Ask one colleague for feedback this week", "Spend 20 minutes on Go daily"]
	}`)
}

func testInput(t *testing.T) Input {
	t.Helper()
	s := session.New("s1")
	require.NoError(t, session.SubmitName(s, "Ada"))
	require.NoError(t, session.SubmitDetails(s, "BSc Physics", "Research engineer"))
	require.NoError(t, session.AddSkill(s, "Go", 60))
	require.NoError(t, session.AddGoal(s, "Ship a side project", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	session.RecordResponse(s, "q1", "Yes")
	session.RecordResponse(s, "q2", "No")

	res := mindset.Challenge.Score(s.Responses)
	return InputFromState(s, mindset.Challenge, res)
}

func TestInputFromState_OnlyAnsweredQuestions(t *testing.T) {
	in := testInput(t)

	require.Len(t, in.Answers, 2)
	assert.True(t, in.Answers[0].Growth)
	assert.False(t, in.Answers[1].Growth)
	assert.Equal(t, mindset.Challenge.Questions[1].Prompt, in.Answers[1].Prompt)
	assert.Equal(t, "Ada", in.Profile.Name)
	assert.Equal(t, 1, in.Result.Score)
}

func TestService_Reflect(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validReflectionJSON()})
	svc := NewService(mock, DefaultConfig())

	r, err := svc.Reflect(context.Background(), testInput(t))
	require.NoError(t, err)

	assert.Equal(t, "You already treat setbacks as information", r.Headline)
	assert.NotEmpty(t, r.Encouragement)
	assert.Len(t, r.NextSteps, 2)
	assert.False(t, r.GeneratedAt.IsZero())
}

func TestService_ReflectRequest(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validReflectionJSON()})
	cfg := DefaultConfig()
	svc := NewService(mock, cfg)

	_, err := svc.Reflect(context.Background(), testInput(t))
	require.NoError(t, err)
	require.Equal(t, 1, mock.CallCount())

	req := mock.Calls[0]
	require.NotNil(t, req.Schema)
	assert.Equal(t, "mindset-reflection", req.Schema.Name)
	assert.Equal(t, cfg.MaxTokens, req.MaxTokens)
	require.Len(t, req.Messages, 1)

	msg := req.Messages[0].Content
	assert.Contains(t, msg, "Name: Ada")
	assert.Contains(t, msg, "Score: 1 of 5 (needs focus)")
	assert.Contains(t, msg, "+ Do you see challenges as opportunities to grow? -> Yes")
	assert.Contains(t, msg, "- Go: 60")
	assert.Contains(t, msg, "Ship a side project, due 2025-06-01, In Progress")
}

func TestService_ReflectProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Reflect(context.Background(), testInput(t))
	require.Error(t, err)

	var unavail *llm.ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavail))
}

func TestService_ReflectBadJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Reflect(context.Background(), testInput(t))
	assert.Error(t, err)
}

func TestService_Recap(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary": "You added two skills and finished the quiz."}`),
	})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Recap(context.Background(), []string{"skill_added Go (60)", "scored challenge 4/5 strong"})
	require.NoError(t, err)
	assert.Equal(t, "You added two skills and finished the quiz.", got)

	req := mock.Calls[0]
	assert.Equal(t, "session-recap", req.Schema.Name)
	assert.Contains(t, req.Messages[0].Content, "- skill_added Go (60)")
}

func TestService_RecapEmpty(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Recap(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoEvents)
	assert.Equal(t, 0, mock.CallCount())
}
