package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureRecorder struct {
	events []Event
	err    error
}

func (c *captureRecorder) Record(_ context.Context, ev Event) error {
	c.events = append(c.events, ev)
	return c.err
}

func (c *captureRecorder) kinds() []EventKind {
	out := make([]EventKind, len(c.events))
	for i, e := range c.events {
		out[i] = e.Kind
	}
	return out
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGetOrInit_Idempotent(t *testing.T) {
	s := New("s1")

	first := s.GetOrInit("draft", "hello")
	second := s.GetOrInit("draft", "ignored")

	assert.Equal(t, "hello", first)
	assert.Equal(t, "hello", second)
}

func TestUpdateField_Overwrites(t *testing.T) {
	s := New("s1")
	s.GetOrInit("level", 50)
	s.UpdateField("level", 80)

	assert.Equal(t, 80, Value(s, "level", 1))
}

func TestValue_TypeMismatchResetsToDefault(t *testing.T) {
	s := New("s1")
	s.UpdateField("level", "not an int")

	assert.Equal(t, 10, Value(s, "level", 10))
	assert.Equal(t, 10, s.GetOrInit("level", 99))
}

func TestAddSkill_AppendsInCallOrder(t *testing.T) {
	s := New("s1")
	names := []string{"Go", "Public speaking", "Go"}

	for i, n := range names {
		require.NoError(t, AddSkill(s, n, 10*(i+1)))
		assert.Len(t, s.Skills, i+1)
	}

	assert.Equal(t, []Skill{
		{Name: "Go", Level: 10},
		{Name: "Public speaking", Level: 20},
		{Name: "Go", Level: 30},
	}, s.Skills)
}

func TestAddSkill_ClampsLevel(t *testing.T) {
	s := New("s1")
	require.NoError(t, AddSkill(s, "low", -5))
	require.NoError(t, AddSkill(s, "high", 250))

	assert.Equal(t, MinLevel, s.Skills[0].Level)
	assert.Equal(t, MaxLevel, s.Skills[1].Level)
}

func TestAddSkill_BlankNameRejected(t *testing.T) {
	s := New("s1")
	err := AddSkill(s, "   ", 40)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "skill", verr.Field)
	assert.Empty(t, s.Skills)
}

func TestAddAchievement_EmptyTextLeavesListUnchanged(t *testing.T) {
	s := New("s1")
	require.NoError(t, AddAchievement(s, "Finished a course", day(2024, 3, 1)))

	err := AddAchievement(s, "", day(2024, 3, 2))
	require.Error(t, err)
	err = AddAchievement(s, " \t\n", day(2024, 3, 2))
	require.Error(t, err)

	require.Len(t, s.Achievements, 1)
	assert.Equal(t, "Finished a course", s.Achievements[0].Text)
}

func TestAddAchievement_TruncatesToDay(t *testing.T) {
	s := New("s1")
	at := time.Date(2024, 5, 6, 17, 42, 0, 0, time.UTC)
	require.NoError(t, AddAchievement(s, "Shipped", at))

	assert.Equal(t, day(2024, 5, 6), s.Achievements[0].Date)
}

func TestCheckText_MatchesAddHandlers(t *testing.T) {
	s := New("test")
	assert.Equal(t, CheckGoal("  "), AddGoal(s, "  ", time.Now()))
	assert.Equal(t, CheckAchievement("\t"), AddAchievement(s, "\t", time.Now()))
	assert.NoError(t, CheckGoal("Learn Go"))
	assert.NoError(t, CheckAchievement("Shipped"))
	assert.Empty(t, s.Goals)
	assert.Empty(t, s.Achievements)
}

func TestAddGoal_StartsInProgress(t *testing.T) {
	s := New("s1")
	require.NoError(t, AddGoal(s, "Learn Go", day(2025, 1, 1)))

	assert.Equal(t, StatusInProgress, s.Goals[0].Status)
}

func TestSetGoalStatus_OnlyTouchesIndex(t *testing.T) {
	s := New("s1")
	require.NoError(t, AddGoal(s, "A", day(2025, 1, 1)))
	require.NoError(t, AddGoal(s, "B", day(2025, 2, 1)))
	require.NoError(t, AddGoal(s, "C", day(2025, 3, 1)))
	before := append([]LearningGoal(nil), s.Goals...)

	ok := SetGoalStatus(s, 1, StatusCompleted)
	require.True(t, ok)

	assert.Equal(t, before[0], s.Goals[0])
	assert.Equal(t, before[2], s.Goals[2])
	assert.Equal(t, "B", s.Goals[1].Text)
	assert.Equal(t, before[1].Deadline, s.Goals[1].Deadline)
	assert.Equal(t, StatusCompleted, s.Goals[1].Status)
}

func TestSetGoalStatus_IgnoresBadInput(t *testing.T) {
	s := New("s1")
	require.NoError(t, AddGoal(s, "A", day(2025, 1, 1)))

	assert.False(t, SetGoalStatus(s, -1, StatusCompleted))
	assert.False(t, SetGoalStatus(s, 1, StatusCompleted))
	assert.False(t, SetGoalStatus(s, 0, GoalStatus("bogus")))
	assert.Equal(t, StatusInProgress, s.Goals[0].Status)
}

func TestFlags_Monotonic(t *testing.T) {
	s := New("s1")
	assert.False(t, s.Flags().ShowQuote)
	assert.False(t, s.Flags().Proceed)

	RevealQuote(s)
	Proceed(s)

	// Further input of every kind must not reset the gates.
	_ = SubmitName(s, "")
	_ = SubmitDetails(s, "", "")
	_ = AddSkill(s, "", 1)
	RecordResponse(s, "q1", "No")
	RevealQuote(s)
	Proceed(s)

	assert.True(t, s.Flags().ShowQuote)
	assert.True(t, s.Flags().Proceed)
}

func TestSubmitDetails_RequiresBoth(t *testing.T) {
	tests := []struct {
		name      string
		education string
		plans     string
		field     string
	}{
		{"both blank", "", "", "education"},
		{"education blank", "  ", "Build things", "education"},
		{"plans blank", "BSc", "\n", "future_plans"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("s1")
			err := SubmitDetails(s, tt.education, tt.plans)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Empty(t, s.Profile.Education)
			assert.Empty(t, s.Profile.FuturePlans)
		})
	}
}

func TestSubmitDetails_TrimsAndStores(t *testing.T) {
	s := New("s1")
	require.NoError(t, SubmitDetails(s, "  Masters ", " Teach\n"))

	assert.Equal(t, "Masters", s.Profile.Education)
	assert.Equal(t, "Teach", s.Profile.FuturePlans)
}

func TestRecordResponse_OverwritesInPlace(t *testing.T) {
	s := New("s1")
	RecordResponse(s, "q1", "Yes")
	RecordResponse(s, "q1", "No")

	assert.Equal(t, "No", s.Response("q1"))
	assert.Len(t, s.Responses, 1)

	RecordResponse(s, "q1", "")
	assert.Equal(t, "", s.Response("q1"))
	assert.Empty(t, s.Responses)
}

func TestRecorder_ReceivesHandlerEvents(t *testing.T) {
	rec := &captureRecorder{}
	s := New("s1", WithRecorder(rec))

	require.NoError(t, SubmitName(s, "Ada"))
	RevealQuote(s)
	RevealQuote(s)
	require.NoError(t, SubmitDetails(s, "BSc", "Research"))
	Proceed(s)
	require.NoError(t, AddSkill(s, "Go", 70))
	_ = AddSkill(s, "", 70)

	assert.Equal(t, []EventKind{
		EventNameSubmitted,
		EventQuoteRevealed,
		EventDetailsSubmitted,
		EventProceeded,
		EventSkillAdded,
	}, rec.kinds())
	for _, ev := range rec.events {
		assert.Equal(t, "s1", ev.SessionID)
	}
}

func TestRecorder_FailureIsSwallowed(t *testing.T) {
	rec := &captureRecorder{err: errors.New("disk full")}
	s := New("s1", WithRecorder(rec))

	require.NoError(t, AddSkill(s, "Go", 70))
	assert.Len(t, s.Skills, 1)
}

func TestGoalStatus_NextCycles(t *testing.T) {
	assert.Equal(t, StatusCompleted, StatusInProgress.Next())
	assert.Equal(t, StatusOnHold, StatusCompleted.Next())
	assert.Equal(t, StatusInProgress, StatusOnHold.Next())
}
