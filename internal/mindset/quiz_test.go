package mindset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChallenge_FourYesIsStrong(t *testing.T) {
	res := Challenge.Score(map[string]string{
		"q1": "Yes", "q2": "Yes", "q3": "Yes", "q4": "Yes", "q5": "No",
	})
	assert.Equal(t, 4, res.Score)
	assert.Equal(t, 5, res.Max)
	assert.Equal(t, TierStrong, res.Tier)
	assert.True(t, res.Complete())
}

func TestChallenge_AllNoNeedsFocus(t *testing.T) {
	res := Challenge.Score(map[string]string{
		"q1": "No", "q2": "No", "q3": "No", "q4": "No", "q5": "No",
	})
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, TierNeedsFocus, res.Tier)
	assert.Equal(t, "Time to focus on personal growth. Believe in yourself!", res.Message)
}

func TestChallenge_Tiers(t *testing.T) {
	tests := []struct {
		score int
		want  Tier
	}{
		{0, TierNeedsFocus},
		{1, TierNeedsFocus},
		{2, TierDeveloping},
		{3, TierDeveloping},
		{4, TierStrong},
		{5, TierStrong},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Challenge.TierFor(tt.score), "score %d", tt.score)
	}
}

func TestChallenge_UnansweredCountsAsZero(t *testing.T) {
	res := Challenge.Score(map[string]string{"q1": "Yes", "q3": ""})
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, 1, res.Answered)
	assert.False(t, res.Complete())
	assert.Equal(t, TierNeedsFocus, res.Tier)

	empty := Challenge.Score(nil)
	assert.Equal(t, 0, empty.Score)
}

func TestScenario_AllGrowthIsStrong(t *testing.T) {
	responses := make(map[string]string)
	for _, q := range Scenario.Questions {
		responses[q.ID] = q.Options[0]
	}
	res := Scenario.Score(responses)
	assert.Equal(t, 3, res.Score)
	assert.Equal(t, TierStrong, res.Tier)
}

func TestScenario_NoMatchesIsDeveloping(t *testing.T) {
	responses := make(map[string]string)
	for _, q := range Scenario.Questions {
		responses[q.ID] = q.Options[len(q.Options)-1]
	}
	res := Scenario.Score(responses)
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, TierDeveloping, res.Tier)
}

func TestScenario_Thresholds(t *testing.T) {
	assert.Equal(t, TierDeveloping, Scenario.TierFor(1))
	assert.Equal(t, TierStrong, Scenario.TierFor(2))
}

func TestScenario_GrowthOptionMatchesPrefix(t *testing.T) {
	for _, q := range Scenario.Questions {
		require.True(t, q.IsGrowth(q.Options[0]), q.ID)
		for _, opt := range q.Options[1:] {
			assert.False(t, q.IsGrowth(opt), "%s: %q", q.ID, opt)
		}
	}
}

func TestQuestion_ExactMatchDoesNotPrefixMatch(t *testing.T) {
	q := Challenge.Questions[0]
	assert.True(t, q.IsGrowth("Yes"))
	assert.False(t, q.IsGrowth("Yes, mostly"))
	assert.False(t, q.IsGrowth(""))
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("")
	require.NoError(t, err)
	assert.Equal(t, VariantChallenge, v)

	v, err = ParseVariant(" Tracker ")
	require.NoError(t, err)
	assert.Equal(t, VariantTracker, v)
	assert.True(t, v.HasTracker())
	assert.Equal(t, "scenario", v.Quiz().ID)

	_, err = ParseVariant("other")
	assert.Error(t, err)
}
