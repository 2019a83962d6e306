// Package mindset scores the growth-mindset quizzes.
package mindset

import "strings"

// Tier is a qualitative label derived from a quiz score.
type Tier string

const (
	TierStrong     Tier = "strong"
	TierDeveloping Tier = "developing"
	TierNeedsFocus Tier = "needs focus"
)

// MatchKind controls how an answer is compared with a question's growth option.
type MatchKind int

const (
	MatchExact  MatchKind = iota // answer must equal Growth
	MatchPrefix                  // answer must start with Growth
)

// Question is a single quiz item.
type Question struct {
	ID      string
	Prompt  string
	Options []string

	// Growth is the growth-oriented answer (MatchExact) or option prefix (MatchPrefix).
	Growth string
	Match  MatchKind
}

// IsGrowth reports whether answer is the growth-oriented choice.
// Unanswered ("") never matches.
func (q Question) IsGrowth(answer string) bool {
	if answer == "" {
		return false
	}
	if q.Match == MatchPrefix {
		return strings.HasPrefix(answer, q.Growth)
	}
	return answer == q.Growth
}

// Threshold maps a minimum score to a tier.
type Threshold struct {
	Min  int
	Tier Tier
}

// Quiz is a fixed list of questions with tier thresholds.
type Quiz struct {
	ID        string
	Title     string
	Intro     string
	Questions []Question

	// Thresholds are checked in order; the first whose Min is reached wins.
	// The last entry should have Min 0.
	Thresholds []Threshold
	Messages   map[Tier]string
}

// Result is the outcome of scoring a quiz.
type Result struct {
	Score    int
	Max      int
	Answered int
	Tier     Tier
	Message  string
}

// Complete reports whether every question was answered.
func (r Result) Complete() bool {
	return r.Answered == r.Max
}

// Score counts growth-oriented answers in responses. Missing or empty
// responses count as non-matching.
func (q Quiz) Score(responses map[string]string) Result {
	res := Result{Max: len(q.Questions)}
	for _, question := range q.Questions {
		answer := responses[question.ID]
		if answer != "" {
			res.Answered++
		}
		if question.IsGrowth(answer) {
			res.Score++
		}
	}
	res.Tier = q.TierFor(res.Score)
	res.Message = q.Messages[res.Tier]
	return res
}

// TierFor maps a score to its tier.
func (q Quiz) TierFor(score int) Tier {
	for _, th := range q.Thresholds {
		if score >= th.Min {
			return th.Tier
		}
	}
	if n := len(q.Thresholds); n > 0 {
		return q.Thresholds[n-1].Tier
	}
	return TierDeveloping
}

// Question returns the question with the given ID.
func (q Quiz) Question(id string) (Question, bool) {
	for _, question := range q.Questions {
		if question.ID == id {
			return question, true
		}
	}
	return Question{}, false
}
