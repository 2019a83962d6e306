package coach

import (
	"time"

	"github.com/abhisek/mindset/internal/mindset"
	"github.com/abhisek/mindset/internal/session"
)

// Reflection is an LLM-generated note about a quiz result.
type Reflection struct {
	Headline      string
	Encouragement string
	NextSteps     []string
	GeneratedAt   time.Time
}

// Answer pairs a question prompt with what the user picked.
type Answer struct {
	Prompt string
	Choice string
	Growth bool
}

// Input holds all context needed to generate a reflection.
type Input struct {
	QuizTitle    string
	Result       mindset.Result
	Answers      []Answer
	Profile      session.Profile
	Skills       []session.Skill
	Achievements []session.Achievement
	Goals        []session.LearningGoal
}

// InputFromState collects the reflection context for quiz from the session.
func InputFromState(s *session.State, quiz mindset.Quiz, result mindset.Result) Input {
	in := Input{
		QuizTitle:    quiz.Title,
		Result:       result,
		Profile:      s.Profile,
		Skills:       s.Skills,
		Achievements: s.Achievements,
		Goals:        s.Goals,
	}
	for _, q := range quiz.Questions {
		choice := s.Response(q.ID)
		if choice == "" {
			continue
		}
		in.Answers = append(in.Answers, Answer{Prompt: q.Prompt, Choice: choice, Growth: q.IsGrowth(choice)})
	}
	return in
}
