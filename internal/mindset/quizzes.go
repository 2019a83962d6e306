package mindset

var yesNo = []string{"Yes", "No"}

// Challenge is the five-question yes/no self-check.
var Challenge = Quiz{
	ID:    "challenge",
	Title: "Growth Mindset Self-Check",
	Intro: "Answer these questions to see how strong your growth mindset is!",
	Questions: []Question{
		{ID: "q1", Prompt: "Do you see challenges as opportunities to grow?", Options: yesNo, Growth: "Yes"},
		{ID: "q2", Prompt: "Do you believe that intelligence can be developed?", Options: yesNo, Growth: "Yes"},
		{ID: "q3", Prompt: "Are you open to learning from criticism?", Options: yesNo, Growth: "Yes"},
		{ID: "q4", Prompt: "Do you put in effort even when things are difficult?", Options: yesNo, Growth: "Yes"},
		{ID: "q5", Prompt: "Do you feel motivated to improve your skills every day?", Options: yesNo, Growth: "Yes"},
	},
	Thresholds: []Threshold{
		{Min: 4, Tier: TierStrong},
		{Min: 2, Tier: TierDeveloping},
		{Min: 0, Tier: TierNeedsFocus},
	},
	Messages: map[Tier]string{
		TierStrong:     "Amazing! You have a strong growth mindset. Keep it up!",
		TierDeveloping: "You're on the right track! Keep working on developing your mindset.",
		TierNeedsFocus: "Time to focus on personal growth. Believe in yourself!",
	},
}

// Scenario is the three-question multiple-choice quiz.
var Scenario = Quiz{
	ID:    "scenario",
	Title: "Mindset Scenarios",
	Intro: "Pick the answer that sounds most like you.",
	Questions: []Question{
		{
			ID:     "s1",
			Prompt: "When you face a difficult problem, you usually...",
			Options: []string{
				"Keep trying different strategies until something works",
				"Look for someone to give you the answer",
				"Decide it just isn't something you're good at",
			},
			Growth: "Keep trying",
			Match:  MatchPrefix,
		},
		{
			ID:     "s2",
			Prompt: "When someone criticizes your work, you...",
			Options: []string{
				"Use the feedback to make the next version better",
				"Feel attacked and ignore it",
				"Stop working on it altogether",
			},
			Growth: "Use the feedback",
			Match:  MatchPrefix,
		},
		{
			ID:     "s3",
			Prompt: "When a friend succeeds at something you struggle with, you...",
			Options: []string{
				"Learn from what they did differently",
				"Feel threatened by their success",
				"Assume they were just born talented",
			},
			Growth: "Learn from",
			Match:  MatchPrefix,
		},
	},
	Thresholds: []Threshold{
		{Min: 2, Tier: TierStrong},
		{Min: 0, Tier: TierDeveloping},
	},
	Messages: map[Tier]string{
		TierStrong:     "Great job! You lean toward a growth mindset.",
		TierDeveloping: "There's room to grow. Every challenge is a chance to learn!",
	},
}
