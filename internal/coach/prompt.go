package coach

import (
	"fmt"
	"strings"
	"time"
)

const reflectionSystemPrompt = `You are a warm, practical growth mindset coach. The user has just taken a short self-assessment in a personal dashboard. Speak directly to them, in plain language, without clinical terms.`

func buildReflectionUserMessage(input Input) string {
	var b strings.Builder

	if input.Profile.Name != "" {
		b.WriteString(fmt.Sprintf("Name: %s\n", input.Profile.Name))
	}
	if input.Profile.Education != "" {
		b.WriteString(fmt.Sprintf("Education: %s\n", input.Profile.Education))
	}
	if input.Profile.FuturePlans != "" {
		b.WriteString(fmt.Sprintf("Future plans: %s\n", input.Profile.FuturePlans))
	}

	b.WriteString(fmt.Sprintf("\nQuiz: %s\n", input.QuizTitle))
	b.WriteString(fmt.Sprintf("Score: %d of %d (%s)\n", input.Result.Score, input.Result.Max, input.Result.Tier))

	b.WriteString("\nAnswers:\n")
	if len(input.Answers) == 0 {
		b.WriteString("None\n")
	}
	for _, a := range input.Answers {
		mark := " "
		if a.Growth {
			mark = "+"
		}
		b.WriteString(fmt.Sprintf("%s %s -> %s\n", mark, a.Prompt, a.Choice))
	}

	if len(input.Skills) > 0 {
		b.WriteString("\nSelf-rated skills (1-100):\n")
		for _, s := range input.Skills {
			b.WriteString(fmt.Sprintf("- %s: %d\n", s.Name, s.Level))
		}
	}

	if len(input.Achievements) > 0 {
		b.WriteString("\nRecent achievements:\n")
		for _, a := range input.Achievements {
			b.WriteString(fmt.Sprintf("- %s (%s)\n", a.Text, a.Date.Format(time.DateOnly)))
		}
	}

	if len(input.Goals) > 0 {
		b.WriteString("\nLearning goals:\n")
		for _, g := range input.Goals {
			b.WriteString(fmt.Sprintf("- %s, due %s, %s\n", g.Text, g.Deadline.Format(time.DateOnly), g.Status.DisplayName()))
		}
	}

	b.WriteString(`
Instructions:
1. Write a one-line headline about where the user stands. Do not repeat the score.
2. Write 2-3 sentences of encouragement that refer to specific answers marked with + or to the answers that were not growth-oriented.
3. Suggest 1-3 concrete next steps. If skills or goals are listed, tie at least one step to them.
4. Plain text only. No markdown, no emoji.`)

	return b.String()
}

const recapSystemPrompt = `You are summarizing one session of a personal growth dashboard for the person who used it.`

func buildRecapUserMessage(entries []string) string {
	var b strings.Builder

	b.WriteString("Session events, oldest first:\n")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("- %s\n", e))
	}

	b.WriteString(`
Instructions:
Recap the session in 2-3 sentences, addressed to the user. Mention what they added or answered, not how the app works. No advice.`)

	return b.String()
}
