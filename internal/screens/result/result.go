// Package result shows a scored quiz and, when a coach is configured, a
// personal reflection generated in the background.
package result

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindset/internal/coach"
	"github.com/abhisek/mindset/internal/mindset"
	"github.com/abhisek/mindset/internal/router"
	"github.com/abhisek/mindset/internal/screen"
	"github.com/abhisek/mindset/internal/ui/components"
	"github.com/abhisek/mindset/internal/ui/layout"
	"github.com/abhisek/mindset/internal/ui/theme"
)

// reflectionMsg carries the coach's answer back to the screen.
type reflectionMsg struct {
	reflection *coach.Reflection
	err        error
}

// ResultScreen displays the score, tier and tier message of a quiz.
type ResultScreen struct {
	env     *screen.Env
	quiz    mindset.Quiz
	result  mindset.Result
	spinner spinner.Model

	loading    bool
	reflection *coach.Reflection
	coachErr   error
}

var _ screen.Screen = (*ResultScreen)(nil)

// New creates a result screen for an already scored quiz.
func New(env *screen.Env, quiz mindset.Quiz, res mindset.Result) *ResultScreen {
	return &ResultScreen{
		env:    env,
		quiz:   quiz,
		result: res,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
}

func (r *ResultScreen) Init() tea.Cmd {
	if r.env.Coach == nil {
		return nil
	}
	r.loading = true

	svc := r.env.Coach
	input := coach.InputFromState(r.env.State, r.quiz, r.result)
	logger := r.env.Log()
	return tea.Batch(r.spinner.Tick, func() tea.Msg {
		refl, err := svc.Reflect(context.Background(), input)
		if err != nil {
			logger.Warn("coach reflection failed", "quiz", input.QuizTitle, "error", err)
		}
		return reflectionMsg{reflection: refl, err: err}
	})
}

func (r *ResultScreen) Title() string {
	return "Your Score"
}

// KeyHints returns footer hints.
func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to quiz"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reflectionMsg:
		r.loading = false
		r.reflection = msg.reflection
		r.coachErr = msg.err
		return r, nil

	case spinner.TickMsg:
		if !r.loading {
			return r, nil
		}
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return r, router.Back()
		}
	}
	return r, nil
}

func (r *ResultScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string

	score := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true).
		Render(fmt.Sprintf("Your Growth Mindset Score: %d/%d", r.result.Score, r.result.Max))
	sections = append(sections, lipgloss.NewStyle().Width(cw-4).Align(lipgloss.Center).Render(score))

	meter := components.Meter{Fill: tierStyle(r.result.Tier)}
	sections = append(sections, meter.Render(float64(r.result.Score)/float64(max(r.result.Max, 1)), cw-4))

	tier := tierText(r.result.Tier).Render(strings.ToUpper(string(r.result.Tier)))
	sections = append(sections, tier+"  "+theme.Body.Render(r.result.Message))

	if !r.result.Complete() {
		sections = append(sections, theme.Hint.Render(
			fmt.Sprintf("You answered %d of %d questions.", r.result.Answered, r.result.Max)))
	}

	card := components.Card(strings.Join(sections, "\n\n"), cw)
	parts := []string{card}

	if c := r.renderCoach(cw); c != "" {
		parts = append(parts, c)
	}

	return components.Frame(strings.Join(parts, "\n\n"), width, height)
}

func (r *ResultScreen) renderCoach(cw int) string {
	switch {
	case r.loading:
		return r.spinner.View() + " " + theme.Hint.Render("Your coach is reading your answers...")
	case r.coachErr != nil:
		return theme.Hint.Render("The coach is unavailable right now.")
	case r.reflection != nil:
		var b strings.Builder
		b.WriteString(theme.Label.Render(r.reflection.Headline))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render(r.reflection.Encouragement))
		if len(r.reflection.NextSteps) > 0 {
			b.WriteString("\n")
			for _, step := range r.reflection.NextSteps {
				b.WriteString("\n" + theme.Good.Render("→ ") + theme.Body.Render(step))
			}
		}
		return components.Section("Coach", b.String(), cw)
	}
	return ""
}

func tierStyle(t mindset.Tier) lipgloss.Style {
	switch t {
	case mindset.TierStrong:
		return lipgloss.NewStyle().Background(theme.Success)
	case mindset.TierDeveloping:
		return lipgloss.NewStyle().Background(theme.Accent)
	default:
		return lipgloss.NewStyle().Background(theme.Error)
	}
}

func tierText(t mindset.Tier) lipgloss.Style {
	switch t {
	case mindset.TierStrong:
		return theme.Good
	case mindset.TierDeveloping:
		return theme.Warn
	default:
		return theme.Bad
	}
}
