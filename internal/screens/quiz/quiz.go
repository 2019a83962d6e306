// Package quiz renders a mindset quiz as a column of radio groups.
package quiz

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindset/internal/mindset"
	"github.com/abhisek/mindset/internal/router"
	"github.com/abhisek/mindset/internal/screen"
	"github.com/abhisek/mindset/internal/screens/result"
	"github.com/abhisek/mindset/internal/session"
	"github.com/abhisek/mindset/internal/ui/components"
	"github.com/abhisek/mindset/internal/ui/layout"
	"github.com/abhisek/mindset/internal/ui/theme"
)

// scoredMsg fires when the scoring delay has elapsed.
type scoredMsg time.Time

// QuizScreen lets the user answer every question of the variant's quiz.
// Answers are written to the session as soon as they are chosen, so leaving
// and reopening the screen keeps them.
type QuizScreen struct {
	env     *screen.Env
	quiz    mindset.Quiz
	groups  []components.RadioGroup
	spinner spinner.Model

	// focus indexes groups; len(groups) is the score button.
	focus       int
	calculating bool
}

var _ screen.Screen = (*QuizScreen)(nil)

// New creates the quiz screen for the session's variant.
func New(env *screen.Env) *QuizScreen {
	quiz := env.Variant.Quiz()
	groups := make([]components.RadioGroup, len(quiz.Questions))
	for i, q := range quiz.Questions {
		groups[i] = components.NewRadioGroup(fmt.Sprintf("%d. %s", i+1, q.Prompt), q.Options)
		groups[i].Select(env.State.Response(q.ID))
	}

	s := &QuizScreen{
		env:    env,
		quiz:   quiz,
		groups: groups,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
	s.setFocus(0)
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return s.quiz.Title
}

// KeyHints returns footer hints for answering.
func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter", Description: "Choose"},
		{Key: "Tab", Description: "Next question"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case scoredMsg:
		return s, s.finish()

	case spinner.TickMsg:
		if !s.calculating {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		if s.calculating {
			return s, nil
		}
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		s.setFocus((s.focus + 1) % (len(s.groups) + 1))
		return nil
	case "shift+tab":
		s.setFocus((s.focus + len(s.groups)) % (len(s.groups) + 1))
		return nil
	}

	if s.focus == len(s.groups) {
		switch msg.String() {
		case "enter", "space", " ":
			return s.check()
		case "up", "k":
			s.setFocus(len(s.groups) - 1)
		}
		return nil
	}

	g := s.groups[s.focus]
	atTop, atBottom := g.Cursor == 0, g.Cursor == len(g.Options)-1
	var changed bool
	s.groups[s.focus], changed = g.Update(msg)

	if changed {
		q := s.quiz.Questions[s.focus]
		session.RecordResponse(s.env.State, q.ID, s.groups[s.focus].Value())
		s.setFocus(s.focus + 1)
		return nil
	}

	// Moving past the first or last option steps into the neighbouring question.
	switch k := msg.String(); {
	case (k == "down" || k == "j") && atBottom:
		s.setFocus(s.focus + 1)
	case (k == "up" || k == "k") && atTop && s.focus > 0:
		s.setFocus(s.focus - 1)
	}
	return nil
}

func (s *QuizScreen) check() tea.Cmd {
	s.calculating = true
	return tea.Batch(
		s.spinner.Tick,
		tea.Tick(s.env.ProcessingDelay, func(t time.Time) tea.Msg {
			return scoredMsg(t)
		}),
	)
}

func (s *QuizScreen) finish() tea.Cmd {
	s.calculating = false
	res := s.quiz.Score(s.env.State.Responses)
	session.RecordScore(s.env.State, s.quiz.ID, res.Score, res.Max, string(res.Tier))
	s.env.Log().Info("quiz scored", "quiz", s.quiz.ID, "score", res.Score, "max", res.Max, "tier", string(res.Tier))

	return router.Open(result.New(s.env, s.quiz, res))
}

func (s *QuizScreen) setFocus(i int) {
	s.focus = max(0, min(i, len(s.groups)))
	for j := range s.groups {
		s.groups[j].Focused = j == s.focus
	}
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	header := theme.Title.Render(s.quiz.Title) + "\n" + theme.Subtitle.Render(s.quiz.Intro)

	blocks := make([]string, 0, len(s.groups)+1)
	for _, g := range s.groups {
		blocks = append(blocks, g.View())
	}

	footer := components.Button("Check My Mindset Score", s.focus == len(s.groups))

	answered := s.quiz.Score(s.env.State.Responses).Answered
	if s.calculating {
		footer += "\n\n" + s.spinner.View() + " " + theme.Hint.Render("Calculating your mindset score...")
	} else if answered < len(s.groups) {
		footer += "\n\n" + theme.Hint.Render(fmt.Sprintf("%d of %d answered. Unanswered questions score zero.", answered, len(s.groups)))
	}
	blocks = append(blocks, footer)

	avail := height - lipgloss.Height(header) - 4
	body := components.FitBlocks(blocks, s.focus, avail)

	content := lipgloss.NewStyle().Width(cw).Render(strings.Join([]string{header, body}, "\n\n"))
	return components.Frame(content, width, height)
}
