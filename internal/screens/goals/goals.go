// Package goals tracks learning goals and their status.
package goals

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindset/internal/insights"
	"github.com/abhisek/mindset/internal/screen"
	"github.com/abhisek/mindset/internal/session"
	"github.com/abhisek/mindset/internal/ui/components"
	"github.com/abhisek/mindset/internal/ui/layout"
	"github.com/abhisek/mindset/internal/ui/theme"
)

const (
	draftText     = "goals.text"
	draftDeadline = "goals.deadline"
)

const (
	focusText = iota
	focusDeadline
	focusAdd
	focusList
	focusCount
)

// visibleRows is how many goals the list shows at once.
const visibleRows = 6

// GoalsScreen adds learning goals and updates their status.
type GoalsScreen struct {
	env      *screen.Env
	text     components.TextInput
	deadline components.TextInput
	focus    int
	cursor   int
	warning  string
}

var _ screen.Screen = (*GoalsScreen)(nil)

// New creates the goals screen. The deadline defaults to four weeks from today.
func New(env *screen.Env) *GoalsScreen {
	g := &GoalsScreen{
		env:      env,
		text:     components.NewTextInput("Learning goal", "e.g. Read one book a month", 120),
		deadline: components.NewDateInput("Deadline (YYYY-MM-DD)", env.Clock().AddDate(0, 0, 28)),
	}
	g.text.SetValue(session.Value(env.State, draftText, ""))
	g.deadline.SetValue(session.Value(env.State, draftDeadline, g.deadline.Value()))
	return g
}

func (g *GoalsScreen) Init() tea.Cmd {
	return g.setFocus(focusText)
}

func (g *GoalsScreen) Title() string {
	return "Learning Goals"
}

// KeyHints returns footer hints for the focused element.
func (g *GoalsScreen) KeyHints() []layout.KeyHint {
	if g.focus == focusList {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "Enter", Description: "Next status"},
			{Key: "1/2/3", Description: "Set status"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next"},
		{Key: "Enter", Description: "Add"},
		{Key: "Esc", Description: "Back"},
	}
}

func (g *GoalsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return g, g.updateFocused(msg)
	}

	switch kmsg.String() {
	case "tab":
		return g, g.cycleFocus(1)
	case "shift+tab":
		return g, g.cycleFocus(-1)
	}

	if g.focus == focusList {
		g.handleListKey(kmsg.String())
		return g, nil
	}

	switch kmsg.String() {
	case "enter":
		if g.focus == focusText {
			return g, g.setFocus(focusDeadline)
		}
		return g, g.add()
	case "space", " ":
		if g.focus == focusAdd {
			return g, g.add()
		}
	}
	return g, g.updateFocused(msg)
}

func (g *GoalsScreen) handleListKey(key string) {
	goals := g.env.State.Goals
	switch key {
	case "up", "k":
		if g.cursor > 0 {
			g.cursor--
		}
	case "down", "j":
		if g.cursor < len(goals)-1 {
			g.cursor++
		}
	case "enter", "space", " ":
		if g.cursor < len(goals) {
			session.SetGoalStatus(g.env.State, g.cursor, goals[g.cursor].Status.Next())
		}
	case "1", "2", "3":
		statuses := session.AllStatuses()
		session.SetGoalStatus(g.env.State, g.cursor, statuses[key[0]-'1'])
	}
}

func (g *GoalsScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch g.focus {
	case focusText:
		g.text, cmd = g.text.Update(msg)
		g.env.State.UpdateField(draftText, g.text.Value())
	case focusDeadline:
		g.deadline, cmd = g.deadline.Update(msg)
		g.env.State.UpdateField(draftDeadline, g.deadline.Value())
	}
	return cmd
}

// add reports a blank description before a bad deadline.
func (g *GoalsScreen) add() tea.Cmd {
	if err := session.CheckGoal(g.text.Value()); err != nil {
		return g.rejectText(err)
	}
	deadline, err := g.deadline.DateValue()
	if err != nil {
		g.warning = "Please enter the deadline as YYYY-MM-DD."
		g.deadline.Submit(false)
		return g.setFocus(focusDeadline)
	}
	if err := session.AddGoal(g.env.State, g.text.Value(), deadline); err != nil {
		return g.rejectText(err)
	}
	g.warning = ""
	g.text.Reset()
	g.env.State.UpdateField(draftText, "")
	g.cursor = len(g.env.State.Goals) - 1
	return g.setFocus(focusText)
}

func (g *GoalsScreen) rejectText(err error) tea.Cmd {
	g.warning = err.Error()
	g.text.Submit(false)
	g.env.Log().Info("validation failed", "screen", "goals", "error", err)
	return g.setFocus(focusText)
}

// cycleFocus moves focus, skipping the list while it is empty.
func (g *GoalsScreen) cycleFocus(delta int) tea.Cmd {
	next := g.focus
	for {
		next = (next + delta + focusCount) % focusCount
		if next != focusList || len(g.env.State.Goals) > 0 {
			return g.setFocus(next)
		}
	}
}

func (g *GoalsScreen) setFocus(target int) tea.Cmd {
	g.focus = target
	g.text.Blur()
	g.deadline.Blur()
	switch target {
	case focusText:
		return g.text.Focus()
	case focusDeadline:
		return g.deadline.Focus()
	}
	return nil
}

func (g *GoalsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	goals := g.env.State.Goals

	add := components.Button("Add Goal", g.focus == focusAdd)

	form := []string{g.text.View(), g.deadline.View(), add}
	if g.warning != "" {
		form = append(form, components.Warning(g.warning))
	}

	chart := components.ShareChart(insights.GoalStatusCounts(goals), cw-4)

	content := strings.Join([]string{
		components.Section("Add a learning goal", strings.Join(form, "\n\n"), cw),
		components.Section(fmt.Sprintf("Your goals (%d)", len(goals)), g.renderList(cw-4), cw),
		components.Section("Status", chart, cw),
	}, "\n")

	return components.Frame(lipgloss.NewStyle().Width(cw).Render(content), width, height)
}

func (g *GoalsScreen) renderList(width int) string {
	goals := g.env.State.Goals
	if len(goals) == 0 {
		return theme.Hint.Render("No goals yet. What do you want to learn next?")
	}

	start := 0
	if g.cursor >= visibleRows {
		start = g.cursor - visibleRows + 1
	}
	end := min(len(goals), start+visibleRows)

	today := g.env.Clock()
	var rows []string
	if start > 0 {
		rows = append(rows, theme.Hint.Render(fmt.Sprintf("▲ %d more", start)))
	}
	for i := start; i < end; i++ {
		goal := goals[i]
		status := statusStyle(goal.Status).Render(fmt.Sprintf("%-11s", goal.Status.DisplayName()))
		due := goal.Deadline.Format(time.DateOnly)
		dueStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if goal.Status != session.StatusCompleted && goal.Deadline.Before(startOfDay(today)) {
			dueStyle = lipgloss.NewStyle().Foreground(theme.Error)
		}

		prefix := "  "
		textStyle := theme.Body
		if g.focus == focusList && i == g.cursor {
			prefix = "▸ "
			textStyle = theme.Selected
		}
		text := lipgloss.NewStyle().MaxWidth(max(10, width-30)).Render(goal.Text)
		rows = append(rows, prefix+status+"  "+dueStyle.Render(due)+"  "+textStyle.Render(text))
	}
	if end < len(goals) {
		rows = append(rows, theme.Hint.Render(fmt.Sprintf("▼ %d more", len(goals)-end)))
	}
	return strings.Join(rows, "\n")
}

func statusStyle(s session.GoalStatus) lipgloss.Style {
	switch s {
	case session.StatusCompleted:
		return theme.Good
	case session.StatusOnHold:
		return theme.Warn
	default:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
