// Package achievements records dated accomplishments.
package achievements

import (
	"fmt"
	"strings"

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
	draftText = "achievements.text"
	draftDate = "achievements.date"
)

const (
	focusText = iota
	focusDate
	focusAdd
	focusCount
)

// listRows is how many recent achievements are listed.
const listRows = 5

// AchievementsScreen adds achievements and charts them by month.
type AchievementsScreen struct {
	env     *screen.Env
	text    components.TextInput
	date    components.TextInput
	focus   int
	warning string
}

var _ screen.Screen = (*AchievementsScreen)(nil)

// New creates the achievements screen. The date defaults to today.
func New(env *screen.Env) *AchievementsScreen {
	a := &AchievementsScreen{
		env:  env,
		text: components.NewTextInput("Achievement", "e.g. Finished my first marathon", 120),
		date: components.NewDateInput("Date (YYYY-MM-DD)", env.Clock()),
	}
	a.text.SetValue(session.Value(env.State, draftText, ""))
	a.date.SetValue(session.Value(env.State, draftDate, a.date.Value()))
	return a
}

func (a *AchievementsScreen) Init() tea.Cmd {
	return a.setFocus(focusText)
}

func (a *AchievementsScreen) Title() string {
	return "Achievements"
}

// KeyHints returns footer hints for the form.
func (a *AchievementsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next"},
		{Key: "Enter", Description: "Add"},
		{Key: "Esc", Description: "Back"},
	}
}

func (a *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return a, a.updateFocused(msg)
	}

	switch kmsg.String() {
	case "tab":
		return a, a.setFocus((a.focus + 1) % focusCount)
	case "shift+tab":
		return a, a.setFocus((a.focus + focusCount - 1) % focusCount)
	case "enter":
		if a.focus == focusText {
			return a, a.setFocus(focusDate)
		}
		return a, a.add()
	case "space", " ":
		if a.focus == focusAdd {
			return a, a.add()
		}
	}
	return a, a.updateFocused(msg)
}

func (a *AchievementsScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.focus {
	case focusText:
		a.text, cmd = a.text.Update(msg)
		a.env.State.UpdateField(draftText, a.text.Value())
	case focusDate:
		a.date, cmd = a.date.Update(msg)
		a.env.State.UpdateField(draftDate, a.date.Value())
	}
	return cmd
}

func (a *AchievementsScreen) add() tea.Cmd {
	if err := session.CheckAchievement(a.text.Value()); err != nil {
		return a.rejectText(err)
	}
	date, err := a.date.DateValue()
	if err != nil {
		a.warning = "Please enter the date as YYYY-MM-DD."
		a.date.Submit(false)
		return a.setFocus(focusDate)
	}
	if err := session.AddAchievement(a.env.State, a.text.Value(), date); err != nil {
		return a.rejectText(err)
	}
	a.warning = ""
	a.text.Reset()
	a.env.State.UpdateField(draftText, "")
	return a.setFocus(focusText)
}

func (a *AchievementsScreen) rejectText(err error) tea.Cmd {
	a.warning = err.Error()
	a.text.Submit(false)
	a.env.Log().Info("validation failed", "screen", "achievements", "error", err)
	return a.setFocus(focusText)
}

func (a *AchievementsScreen) setFocus(target int) tea.Cmd {
	a.focus = target
	a.text.Blur()
	a.date.Blur()
	switch target {
	case focusText:
		return a.text.Focus()
	case focusDate:
		return a.date.Focus()
	}
	return nil
}

func (a *AchievementsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	all := a.env.State.Achievements

	add := components.Button("Add Achievement", a.focus == focusAdd)

	form := []string{a.text.View(), a.date.View(), add}
	if a.warning != "" {
		form = append(form, components.Warning(a.warning))
	}

	var list string
	if len(all) == 0 {
		list = theme.Hint.Render("Nothing yet. Every step counts!")
	} else {
		start := max(0, len(all)-listRows)
		rows := make([]string, 0, listRows+1)
		if start > 0 {
			rows = append(rows, theme.Hint.Render(fmt.Sprintf("+%d earlier", start)))
		}
		for _, ach := range all[start:] {
			rows = append(rows, fmt.Sprintf("%s  %s",
				lipgloss.NewStyle().Foreground(theme.Accent).Render(ach.Date.Format("2006-01-02")),
				theme.Body.Render(ach.Text)))
		}
		list = strings.Join(rows, "\n")
	}

	months := insights.AchievementsByMonth(all)
	chart := components.BarChart(months.Tail(6), cw-4)

	content := strings.Join([]string{
		components.Section("Add an achievement", strings.Join(form, "\n\n"), cw),
		components.Section(fmt.Sprintf("Your achievements (%d)", len(all)), list, cw),
		components.Section("By month", chart, cw),
	}, "\n")

	return components.Frame(lipgloss.NewStyle().Width(cw).Render(content), width, height)
}
