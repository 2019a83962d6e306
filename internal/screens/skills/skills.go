// Package skills lets the user rate their skills and shows them as bars.
package skills

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

// Draft keys in the session store.
const (
	draftName  = "skills.name"
	draftLevel = "skills.level"
)

const defaultLevel = 50

const (
	focusName = iota
	focusLevel
	focusAdd
	focusCount
)

// SkillsScreen adds skills with a self-rated level.
type SkillsScreen struct {
	env     *screen.Env
	name    components.TextInput
	level   components.Slider
	focus   int
	warning string
	added   string
}

var _ screen.Screen = (*SkillsScreen)(nil)

// New creates the skills screen, restoring any unsaved draft.
func New(env *screen.Env) *SkillsScreen {
	s := &SkillsScreen{
		env:   env,
		name:  components.NewTextInput("Skill", "e.g. Public speaking", 60),
		level: components.NewSlider("Level (1-100)", session.MinLevel, session.MaxLevel, defaultLevel),
	}
	s.name.SetValue(session.Value(env.State, draftName, ""))
	s.level.Set(session.Value(env.State, draftLevel, defaultLevel))
	return s
}

func (s *SkillsScreen) Init() tea.Cmd {
	return s.setFocus(focusName)
}

func (s *SkillsScreen) Title() string {
	return "Skills"
}

// KeyHints returns footer hints for the form.
func (s *SkillsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "Next"}}
	if s.focus == focusLevel {
		hints = append(hints,
			layout.KeyHint{Key: "←→", Description: "±1"},
			layout.KeyHint{Key: "PgUp/PgDn", Description: "±10"},
		)
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Add"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (s *SkillsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, s.updateFocused(msg)
	}

	switch kmsg.String() {
	case "tab":
		return s, s.setFocus((s.focus + 1) % focusCount)
	case "shift+tab":
		return s, s.setFocus((s.focus + focusCount - 1) % focusCount)
	case "enter":
		if s.focus == focusName {
			return s, s.setFocus(focusLevel)
		}
		return s, s.add()
	case "space", " ":
		if s.focus == focusAdd {
			return s, s.add()
		}
	}
	return s, s.updateFocused(msg)
}

func (s *SkillsScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case focusName:
		s.name, cmd = s.name.Update(msg)
		s.env.State.UpdateField(draftName, s.name.Value())
	case focusLevel:
		s.level, cmd = s.level.Update(msg)
		s.env.State.UpdateField(draftLevel, s.level.Value)
	}
	return cmd
}

func (s *SkillsScreen) add() tea.Cmd {
	if err := session.AddSkill(s.env.State, s.name.Value(), s.level.Value); err != nil {
		s.warning = err.Error()
		s.name.Submit(false)
		s.env.Log().Info("validation failed", "screen", "skills", "error", err)
		return s.setFocus(focusName)
	}
	added := s.env.State.Skills[len(s.env.State.Skills)-1]
	s.added = fmt.Sprintf("Added %s (%d)", added.Name, added.Level)
	s.warning = ""
	s.name.Reset()
	s.env.State.UpdateField(draftName, "")
	return s.setFocus(focusName)
}

func (s *SkillsScreen) setFocus(target int) tea.Cmd {
	s.focus = target
	s.name.Blur()
	s.level.Focused = target == focusLevel
	if target == focusName {
		return s.name.Focus()
	}
	return nil
}

func (s *SkillsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	add := components.Button("Add Skill", s.focus == focusAdd)

	level := s.level
	level.Width = cw - 12
	form := []string{s.name.View(), level.View(), add}
	if s.warning != "" {
		form = append(form, components.Warning(s.warning))
	} else if s.added != "" {
		form = append(form, theme.Good.Render("✓ "+s.added))
	}

	formCard := components.Section("Add a skill", strings.Join(form, "\n\n"), cw)

	series := insights.SkillLevels(s.env.State.Skills)
	rows := max(3, height-lipgloss.Height(formCard)-6)
	chart := components.BarChartScaled(series.Tail(rows), cw-4, session.MaxLevel)
	if hidden := series.Len() - rows; hidden > 0 {
		chart = theme.Hint.Render(fmt.Sprintf("+%d earlier", hidden)) + "\n" + chart
	}

	content := strings.Join([]string{
		formCard,
		components.Section(fmt.Sprintf("Your skills (%d)", series.Len()), chart, cw),
	}, "\n")

	return components.Frame(lipgloss.NewStyle().Width(cw).Render(content), width, height)
}
