package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindset/internal/router"
	"github.com/abhisek/mindset/internal/screen"
	"github.com/abhisek/mindset/internal/screens/achievements"
	"github.com/abhisek/mindset/internal/screens/goals"
	"github.com/abhisek/mindset/internal/screens/journal"
	"github.com/abhisek/mindset/internal/screens/quiz"
	"github.com/abhisek/mindset/internal/screens/skills"
	"github.com/abhisek/mindset/internal/screens/welcome"
	"github.com/abhisek/mindset/internal/session"
	"github.com/abhisek/mindset/internal/ui/components"
	"github.com/abhisek/mindset/internal/ui/layout"
	"github.com/abhisek/mindset/internal/ui/theme"
)

// KeyPoints are the reasons to adopt a growth mindset shown on the home screen.
var KeyPoints = []struct{ Title, Text string }{
	{"Embrace Challenges", "Learn from every obstacle."},
	{"Learn from Mistakes", "Failures are stepping stones to success."},
	{"Persist Through Difficulties", "Consistency is key."},
	{"Celebrate Effort", "Focus on progress, not just results."},
	{"Stay Curious", "Keep exploring new possibilities."},
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// HomeScreen is the dashboard hub reached after onboarding.
type HomeScreen struct {
	env  *screen.Env
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen whose menu depends on the session variant.
func New(env *screen.Env) *HomeScreen {
	var items []components.MenuItem

	if env.Variant.HasTracker() {
		items = append(items,
			components.MenuItem{Label: "SKILLS", Action: func() tea.Cmd {
				return router.Open(skills.New(env))
			}},
			components.MenuItem{Label: "ACHIEVEMENTS", Action: func() tea.Cmd {
				return router.Open(achievements.New(env))
			}},
			components.MenuItem{Label: "LEARNING GOALS", Action: func() tea.Cmd {
				return router.Open(goals.New(env))
			}},
		)
	}

	quizLabel := strings.ToUpper(env.Variant.Quiz().Title)
	items = append(items,
		components.MenuItem{Label: quizLabel, Action: func() tea.Cmd {
			return router.Open(quiz.New(env))
		}},
		components.MenuItem{Label: "JOURNAL", Disabled: env.Journal == nil, Action: func() tea.Cmd {
			return router.Open(journal.New(env))
		}},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	return &HomeScreen{
		env:  env,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// KeyHints returns footer hints for the menu.
func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 36 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, h.renderGreeting(cw))
	if !compact {
		sections = append(sections, renderKeyPoints(cw))
	}
	if q := session.Value(h.env.State, welcome.QuoteKey, ""); q != "" && !compact {
		sections = append(sections, components.Card(theme.Quote.Render("“"+q+"”"), cw))
	}
	sections = append(sections, h.renderStats(cw))
	sections = append(sections, h.renderMenu(cw, compact))

	content := strings.Join(sections, "\n\n")
	return components.Frame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) renderGreeting(cw int) string {
	name := h.env.State.Profile.Name
	text := "Why Should You Adopt a Growth Mindset?"
	if name != "" {
		text = fmt.Sprintf("%s, why should you adopt a growth mindset?", name)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Title.Render(text))
}

func renderKeyPoints(cw int) string {
	check := theme.Good.Render("✓")
	lines := make([]string, len(KeyPoints))
	for i, p := range KeyPoints {
		lines[i] = fmt.Sprintf("%s %s %s", check, theme.Label.Render(p.Title+":"), theme.Body.Render(p.Text))
	}
	return components.Card(strings.Join(lines, "\n"), cw)
}

// renderStats renders a one-line summary of what the user entered so far.
func (h *HomeScreen) renderStats(cw int) string {
	s := h.env.State
	quiz := h.env.Variant.Quiz()
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	hl := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)

	answered := quiz.Score(s.Responses).Answered
	parts := []string{
		hl.Render(fmt.Sprintf("%d/%d", answered, len(quiz.Questions))) + dim.Render(" answered"),
	}
	if h.env.Variant.HasTracker() {
		parts = append([]string{
			hl.Render(fmt.Sprint(len(s.Skills))) + dim.Render(" skills"),
			hl.Render(fmt.Sprint(len(s.Achievements))) + dim.Render(" achievements"),
			hl.Render(fmt.Sprint(len(s.Goals))) + dim.Render(" goals"),
		}, parts...)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join(parts, "  ·  "))
}

// renderMenu renders each menu item as a fixed-width button, or as plain
// lines in compact mode where bordered buttons would overflow.
func (h *HomeScreen) renderMenu(cw int, compact bool) string {
	var rows []string
	for i, item := range h.menu.Items {
		selected := i == h.menu.Selected
		switch {
		case item.Disabled:
			rows = append(rows, lipgloss.NewStyle().Foreground(theme.TextDim).Render("   "+item.Label))
		case compact && selected:
			rows = append(rows, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Highlight).
				Bold(true).
				Render(" ▸ "+item.Label+" "))
		case compact:
			rows = append(rows, lipgloss.NewStyle().Foreground(theme.Text).Render("   "+item.Label))
		default:
			rows = append(rows, components.PanelButton(item.Label, selected, buttonWidth))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(rows, "\n"))
}
