package welcome

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindset/internal/router"
	"github.com/abhisek/mindset/internal/screen"
	"github.com/abhisek/mindset/internal/session"
	"github.com/abhisek/mindset/internal/ui/components"
	"github.com/abhisek/mindset/internal/ui/layout"
	"github.com/abhisek/mindset/internal/ui/theme"
)

// QuoteKey is the session value holding the quote revealed on this screen.
const QuoteKey = "welcome.quote"

// Focus targets, in tab order.
const (
	focusName = iota
	focusEducation
	focusPlans
	focusSubmit
	focusContinue
)

// quoteMsg fires once the greeting has been on screen for the quote delay.
type quoteMsg time.Time

// processedMsg fires when the artificial processing delay has elapsed.
type processedMsg time.Time

// WelcomeScreen collects the user's profile before the dashboard opens.
type WelcomeScreen struct {
	env         *screen.Env
	homeFactory func() screen.Screen

	name      components.TextInput
	education components.TextInput
	plans     components.TextArea
	spinner   spinner.Model

	focus        int
	warning      string
	quoteTimer   bool
	processing   bool
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(env *screen.Env, homeFactory func() screen.Screen) *WelcomeScreen {
	w := &WelcomeScreen{
		env:         env,
		homeFactory: homeFactory,
		name:        components.NewTextInput("What's your name?", "Your name", 60),
		education:   components.NewTextInput("What is your highest level of education?", "e.g. Bachelor's degree", 120),
		plans:       components.NewTextArea("What are your future goals and aspirations?", "Tell us where you want to grow", 50, 4),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
	w.name.SetValue(env.State.Profile.Name)
	w.education.SetValue(env.State.Profile.Education)
	w.plans.SetValue(env.State.Profile.FuturePlans)
	return w
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.setFocus(focusName)
}

// KeyHints returns footer hints for the current step.
func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.focus == focusContinue {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Open dashboard"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quoteMsg:
		w.revealQuote()
		return w, w.setFocus(focusEducation)

	case processedMsg:
		w.processing = false
		session.Proceed(w.env.State)
		return w, w.setFocus(focusContinue)

	case spinner.TickMsg:
		if !w.processing {
			return w, nil
		}
		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(msg)
		return w, cmd

	case tea.KeyPressMsg:
		if w.processing {
			return w, nil
		}
		return w.handleKey(msg)
	}

	return w, w.updateFocused(msg)
}

func (w *WelcomeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return w, w.cycleFocus(1)
	case "shift+tab":
		return w, w.cycleFocus(-1)
	case "enter":
		switch w.focus {
		case focusName:
			return w, w.submitName()
		case focusEducation:
			return w, w.setFocus(focusPlans)
		case focusSubmit:
			return w, w.submitDetails()
		case focusContinue:
			return w, w.transition()
		}
	case "space", " ":
		switch w.focus {
		case focusSubmit:
			return w, w.submitDetails()
		case focusContinue:
			return w, w.transition()
		}
	}
	return w, w.updateFocused(msg)
}

func (w *WelcomeScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch w.focus {
	case focusName:
		w.name, cmd = w.name.Update(msg)
	case focusEducation:
		w.education, cmd = w.education.Update(msg)
	case focusPlans:
		w.plans, cmd = w.plans.Update(msg)
	}
	return cmd
}

func (w *WelcomeScreen) submitName() tea.Cmd {
	if err := session.SubmitName(w.env.State, w.name.Value()); err != nil {
		w.warning = err.Error()
		w.name.Submit(false)
		w.env.Log().Info("validation failed", "screen", "welcome", "error", err)
		return nil
	}
	w.warning = ""
	w.name.Submit(true)

	if w.env.State.Flags().ShowQuote {
		return w.setFocus(focusEducation)
	}
	if w.quoteTimer {
		return nil
	}
	w.quoteTimer = true
	return tea.Tick(w.env.QuoteDelay, func(t time.Time) tea.Msg {
		return quoteMsg(t)
	})
}

func (w *WelcomeScreen) revealQuote() {
	session.RevealQuote(w.env.State)
	if w.env.Quotes != nil {
		session.Value(w.env.State, QuoteKey, w.env.Quotes.Pick())
	}
}

func (w *WelcomeScreen) submitDetails() tea.Cmd {
	if err := session.SubmitDetails(w.env.State, w.education.Value(), w.plans.Value()); err != nil {
		w.warning = err.Error()
		w.env.Log().Info("validation failed", "screen", "welcome", "error", err)
		return nil
	}
	w.warning = ""
	w.processing = true
	w.blurAll()
	return tea.Batch(
		w.spinner.Tick,
		tea.Tick(w.env.ProcessingDelay, func(t time.Time) tea.Msg {
			return processedMsg(t)
		}),
	)
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return router.Swap(w.homeFactory())
}

// available lists the focus targets reachable in the current step.
func (w *WelcomeScreen) available() []int {
	flags := w.env.State.Flags()
	switch {
	case flags.Proceed:
		return []int{focusContinue}
	case flags.ShowQuote:
		return []int{focusName, focusEducation, focusPlans, focusSubmit}
	default:
		return []int{focusName}
	}
}

func (w *WelcomeScreen) cycleFocus(delta int) tea.Cmd {
	targets := w.available()
	idx := 0
	for i, t := range targets {
		if t == w.focus {
			idx = i
		}
	}
	idx = (idx + delta + len(targets)) % len(targets)
	return w.setFocus(targets[idx])
}

func (w *WelcomeScreen) blurAll() {
	w.name.Blur()
	w.education.Blur()
	w.plans.Blur()
}

func (w *WelcomeScreen) setFocus(target int) tea.Cmd {
	w.blurAll()
	w.focus = target
	switch target {
	case focusName:
		return w.name.Focus()
	case focusEducation:
		return w.education.Focus()
	case focusPlans:
		return w.plans.Focus()
	}
	return nil
}

func (w *WelcomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	state := w.env.State
	flags := state.Flags()

	var sections []string
	sections = append(sections, RenderBanner(cw))
	sections = append(sections, theme.Subtitle.Render("Growth Mindset Challenge"))

	sections = append(sections, w.name.View())

	if state.Profile.Name != "" {
		sections = append(sections, theme.Body.Render(
			fmt.Sprintf("Welcome, %s! Let's explore your Growth Mindset together!", state.Profile.Name)))
	}

	if flags.ShowQuote {
		if q := session.Value(state, QuoteKey, ""); q != "" {
			sections = append(sections, components.Card(theme.Quote.Render("“"+q+"”"), cw))
		}
		sections = append(sections, w.education.View(), w.plans.View())

		if !flags.Proceed {
			sections = append(sections, components.Button("Submit", w.focus == focusSubmit))
		}
	}

	if w.processing {
		sections = append(sections, w.spinner.View()+" "+theme.Hint.Render("Processing your information..."))
	}

	if flags.Proceed {
		sections = append(sections,
			theme.Good.Render("✓ Your education level: "+state.Profile.Education),
			theme.Good.Render("✓ Your future plans: "+state.Profile.FuturePlans))

		sections = append(sections, components.Button("Open my dashboard", w.focus == focusContinue))
	}

	if w.warning != "" {
		sections = append(sections, components.Warning(w.warning))
	}

	content := lipgloss.NewStyle().Width(cw).Render(strings.Join(sections, "\n\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
