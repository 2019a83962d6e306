// Package journal shows the session event log read back from the store.
package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindset/internal/coach"
	"github.com/abhisek/mindset/internal/llm"
	"github.com/abhisek/mindset/internal/screen"
	"github.com/abhisek/mindset/internal/store"
	"github.com/abhisek/mindset/internal/ui/components"
	"github.com/abhisek/mindset/internal/ui/layout"
	"github.com/abhisek/mindset/internal/ui/theme"
)

type loadedMsg struct {
	entries []store.JournalEntry
	calls   []store.LLMRequestEvent
	err     error
}

type recapMsg struct {
	summary string
	err     error
}

// Usage totals the coach calls made in this session.
type Usage struct {
	Calls        int
	Failed       int
	InputTokens  int
	OutputTokens int
	// CostUSD covers only models with known pricing.
	CostUSD float64
}

// Summarize totals LLM request events.
func Summarize(calls []store.LLMRequestEvent) Usage {
	var u Usage
	for _, c := range calls {
		u.Calls++
		if !c.Success {
			u.Failed++
		}
		u.InputTokens += c.InputTokens
		u.OutputTokens += c.OutputTokens
		if mc := llm.LookupCost(c.Model); mc != nil {
			u.CostUSD += mc.Cost(c.InputTokens, c.OutputTokens)
		}
	}
	return u
}

// JournalScreen lists everything recorded in this session.
type JournalScreen struct {
	env     *screen.Env
	spinner spinner.Model

	entries []store.JournalEntry
	calls   []store.LLMRequestEvent
	loadErr error
	loaded  bool

	offset int

	recapping bool
	recap     string
	recapErr  error
}

var _ screen.Screen = (*JournalScreen)(nil)

// New creates a journal screen for the current session.
func New(env *screen.Env) *JournalScreen {
	return &JournalScreen{
		env: env,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
}

func (j *JournalScreen) Init() tea.Cmd {
	return j.load()
}

func (j *JournalScreen) Title() string {
	return "Journal"
}

// KeyHints returns footer hints.
func (j *JournalScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Scroll"}}
	if j.env.Coach != nil {
		hints = append(hints, layout.KeyHint{Key: "r", Description: "Recap"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (j *JournalScreen) load() tea.Cmd {
	journal, events, id := j.env.Journal, j.env.Events, j.env.State.ID
	return func() tea.Msg {
		if journal == nil {
			return loadedMsg{}
		}
		ctx := context.Background()
		entries, err := journal.QueryJournal(ctx, id, store.QueryOpts{})
		if err != nil {
			return loadedMsg{err: err}
		}
		var calls []store.LLMRequestEvent
		if events != nil {
			calls, err = events.QueryLLMEvents(ctx, store.QueryOpts{})
		}
		return loadedMsg{entries: entries, calls: calls, err: err}
	}
}

func (j *JournalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		j.loaded = true
		j.loadErr = msg.err
		if msg.err != nil {
			j.env.Log().Warn("journal query failed", "error", msg.err)
			return j, nil
		}
		j.entries = msg.entries
		j.calls = msg.calls
		return j, nil

	case recapMsg:
		j.recapping = false
		j.recap = msg.summary
		j.recapErr = msg.err
		// The recap itself is an LLM call; refresh usage.
		return j, j.load()

	case spinner.TickMsg:
		if !j.recapping {
			return j, nil
		}
		var cmd tea.Cmd
		j.spinner, cmd = j.spinner.Update(msg)
		return j, cmd

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if j.offset > 0 {
				j.offset--
			}
		case "down", "j":
			if j.offset < len(j.entries)-1 {
				j.offset++
			}
		case "r":
			return j, j.requestRecap()
		}
	}
	return j, nil
}

func (j *JournalScreen) requestRecap() tea.Cmd {
	if j.env.Coach == nil || j.recapping || !j.loaded {
		return nil
	}
	j.recapping = true
	j.recapErr = nil

	lines := make([]string, len(j.entries))
	for i, e := range j.entries {
		lines[i] = formatEntry(e)
	}
	svc := j.env.Coach
	logger := j.env.Log()
	return tea.Batch(j.spinner.Tick, func() tea.Msg {
		summary, err := svc.Recap(context.Background(), lines)
		if err != nil && !errors.Is(err, coach.ErrNoEvents) {
			logger.Warn("coach recap failed", "error", err)
		}
		return recapMsg{summary: summary, err: err}
	})
}

func formatEntry(e store.JournalEntry) string {
	line := e.Timestamp.Format("15:04:05") + " " + e.Kind
	if e.Detail != "" {
		line += " " + e.Detail
	}
	return line
}

func (j *JournalScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, components.Section(
		fmt.Sprintf("Session events (%d)", len(j.entries)),
		j.renderEntries(cw-4, max(3, height-18)),
		cw,
	))

	if len(j.calls) > 0 {
		u := Summarize(j.calls)
		usage := fmt.Sprintf("%d calls · %d failed · %d in / %d out tokens · $%.4f",
			u.Calls, u.Failed, u.InputTokens, u.OutputTokens, u.CostUSD)
		sections = append(sections, components.Section("Coach usage", theme.Body.Render(usage), cw))
	}

	if j.env.Coach != nil {
		sections = append(sections, components.Section("Recap", j.renderRecap(), cw))
	}

	content := lipgloss.NewStyle().Width(cw).Render(strings.Join(sections, "\n"))
	return components.Frame(content, width, height)
}

func (j *JournalScreen) renderEntries(width, rows int) string {
	switch {
	case j.env.Journal == nil:
		return theme.Hint.Render("The journal is not available in this session.")
	case !j.loaded:
		return theme.Hint.Render("Loading...")
	case j.loadErr != nil:
		return theme.Bad.Render("Could not read the journal: " + j.loadErr.Error())
	case len(j.entries) == 0:
		return theme.Hint.Render("Nothing recorded yet.")
	}

	end := min(len(j.entries), j.offset+rows)
	timeStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	kindStyle := lipgloss.NewStyle().Foreground(theme.Secondary)

	var lines []string
	if j.offset > 0 {
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("▲ %d earlier", j.offset)))
	}
	for _, e := range j.entries[j.offset:end] {
		line := timeStyle.Render(e.Timestamp.Format("15:04:05")) + "  " +
			kindStyle.Render(fmt.Sprintf("%-19s", e.Kind)) + " " +
			theme.Body.Render(e.Detail)
		lines = append(lines, lipgloss.NewStyle().MaxWidth(width).Render(line))
	}
	if end < len(j.entries) {
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("▼ %d more", len(j.entries)-end)))
	}
	return strings.Join(lines, "\n")
}

func (j *JournalScreen) renderRecap() string {
	switch {
	case j.recapping:
		return j.spinner.View() + " " + theme.Hint.Render("Summarizing your session...")
	case errors.Is(j.recapErr, coach.ErrNoEvents):
		return theme.Hint.Render("Nothing to recap yet.")
	case j.recapErr != nil:
		return theme.Hint.Render("The coach is unavailable right now.")
	case j.recap != "":
		return theme.Body.Render(j.recap)
	}
	return theme.Hint.Render("Press r for a short recap of this session.")
}
