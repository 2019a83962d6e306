// Package screentest provides helpers for driving screens in tests.
package screentest

import (
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/mindset/internal/mindset"
	"github.com/abhisek/mindset/internal/quotes"
	"github.com/abhisek/mindset/internal/screen"
	"github.com/abhisek/mindset/internal/session"
)

// Today is the fixed clock used by NewEnv.
var Today = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.Local)

// NewEnv returns an Env with a fresh state, a seeded quote selector, zero
// delays and a fixed clock. No store or coach is attached.
func NewEnv(variant mindset.Variant) *screen.Env {
	return &screen.Env{
		State:   session.New("test"),
		Variant: variant,
		Quotes:  quotes.New(variant.Quotes(), rand.NewPCG(1, 2)),
		Now:     func() time.Time { return Today },
	}
}

// Key builds a key press for a special key such as tea.KeyEnter.
func Key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// ShiftTab builds a shift+tab key press.
func ShiftTab() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
}

// Type feeds each rune of text to s as a printable key press and returns the
// resulting screen.
func Type(s screen.Screen, text string) screen.Screen {
	for _, r := range text {
		s, _ = s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return s
}

// View renders s at the given size with styling removed, so assertions
// can match text that spans several styled runs.
func View(s screen.Screen, width, height int) string {
	return ansi.Strip(s.View(width, height))
}

// Press sends a key press to s.
func Press(s screen.Screen, code rune) (screen.Screen, tea.Cmd) {
	return s.Update(Key(code))
}

// Drain runs cmd and every command it batches, returning the produced
// messages. Tick commands block for their duration, so tests use zero delays.
func Drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, Drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}
