package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestRender_Frame(t *testing.T) {
	c := Chrome{
		Title:   "Skills",
		User:    "Ada",
		Variant: "tracker",
		Hints:   []KeyHint{{Key: "Esc", Description: "Back"}},
	}

	var gotW, gotH int
	out := Render(c, 100, 30, func(w, h int) string {
		gotW, gotH = w, h
		return "body"
	})

	assert.Equal(t, 100, gotW)
	assert.Equal(t, 24, gotH, "two bordered bars of three lines each")
	assert.Equal(t, 30, lipgloss.Height(out))
	plain := ansi.Strip(out)
	for _, want := range []string{"Growth Mindset", "Skills", "● Ada", "tracker", "Esc Back", "body"} {
		assert.Contains(t, plain, want)
	}
}

func TestRender_TooSmall(t *testing.T) {
	called := false
	out := Render(Chrome{}, 60, 20, func(int, int) string {
		called = true
		return ""
	})

	assert.False(t, called)
	plain := ansi.Strip(out)
	assert.Contains(t, plain, "Terminal too small!")
	assert.Contains(t, plain, "Current: 60 x 20")
}

func TestHeaderLine_KeepsGaps(t *testing.T) {
	line := ansi.Strip(headerLine(Chrome{Title: "Goals", User: "Someone", Variant: "challenge"}, 60))
	assert.Equal(t, 60, ansi.StringWidth(line))
	assert.True(t, strings.HasPrefix(line, "  Growth Mindset "))
	assert.Contains(t, line, " Goals ")
	assert.True(t, strings.HasSuffix(line, "● Someone   challenge"))
}

func TestHeaderLine_TruncatesLongTitle(t *testing.T) {
	line := headerLine(Chrome{Title: strings.Repeat("x", 50), User: "Someone"}, 40)
	plain := ansi.Strip(line)

	assert.LessOrEqual(t, lipgloss.Width(line), 40)
	assert.Contains(t, plain, "Growth Mindset x")
	assert.Contains(t, plain, "x… ● Someone")
	assert.NotContains(t, plain, strings.Repeat("x", 50))
}

func TestHeaderLine_NoRoomForTitle(t *testing.T) {
	line := ansi.Strip(headerLine(Chrome{Title: "Skills", User: "Someone"}, 10))
	assert.NotContains(t, line, "Skills")
	assert.Contains(t, line, "Growth Mindset")
	assert.Contains(t, line, "● Someone")
}
