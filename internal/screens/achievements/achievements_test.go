package achievements

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindset/internal/mindset"
	"github.com/abhisek/mindset/internal/screen"
	"github.com/abhisek/mindset/internal/screen/screentest"
)

func newScreen(t *testing.T) (*AchievementsScreen, *screen.Env) {
	t.Helper()
	env := screentest.NewEnv(mindset.VariantTracker)
	a := New(env)
	a.Init()
	return a, env
}

func clearDate(a *AchievementsScreen) {
	a.setFocus(focusDate)
	for range 10 {
		a.Update(screentest.Key(tea.KeyBackspace))
	}
}

func TestDateDefaultsToToday(t *testing.T) {
	a, _ := newScreen(t)
	assert.Equal(t, screentest.Today.Format(time.DateOnly), a.date.Value())
}

func TestAddAchievementOnToday(t *testing.T) {
	a, env := newScreen(t)

	screentest.Type(a, "Gave my first talk")
	a.Update(screentest.Key(tea.KeyEnter)) // to date
	a.Update(screentest.Key(tea.KeyEnter)) // add

	require.Len(t, env.State.Achievements, 1)
	got := env.State.Achievements[0]
	assert.Equal(t, "Gave my first talk", got.Text)
	assert.Equal(t, 2025, got.Date.Year())
	assert.Equal(t, time.March, got.Date.Month())
	assert.Equal(t, 14, got.Date.Day())
	assert.Equal(t, "", a.text.Value())

	view := screentest.View(a, 100, 50)
	assert.Contains(t, view, "2025-03-14")
	assert.Contains(t, view, "Mar 2025")
	assert.Contains(t, view, "Your achievements (1)")
}

func TestCustomDate(t *testing.T) {
	a, env := newScreen(t)
	screentest.Type(a, "Passed exam")
	clearDate(a)
	screentest.Type(a, "2024-11-02")
	a.Update(screentest.Key(tea.KeyEnter))

	require.Len(t, env.State.Achievements, 1)
	assert.Equal(t, time.November, env.State.Achievements[0].Date.Month())
}

func TestEmptyTextLeavesListUnchanged(t *testing.T) {
	a, env := newScreen(t)
	a.setFocus(focusAdd)
	a.Update(screentest.Key(tea.KeyEnter))

	assert.Empty(t, env.State.Achievements)
	assert.Contains(t, screentest.View(a, 100, 50), "describe your achievement")
}

func TestBlankTextWarnsBeforeBadDate(t *testing.T) {
	a, env := newScreen(t)
	clearDate(a)
	screentest.Type(a, "2024-99-99")
	a.setFocus(focusAdd)
	a.Update(screentest.Key(tea.KeyEnter))

	assert.Empty(t, env.State.Achievements)
	assert.Contains(t, a.warning, "describe your achievement")
	assert.NotContains(t, a.warning, "YYYY-MM-DD")
	assert.Equal(t, focusText, a.focus)
}

func TestBadDateWarns(t *testing.T) {
	a, env := newScreen(t)
	screentest.Type(a, "Something")
	clearDate(a)
	screentest.Type(a, "2024-1")
	a.Update(screentest.Key(tea.KeyEnter))

	assert.Empty(t, env.State.Achievements)
	assert.Equal(t, "Please enter the date as YYYY-MM-DD.", a.warning)
	assert.Equal(t, focusDate, a.focus)
}

func TestDateInputRejectsLetters(t *testing.T) {
	a, _ := newScreen(t)
	clearDate(a)
	screentest.Type(a, "abc2024")
	assert.Equal(t, "2024", a.date.Value())
}
