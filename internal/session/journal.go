package session

import (
	"context"
	"time"
)

// EventKind names a handler action recorded in the session journal.
type EventKind string

const (
	EventStarted          EventKind = "session_started"
	EventNameSubmitted    EventKind = "name_submitted"
	EventQuoteRevealed    EventKind = "quote_revealed"
	EventDetailsSubmitted EventKind = "details_submitted"
	EventProceeded        EventKind = "proceeded"
	EventSkillAdded       EventKind = "skill_added"
	EventAchievementAdded EventKind = "achievement_added"
	EventGoalAdded        EventKind = "goal_added"
	EventGoalStatus       EventKind = "goal_status_changed"
	EventResponse         EventKind = "response_recorded"
	EventScored           EventKind = "quiz_scored"
)

// Event is a single journal entry produced by a handler.
type Event struct {
	SessionID string
	Kind      EventKind
	Detail    string
	At        time.Time
}

// Recorder receives journal events. Implementations must not block for long;
// they are called synchronously from handlers.
type Recorder interface {
	Record(ctx context.Context, ev Event) error
}

// RecorderFunc adapts a function to the Recorder interface.
type RecorderFunc func(ctx context.Context, ev Event) error

func (f RecorderFunc) Record(ctx context.Context, ev Event) error { return f(ctx, ev) }
