package session

import (
	"context"
	"log/slog"
	"time"
)

// GoalStatus is the progress state of a learning goal.
type GoalStatus string

const (
	StatusInProgress GoalStatus = "in_progress"
	StatusCompleted  GoalStatus = "completed"
	StatusOnHold     GoalStatus = "on_hold"
)

// AllStatuses returns all goal statuses in display order.
func AllStatuses() []GoalStatus {
	return []GoalStatus{StatusInProgress, StatusCompleted, StatusOnHold}
}

// DisplayName returns a human-readable label for the status.
func (s GoalStatus) DisplayName() string {
	switch s {
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusOnHold:
		return "On Hold"
	default:
		return string(s)
	}
}

// Valid reports whether s is one of the known statuses.
func (s GoalStatus) Valid() bool {
	switch s {
	case StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

// Next returns the status that follows s in display order, wrapping around.
func (s GoalStatus) Next() GoalStatus {
	all := AllStatuses()
	for i, st := range all {
		if st == s {
			return all[(i+1)%len(all)]
		}
	}
	return StatusInProgress
}

// Profile holds the free-text answers about the user.
type Profile struct {
	Name        string
	Education   string
	FuturePlans string
}

// Skill is a self-reported skill with a level in [MinLevel, MaxLevel].
type Skill struct {
	Name  string
	Level int
}

const (
	MinLevel = 1
	MaxLevel = 100
)

// Achievement is an accomplishment with the date it happened. Immutable once added.
type Achievement struct {
	Text string
	Date time.Time
}

// LearningGoal is a goal with a deadline. Status is the only mutable field.
type LearningGoal struct {
	Text     string
	Deadline time.Time
	Status   GoalStatus
}

// Flags are one-way UI gates. They only ever go from false to true.
type Flags struct {
	ShowQuote bool
	Proceed   bool
}

// State is the per-session container for everything the user entered.
// It is owned by a single Bubble Tea program, so it carries no locks.
type State struct {
	// ID identifies the session in the journal.
	ID string

	// StartedAt is when the session was created.
	StartedAt time.Time

	Profile      Profile
	Skills       []Skill
	Achievements []Achievement
	Goals        []LearningGoal

	// Responses maps question ID to the selected option.
	// Missing or empty means unanswered.
	Responses map[string]string

	flags  Flags
	values map[string]any

	recorder Recorder
	logger   *slog.Logger
}

// Option configures a State.
type Option func(*State)

// WithRecorder attaches a journal recorder to the state.
func WithRecorder(r Recorder) Option {
	return func(s *State) { s.recorder = r }
}

// WithLogger sets the logger used for swallowed recorder failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *State) { s.logger = l }
}

// New creates a State with every field initialized to its default.
func New(id string, opts ...Option) *State {
	s := &State{
		ID:        id,
		StartedAt: time.Now(),
		Responses: make(map[string]string),
		values:    make(map[string]any),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Flags returns a copy of the UI flow flags.
func (s *State) Flags() Flags {
	return s.flags
}

// GetOrInit returns the value stored under key. If nothing is stored yet,
// def is stored and returned. Repeated calls return the first stored value.
func (s *State) GetOrInit(key string, def any) any {
	if v, ok := s.values[key]; ok {
		return v
	}
	s.values[key] = def
	return def
}

// UpdateField overwrites the value stored under key.
func (s *State) UpdateField(key string, value any) {
	s.values[key] = value
}

// Value is a typed GetOrInit. If the stored value has a different type it is
// replaced by def.
func Value[T any](s *State, key string, def T) T {
	if v, ok := s.GetOrInit(key, def).(T); ok {
		return v
	}
	s.UpdateField(key, def)
	return def
}

// Response returns the answer recorded for questionID, or "" if unanswered.
func (s *State) Response(questionID string) string {
	return s.Responses[questionID]
}

func (s *State) appendSkill(sk Skill) {
	s.Skills = append(s.Skills, sk)
}

func (s *State) appendAchievement(a Achievement) {
	s.Achievements = append(s.Achievements, a)
}

func (s *State) appendGoal(g LearningGoal) {
	s.Goals = append(s.Goals, g)
}

// record forwards an event to the recorder. Failures are logged, never returned.
func (s *State) record(kind EventKind, detail string) {
	if s.recorder == nil {
		return
	}
	ev := Event{SessionID: s.ID, Kind: kind, Detail: detail, At: time.Now()}
	if err := s.recorder.Record(context.Background(), ev); err != nil {
		s.logger.Warn("journal write failed", "kind", string(kind), "error", err)
	}
}
