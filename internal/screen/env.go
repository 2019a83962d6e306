package screen

import (
	"log/slog"
	"time"

	"github.com/abhisek/mindset/internal/coach"
	"github.com/abhisek/mindset/internal/mindset"
	"github.com/abhisek/mindset/internal/quotes"
	"github.com/abhisek/mindset/internal/session"
	"github.com/abhisek/mindset/internal/store"
)

// Env carries the per-session dependencies shared by every screen.
type Env struct {
	State   *session.State
	Variant mindset.Variant
	Quotes  *quotes.Selector

	QuoteDelay      time.Duration
	ProcessingDelay time.Duration

	// Journal and Events may be nil when the session runs without a store.
	Journal store.JournalRepo
	Events  store.EventRepo

	// Coach is nil when no LLM provider is configured.
	Coach *coach.Service

	Logger *slog.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// Clock returns the current time.
func (e *Env) Clock() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// Log returns the session logger, or a discarding one.
func (e *Env) Log() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}
