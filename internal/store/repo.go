package store

import (
	"context"
	"time"
)

const (
	tableJournal     = "journal_events"
	tableLLMRequests = "llm_request_events"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	Desc   bool      // newest first
}

// JournalEntry is one thing the user did during a session.
type JournalEntry struct {
	Sequence  int64
	Timestamp time.Time
	SessionID string
	Kind      string
	Detail    string
}

// JournalRepo provides append and query access to the session journal.
type JournalRepo interface {
	// AppendJournal records an entry. Sequence is assigned by the store and
	// a zero Timestamp is replaced with the current time.
	AppendJournal(ctx context.Context, entry JournalEntry) error

	// QueryJournal returns the entries of one session, oldest first unless
	// opts.Desc is set.
	QueryJournal(ctx context.Context, sessionID string, opts QueryOpts) ([]JournalEntry, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request with its place in the global order.
type LLMRequestEvent struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recorded LLM calls, oldest first unless opts.Desc is set.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)
}
