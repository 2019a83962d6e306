package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/mindset/internal/session"
)

// journalRepo implements JournalRepo with ent SQL builders and the global
// sequence counter.
type journalRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *journalRepo) AppendJournal(ctx context.Context, entry JournalEntry) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableJournal).
		Columns("sequence", "timestamp", "session_id", "kind", "detail").
		Values(seqNum, entry.Timestamp.UnixNano(), entry.SessionID, entry.Kind, entry.Detail).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save journal entry: %w", err)
	}
	return nil
}

func (r *journalRepo) QueryJournal(ctx context.Context, sessionID string, opts QueryOpts) ([]JournalEntry, error) {
	b := entsql.Dialect(dialect.SQLite)
	t := b.Table(tableJournal)
	sel := b.Select(t.C("sequence"), t.C("timestamp"), t.C("session_id"), t.C("kind"), t.C("detail")).
		From(t).
		Where(entsql.EQ(t.C("session_id"), sessionID))
	query, args := applyQueryOpts(sel, t, opts).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var (
			e  JournalEntry
			ts int64
		)
		if err := rows.Scan(&e.Sequence, &ts, &e.SessionID, &e.Kind, &e.Detail); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		e.Timestamp = time.Unix(0, ts)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal: %w", err)
	}
	return entries, nil
}

// SessionRecorder adapts a JournalRepo to the session.Recorder interface.
func SessionRecorder(repo JournalRepo) session.Recorder {
	return session.RecorderFunc(func(ctx context.Context, ev session.Event) error {
		return repo.AppendJournal(ctx, JournalEntry{
			Timestamp: ev.At,
			SessionID: ev.SessionID,
			Kind:      string(ev.Kind),
			Detail:    ev.Detail,
		})
	})
}
