// Package journal persists an append-only SQLite record of bootstrap
// activity, one database per isolated environment. The journal is
// advisory: the launcher consults it for status reporting, never for
// control flow.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// FileName is the journal database file kept inside the environment
// directory.
const FileName = "bootstrap-journal.db"

// Event is one recorded bootstrap step.
type Event struct {
	ID         string
	RunID      string
	OccurredAt time.Time
	Kind       string
	Detail     string
}

// Journal appends bootstrap events to a SQLite database. The database
// is opened lazily on first append, so constructing a Journal for a
// bootstrap that takes the fast path touches nothing on disk.
type Journal struct {
	path  string
	runID string
	db    *sql.DB
}

// New returns a Journal backed by the database at path. Each Journal
// carries a fresh run id so one process's events group together.
func New(path string) *Journal {
	return &Journal{
		path:  path,
		runID: uuid.NewString(),
	}
}

// Path returns the location of the journal database.
func (j *Journal) Path() string {
	return j.path
}

// Record appends one event. The first append creates the database and
// schema.
func (j *Journal) Record(kind, detail string) error {
	if err := j.open(); err != nil {
		return err
	}

	_, err := j.db.Exec(
		`INSERT INTO events (event_id, run_id, occurred_at, kind, detail) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), j.runID, time.Now().UTC().Format(time.RFC3339Nano), kind, detail,
	)
	if err != nil {
		return fmt.Errorf("append journal event: %w", err)
	}
	return nil
}

// Tail returns the most recent n events, newest first. A journal that
// was never written reads as empty.
func (j *Journal) Tail(n int) ([]Event, error) {
	if _, err := os.Stat(j.path); os.IsNotExist(err) {
		return nil, nil
	}
	if err := j.open(); err != nil {
		return nil, err
	}

	// rowid order is insertion order, which is stabler than the
	// timestamp column for events appended within the same instant.
	rows, err := j.db.Query(
		`SELECT event_id, run_id, occurred_at, kind, detail FROM events ORDER BY rowid DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		var occurredAt string
		if err := rows.Scan(&ev.ID, &ev.RunID, &occurredAt, &ev.Kind, &ev.Detail); err != nil {
			return nil, fmt.Errorf("scan journal event: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, occurredAt)
		if err != nil {
			return nil, fmt.Errorf("parse journal timestamp: %w", err)
		}
		ev.OccurredAt = ts
		events = append(events, ev)
	}
	return events, rows.Err()
}

// Close releases the database handle. Safe on a journal that never
// opened.
func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	err := j.db.Close()
	j.db = nil
	return err
}

// open initializes the database handle and schema on first use.
func (j *Journal) open() error {
	if j.db != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(j.path), 0o755); err != nil {
		return fmt.Errorf("create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", j.path)
	if err != nil {
		return fmt.Errorf("open journal database: %w", err)
	}
	if _, err := db.Exec(createEvents); err != nil {
		db.Close()
		return fmt.Errorf("initialize journal schema: %w", err)
	}

	j.db = db
	return nil
}
