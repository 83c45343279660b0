package journal

// Schema DDL for the bootstrap journal. One row per event; the journal
// is append-only.
const createEvents = `CREATE TABLE IF NOT EXISTS events (
    event_id TEXT PRIMARY KEY,
    run_id TEXT NOT NULL,
    occurred_at TEXT NOT NULL,
    kind TEXT NOT NULL,
    detail TEXT
);`
