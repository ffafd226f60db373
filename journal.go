package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type EventKind string

const (
	EventExplore EventKind = "explore"
	EventCombat  EventKind = "combat"
	EventBoss    EventKind = "boss"
	EventAction  EventKind = "action"
	EventEnemy   EventKind = "enemy"
	EventPanic   EventKind = "panic"
	EventRest    EventKind = "rest"
	EventBase    EventKind = "base"
	EventOutcome EventKind = "outcome"
)

// Event is one line of a run's log.
type Event struct {
	RunID     string
	Turn      int
	Kind      EventKind
	Message   string
	CreatedAt time.Time
}

// RunRecord summarises a finished or abandoned run.
type RunRecord struct {
	ID         string
	StartedAt  time.Time
	FinishedAt sql.NullTime
	Outcome    string
	Turns      int
	Relics     int
}

// Journal keeps every run and its event log in a local SQLite file.
type Journal struct {
	db *sql.DB
}

func OpenJournal(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping journal: %w", err)
	}
	if err := createJournalSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create journal schema: %w", err)
	}
	return &Journal{db: db}, nil
}

func createJournalSchema(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at DATETIME NOT NULL,
			finished_at DATETIME,
			outcome TEXT NOT NULL DEFAULT 'abandoned',
			turns INTEGER NOT NULL DEFAULT 0,
			relics INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			turn INTEGER NOT NULL,
			kind TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			FOREIGN KEY (run_id) REFERENCES runs(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_run_id ON events(run_id);`,
	}
	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

func (j *Journal) StartRun(ctx context.Context, id string) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at) VALUES (?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("start run %s: %w", id, err)
	}
	return nil
}

func (j *Journal) Append(ctx context.Context, e Event) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO events (run_id, turn, kind, message, created_at) VALUES (?, ?, ?, ?, ?)`,
		e.RunID, e.Turn, string(e.Kind), e.Message, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

func (j *Journal) FinishRun(ctx context.Context, id, outcome string, turns, relics int) error {
	res, err := j.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, outcome = ?, turns = ?, relics = ? WHERE id = ?`,
		time.Now().UTC(), outcome, turns, relics, id)
	if err != nil {
		return fmt.Errorf("finish run %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("finish run %s: %w", id, ErrUnknownRun)
	}
	return nil
}

var ErrUnknownRun = errors.New("unknown run")

// RecentRuns returns up to limit runs, newest first.
func (j *Journal) RecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, outcome, turns, relics
		 FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.Outcome, &r.Turns, &r.Relics); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (j *Journal) Events(ctx context.Context, runID string) ([]Event, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT run_id, turn, kind, message, created_at FROM events WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var kind string
		if err := rows.Scan(&e.RunID, &e.Turn, &kind, &e.Message, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Kind = EventKind(kind)
		events = append(events, e)
	}
	return events, rows.Err()
}
