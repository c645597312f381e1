// Package storage provides SQLite-based persistence for run replays.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/cartoon-dash/internal/config"
	"github.com/vovakirdan/cartoon-dash/internal/core"
	"github.com/vovakirdan/cartoon-dash/internal/replay"
)

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// ReplayInfo summarizes a stored replay without its event stream.
type ReplayInfo struct {
	ID        int64
	Seed      int64
	Score     int
	Lives     int
	TimeLeft  int
	Phase     core.Phase
	Frames    int
	Duration  time.Duration
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			config TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			lives INTEGER NOT NULL DEFAULT 0,
			time_left INTEGER NOT NULL DEFAULT 0,
			phase TEXT NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_score ON replays(score DESC);

		CREATE TABLE IF NOT EXISTS replay_events (
			replay_id INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			kind TEXT NOT NULL,
			dt REAL NOT NULL DEFAULT 0,
			action TEXT NOT NULL DEFAULT '',
			pressed INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (replay_id, seq)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveReplay stores a recording and its event stream in one transaction.
// Returns the ID of the inserted replay.
func (s *Store) SaveReplay(rec replay.Recording) (int64, error) {
	cfgYAML, err := config.Marshal(rec.Config)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode replay config: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO replays (seed, config, score, lives, time_left, phase, frames, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Seed,
		string(cfgYAML),
		rec.Final.Score,
		rec.Final.Lives,
		rec.Final.TimeLeft,
		rec.Final.Phase.String(),
		rec.Frames(),
		rec.Duration().Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO replay_events (replay_id, seq, kind, dt, action, pressed) VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare event insert: %w", err)
	}
	defer stmt.Close()

	for seq, ev := range rec.Events {
		action := ""
		if ev.Kind == replay.KindInput {
			action = ev.Action.String()
		}
		if _, err := stmt.Exec(id, seq, string(ev.Kind), ev.DT, action, ev.Pressed); err != nil {
			return 0, fmt.Errorf("storage: cannot save replay event %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit replay: %w", err)
	}
	return id, nil
}

// Replays lists the most recent replays, newest first.
func (s *Store) Replays(limit int) ([]ReplayInfo, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, score, lives, time_left, phase, frames, duration_ms, created_at
		 FROM replays
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var infos []ReplayInfo
	for rows.Next() {
		var info ReplayInfo
		var phase string
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&info.ID, &info.Seed, &info.Score, &info.Lives, &info.TimeLeft,
			&phase, &info.Frames, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.Phase = parsePhase(phase)
		info.Duration = time.Duration(durationMS) * time.Millisecond
		info.CreatedAt = parseTime(createdAt)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// Replay loads a full recording by ID. Returns nil if no such replay exists.
func (s *Store) Replay(id int64) (*replay.Recording, error) {
	rec := replay.Recording{ID: id}
	var cfgYAML, phase string
	var createdAt any

	err := s.db.QueryRow(
		`SELECT seed, config, score, lives, time_left, phase, created_at
		 FROM replays
		 WHERE id = ?`,
		id,
	).Scan(&rec.Seed, &cfgYAML, &rec.Final.Score, &rec.Final.Lives, &rec.Final.TimeLeft, &phase, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}

	rec.Config, err = config.Parse([]byte(cfgYAML))
	if err != nil {
		return nil, fmt.Errorf("storage: replay %d has unusable config: %w", id, err)
	}
	rec.Final.Phase = parsePhase(phase)
	rec.CreatedAt = parseTime(createdAt)

	rows, err := s.db.Query(
		`SELECT kind, dt, action, pressed
		 FROM replay_events
		 WHERE replay_id = ?
		 ORDER BY seq`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ev replay.Event
		var kind, action string
		if err := rows.Scan(&kind, &ev.DT, &action, &ev.Pressed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan event: %w", err)
		}
		ev.Kind = replay.Kind(kind)
		if ev.Kind == replay.KindInput {
			a, ok := core.ParseAction(action)
			if !ok {
				return nil, fmt.Errorf("storage: replay %d has unknown action %q", id, action)
			}
			ev.Action = a
		}
		rec.Events = append(rec.Events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &rec, nil
}

// DeleteReplay removes a replay and its events. Deleting a missing replay
// is not an error.
func (s *Store) DeleteReplay(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM replay_events WHERE replay_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete replay events: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM replays WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func parsePhase(s string) core.Phase {
	switch s {
	case core.PhasePaused.String():
		return core.PhasePaused
	case core.PhaseEnded.String():
		return core.PhaseEnded
	default:
		return core.PhaseRunning
	}
}
