// Package storage provides SQLite-based persistence for recorded runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only seeds, input journals and the tuning a run was played with are stored.
// Scores are never persisted; they are recomputed by replaying a run.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-stickhero/internal/config"
	"github.com/vovakirdan/tui-stickhero/internal/games/stickhero"
)

var (
	// ErrRunNotFound is returned when a run ID has no stored journal.
	ErrRunNotFound = errors.New("storage: run not found")

	// ErrAmbiguousRun is returned when an ID prefix matches several runs.
	ErrAmbiguousRun = errors.New("storage: ambiguous run id")
)

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// RunEntry is a stored run: its identity and the journal that reproduces it.
type RunEntry struct {
	ID         string
	GameID     string
	Journal    stickhero.Journal
	Config     config.StickHeroConfig // Tuning the run was played with; only loaded by Run
	EventCount int
	CreatedAt  time.Time
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// SQLite allows a single writer; SSH sessions share this handle
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			events TEXT NOT NULL,
			config TEXT NOT NULL DEFAULT '',
			event_count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	// Databases created before runs carried their tuning
	return s.addColumn("runs", "config", "TEXT NOT NULL DEFAULT ''")
}

// addColumn adds a column to an existing table unless it is already there.
func (s *Store) addColumn(table, column, decl string) error {
	rows, err := s.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid     int
			name    string
			typ     string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return err
		}
		if name == column {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	rows.Close()

	_, err = s.db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, decl))
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun stores a journal together with the tuning it was played under and
// returns the new run ID.
func (s *Store) SaveRun(gameID string, j stickhero.Journal, cfg config.StickHeroConfig) (string, error) {
	events, err := json.Marshal(j.Events)
	if err != nil {
		return "", fmt.Errorf("storage: cannot encode journal: %w", err)
	}
	tuning, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("storage: cannot encode config: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.Exec(
		"INSERT INTO runs (id, game_id, seed, events, config, event_count) VALUES (?, ?, ?, ?, ?, ?)",
		id, gameID, j.Seed, string(events), string(tuning), len(j.Events),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return id, nil
}

// Run retrieves a stored run by ID. Returns ErrRunNotFound if it doesn't exist.
// Runs stored without a config come back with the default tuning.
func (s *Store) Run(id string) (*RunEntry, error) {
	var e RunEntry
	var events, tuning string
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, game_id, seed, events, config, event_count, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.GameID, &e.Journal.Seed, &events, &tuning, &e.EventCount, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	if err := json.Unmarshal([]byte(events), &e.Journal.Events); err != nil {
		return nil, fmt.Errorf("storage: cannot decode journal for run %s: %w", id, err)
	}
	e.Config, err = config.ParseStickHero([]byte(tuning))
	if err != nil {
		return nil, fmt.Errorf("storage: cannot decode config for run %s: %w", id, err)
	}
	e.CreatedAt = parseTime(createdAt)

	return &e, nil
}

// ResolveRunID expands a unique ID prefix to the full run ID.
func (s *Store) ResolveRunID(prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("%w: empty id", ErrRunNotFound)
	}

	rows, err := s.db.Query(
		"SELECT id FROM runs WHERE substr(id, 1, ?) = ? LIMIT 2",
		len(prefix), prefix,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(ids) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrRunNotFound, prefix)
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrAmbiguousRun, prefix)
	}
}

// RecentRuns lists the most recent runs for the given game without their
// events. Results are ordered newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, event_count, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Journal.Seed, &e.EventCount, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteRun removes a stored run. Returns ErrRunNotFound if it doesn't exist.
func (s *Store) DeleteRun(id string) error {
	res, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
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
