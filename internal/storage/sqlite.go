// Package storage provides SQLite-based persistence for recorded runs.
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
)

// ErrReplayNotFound is returned when a replay ID does not exist.
var ErrReplayNotFound = errors.New("storage: replay not found")

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// Replay is a recorded run: everything needed to re-simulate it.
type Replay struct {
	ID         int64
	GameID     string
	Seed       int64
	TickRate   int
	Difficulty string
	ConfigYAML []byte // Effective game config at record time
	Ticks      int
	Inputs     []byte // Encoded input stream
	CreatedAt  time.Time
}

// DefaultPath is the database location used when none is given.
const DefaultPath = "~/.roadhunter/roadhunter.db"

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
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			config_yaml BLOB NOT NULL,
			ticks INTEGER NOT NULL,
			inputs BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_game_id ON replays(game_id);
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

// SaveReplay records a run. Returns the ID of the inserted record.
func (s *Store) SaveReplay(r Replay) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO replays (game_id, seed, tick_rate, difficulty, config_yaml, ticks, inputs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Seed, r.TickRate, r.Difficulty, r.ConfigYAML, r.Ticks, r.Inputs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// ListReplays returns replay metadata, newest first. An empty gameID lists every game.
// Config and inputs are not loaded.
func (s *Store) ListReplays(gameID string, limit int) ([]Replay, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, tick_rate, difficulty, ticks, created_at
		 FROM replays
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var replays []Replay
	for rows.Next() {
		var r Replay
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Seed, &r.TickRate, &r.Difficulty, &r.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		replays = append(replays, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return replays, nil
}

// LoadReplay fetches a replay with its config and inputs.
func (s *Store) LoadReplay(id int64) (Replay, error) {
	var r Replay
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, game_id, seed, tick_rate, difficulty, config_yaml, ticks, inputs, created_at
		 FROM replays WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.GameID, &r.Seed, &r.TickRate, &r.Difficulty, &r.ConfigYAML, &r.Ticks, &r.Inputs, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Replay{}, fmt.Errorf("%w: %d", ErrReplayNotFound, id)
	}
	if err != nil {
		return Replay{}, fmt.Errorf("storage: cannot load replay %d: %w", id, err)
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// DeleteReplay removes a replay.
func (s *Store) DeleteReplay(id int64) error {
	result, err := s.db.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay %d: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrReplayNotFound, id)
	}
	return nil
}

// CountReplays returns the number of stored replays for a game, or all games if gameID is empty.
func (s *Store) CountReplays(gameID string) (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM replays WHERE ? = '' OR game_id = ?",
		gameID, gameID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count replays: %w", err)
	}
	return count, nil
}

// parseTime handles both time.Time and string datetime values.
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
