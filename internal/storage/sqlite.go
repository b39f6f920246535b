// Package storage provides SQLite-based persistence for completed matches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchRecord represents one completed match.
type MatchRecord struct {
	ID           int64
	MatchID      string // uuid, generated by SaveMatch when empty
	LeftScore    int
	RightScore   int
	Winner       string // "left" or "right"
	WinningScore int
	Ticks        int64
	Rules        string // rules preset, empty for the configured defaults
	Source       string // "local" or "ssh"
	CreatedAt    time.Time
}

// Standings contains win totals across all recorded matches.
type Standings struct {
	Matches    int
	LeftWins   int
	RightWins  int
	LeftGoals  int
	RightGoals int
	LastPlayed time.Time
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			left_score INTEGER NOT NULL,
			right_score INTEGER NOT NULL,
			winner TEXT NOT NULL,
			winning_score INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			rules TEXT NOT NULL DEFAULT '',
			source TEXT NOT NULL DEFAULT 'local',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches(winner);
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

// SaveMatch records a completed match and returns its match ID.
func (s *Store) SaveMatch(rec MatchRecord) (string, error) {
	if rec.Winner != "left" && rec.Winner != "right" {
		return "", fmt.Errorf("storage: invalid winner %q", rec.Winner)
	}
	if rec.MatchID == "" {
		rec.MatchID = uuid.NewString()
	}
	if rec.Source == "" {
		rec.Source = "local"
	}

	_, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, left_score, right_score, winner, winning_score, ticks, rules, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.MatchID,
		rec.LeftScore,
		rec.RightScore,
		rec.Winner,
		rec.WinningScore,
		rec.Ticks,
		rec.Rules,
		rec.Source,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save match: %w", err)
	}

	return rec.MatchID, nil
}

// MatchByID retrieves a match by its match ID. It returns nil when no
// such match exists.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, match_id, left_score, right_score, winner, winning_score, ticks, rules, source, created_at
		 FROM matches
		 WHERE match_id = ?`,
		matchID,
	)

	rec, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &rec, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, left_score, right_score, winner, winning_score, ticks, rules, source, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		rec, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Standings returns win and goal totals across all matches.
func (s *Store) Standings() (*Standings, error) {
	st := &Standings{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'left' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'right' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(left_score), 0),
		        COALESCE(SUM(right_score), 0),
		        MAX(created_at)
		 FROM matches`,
	).Scan(&st.Matches, &st.LeftWins, &st.RightWins, &st.LeftGoals, &st.RightGoals, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get standings: %w", err)
	}
	st.LastPlayed = parseTime(lastPlayed)

	return st, nil
}

// ClearMatches deletes all recorded matches.
func (s *Store) ClearMatches() error {
	_, err := s.db.Exec("DELETE FROM matches")
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(r rowScanner) (MatchRecord, error) {
	var rec MatchRecord
	var createdAt any
	err := r.Scan(
		&rec.ID,
		&rec.MatchID,
		&rec.LeftScore,
		&rec.RightScore,
		&rec.Winner,
		&rec.WinningScore,
		&rec.Ticks,
		&rec.Rules,
		&rec.Source,
		&createdAt,
	)
	if err != nil {
		return rec, err
	}
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
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
