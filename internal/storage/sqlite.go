// Package storage provides SQLite-based persistence for scores and
// settings. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const settingDifficulty = "difficulty"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished-game record.
type ScoreEntry struct {
	ID         int64
	Difficulty string
	Score      int
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
		CREATE TABLE IF NOT EXISTS best_scores (
			difficulty TEXT PRIMARY KEY,
			score TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_difficulty ON scores(difficulty);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(difficulty, score DESC);
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

// BestScore returns the persisted best score for a difficulty.
// A missing row or a malformed (non-numeric) value reads as 0.
func (s *Store) BestScore(difficulty string) (int, error) {
	var raw string
	err := s.db.QueryRow(
		"SELECT score FROM best_scores WHERE difficulty = ?",
		difficulty,
	).Scan(&raw)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	best, err := strconv.Atoi(raw)
	if err != nil || best < 0 {
		// Malformed persisted value: treat as 0, not an error.
		return 0, nil
	}
	return best, nil
}

// SetBestScore upserts the best score for a difficulty.
func (s *Store) SetBestScore(difficulty string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (difficulty, score) VALUES (?, ?)
		 ON CONFLICT(difficulty) DO UPDATE SET score = excluded.score`,
		difficulty, strconv.Itoa(score),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// Difficulty returns the stored difficulty key, or "" when none is set.
// The caller maps unknown and empty keys to the normal preset.
func (s *Store) Difficulty() (string, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM settings WHERE key = ?",
		settingDifficulty,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot query difficulty: %w", err)
	}
	return value, nil
}

// SetDifficulty stores the selected difficulty key.
func (s *Store) SetDifficulty(key string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		settingDifficulty, key,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save difficulty: %w", err)
	}
	return nil
}

// SaveScore records a finished game's score. Returns the inserted ID.
func (s *Store) SaveScore(difficulty string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (difficulty, score) VALUES (?, ?)",
		difficulty, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for a difficulty, ordered by score
// descending.
func (s *Store) TopScores(difficulty string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, score, created_at
		 FROM scores
		 WHERE difficulty = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	return scanScores(rows)
}

func scanScores(rows *sql.Rows) ([]ScoreEntry, error) {
	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Difficulty, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// The driver may yield DATETIME columns as either type.
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats contains aggregated statistics for one difficulty.
type Stats struct {
	Difficulty string
	GamesCount int
	HighScore  int
	AvgScore   float64
}

// StatsFor retrieves aggregated play statistics for a difficulty.
func (s *Store) StatsFor(difficulty string) (Stats, error) {
	stats := Stats{Difficulty: difficulty}
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM scores WHERE difficulty = ?`,
		difficulty,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return stats, nil
}
