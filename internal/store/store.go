// Package store persists assessment sessions and LLM usage to SQLite.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id            TEXT PRIMARY KEY,
	skill         TEXT NOT NULL,
	level         TEXT NOT NULL,
	modality      TEXT NOT NULL,
	score         INTEGER NOT NULL DEFAULT 0,
	complete      INTEGER NOT NULL DEFAULT 0,
	started_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	finished_at   TIMESTAMP
);

CREATE TABLE IF NOT EXISTS questions (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id       TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
	position         INTEGER NOT NULL,
	content          TEXT NOT NULL,
	expected_answer  TEXT NOT NULL,
	qtype            TEXT NOT NULL,
	media_ref        TEXT NOT NULL DEFAULT '',
	created_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS answers (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	question_id  INTEGER NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
	content      TEXT NOT NULL,
	media_ref    TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS evaluations (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	question_id  INTEGER NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
	is_correct   INTEGER NOT NULL,
	explanation  TEXT NOT NULL,
	created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS llm_requests (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	model          TEXT NOT NULL,
	purpose        TEXT NOT NULL,
	input_tokens   INTEGER NOT NULL DEFAULT 0,
	output_tokens  INTEGER NOT NULL DEFAULT 0,
	latency_ms     INTEGER NOT NULL DEFAULT 0,
	success        INTEGER NOT NULL,
	error_message  TEXT NOT NULL DEFAULT '',
	created_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_questions_session ON questions(session_id);
CREATE INDEX IF NOT EXISTS idx_llm_requests_created ON llm_requests(created_at);
`

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and applies the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// DefaultDBPath resolves the database location: SKILLCHECK_DB if set, else
// XDG_DATA_HOME/skillcheck/skillcheck.db, else ~/.local/share/skillcheck/skillcheck.db.
func DefaultDBPath() string {
	if p := os.Getenv("SKILLCHECK_DB"); p != "" {
		return p
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "skillcheck", "skillcheck.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "skillcheck.db"
	}
	return filepath.Join(home, ".local", "share", "skillcheck", "skillcheck.db")
}
