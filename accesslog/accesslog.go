// Package accesslog persists one row per served request in a SQLite
// database.
package accesslog

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store is the request log.
type Store struct {
	db *sql.DB
}

// Entry is one recorded request.
type Entry struct {
	ConnID string
	Path   string
	Status int
	Bytes  int
	At     time.Time
}

// Open opens (creating if needed) the database at path and initializes
// the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open access log: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping access log: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("init access log schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS requests (
		conn_id TEXT PRIMARY KEY,
		path TEXT NOT NULL,
		status INTEGER NOT NULL,
		bytes INTEGER NOT NULL,
		served_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_requests_served_at ON requests(served_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record inserts one request row.
func (s *Store) Record(connID, path string, status, bytes int) error {
	_, err := s.db.Exec(
		`INSERT INTO requests (conn_id, path, status, bytes, served_at) VALUES (?, ?, ?, ?, ?)`,
		connID, path, status, bytes, time.Now().Unix(),
	)
	return err
}

// Count returns the number of recorded requests.
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.QueryRow(`SELECT COUNT(*) FROM requests`).Scan(&n)
	return n, err
}

// Recent returns up to limit rows, newest first.
func (s *Store) Recent(limit int) ([]*Entry, error) {
	rows, err := s.db.Query(
		`SELECT conn_id, path, status, bytes, served_at
		 FROM requests ORDER BY served_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		var at int64
		if err := rows.Scan(&e.ConnID, &e.Path, &e.Status, &e.Bytes, &at); err != nil {
			return nil, err
		}
		e.At = time.Unix(at, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
