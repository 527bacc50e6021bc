// Package history keeps a local record of project creation attempts in a
// sqlite database under the webstart config directory.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Record is one project creation attempt.
type Record struct {
	ID        int64
	CreatedAt time.Time
	Template  string
	ProjectID string
	Duration  time.Duration
	Success   bool
	ErrorKind string
}

type TemplateCount struct {
	Template string
	Count    int
}

// Stats aggregates the recorded attempts.
type Stats struct {
	Total        int
	Succeeded    int
	TopTemplates []TemplateCount
}

func (s Stats) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Succeeded) / float64(s.Total) * 100
}

type Store struct {
	db *sql.DB
}

// Open creates or opens the history database at path, creating the parent
// directory when needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init history schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS creations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at DATETIME NOT NULL,
		template TEXT NOT NULL,
		project_id TEXT NOT NULL,
		duration_ms INTEGER,
		success BOOLEAN,
		error_kind TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_creations_time ON creations(created_at);
	CREATE INDEX IF NOT EXISTS idx_creations_template ON creations(template);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) SaveRecord(r Record) error {
	query := `
	INSERT INTO creations (created_at, template, project_id, duration_ms, success, error_kind)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		r.CreatedAt, r.Template, r.ProjectID,
		r.Duration.Milliseconds(), r.Success, r.ErrorKind)
	return err
}

// RecentRecords returns up to limit attempts, newest first.
func (s *Store) RecentRecords(limit int) ([]Record, error) {
	query := `
	SELECT id, created_at, template, project_id, duration_ms, success, error_kind
	FROM creations
	ORDER BY created_at DESC, id DESC
	LIMIT ?
	`

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var durationMS int64
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Template, &r.ProjectID,
			&durationMS, &r.Success, &r.ErrorKind); err != nil {
			return nil, err
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *Store) Stats() (Stats, error) {
	var stats Stats

	err := s.db.QueryRow(`
	SELECT COUNT(*), COALESCE(SUM(CASE WHEN success THEN 1 ELSE 0 END), 0)
	FROM creations
	`).Scan(&stats.Total, &stats.Succeeded)
	if err != nil {
		return stats, err
	}

	rows, err := s.db.Query(`
	SELECT template, COUNT(*) as count
	FROM creations
	GROUP BY template
	ORDER BY count DESC, template ASC
	LIMIT 5
	`)
	if err != nil {
		return stats, err
	}
	defer rows.Close()

	for rows.Next() {
		var tc TemplateCount
		if err := rows.Scan(&tc.Template, &tc.Count); err != nil {
			return stats, err
		}
		stats.TopTemplates = append(stats.TopTemplates, tc)
	}
	return stats, rows.Err()
}
