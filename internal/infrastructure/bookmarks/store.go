// Package bookmarks persists bookmarked post IDs in SQLite.
package bookmarks

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS bookmarks (
	post_id    TEXT PRIMARY KEY,
	created_at TEXT NOT NULL
);
`

// Store implements usecase.BookmarkRepository on SQLite.
// The database is opened lazily on first use.
type Store struct {
	path string
	now  func() time.Time

	once    sync.Once
	db      *sql.DB
	openErr error
}

// NewStore creates a bookmark store at path.
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// List returns bookmarked post IDs, oldest first.
func (s *Store) List(ctx context.Context) ([]string, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT post_id FROM bookmarks ORDER BY created_at, post_id`)
	if err != nil {
		return nil, fmt.Errorf("querying bookmarks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning bookmark: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Set marks or unmarks a post as bookmarked.
func (s *Store) Set(ctx context.Context, postID string, bookmarked bool) error {
	db, err := s.open()
	if err != nil {
		return err
	}

	if bookmarked {
		_, err = db.ExecContext(ctx,
			`INSERT INTO bookmarks (post_id, created_at) VALUES (?, ?) ON CONFLICT(post_id) DO NOTHING`,
			postID, s.now().UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("inserting bookmark: %w", err)
		}
		return nil
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM bookmarks WHERE post_id = ?`, postID); err != nil {
		return fmt.Errorf("deleting bookmark: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) open() (*sql.DB, error) {
	s.once.Do(func() {
		if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
			s.openErr = fmt.Errorf("creating bookmarks directory: %w", err)
			return
		}
		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			s.openErr = fmt.Errorf("opening database: %w", err)
			return
		}
		if err := db.Ping(); err != nil {
			_ = db.Close()
			s.openErr = fmt.Errorf("connecting to database: %w", err)
			return
		}
		if _, err := db.Exec(schema); err != nil {
			_ = db.Close()
			s.openErr = fmt.Errorf("running migrations: %w", err)
			return
		}
		s.db = db
	})
	return s.db, s.openErr
}
