// Package cache remembers files that were found sorted, so unchanged files
// are not parsed again on the next run.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS files (
	path       TEXT PRIMARY KEY,
	sum        BLOB NOT NULL,
	settings   BLOB NOT NULL,
	containers INTEGER NOT NULL,
	checked_at INTEGER NOT NULL
)`

// Cache is a SQLite table of clean files. An entry is valid only for the
// exact content and settings it was recorded with.
type Cache struct {
	db       *sql.DB
	settings []byte
}

// Open opens or creates the cache at path. settings identifies everything
// besides the file content that affects the result, such as the sort
// defaults and the tool version; entries recorded under other settings are
// ignored.
func Open(ctx context.Context, path string, settings []byte) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	// One connection: workers take turns.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range append(pragmas, schema) {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize cache: %w", err)
		}
	}

	sum := Sum(settings)
	return &Cache{db: db, settings: sum[:]}, nil
}

// Close closes the database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Sum is the content checksum entries are keyed by.
func Sum(content []byte) [blake2b.Size256]byte {
	return blake2b.Sum256(content)
}

// Clean reports whether path was recorded clean with this exact content, and
// how many containers it had.
func (c *Cache) Clean(ctx context.Context, path string, content []byte) (int, bool, error) {
	sum := Sum(content)

	var containers int
	err := c.db.QueryRowContext(ctx,
		`SELECT containers FROM files WHERE path = ? AND sum = ? AND settings = ?`,
		path, sum[:], c.settings,
	).Scan(&containers)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("cache lookup %s: %w", path, err)
	}
	return containers, true, nil
}

// MarkClean records that content of path has no violations.
func (c *Cache) MarkClean(ctx context.Context, path string, content []byte, containers int) error {
	sum := Sum(content)
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO files (path, sum, settings, containers, checked_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
			sum = excluded.sum,
			settings = excluded.settings,
			containers = excluded.containers,
			checked_at = excluded.checked_at`,
		path, sum[:], c.settings, containers, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("cache update %s: %w", path, err)
	}
	return nil
}

// Forget drops the entry of path.
func (c *Cache) Forget(ctx context.Context, path string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM files WHERE path = ?`, path); err != nil {
		return fmt.Errorf("cache delete %s: %w", path, err)
	}
	return nil
}
