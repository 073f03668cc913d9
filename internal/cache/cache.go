// Package cache provides SQLite-backed caching of extracted class
// skeletons. The cache lives in the project's .cohrep directory and lets
// repeated analyses skip re-parsing files whose content is unchanged.
//
// The cache is strictly an accelerator: analysis output is identical with
// the cache enabled, disabled, or deleted.
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Cache manages the cache.db SQLite database of extracted skeletons.
type Cache struct {
	db     *sql.DB
	dbPath string
}

// Open opens or creates the cache database inside the given directory,
// creating the directory if needed. It initializes the schema if the
// database is new.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	dbPath := filepath.Join(dir, "cache.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	// WAL keeps readers unblocked if another analysis is running.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	c := &Cache{db: db, dbPath: dbPath}
	if err := c.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return c, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Path returns the database file path.
func (c *Cache) Path() string {
	return c.dbPath
}

// Get returns the cached skeleton payload for a file, if the stored
// content hash matches. The payload is opaque to the cache; callers own
// the encoding. A read failure is treated as a miss.
func (c *Cache) Get(filePath, contentHash string) ([]byte, bool) {
	var storedHash string
	var payload []byte
	err := c.db.QueryRow(
		"SELECT content_hash, skeleton FROM skeletons WHERE file_path = ?",
		filePath,
	).Scan(&storedHash, &payload)
	if err != nil || storedHash != contentHash {
		return nil, false
	}
	return payload, true
}

// Put stores the skeleton payload for a file, replacing any previous entry.
func (c *Cache) Put(filePath, contentHash string, payload []byte) error {
	_, err := c.db.Exec(
		`INSERT INTO skeletons (file_path, content_hash, skeleton, extracted_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(file_path) DO UPDATE SET
		   content_hash = excluded.content_hash,
		   skeleton = excluded.skeleton,
		   extracted_at = excluded.extracted_at`,
		filePath, contentHash, payload, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("store skeleton for %s: %w", filePath, err)
	}
	return nil
}

// Clear removes all cached skeletons.
func (c *Cache) Clear() error {
	if _, err := c.db.Exec("DELETE FROM skeletons"); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

// Count returns the number of cached entries.
func (c *Cache) Count() (int64, error) {
	var n int64
	if err := c.db.QueryRow("SELECT COUNT(*) FROM skeletons").Scan(&n); err != nil {
		return 0, fmt.Errorf("count skeletons: %w", err)
	}
	return n, nil
}
