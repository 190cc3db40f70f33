package source

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Cache wraps a Provider with a SQLite blob store keyed by filename, so a
// rebuild against an unchanged remote corpus never refetches.
type Cache struct {
	db    *sql.DB
	inner Provider
}

// OpenCache opens (creating if needed) the blob cache at path.
func OpenCache(path string, inner Provider) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS blobs (
		filename   TEXT PRIMARY KEY,
		data       BLOB NOT NULL,
		fetched_at TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing cache schema: %w", err)
	}
	return &Cache{db: db, inner: inner}, nil
}

// Close releases the cache database.
func (c *Cache) Close() error { return c.db.Close() }

// FetchBook returns the cached blob when present, otherwise fetches from the
// wrapped provider and stores the result.
func (c *Cache) FetchBook(filename string) ([]byte, error) {
	var data []byte
	err := c.db.QueryRow("SELECT data FROM blobs WHERE filename = ?", filename).Scan(&data)
	if err == nil {
		return data, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("reading cache for %s: %w", filename, err)
	}

	data, err = c.inner.FetchBook(filename)
	if err != nil {
		return nil, err
	}
	_, err = c.db.Exec(
		"INSERT OR REPLACE INTO blobs (filename, data, fetched_at) VALUES (?, ?, ?)",
		filename, data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("caching %s: %w", filename, err)
	}
	return data, nil
}
