// Package imagecache stores downloaded gallery images in SQLite so the
// lightbox can show them again without hitting the network.
package imagecache

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/llehouerou/clubview/internal/db"
)

const (
	appName       = "clubview"
	dbFileName    = "images.db"
	pruneInterval = 24 * time.Hour
)

const schema = `
CREATE TABLE IF NOT EXISTS images (
	url TEXT PRIMARY KEY,
	data BLOB NOT NULL,
	content_type TEXT,
	size INTEGER NOT NULL,
	fetched_at INTEGER NOT NULL,
	accessed_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_images_fetched_at ON images(fetched_at);
`

// Entry is a cached image.
type Entry struct {
	URL         string
	Data        []byte
	ContentType string
	FetchedAt   time.Time
}

// Stats summarizes the cache contents.
type Stats struct {
	Entries int64
	Bytes   int64
}

// Cache is a SQLite image store with a fixed time to live. A nil *Cache
// behaves as an always-empty cache.
type Cache struct {
	db         *sql.DB
	ttl        time.Duration
	now        func() time.Time
	lastPruned time.Time
}

// DefaultPath returns the cache database location under XDG_CACHE_HOME.
func DefaultPath() (string, error) {
	return xdg.CacheFile(filepath.Join(appName, dbFileName))
}

// Open opens the cache at path (DefaultPath when empty) and prunes expired
// entries.
func Open(ctx context.Context, path string, ttl time.Duration) (*Cache, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	conn, err := db.Open(ctx, path, schema)
	if err != nil {
		return nil, err
	}

	c := &Cache{db: conn, ttl: ttl, now: time.Now}
	if _, err := c.Prune(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

// Close releases the database.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}

func (c *Cache) isExpired(fetchedAt int64) bool {
	if c.ttl <= 0 {
		return false
	}
	return fetchedAt < c.now().Add(-c.ttl).Unix()
}

// Get returns the cached entry for url. Expired entries are reported as
// missing and left for Prune.
func (c *Cache) Get(ctx context.Context, url string) (Entry, bool, error) {
	if c == nil {
		return Entry{}, false, nil
	}

	var (
		e           Entry
		contentType sql.NullString
		fetchedAt   int64
	)
	err := c.db.QueryRowContext(ctx, `
		SELECT data, content_type, fetched_at
		FROM images
		WHERE url = ?
	`, url).Scan(&e.Data, &contentType, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}
	if c.isExpired(fetchedAt) {
		return Entry{}, false, nil
	}

	// Keep access time fresh for Stats; failures are not fatal.
	_, _ = c.db.ExecContext(ctx, `UPDATE images SET accessed_at = ? WHERE url = ?`, c.now().Unix(), url)

	e.URL = url
	e.ContentType = db.NullStringValue(contentType)
	e.FetchedAt = time.Unix(fetchedAt, 0)
	return e, true, nil
}

// Put stores data for url, replacing any previous entry.
func (c *Cache) Put(ctx context.Context, url string, data []byte, contentType string) error {
	if c == nil {
		return nil
	}

	now := c.now().Unix()
	ct := sql.NullString{String: contentType, Valid: contentType != ""}
	return db.WithTx(ctx, c.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM images WHERE url = ?`, url); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO images (url, data, content_type, size, fetched_at, accessed_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, url, data, ct, len(data), now, now)
		return err
	})
}

// Prune deletes expired entries. It runs at most once per day unless the
// cache was just opened.
func (c *Cache) Prune(ctx context.Context) (int64, error) {
	if c == nil || c.ttl <= 0 {
		return 0, nil
	}

	now := c.now()
	if !c.lastPruned.IsZero() && now.Sub(c.lastPruned) < pruneInterval {
		return 0, nil
	}
	c.lastPruned = now

	var removed int64
	err := db.WithTx(ctx, c.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM images WHERE fetched_at < ?`, now.Add(-c.ttl).Unix())
		if err != nil {
			return err
		}
		removed, err = res.RowsAffected()
		return err
	})
	return removed, err
}

// Stats counts entries and stored bytes.
func (c *Cache) Stats(ctx context.Context) (Stats, error) {
	if c == nil {
		return Stats{}, nil
	}
	var s Stats
	err := c.db.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(SUM(size), 0) FROM images`).
		Scan(&s.Entries, &s.Bytes)
	return s, err
}

// Clear removes every entry.
func (c *Cache) Clear(ctx context.Context) error {
	if c == nil {
		return nil
	}
	_, err := c.db.ExecContext(ctx, `DELETE FROM images`)
	return err
}
