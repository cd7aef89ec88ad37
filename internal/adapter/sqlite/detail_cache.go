// Package sqlite provides SQLite storage for fetched problem details.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"dsa-notes/internal/domain/model"
	"dsa-notes/internal/domain/ports"
)

// DetailCache stores problem details keyed by title slug.
type DetailCache struct {
	conn *sql.DB
}

var _ ports.DetailCache = (*DetailCache)(nil)

// Open opens or creates the cache database at path.
func Open(path string) (*DetailCache, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := conn.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set wal mode: %w", err)
	}
	c := &DetailCache{conn: conn}
	if err := c.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return c, nil
}

// Close closes the database connection.
func (c *DetailCache) Close() error {
	return c.conn.Close()
}

func (c *DetailCache) migrate() error {
	_, err := c.conn.Exec(`
	CREATE TABLE IF NOT EXISTS problem_details (
		slug TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		fetched_at DATETIME NOT NULL
	);`)
	return err
}

// Get returns the cached detail for slug, if any.
func (c *DetailCache) Get(ctx context.Context, slug string) (model.ProblemDetail, bool, error) {
	var payload string
	err := c.conn.QueryRowContext(ctx, `SELECT payload FROM problem_details WHERE slug = ?`, slug).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ProblemDetail{}, false, nil
	}
	if err != nil {
		return model.ProblemDetail{}, false, fmt.Errorf("query detail %s: %w", slug, err)
	}

	var detail model.ProblemDetail
	if err := json.Unmarshal([]byte(payload), &detail); err != nil {
		return model.ProblemDetail{}, false, fmt.Errorf("decode detail %s: %w", slug, err)
	}
	return detail, true, nil
}

// Put stores or replaces the detail for slug.
func (c *DetailCache) Put(ctx context.Context, slug string, detail model.ProblemDetail) error {
	payload, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("encode detail %s: %w", slug, err)
	}
	_, err = c.conn.ExecContext(ctx, `
		INSERT INTO problem_details (slug, payload, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`,
		slug, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("store detail %s: %w", slug, err)
	}
	return nil
}

// Count returns the number of cached problems.
func (c *DetailCache) Count(ctx context.Context) (int, error) {
	var n int
	if err := c.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM problem_details`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count details: %w", err)
	}
	return n, nil
}
