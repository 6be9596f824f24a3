package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Migrate brings the schema to the current version. job_context holds the
// persisted job record the interview-prep flow rehydrates from; job_pages
// caches the most recently fetched listing pages so the dashboard can
// re-render the last page while the backend is unreachable.
func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}

	if v >= 1 {
		return tx.Commit()
	}

	// ---- Schema v1 ----

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS job_context (
  key TEXT PRIMARY KEY,
  payload TEXT NOT NULL,
  saved_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS job_pages (
  keywords TEXT NOT NULL,
  location TEXT NOT NULL,
  page INTEGER NOT NULL,
  payload TEXT NOT NULL,
  total_results INTEGER NOT NULL,
  fetched_at TEXT NOT NULL,
  PRIMARY KEY (keywords, location, page)
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_job_pages_fetched_at
ON job_pages(fetched_at);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}

// ---- job_context ----

func SaveJobContext(ctx context.Context, db *sql.DB, key, payload string) error {
	_, err := db.ExecContext(ctx, `
INSERT INTO job_context(key, payload, saved_at)
VALUES(?,?,?)
ON CONFLICT(key) DO UPDATE SET payload=excluded.payload, saved_at=excluded.saved_at;`,
		key, payload, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save job context: %w", err)
	}
	return nil
}

func LoadJobContext(ctx context.Context, db *sql.DB, key string) (payload string, ok bool, err error) {
	err = db.QueryRowContext(ctx, `SELECT payload FROM job_context WHERE key = ?;`, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load job context: %w", err)
	}
	return payload, true, nil
}

func ClearJobContext(ctx context.Context, db *sql.DB, key string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM job_context WHERE key = ?;`, key)
	return err
}

// ---- job_pages cache ----

type CachedPage struct {
	Keywords     string
	Location     string
	Page         int
	Payload      string // JSON-encoded job list
	TotalResults int
	FetchedAt    time.Time
}

func CachePage(ctx context.Context, db *sql.DB, p CachedPage) error {
	_, err := db.ExecContext(ctx, `
INSERT INTO job_pages(keywords, location, page, payload, total_results, fetched_at)
VALUES(?,?,?,?,?,?)
ON CONFLICT(keywords, location, page) DO UPDATE SET
  payload=excluded.payload,
  total_results=excluded.total_results,
  fetched_at=excluded.fetched_at;`,
		p.Keywords, p.Location, p.Page, p.Payload, p.TotalResults,
		p.FetchedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("cache page: %w", err)
	}
	return nil
}

func LoadCachedPage(ctx context.Context, db *sql.DB, keywords, location string, page int) (CachedPage, bool, error) {
	var p CachedPage
	var fetched string
	err := db.QueryRowContext(ctx, `
SELECT keywords, location, page, payload, total_results, fetched_at
FROM job_pages
WHERE keywords = ? AND location = ? AND page = ?;`,
		keywords, location, page).
		Scan(&p.Keywords, &p.Location, &p.Page, &p.Payload, &p.TotalResults, &fetched)
	if err == sql.ErrNoRows {
		return CachedPage{}, false, nil
	}
	if err != nil {
		return CachedPage{}, false, fmt.Errorf("load cached page: %w", err)
	}
	p.FetchedAt, _ = time.Parse(time.RFC3339, fetched)
	return p, true, nil
}

func CleanupStalePages(db *sql.DB, maxAge time.Duration) (deleted int64, err error) {
	cutoff := time.Now().UTC().Add(-maxAge).Format(time.RFC3339)
	res, err := db.Exec(`DELETE FROM job_pages WHERE fetched_at < ?;`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup stale pages: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
