package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/glabrego/connoisseur/internal/journal"
)

const (
	prefSortMethod = "sort_method"
	prefDisplay    = "display_mode"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS reviews (
  position INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  category TEXT NOT NULL,
  rating INTEGER NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS recommendations (
  position INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  category TEXT NOT NULL DEFAULT '',
  recommended_by TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS preferences (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`
	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// CheckWritable fails early when the database file cannot be written, so the
// user learns about it before typing a session's worth of entries.
func (r *Repository) CheckWritable(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO preferences (key, value) VALUES ('write_check', ?)`, time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("write check: %w", err)
	}
	return nil
}

// Save replaces the stored journal with snap in a single transaction.
func (r *Repository) Save(ctx context.Context, snap journal.Snapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"reviews", "recommendations"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if err := saveReviews(ctx, tx, snap.Reviews); err != nil {
		return err
	}
	if err := saveRecommendations(ctx, tx, snap.Recommendations); err != nil {
		return err
	}

	prefs := map[string]string{
		prefSortMethod: string(snap.SortMethod),
		prefDisplay:    string(snap.Display),
	}
	for key, value := range prefs {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO preferences (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value
`, key, value); err != nil {
			return fmt.Errorf("save preference %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func saveReviews(ctx context.Context, tx *sql.Tx, reviews []journal.Review) error {
	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO reviews (position, title, category, rating, description, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return fmt.Errorf("prepare review statement: %w", err)
	}
	defer stmt.Close()

	for i, review := range reviews {
		_, err := stmt.ExecContext(
			ctx,
			i,
			review.Title,
			review.Category,
			review.Rating,
			review.Description,
			review.CreatedAt.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("save review %q: %w", review.Title, err)
		}
	}
	return nil
}

func saveRecommendations(ctx context.Context, tx *sql.Tx, recs []journal.Recommendation) error {
	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO recommendations (position, title, category, recommended_by, description, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return fmt.Errorf("prepare recommendation statement: %w", err)
	}
	defer stmt.Close()

	for i, rec := range recs {
		_, err := stmt.ExecContext(
			ctx,
			i,
			rec.Title,
			rec.Category,
			rec.RecommendedBy,
			rec.Description,
			rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("save recommendation %q: %w", rec.Title, err)
		}
	}
	return nil
}

// Load reads the whole journal back in stored order. Preferences that were
// never saved come back empty so the caller can apply its own defaults.
func (r *Repository) Load(ctx context.Context) (journal.Snapshot, error) {
	var (
		snap journal.Snapshot
		err  error
	)
	if snap.Reviews, err = r.listReviews(ctx); err != nil {
		return journal.Snapshot{}, err
	}
	if snap.Recommendations, err = r.listRecommendations(ctx); err != nil {
		return journal.Snapshot{}, err
	}

	if v, err := r.preference(ctx, prefSortMethod); err != nil {
		return journal.Snapshot{}, err
	} else if v != "" {
		snap.SortMethod = journal.SortMethod(v)
	}
	if v, err := r.preference(ctx, prefDisplay); err != nil {
		return journal.Snapshot{}, err
	} else if v != "" {
		snap.Display = journal.DisplayMode(v)
	}

	return snap, nil
}

func (r *Repository) listReviews(ctx context.Context) ([]journal.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT title, category, rating, description, created_at
FROM reviews
ORDER BY position ASC
`)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]journal.Review, 0)
	for rows.Next() {
		var review journal.Review
		var createdAt string
		if err := rows.Scan(
			&review.Title,
			&review.Category,
			&review.Rating,
			&review.Description,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}

		review.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse review created_at %q: %w", createdAt, err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return reviews, nil
}

func (r *Repository) listRecommendations(ctx context.Context) ([]journal.Recommendation, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT title, category, recommended_by, description, created_at
FROM recommendations
ORDER BY position ASC
`)
	if err != nil {
		return nil, fmt.Errorf("query recommendations: %w", err)
	}
	defer rows.Close()

	recs := make([]journal.Recommendation, 0)
	for rows.Next() {
		var rec journal.Recommendation
		var createdAt string
		if err := rows.Scan(
			&rec.Title,
			&rec.Category,
			&rec.RecommendedBy,
			&rec.Description,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan recommendation: %w", err)
		}

		rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse recommendation created_at %q: %w", createdAt, err)
		}
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return recs, nil
}

func (r *Repository) preference(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load preference %s: %w", key, err)
	}
	return value, nil
}
