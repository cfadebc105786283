// Package archive persists finished report payloads in SQLite. The
// assembler writes here after a successful build; reading back is for
// the history command and debugging.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type Repository struct {
	db *sql.DB
}

// Entry is one archived report.
type Entry struct {
	ID          int64
	Kind        string
	Ref         string
	Payload     []byte
	GeneratedAt time.Time
}

func NewRepository(dbPath string) (*Repository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := migrateSchema(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// SaveReport stores one report payload and returns its row ID.
func (r *Repository) SaveReport(ctx context.Context, kind, ref string, payload []byte) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO reports (kind, ref, payload, generated_at) VALUES (?, ?, ?, ?)`,
		kind, ref, string(payload), time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("insert report: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("report id: %w", err)
	}

	slog.InfoContext(ctx, "Report saved to archive",
		"id", id, "kind", kind, "ref", ref, "bytes", len(payload))
	return id, nil
}

// ListRecent returns the newest reports of a kind, newest first. An
// empty kind lists across all kinds.
func (r *Repository) ListRecent(ctx context.Context, kind string, limit int) ([]Entry, error) {
	if limit < 1 {
		limit = 10
	}

	query := `SELECT id, kind, ref, payload, generated_at FROM reports`
	args := []any{}
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, kind)
	}
	query += ` ORDER BY generated_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var payload string
		if err := rows.Scan(&e.ID, &e.Kind, &e.Ref, &payload, &e.GeneratedAt); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		e.Payload = []byte(payload)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	return out, nil
}
