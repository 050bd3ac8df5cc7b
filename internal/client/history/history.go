// Package history persists the chat transcript in a local sqlite
// database, so past conversations survive restarts. Vault content never
// goes through here; only the rendered chat messages do.
package history

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/johnp-05/sumativatr1/internal/client/migrations"
	"github.com/johnp-05/sumativatr1/internal/client/models"
	"github.com/johnp-05/sumativatr1/internal/dbx"
)

type Repository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *Repository {
	return &Repository{db: db}
}

// Open creates (or opens) the sqlite database at dsn, applies migrations
// and returns the handle together with a repository bound to it. The
// caller owns the handle and closes it on shutdown.
func Open(ctx context.Context, dsn string) (*sql.DB, *Repository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("opening history db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrating history db: %w", err)
	}

	return db, NewSQLiteRepository(db), nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

func (r *Repository) Append(ctx context.Context, m models.Message) error {
	query :=
		`INSERT INTO messages (id, role, content, severity, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 `

	_, err := r.db.ExecContext(ctx, query,
		m.ID, string(m.Role), m.Content, int(m.Severity), m.CreatedAt)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

// Recent returns up to limit messages, oldest first.
func (r *Repository) Recent(ctx context.Context, limit int) ([]models.Message, error) {
	query :=
		`SELECT id, role, content, severity, created_at FROM (
		     SELECT id, role, content, severity, created_at FROM messages
		     ORDER BY created_at DESC, id DESC LIMIT ?
		 ) ORDER BY created_at ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var out []models.Message
	for rows.Next() {
		var m models.Message
		var role string
		var severity int
		if err := rows.Scan(&m.ID, &role, &m.Content, &severity, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		m.Role = models.Role(role)
		m.Severity = models.Severity(severity)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return out, nil
}

// Clear wipes the whole transcript.
func (r *Repository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM messages`); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}
