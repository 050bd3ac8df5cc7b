package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/johnp-05/sumativatr1/internal/common"
	"github.com/johnp-05/sumativatr1/internal/dbx"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Task, error) {
	query :=
		`SELECT id, title, description, completed, created_at FROM tasks
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	tasks := []Task{}
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return tasks, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int) (*Task, error) {
	return getTask(ctx, r.db, id)
}

func (r *PostgresRepository) Create(ctx context.Context, task *Task) (*Task, error) {
	query :=
		`INSERT INTO tasks (title, description, completed, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.Title, task.Description, task.Completed, task.CreatedAt).Scan(&task.ID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return task, nil
}

// Update reads the current row and writes the merged result inside one
// transaction, so two partial updates cannot interleave.
func (r *PostgresRepository) Update(ctx context.Context, id int, upd Update) (*Task, error) {
	var task *Task

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		t, err := getTask(ctx, tx, id)
		if err != nil {
			return err
		}

		if upd.Title != nil {
			t.Title = *upd.Title
		}
		if upd.Description != nil {
			t.Description = *upd.Description
		}
		if upd.Completed != nil {
			t.Completed = *upd.Completed
		}

		query :=
			`UPDATE tasks SET title = $1, description = $2, completed = $3
			 WHERE id = $4
			 `
		if _, err := tx.ExecContext(ctx, query, t.Title, t.Description, t.Completed, t.ID); err != nil {
			return fmt.Errorf("error performing sql request: %w", err)
		}

		task = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM tasks WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func getTask(ctx context.Context, db dbx.DBTX, id int) (*Task, error) {
	query :=
		`SELECT id, title, description, completed, created_at FROM tasks
		 WHERE id = $1
		 `

	t := &Task{}
	err := db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return t, nil
}
