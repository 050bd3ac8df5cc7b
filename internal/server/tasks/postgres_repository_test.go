package tasks

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnp-05/sumativatr1/internal/common"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	r, err := NewPostgresRepository(db)
	require.NoError(t, err)
	return r, mock
}

func taskRows(tasks ...Task) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "title", "description", "completed", "created_at"})
	for _, t := range tasks {
		rows.AddRow(t.ID, t.Title, t.Description, t.Completed, t.CreatedAt)
	}
	return rows
}

func TestPostgresRepository_List(t *testing.T) {
	r, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT id, title, description, completed, created_at FROM tasks").
		WillReturnRows(taskRows(
			Task{ID: 1, Title: "comprar pan", CreatedAt: now},
			Task{ID: 2, Title: "llamar al médico", Completed: true, CreatedAt: now},
		))

	got, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "comprar pan", got[0].Title)
	assert.True(t, got[1].Completed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetNotFound(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, title, description, completed, created_at FROM tasks").
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	_, err := r.Get(context.Background(), 42)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Create(t *testing.T) {
	r, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO tasks").
		WithArgs("comprar pan", "urgente", false, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	created, err := r.Create(context.Background(), &Task{
		Title: "comprar pan", Description: "urgente", CreatedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_UpdateMergesInsideTx(t *testing.T) {
	r, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, title, description, completed, created_at FROM tasks").
		WithArgs(1).
		WillReturnRows(taskRows(Task{ID: 1, Title: "comprar pan", Description: "urgente", CreatedAt: now}))
	mock.ExpectExec("UPDATE tasks SET").
		WithArgs("comprar pan", "urgente", true, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	done := true
	updated, err := r.Update(context.Background(), 1, Update{Completed: &done})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "comprar pan", updated.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_UpdateNotFoundRollsBack(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, title, description, completed, created_at FROM tasks").
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	done := true
	_, err := r.Update(context.Background(), 42, Update{Completed: &done})
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Delete(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM tasks").
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, r.Delete(context.Background(), 1))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_DeleteNotFound(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM tasks").
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, r.Delete(context.Background(), 42), common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
