package tasks

import (
	"context"
)

type Repository interface {
	List(ctx context.Context) ([]Task, error)
	Get(ctx context.Context, id int) (*Task, error)
	Create(ctx context.Context, task *Task) (*Task, error)
	Update(ctx context.Context, id int, upd Update) (*Task, error)
	Delete(ctx context.Context, id int) error
}
