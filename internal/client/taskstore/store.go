// Package taskstore is the REST client for the task backend. Tasks are
// owned by the server; the client never soft-deletes or caches writes.
package taskstore

import (
	"context"

	"github.com/johnp-05/sumativatr1/internal/client/models"
)

// Store is the task-store collaborator consumed by the assistant and the CLI.
type Store interface {
	List(ctx context.Context) ([]models.Task, error)
	Get(ctx context.Context, id int) (models.Task, error)
	Create(ctx context.Context, title, description string) (models.Task, error)
	Update(ctx context.Context, id int, upd models.TaskUpdate) (models.Task, error)
	Delete(ctx context.Context, id int) error
}
