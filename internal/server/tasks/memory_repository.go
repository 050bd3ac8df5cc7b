package tasks

import (
	"context"
	"sync"
	"time"

	"github.com/johnp-05/sumativatr1/internal/common"
)

// InMemoryRepository keeps tasks in a map, for development and tests.
// Unlike the assistant core, the repository is shared between HTTP
// handlers and guards itself with a mutex.
type InMemoryRepository struct {
	mu     sync.Mutex
	tasks  map[int]Task
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{tasks: map[int]Task{}}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Task, 0, len(r.tasks))
	for id := 1; id <= r.nextID; id++ {
		if t, ok := r.tasks[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id int) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &t, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, task *Task) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	task.ID = r.nextID
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}
	r.tasks[task.ID] = *task
	return task, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id int, upd Update) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, common.ErrorNotFound
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

	r.tasks[id] = t
	return &t, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.tasks, id)
	return nil
}
