package taskstore

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/johnp-05/sumativatr1/internal/client/models"
	"github.com/johnp-05/sumativatr1/internal/common"
)

// RESTStore talks JSON to the task backend (GET/POST/PATCH/DELETE /tasks).
// No retries: a failed call surfaces immediately and the user resubmits.
type RESTStore struct {
	rc *resty.Client
}

// NewRESTStore builds a client for the given base URL, e.g.
// "http://localhost:3001". timeout bounds every request.
func NewRESTStore(baseURL string, timeout time.Duration) *RESTStore {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &RESTStore{rc: rc}
}

func (s *RESTStore) List(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	resp, err := s.rc.R().SetContext(ctx).SetResult(&tasks).Get("/tasks")
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	if resp.IsError() {
		return nil, statusError(resp)
	}
	return tasks, nil
}

func (s *RESTStore) Get(ctx context.Context, id int) (models.Task, error) {
	var task models.Task
	resp, err := s.rc.R().SetContext(ctx).SetResult(&task).Get(fmt.Sprintf("/tasks/%d", id))
	if err != nil {
		return models.Task{}, fmt.Errorf("fetching task %d: %w", id, err)
	}
	if resp.IsError() {
		return models.Task{}, statusError(resp)
	}
	return task, nil
}

func (s *RESTStore) Create(ctx context.Context, title, description string) (models.Task, error) {
	// The backend echoes whatever createdAt the client sends, so stamp it
	// here the way the original app did.
	body := map[string]any{
		"title":       title,
		"description": description,
		"completed":   false,
		"createdAt":   time.Now().UTC().Format(time.RFC3339),
	}

	var task models.Task
	resp, err := s.rc.R().SetContext(ctx).SetBody(body).SetResult(&task).Post("/tasks")
	if err != nil {
		return models.Task{}, fmt.Errorf("creating task: %w", err)
	}
	if resp.IsError() {
		return models.Task{}, statusError(resp)
	}
	return task, nil
}

func (s *RESTStore) Update(ctx context.Context, id int, upd models.TaskUpdate) (models.Task, error) {
	var task models.Task
	resp, err := s.rc.R().SetContext(ctx).SetBody(upd).SetResult(&task).Patch(fmt.Sprintf("/tasks/%d", id))
	if err != nil {
		return models.Task{}, fmt.Errorf("updating task %d: %w", id, err)
	}
	if resp.IsError() {
		return models.Task{}, statusError(resp)
	}
	return task, nil
}

func (s *RESTStore) Delete(ctx context.Context, id int) error {
	resp, err := s.rc.R().SetContext(ctx).Delete(fmt.Sprintf("/tasks/%d", id))
	if err != nil {
		return fmt.Errorf("deleting task %d: %w", id, err)
	}
	if resp.IsError() {
		return statusError(resp)
	}
	return nil
}

func statusError(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("server returned 404: %w", common.ErrorNotFound)
	}
	return fmt.Errorf("server returned %d: %w", resp.StatusCode(), common.ErrorInternal)
}
