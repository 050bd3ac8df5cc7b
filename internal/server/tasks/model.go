package tasks

import "time"

// Task is the stored representation. JSON field names match what the CLI
// client sends and expects.
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Update is a partial update; nil fields are left unchanged.
type Update struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func (u Update) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Completed == nil
}
