package models

import "time"

// VaultTask mirrors Task but lives in the encrypted local store. The id is
// a client-generated string (current Unix millis), not a server id.
type VaultTask struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}
