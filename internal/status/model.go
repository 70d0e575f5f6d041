package status

import "time"

// Check is one entry in the status-check log.
type Check struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateRequest is the payload for logging a status check.
type CreateRequest struct {
	ClientName string `json:"client_name"`
}
