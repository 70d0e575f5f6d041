package status

import (
	"context"
	"errors"
)

var ErrWriteNotConfirmed = errors.New("status check write not confirmed")

// Repo defines persistence operations for status checks.
type Repo interface {
	Create(ctx context.Context, check Check) error
	List(ctx context.Context, limit int) ([]Check, error)
}
