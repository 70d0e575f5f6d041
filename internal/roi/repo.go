package roi

import (
	"context"
	"time"
)

// Repo defines persistence operations for ROI calculator results.
type Repo interface {
	Create(ctx context.Context, res Result) error
	GetByID(ctx context.Context, id string) (Result, error)
	List(ctx context.Context, limit, offset int) ([]Result, error)
	ListByCompany(ctx context.Context, company string, limit int) ([]Result, error)
	CountAll(ctx context.Context) (int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
}
