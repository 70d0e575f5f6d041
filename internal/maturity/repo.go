package maturity

import (
	"context"
	"time"
)

// Repo defines persistence operations for maturity assessments. Records are
// never updated or deleted through this interface.
type Repo interface {
	Create(ctx context.Context, a Assessment) error
	GetByID(ctx context.Context, id string) (Assessment, error)
	List(ctx context.Context, limit, offset int) ([]Assessment, error)
	ListByCompany(ctx context.Context, company string, limit int) ([]Assessment, error)
	CountAll(ctx context.Context) (int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	StageDistribution(ctx context.Context) ([]StageCount, error)
	SectionAverages(ctx context.Context) ([]SectionAverage, error)
}
