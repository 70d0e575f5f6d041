package automation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"assessment-backend/internal/shared/metrics"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// Service contains business logic for automation readiness results.
type Service struct {
	Repo Repo
}

// Save assigns an identifier and creation timestamp to a validated submission
// and persists it with a single insert.
func (s *Service) Save(ctx context.Context, req CreateRequest) (Result, error) {
	res := Result{
		ID:              uuid.NewString(),
		UserInfo:        req.UserInfo,
		TaskAnalysis:    req.TaskAnalysis,
		Recommendations: req.Recommendations,
		PriorityTasks:   req.PriorityTasks,
		AutomationScore: req.AutomationScore,
		CreatedAt:       time.Now().UTC(),
		IPAddress:       req.IPAddress,
		UserAgent:       req.UserAgent,
	}
	if err := s.Repo.Create(ctx, res); err != nil {
		metrics.IncSaveFailure("automation", "storage")
		return Result{}, err
	}
	metrics.IncSaved("automation")
	return res, nil
}

// GetByID returns a stored result, or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (Result, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns a page of results in insertion order.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Result, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repo.List(ctx, limit, offset)
}
