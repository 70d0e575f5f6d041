package maturity

import (
	"context"
	"time"

	"github.com/google/uuid"

	"assessment-backend/internal/shared/metrics"
)

const (
	defaultListLimit    = 100
	defaultCompanyLimit = 50
	maxListLimit        = 500
	recentWindow        = 30 * 24 * time.Hour
)

// Service contains business logic for maturity assessments.
type Service struct {
	Repo Repo
}

// Save assigns an identifier and creation timestamp to a validated submission
// and persists it with a single insert. There are no retries; a failed write
// surfaces immediately.
func (s *Service) Save(ctx context.Context, req CreateRequest) (Assessment, error) {
	a := Assessment{
		ID:        uuid.NewString(),
		UserInfo:  req.UserInfo,
		Answers:   req.Answers,
		Results:   req.Results,
		CreatedAt: time.Now().UTC(),
		IPAddress: req.IPAddress,
		UserAgent: req.UserAgent,
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		metrics.IncSaveFailure("maturity", "storage")
		return Assessment{}, err
	}
	metrics.IncSaved("maturity")
	return a, nil
}

// GetByID returns a stored assessment, or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (Assessment, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns a page of assessments in insertion order.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Assessment, error) {
	return s.Repo.List(ctx, clampLimit(limit, defaultListLimit), clampOffset(offset))
}

// ListByCompany returns assessments whose company matches the substring,
// case-insensitively. An empty match is a valid empty result.
func (s *Service) ListByCompany(ctx context.Context, company string, limit int) ([]Assessment, error) {
	return s.Repo.ListByCompany(ctx, company, clampLimit(limit, defaultCompanyLimit))
}

// Stats computes the maturity analytics summary. Counts and grouped
// aggregates come from the repository's query layer.
func (s *Service) Stats(ctx context.Context) (StatsResponse, error) {
	total, err := s.Repo.CountAll(ctx)
	if err != nil {
		return StatsResponse{}, err
	}
	recent, err := s.Repo.CountSince(ctx, time.Now().UTC().Add(-recentWindow))
	if err != nil {
		return StatsResponse{}, err
	}
	stages, err := s.Repo.StageDistribution(ctx)
	if err != nil {
		return StatsResponse{}, err
	}
	sections, err := s.Repo.SectionAverages(ctx)
	if err != nil {
		return StatsResponse{}, err
	}
	return StatsResponse{
		TotalAssessments:  total,
		Recent30Days:      recent,
		StageDistribution: stages,
		SectionAverages:   sections,
		LastUpdated:       time.Now().UTC(),
	}, nil
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
