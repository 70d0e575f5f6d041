package analytics

import (
	"context"
	"time"

	"assessment-backend/internal/automation"
	"assessment-backend/internal/maturity"
	"assessment-backend/internal/roi"
)

const (
	recentWindow = 30 * 24 * time.Hour

	// Per-kind cap for company rollups. Matches the list-endpoint ceiling.
	rollupLimit = 500
)

// Service computes cross-kind aggregate statistics. It holds no state of its
// own; every call is answered from the kind repositories.
type Service struct {
	Maturity   maturity.Repo
	ROI        roi.Repo
	Automation automation.Repo
}

// NewService constructs a Service over the three kind repositories.
func NewService(m maturity.Repo, r roi.Repo, a automation.Repo) *Service {
	return &Service{Maturity: m, ROI: r, Automation: a}
}

// Overview returns per-kind totals, 30-day recents and the maturity grouped
// aggregates. Zero stored records yields zero counts and empty
// distributions, not an error.
func (s *Service) Overview(ctx context.Context) (OverviewResponse, error) {
	totals, err := s.kindTotals(ctx, func(r kindCounter) (int, error) {
		return r.CountAll(ctx)
	})
	if err != nil {
		return OverviewResponse{}, err
	}

	cutoff := time.Now().UTC().Add(-recentWindow)
	recents, err := s.kindTotals(ctx, func(r kindCounter) (int, error) {
		return r.CountSince(ctx, cutoff)
	})
	if err != nil {
		return OverviewResponse{}, err
	}

	stages, err := s.Maturity.StageDistribution(ctx)
	if err != nil {
		return OverviewResponse{}, err
	}
	sections, err := s.Maturity.SectionAverages(ctx)
	if err != nil {
		return OverviewResponse{}, err
	}

	return OverviewResponse{
		TotalAssessments:  totals,
		Recent30Days:      recents,
		StageDistribution: stages,
		SectionAverages:   sections,
		LastUpdated:       time.Now().UTC(),
	}, nil
}

// CompanyRollup runs the same case-insensitive substring match independently
// against all three kinds.
func (s *Service) CompanyRollup(ctx context.Context, company string) (CompanyRollupResponse, error) {
	maturityMatches, err := s.Maturity.ListByCompany(ctx, company, rollupLimit)
	if err != nil {
		return CompanyRollupResponse{}, err
	}
	roiMatches, err := s.ROI.ListByCompany(ctx, company, rollupLimit)
	if err != nil {
		return CompanyRollupResponse{}, err
	}
	automationMatches, err := s.Automation.ListByCompany(ctx, company, rollupLimit)
	if err != nil {
		return CompanyRollupResponse{}, err
	}

	return CompanyRollupResponse{
		Company: company,
		Assessments: CompanyAssessments{
			DigitalMaturity:     MaturityMatches{Count: len(maturityMatches), Data: maturityMatches},
			ROICalculator:       ROIMatches{Count: len(roiMatches), Data: roiMatches},
			AutomationReadiness: AutomationMatches{Count: len(automationMatches), Data: automationMatches},
		},
		TotalAssessments: len(maturityMatches) + len(roiMatches) + len(automationMatches),
	}, nil
}

// kindCounter is the count surface every kind repository shares.
type kindCounter interface {
	CountAll(ctx context.Context) (int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
}

func (s *Service) kindTotals(ctx context.Context, count func(kindCounter) (int, error)) (KindTotals, error) {
	m, err := count(s.Maturity)
	if err != nil {
		return KindTotals{}, err
	}
	r, err := count(s.ROI)
	if err != nil {
		return KindTotals{}, err
	}
	a, err := count(s.Automation)
	if err != nil {
		return KindTotals{}, err
	}
	return KindTotals{
		DigitalMaturity:     m,
		ROICalculator:       r,
		AutomationReadiness: a,
		Total:               m + r + a,
	}, nil
}
