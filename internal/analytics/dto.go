package analytics

import (
	"time"

	"assessment-backend/internal/automation"
	"assessment-backend/internal/maturity"
	"assessment-backend/internal/roi"
)

// KindTotals breaks a count down per assessment kind.
type KindTotals struct {
	DigitalMaturity     int `json:"digital_maturity"`
	ROICalculator       int `json:"roi_calculator"`
	AutomationReadiness int `json:"automation_readiness"`
	Total               int `json:"total"`
}

// OverviewResponse is the cross-kind analytics summary.
type OverviewResponse struct {
	TotalAssessments  KindTotals                `json:"total_assessments"`
	Recent30Days      KindTotals                `json:"recent_assessments_30_days"`
	StageDistribution []maturity.StageCount     `json:"maturity_stage_distribution"`
	SectionAverages   []maturity.SectionAverage `json:"section_averages"`
	LastUpdated       time.Time                 `json:"last_updated"`
}

// MaturityMatches holds maturity assessments matching a company filter.
type MaturityMatches struct {
	Count int                   `json:"count"`
	Data  []maturity.Assessment `json:"data"`
}

// ROIMatches holds ROI results matching a company filter.
type ROIMatches struct {
	Count int          `json:"count"`
	Data  []roi.Result `json:"data"`
}

// AutomationMatches holds automation results matching a company filter.
type AutomationMatches struct {
	Count int                 `json:"count"`
	Data  []automation.Result `json:"data"`
}

// CompanyAssessments groups per-kind company matches.
type CompanyAssessments struct {
	DigitalMaturity     MaturityMatches   `json:"digital_maturity"`
	ROICalculator       ROIMatches        `json:"roi_calculator"`
	AutomationReadiness AutomationMatches `json:"automation_readiness"`
}

// CompanyRollupResponse is the per-company view across all three kinds. A
// company appearing in two kinds counts in both; there is no cross-kind
// deduplication.
type CompanyRollupResponse struct {
	Company          string             `json:"company"`
	Assessments      CompanyAssessments `json:"assessments"`
	TotalAssessments int                `json:"total_assessments"`
}
