package maturity

import "time"

// CreateRequest is the submission payload for a maturity assessment.
type CreateRequest struct {
	UserInfo  UserInfo       `json:"user_info"`
	Answers   map[string]int `json:"answers"`
	Results   Results        `json:"results"`
	IPAddress *string        `json:"ip_address"`
	UserAgent *string        `json:"user_agent"`
}

// SaveResponse confirms a persisted submission with a retrieval locator.
type SaveResponse struct {
	ID            string `json:"id"`
	Message       string `json:"message"`
	AssessmentURL string `json:"assessment_url"`
}

// ListResponse wraps a page of assessments.
type ListResponse struct {
	Data  []Assessment `json:"data"`
	Count int          `json:"count"`
}

// CompanyListResponse wraps assessments matching a company substring.
type CompanyListResponse struct {
	Company         string       `json:"company"`
	AssessmentCount int          `json:"assessment_count"`
	Assessments     []Assessment `json:"assessments"`
}

// StatsResponse is the maturity-kind analytics summary.
type StatsResponse struct {
	TotalAssessments  int              `json:"total_assessments"`
	Recent30Days      int              `json:"recent_assessments_30_days"`
	StageDistribution []StageCount     `json:"maturity_stage_distribution"`
	SectionAverages   []SectionAverage `json:"section_averages"`
	LastUpdated       time.Time        `json:"last_updated"`
}
