package automation

// CreateRequest is the submission payload for an automation readiness
// assessment.
type CreateRequest struct {
	UserInfo        UserInfo         `json:"user_info"`
	TaskAnalysis    map[string]any   `json:"task_analysis"`
	Recommendations []string         `json:"recommendations"`
	PriorityTasks   []map[string]any `json:"priority_tasks"`
	AutomationScore int              `json:"automation_score"`
	IPAddress       *string          `json:"ip_address"`
	UserAgent       *string          `json:"user_agent"`
}

// SaveResponse confirms a persisted submission with a retrieval locator.
type SaveResponse struct {
	ID            string `json:"id"`
	Message       string `json:"message"`
	AssessmentURL string `json:"assessment_url"`
}

// ListResponse wraps a page of results.
type ListResponse struct {
	Data  []Result `json:"data"`
	Count int      `json:"count"`
}
