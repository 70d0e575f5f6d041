package automation

import "time"

// UserInfo identifies the person who submitted an assessment.
type UserInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Role    string `json:"role"`
}

// Result is a stored automation readiness submission. TaskAnalysis and the
// priority task entries are free-form objects. Records are immutable once
// created.
type Result struct {
	ID              string           `json:"id"`
	UserInfo        UserInfo         `json:"user_info"`
	TaskAnalysis    map[string]any   `json:"task_analysis"`
	Recommendations []string         `json:"recommendations"`
	PriorityTasks   []map[string]any `json:"priority_tasks"`
	AutomationScore int              `json:"automation_score"`
	CreatedAt       time.Time        `json:"created_at"`
	IPAddress       *string          `json:"ip_address,omitempty"`
	UserAgent       *string          `json:"user_agent,omitempty"`
}
