package maturity

import "time"

// UserInfo identifies the person who submitted an assessment. The same user
// may submit any number of assessments.
type UserInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Role    string `json:"role"`
}

// SectionScore is the computed score for one questionnaire section.
type SectionScore struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Status   string `json:"status"`
	Analysis string `json:"analysis"`
}

// Results is the computed outcome of a digital maturity questionnaire.
type Results struct {
	Percentage              int               `json:"percentage"`
	MaturityStage           string            `json:"maturity_stage"`
	LevelName               string            `json:"level_name"`
	LevelDescription        string            `json:"level_description"`
	SectionScores           []SectionScore    `json:"section_scores"`
	DetailedRecommendations []string          `json:"detailed_recommendations"`
	NextSteps               []string          `json:"next_steps"`
	Strengths               []string          `json:"strengths"`
	Weaknesses              []string          `json:"weaknesses"`
	OverallAnalysis         map[string]string `json:"overall_analysis"`
}

// Assessment is a stored digital maturity submission. Records are immutable
// once created; there is no update path.
type Assessment struct {
	ID        string         `json:"id"`
	UserInfo  UserInfo       `json:"user_info"`
	Answers   map[string]int `json:"answers"`
	Results   Results        `json:"results"`
	CreatedAt time.Time      `json:"created_at"`
	IPAddress *string        `json:"ip_address,omitempty"`
	UserAgent *string        `json:"user_agent,omitempty"`
}

// StageCount is one bucket of the maturity stage distribution.
type StageCount struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

// SectionAverage is the mean score for one section across all assessments.
type SectionAverage struct {
	Name     string  `json:"name"`
	AvgScore float64 `json:"avg_score"`
	Count    int     `json:"count"`
}
