package roi

// CreateRequest is the submission payload for an ROI calculation.
type CreateRequest struct {
	UserInfo     UserInfo       `json:"user_info"`
	Inputs       map[string]any `json:"inputs"`
	Calculations map[string]any `json:"calculations"`
	IPAddress    *string        `json:"ip_address"`
	UserAgent    *string        `json:"user_agent"`
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
