package roi

import "time"

// UserInfo identifies the person who submitted a calculation.
type UserInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Role    string `json:"role"`
}

// Result is a stored ROI calculator submission. Inputs and calculations are
// free-form objects; the source imposes no structure beyond "object".
// Records are immutable once created.
type Result struct {
	ID           string         `json:"id"`
	UserInfo     UserInfo       `json:"user_info"`
	Inputs       map[string]any `json:"inputs"`
	Calculations map[string]any `json:"calculations"`
	CreatedAt    time.Time      `json:"created_at"`
	IPAddress    *string        `json:"ip_address,omitempty"`
	UserAgent    *string        `json:"user_agent,omitempty"`
}
