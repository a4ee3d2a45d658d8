package analytics

// SkillAnalytics is one row of the per-skill rollup across the whole platform.
type SkillAnalytics struct {
	Skill             string `json:"skill"`
	TeachCount        int    `json:"teach_count"`
	LearnCount        int    `json:"learn_count"`
	TotalRequests     int    `json:"total_requests"`
	SuccessfulMatches int    `json:"successful_matches"`
}

// UserStats summarizes the logged-in user's own activity.
type UserStats struct {
	RequestsSent      int `json:"requests_sent"`
	RequestsReceived  int `json:"requests_received"`
	AcceptedRequests  int `json:"accepted_requests"`
	SessionsTotal     int `json:"sessions_total"`
	SessionsCompleted int `json:"sessions_completed"`
}
