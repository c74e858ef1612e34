package domain

// MatchResult annotates a job with its compatibility against a profile.
// Derived on demand, never persisted; recomputed whenever the profile or the
// active job set changes.
type MatchResult struct {
	Job     *Job     `json:"job"`
	Score   float64  `json:"match_score"`
	Reasons []string `json:"match_reasons"`
}
