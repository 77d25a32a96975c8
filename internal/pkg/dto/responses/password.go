package responses

// ResetStatus reports where the forgot-password flow stands. RemainingSeconds
// is derived from the persisted window start and is never negative.
type ResetStatus struct {
	Step             int    `json:"step"`
	Email            string `json:"email"`
	RemainingSeconds int    `json:"remaining_seconds"`
}
