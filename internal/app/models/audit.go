package models

import "time"

type AttemptOutcome string

const (
	AttemptSucceeded AttemptOutcome = "succeeded"
	AttemptFailed    AttemptOutcome = "failed"
)

// SignupAttempt is the durable audit record for one submission run. The
// submission result itself stays transient; this trail exists so a failed
// compensating deletion is never lost in log output alone.
type SignupAttempt struct {
	ID              string         `bson:"_id,omitempty" json:"id"`
	DraftID         string         `bson:"draft_id" json:"draft_id"`
	Role            Role           `bson:"role" json:"role"`
	EmailMasked     string         `bson:"email_masked" json:"email_masked"`
	Outcome         AttemptOutcome `bson:"outcome" json:"outcome"`
	FailedStage     string         `bson:"failed_stage,omitempty" json:"failed_stage,omitempty"`
	Compensated     bool           `bson:"compensated" json:"compensated"`
	CompensationErr string         `bson:"compensation_error,omitempty" json:"compensation_error,omitempty"`
	UpstreamMessage string         `bson:"upstream_message,omitempty" json:"upstream_message,omitempty"`
	AttemptedAt     time.Time      `bson:"attempted_at" json:"attempted_at"`
}
