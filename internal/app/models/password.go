package models

const (
	PasswordStepRequest = 1
	PasswordStepVerify  = 2
	PasswordStepReset   = 3
)

// PasswordFlow is the persisted forgot-password state. WindowStartedAt is a
// unix timestamp so the OTP countdown survives page reloads; it is advisory
// only, the upstream service enforces actual expiry.
type PasswordFlow struct {
	Step            int    `json:"step"`
	Email           string `json:"email"`
	WindowStartedAt int64  `json:"window_started_at"`
}
