package requests

import "time"

// RelayedContactMessage is the envelope published to the contact queue. The
// failed count rides inside the payload so a republished message keeps its
// history.
type RelayedContactMessage struct {
	ID          string         `json:"id"`
	Message     ContactMessage `json:"message"`
	FailedCount int            `json:"failed_count"`
	EnqueuedAt  time.Time      `json:"enqueued_at"`
}
