package models

import "time"

type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeSuccess NoticeKind = "success"
	NoticeWarning NoticeKind = "warning"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient user-facing message. It is never persisted; the bus
// drops it when its duration elapses or the client dismisses it.
type Notice struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Kind      NoticeKind    `json:"kind"`
	Duration  time.Duration `json:"duration_ms"`
	CreatedAt time.Time     `json:"created_at"`
}
