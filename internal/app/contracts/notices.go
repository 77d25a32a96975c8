package contracts

import (
	"time"

	"mediflow-onboarding/internal/app/models"
)

// NoticeBus is the in-process toast queue. Messages for one session coexist
// independently in insertion order; there is no deduplication.
type NoticeBus interface {
	Add(sessionID, message string, kind models.NoticeKind, duration time.Duration) string
	Remove(sessionID, noticeID string)
	List(sessionID string) []models.Notice
	Stop()
}
