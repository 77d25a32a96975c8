package notices

import (
	"sync"
	"time"

	"mediflow-onboarding/internal/app/contracts"
	"mediflow-onboarding/internal/app/models"

	"github.com/google/uuid"
)

type noticeBus struct {
	mu              sync.Mutex
	sessions        map[string][]models.Notice
	timers          map[string]*time.Timer
	defaultDuration time.Duration
	stopped         bool
}

// NewNoticeBus builds the in-memory notice bus. defaultDurationInMS applies
// when a caller passes a non-positive duration.
func NewNoticeBus(defaultDurationInMS int) contracts.NoticeBus {
	return &noticeBus{
		sessions:        make(map[string][]models.Notice),
		timers:          make(map[string]*time.Timer),
		defaultDuration: time.Duration(defaultDurationInMS) * time.Millisecond,
	}
}

func (b *noticeBus) Add(sessionID, message string, kind models.NoticeKind, duration time.Duration) string {
	if duration <= 0 {
		duration = b.defaultDuration
	}

	notice := models.Notice{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      kind,
		Duration:  duration,
		CreatedAt: time.Now().UTC(),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return notice.ID
	}

	b.sessions[sessionID] = append(b.sessions[sessionID], notice)
	b.timers[notice.ID] = time.AfterFunc(duration, func() {
		b.Remove(sessionID, notice.ID)
	})
	return notice.ID
}

func (b *noticeBus) Remove(sessionID, noticeID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if timer, ok := b.timers[noticeID]; ok {
		timer.Stop()
		delete(b.timers, noticeID)
	}

	remaining := b.sessions[sessionID][:0]
	for _, notice := range b.sessions[sessionID] {
		if notice.ID != noticeID {
			remaining = append(remaining, notice)
		}
	}
	if len(remaining) == 0 {
		delete(b.sessions, sessionID)
		return
	}
	b.sessions[sessionID] = remaining
}

func (b *noticeBus) List(sessionID string) []models.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	notices := b.sessions[sessionID]
	out := make([]models.Notice, len(notices))
	copy(out, notices)
	return out
}

// Stop cancels every pending expiry timer. Used on shutdown.
func (b *noticeBus) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopped = true
	for id, timer := range b.timers {
		timer.Stop()
		delete(b.timers, id)
	}
}
