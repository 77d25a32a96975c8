package ratelimiter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mediflow-onboarding/internal/app/contracts"

	"go.uber.org/zap"
)

// Limiter is a fixed-window counter backed by Redis. One window maps to one
// key with a TTL just past the window boundary, so abandoned windows clean
// themselves up.
type Limiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
}

func NewLimiter(redis contracts.RedisRepository, log *zap.Logger) *Limiter {
	return &Limiter{redis: redis, log: log}
}

// Allow consumes one unit of quota for resource within group. When the quota
// is exhausted it reports the seconds until the next window opens. The zero
// time means "now"; tests pass a fixed clock.
func (l *Limiter) Allow(ctx context.Context, group, resource string, window time.Duration, quota int, now time.Time) (bool, int, error) {
	if quota <= 0 {
		return true, 0, nil
	}
	if window <= 0 {
		window = time.Minute
	}

	resource = strings.ToLower(strings.TrimSpace(resource))
	group = strings.ToUpper(strings.TrimSpace(group))
	windowSec := int64(window / time.Second)
	if resource == "" || group == "" {
		return false, int(windowSec), nil
	}

	if now.IsZero() {
		now = time.Now().UTC()
	}

	windowID := now.Unix() / windowSec
	key := fmt.Sprintf("%s:%s:%d", group, resource, windowID)

	count, err := l.redis.IncrementWithTTL(ctx, key, window+time.Second)
	if err != nil {
		l.log.Error("Limiter.Allow increment failed",
			zap.String("key", key),
			zap.Error(err))
		return false, 0, err
	}

	retryAfter := int((windowID+1)*windowSec-now.Unix()) + 1
	if count > quota {
		return false, retryAfter, nil
	}
	return true, 0, nil
}
