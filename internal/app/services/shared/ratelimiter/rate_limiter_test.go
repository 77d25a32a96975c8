package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeCounterRedis struct {
	counts map[string]int
	err    error
}

func newFakeCounterRedis() *fakeCounterRedis {
	return &fakeCounterRedis{counts: make(map[string]int)}
}

func (f *fakeCounterRedis) Get(ctx context.Context, key string) (string, error)  { return "", nil }
func (f *fakeCounterRedis) GetBytes(ctx context.Context, key string) ([]byte, error) {
	return nil, nil
}
func (f *fakeCounterRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}
func (f *fakeCounterRedis) SetBytes(ctx context.Context, key string, value []byte, exp time.Duration) error {
	return nil
}
func (f *fakeCounterRedis) Delete(ctx context.Context, key string) error { return nil }
func (f *fakeCounterRedis) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.counts[key]++
	return f.counts[key], nil
}

func TestLimiter_AllowWithinQuota(t *testing.T) {
	limiter := NewLimiter(newFakeCounterRedis(), zap.NewNop())
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		allowed, retryAfter, err := limiter.Allow(context.Background(), "RESET-OTP-RESEND", "ada@example.com", time.Hour, 3, now)
		assert.NoError(t, err)
		assert.True(t, allowed)
		assert.Zero(t, retryAfter)
	}
}

func TestLimiter_RejectsBeyondQuota(t *testing.T) {
	limiter := NewLimiter(newFakeCounterRedis(), zap.NewNop())
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		allowed, _, err := limiter.Allow(context.Background(), "RESET-OTP-RESEND", "ada@example.com", time.Hour, 3, now)
		assert.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, retryAfter, err := limiter.Allow(context.Background(), "RESET-OTP-RESEND", "ada@example.com", time.Hour, 3, now)
	assert.NoError(t, err)
	assert.False(t, allowed)
	assert.Positive(t, retryAfter)
}

func TestLimiter_WindowsAreIndependent(t *testing.T) {
	limiter := NewLimiter(newFakeCounterRedis(), zap.NewNop())
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		limiter.Allow(context.Background(), "RESET-OTP-RESEND", "ada@example.com", time.Hour, 3, now)
	}

	allowed, _, err := limiter.Allow(context.Background(), "RESET-OTP-RESEND", "ada@example.com", time.Hour, 3, now.Add(time.Hour))
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestLimiter_ResourcesAreIndependent(t *testing.T) {
	limiter := NewLimiter(newFakeCounterRedis(), zap.NewNop())
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		limiter.Allow(context.Background(), "RESET-OTP-RESEND", "ada@example.com", time.Hour, 3, now)
	}

	allowed, _, err := limiter.Allow(context.Background(), "RESET-OTP-RESEND", "grace@example.com", time.Hour, 3, now)
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestLimiter_ZeroQuotaDisablesLimiting(t *testing.T) {
	limiter := NewLimiter(newFakeCounterRedis(), zap.NewNop())

	allowed, retryAfter, err := limiter.Allow(context.Background(), "RESET-OTP-RESEND", "ada@example.com", time.Hour, 0, time.Time{})
	assert.NoError(t, err)
	assert.True(t, allowed)
	assert.Zero(t, retryAfter)
}

func TestLimiter_RedisFailureIsSurfaced(t *testing.T) {
	redis := newFakeCounterRedis()
	redis.err = assert.AnError
	limiter := NewLimiter(redis, zap.NewNop())

	allowed, _, err := limiter.Allow(context.Background(), "RESET-OTP-RESEND", "ada@example.com", time.Hour, 3, time.Time{})
	assert.Error(t, err)
	assert.False(t, allowed)
}
