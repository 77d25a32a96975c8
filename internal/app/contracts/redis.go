package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Get(ctx context.Context, key string) (string, error)
	GetBytes(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	SetBytes(ctx context.Context, key string, value []byte, exp time.Duration) error
	Delete(ctx context.Context, key string) error
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error)
}
