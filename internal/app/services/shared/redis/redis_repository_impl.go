package redis

import (
	"context"
	"time"

	"mediflow-onboarding/internal/app/contracts"
	"mediflow-onboarding/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGet(err)
	}
	return data, nil
}

func (r *redisRepository) GetBytes(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}
	return data, nil
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := r.client.Set(ctx, key, jsonValue, exp).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisRepository) SetBytes(ctx context.Context, key string, value []byte, exp time.Duration) error {
	if err := r.client.Set(ctx, key, value, exp).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func (r *redisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, exceptions.ErrRedisIncrement(err)
	}
	if count == 1 {
		if err := r.client.Expire(ctx, key, ttl).Err(); err != nil {
			return int(count), exceptions.ErrRedisSet(err)
		}
	}
	return int(count), nil
}
