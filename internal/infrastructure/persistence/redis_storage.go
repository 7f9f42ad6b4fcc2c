package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"basket/internal/domain"
	"basket/pkg/errcodes"
)

// RedisStorage хранит значения строками в Redis.
type RedisStorage struct {
	client redis.Cmdable
	prefix string
}

func NewRedisStorage(client redis.Cmdable, prefix string) *RedisStorage {
	return &RedisStorage{
		client: client,
		prefix: prefix,
	}
}

func (s *RedisStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, domain.WrapError(err, errcodes.InternalServerError, "failed to get value from redis")
	}

	return value, true, nil
}

func (s *RedisStorage) SetItem(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to set value in redis")
	}

	return nil
}
